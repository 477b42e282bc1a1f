package explorer

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spigell/crs-analyzer/internal/crs"
)

const (
	CombinationEducationField = "Education"
	CombinationLanguageField  = "Language"
)

// Combination is a single scored profile.
type Combination struct {
	Profile crs.Profile `json:"profile"`
	Score   int         `json:"score"`
}

// Results is an ordered collection of scored combinations.
type Results struct {
	Items []*Combination `json:"items"`
}

func (r *Results) Len() int {
	return len(r.Items)
}

// Best returns the top ranked combination, nil when the collection is empty.
func (r *Results) Best() *Combination {
	if len(r.Items) == 0 {
		return nil
	}
	return r.Items[0]
}

// Head returns up to n leading combinations without copying them.
func (r *Results) Head(n int) []*Combination {
	if n > len(r.Items) {
		n = len(r.Items)
	}
	if n < 0 {
		n = 0
	}
	return r.Items[:n]
}

func (c *Combination) GetStringField(name string) string {
	switch name {
	case CombinationEducationField:
		return string(c.Profile.Education)
	case CombinationLanguageField:
		return string(c.Profile.Language)
	default:
		return ""
	}
}

// Exclude removes combinations whose field matches any of the targets,
// preserving the ranking order. It returns a label per removed combination.
func (r *Results) Exclude(name string, targets []string) []string {
	var excluded []string
	kept := r.Items[:0]

	for _, item := range r.Items {
		matched := false
		for _, target := range targets {
			if item.GetStringField(name) == target {
				matched = true
				break
			}
		}
		if matched {
			excluded = append(excluded, item.Label())
			continue
		}
		kept = append(kept, item)
	}

	r.Items = kept
	return excluded
}

// Label renders a short human readable description of the combination.
func (c *Combination) Label() string {
	return fmt.Sprintf("age %d / %s / %s / %s -> %d",
		c.Profile.Age, c.Profile.Education, c.Profile.Language, c.Profile.WorkExperience, c.Score,
	)
}

// ReportByEducation groups the combinations by education level for reporting.
func (r *Results) ReportByEducation() map[string][]map[string]string {
	report := make(map[string][]map[string]string)
	for _, item := range r.Items {
		key := string(item.Profile.Education)
		report[key] = append(report[key], map[string]string{
			"age":             strconv.Itoa(item.Profile.Age),
			"language":        string(item.Profile.Language),
			"work experience": string(item.Profile.WorkExperience),
			"score":           strconv.Itoa(item.Score),
		})
	}
	return report
}

// DumpToTmpFile writes the collection as indented JSON to a temporary file
// and returns its name.
func (r *Results) DumpToTmpFile() (string, error) {
	file, err := os.CreateTemp("", "combinations_*.json")
	if err != nil {
		return "", err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return "", err
	}
	return file.Name(), nil
}

// WriteCSV writes the combinations as CSV rows, best first.
func (r *Results) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"age", "education", "language", "work_experience", "foreign_years", "score"}); err != nil {
		return err
	}

	for _, item := range r.Items {
		row := []string{
			strconv.Itoa(item.Profile.Age),
			string(item.Profile.Education),
			string(item.Profile.Language),
			string(item.Profile.WorkExperience),
			strconv.Itoa(item.Profile.ForeignYears),
			strconv.Itoa(item.Score),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
