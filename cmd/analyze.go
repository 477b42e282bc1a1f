package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/crs-analyzer/internal/crs"
	"github.com/spigell/crs-analyzer/internal/explorer"
	"github.com/spigell/crs-analyzer/internal/filtering"
	"github.com/spigell/crs-analyzer/internal/logger"
)

const (
	PromptShowTop       = "Show top combinations"
	PromptExit          = "Exit"
	PromptReportByLevel = "Report by education level"
	PromptRunSweeps     = "Run single-factor sweeps and export CSV"
	PromptResultsToFile = "Dump combinations to file"
)

var errExit = errors.New("exit requested")

var analyzePrompt = promptui.Select{
	Label: "Proceed?",
	Items: []string{PromptShowTop, PromptReportByLevel, PromptRunSweeps, PromptResultsToFile, PromptExit},
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Explore score-maximizing profile combinations",
	Run: func(cmd *cobra.Command, _ []string) {
		analyze(cmd)
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().BoolP("auto-approve", "y", false, "print the top combinations and exit without prompting")
	analyzeCmd.Flags().String("sweep-dir", ".", "directory for exported sweep CSV files")
}

// analyze is the main command for the cli.
func analyze(cmd *cobra.Command) {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting the crs-analyzer", zap.String("version", version))

	pretty, _ := json.MarshalIndent(config, "", "  ")
	logger.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	ranges, top := buildRanges(config)

	logger.Info("exploring combinations",
		zap.Int("combinations", ranges.Size()),
		zap.Int("foreign_years", ranges.ForeignYears),
	)

	results := explorer.TopK(ranges, -1)

	if results.Len() == 0 {
		logger.Info("exiting", zap.String("reason", "no combinations in the configured ranges"))
		return
	}

	filters := prepareFilters(config, top, logger)

	filtered, err := filters.RunFilters(ctx, results)
	if err != nil {
		logger.Fatal("filtering failed", zap.Error(err))
	}
	results = filtered

	if results.Len() == 0 {
		logger.Info("exiting", zap.String("reason", "no combinations left after filters"))
		return
	}

	action := PromptShowTop
	for {
		var err error
		if cmd.Flag("auto-approve").Value.String() == "false" {
			_, action, err = analyzePrompt.Run()
			if err != nil {
				logger.Fatal("exiting", zap.Error(err))
			}
		}

		logger.Info("current list of combinations", zap.Int("count", results.Len()))

		if err := handleAnalyzeAction(action, cmd, logger, results); err != nil {
			if errors.Is(err, errExit) {
				return
			}
			logger.Fatal("exiting", zap.Error(err))
		}

		if cmd.Flag("auto-approve").Value.String() == "true" {
			return
		}
	}
}

func handleAnalyzeAction(action string, cmd *cobra.Command, logger *zap.Logger, results *explorer.Results) error {
	switch action {
	case PromptShowTop:
		printTop(results)
		return nil
	case PromptExit:
		logger.Info("exiting", zap.String("reason", "got exit from prompt"))
		return errExit
	case PromptReportByLevel:
		pretty, _ := json.MarshalIndent(results.ReportByEducation(), "", "  ")
		logger.Info(string(pretty), zap.Int("combinations count", results.Len()))
		return nil
	case PromptRunSweeps:
		return runSweeps(cmd.Flag("sweep-dir").Value.String(), logger)
	case PromptResultsToFile:
		filename, err := results.DumpToTmpFile()
		if err != nil {
			return fmt.Errorf("dump results to file: %w", err)
		}
		logger.Info("dumping result to file", zap.String("filename", filename))
		return nil
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
}

func printTop(results *explorer.Results) {
	for i, item := range results.Items {
		fmt.Printf("%2d. %s\n", i+1, item.Label())
	}
}

// buildRanges turns the configured exploration section into explorer ranges,
// falling back to the built-in prime-age defaults for anything unset.
func buildRanges(config *Config) (explorer.Ranges, int) {
	ageMin, ageMax := 25, 35
	foreign := 2
	top := 20

	var cfg *ExplorationConfig
	if config != nil {
		cfg = config.Exploration
	}

	if cfg != nil {
		if cfg.AgeMin != 0 {
			ageMin = cfg.AgeMin
		}
		if cfg.AgeMax != 0 {
			ageMax = cfg.AgeMax
		}
		if cfg.ForeignYears != 0 {
			foreign = cfg.ForeignYears
		}
		if cfg.Top != 0 {
			top = cfg.Top
		}
	}

	ranges := explorer.Ranges{
		Ages:            explorer.AgeSpan(ageMin, ageMax),
		Educations:      []crs.Education{crs.BachelorFourYear, crs.MasterDegree, crs.DoctoralDegree},
		Languages:       []crs.Language{crs.CLB8, crs.CLB9, crs.CLB10Plus},
		WorkExperiences: []crs.WorkExperience{crs.TwoYears, crs.ThreeYears, crs.FourYears, crs.FiveYears},
		ForeignYears:    foreign,
	}

	if cfg != nil {
		ranges.Educations = parsedEducations(cfg.Educations, ranges.Educations)
		ranges.Languages = parsedLanguages(cfg.Languages, ranges.Languages)
		ranges.WorkExperiences = parsedWorkExperiences(cfg.WorkExperiences, ranges.WorkExperiences)
	}

	return ranges, top
}

func prepareFilters(config *Config, top int, logger *zap.Logger) *filtering.Filtering {
	cutoff := 0
	var excluded []string
	if config != nil && config.Exploration != nil {
		cutoff = config.Exploration.Cutoff
		excluded = config.Exploration.ExcludeEducations
	}

	steps := []filtering.Filter{
		filtering.NewCutoff(cutoff),
		filtering.NewExcludedEducations(excluded),
		filtering.NewLimit(top),
	}

	return filtering.New(steps, logger)
}

// namedProfile is a reference profile used to compare age decay across
// different candidate strengths.
type namedProfile struct {
	name  string
	fixed crs.Profile
}

// defaultReferenceProfiles mirror the classic strong/good/average comparison.
func defaultReferenceProfiles() []namedProfile {
	return []namedProfile{
		{"high_education_high_language", crs.Profile{Education: crs.MasterDegree, Language: crs.CLB10Plus, WorkExperience: crs.ThreeYears, ForeignYears: 2}},
		{"bachelor_good_language", crs.Profile{Education: crs.BachelorFourYear, Language: crs.CLB8, WorkExperience: crs.TwoYears, ForeignYears: 1}},
		{"average_profile", crs.Profile{Education: crs.BachelorThreeYear, Language: crs.CLB7, WorkExperience: crs.OneYear, ForeignYears: 0}},
	}
}

// referenceProfiles decodes profiles from the config, falling back to the
// defaults when none are configured.
func referenceProfiles(logger *zap.Logger) []namedProfile {
	raw := viper.Get("profiles")
	if raw == nil {
		return defaultReferenceProfiles()
	}

	var configs []ProfileConfig
	cfg := &mapstructure.DecoderConfig{
		Metadata: nil,
		Result:   &configs,
		TagName:  "mapstructure",
	}
	decoder, _ := mapstructure.NewDecoder(cfg)
	if err := decoder.Decode(raw); err != nil {
		logger.Warn("ignoring malformed profiles section", zap.Error(err))
		return defaultReferenceProfiles()
	}

	if len(configs) == 0 {
		return defaultReferenceProfiles()
	}

	profiles := make([]namedProfile, 0, len(configs))
	for _, c := range configs {
		profiles = append(profiles, namedProfile{
			name: slug(c.Name),
			fixed: crs.Profile{
				Education:      crs.Education(c.Education),
				Language:       crs.Language(c.Language),
				WorkExperience: crs.WorkExperience(c.WorkExperience),
				ForeignYears:   c.ForeignYears,
			},
		})
	}
	return profiles
}

// runSweeps exports the age, education and language impact CSV files.
func runSweeps(dir string, logger *zap.Logger) error {
	for _, profile := range referenceProfiles(logger) {
		points := explorer.AgeSweep(18, 46, profile.fixed)
		filename := filepath.Join(dir, fmt.Sprintf("age_impact_%s.csv", profile.name))
		if err := writeSweepFile(filename, explorer.FactorAge, points); err != nil {
			return err
		}
		logger.Info("exported age sweep", zap.String("filename", filename), zap.String("profile", profile.name))
	}

	// The comparison baseline: optimal age, good language, some experience.
	baseline := crs.Profile{
		Age:            28,
		Language:       crs.CLB8,
		WorkExperience: crs.TwoYears,
		ForeignYears:   1,
	}

	educationBaseline := baseline
	educationFile := filepath.Join(dir, "education_impact.csv")
	if err := writeSweepFile(educationFile, explorer.FactorEducation, explorer.EducationSweep(educationBaseline)); err != nil {
		return err
	}
	logger.Info("exported education sweep", zap.String("filename", educationFile))

	languageBaseline := baseline
	languageBaseline.Education = crs.BachelorFourYear
	languageFile := filepath.Join(dir, "language_impact.csv")
	if err := writeSweepFile(languageFile, explorer.FactorLanguage, explorer.LanguageSweep(languageBaseline)); err != nil {
		return err
	}
	logger.Info("exported language sweep", zap.String("filename", languageFile))

	return nil
}

func writeSweepFile(filename string, factor explorer.Factor, points []explorer.SweepPoint) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("create sweep file: %w", err)
	}
	defer file.Close()

	if err := explorer.WriteSweepCSV(file, factor, points); err != nil {
		return fmt.Errorf("write sweep file: %w", err)
	}
	return nil
}

func slug(name string) string {
	name = strings.TrimSpace(strings.ToLower(name))
	if name == "" {
		return "profile"
	}
	return strings.ReplaceAll(name, " ", "_")
}
