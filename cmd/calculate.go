package cmd

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/crs-analyzer/internal/advisor"
	"github.com/spigell/crs-analyzer/internal/advisor/gemini"
	"github.com/spigell/crs-analyzer/internal/crs"
	"github.com/spigell/crs-analyzer/internal/logger"
	"github.com/spigell/crs-analyzer/internal/secrets"
)

var calculateCmd = &cobra.Command{
	Use:   "calculate",
	Short: "Interactively estimate your CRS score",
	Run: func(cmd *cobra.Command, _ []string) {
		calculate(cmd)
	},
}

func init() {
	rootCmd.AddCommand(calculateCmd)

	calculateCmd.Flags().Bool("strict", false, "reject unknown answers instead of scoring them as zero")
}

// option pairs a prompt label with the table value it stands for.
type option[T any] struct {
	label string
	value T
}

var educationChoices = []option[crs.Education]{
	{"High school", crs.Secondary},
	{"One-year post-secondary", crs.OneYearPostsecondary},
	{"Two-year post-secondary", crs.TwoYearPostsecondary},
	{"Two or more certificates or diplomas", crs.TwoOrMoreCertificates},
	{"Bachelor degree (3 years)", crs.BachelorThreeYear},
	{"Bachelor degree (4+ years)", crs.BachelorFourYear},
	{"Master degree", crs.MasterDegree},
	{"Professional degree (medicine, law, etc.)", crs.ProfessionalDegree},
	{"Doctoral degree (PhD)", crs.DoctoralDegree},
}

var languageChoices = []option[crs.Language]{
	{"CLB 4 or below", crs.CLB4Below},
	{"CLB 5", crs.CLB5},
	{"CLB 6", crs.CLB6},
	{"CLB 7", crs.CLB7},
	{"CLB 8", crs.CLB8},
	{"CLB 9", crs.CLB9},
	{"CLB 10+", crs.CLB10Plus},
}

var workChoices = []option[crs.WorkExperience]{
	{"No work experience", crs.NoExperience},
	{"1 year", crs.OneYear},
	{"2 years", crs.TwoYears},
	{"3 years", crs.ThreeYears},
	{"4 years", crs.FourYears},
	{"5 years", crs.FiveYears},
	{"6+ years", crs.SixPlusYears},
}

func calculate(cmd *cobra.Command) {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	profile, err := askProfile()
	if err != nil {
		logger.Fatal("reading answers", zap.Error(err))
	}

	if cmd.Flag("strict").Value.String() == "true" {
		if err := crs.ValidateProfile(*profile); err != nil {
			logger.Fatal("profile rejected by strict validation", zap.Error(err))
		}
	}

	breakdown := crs.Score(*profile)
	printBreakdown(*profile, breakdown)

	printAdvice(ctx, logger, config, *profile, breakdown)
}

func askProfile() (*crs.Profile, error) {
	agePrompt := promptui.Prompt{
		Label:    "What is your age",
		Validate: validateYears(18, 47),
	}
	ageAnswer, err := agePrompt.Run()
	if err != nil {
		return nil, err
	}
	age, _ := strconv.Atoi(strings.TrimSpace(ageAnswer))

	educationPrompt := promptui.Select{
		Label: "What is your highest education level?",
		Items: labels(educationChoices),
		Size:  len(educationChoices),
	}
	educationIdx, _, err := educationPrompt.Run()
	if err != nil {
		return nil, err
	}

	languagePrompt := promptui.Select{
		Label: "What is your English/French language level (CLB)?",
		Items: labels(languageChoices),
		Size:  len(languageChoices),
	}
	languageIdx, _, err := languagePrompt.Run()
	if err != nil {
		return nil, err
	}

	workPrompt := promptui.Select{
		Label: "How many years of canadian work experience do you have?",
		Items: labels(workChoices),
		Size:  len(workChoices),
	}
	workIdx, _, err := workPrompt.Run()
	if err != nil {
		return nil, err
	}

	foreignPrompt := promptui.Prompt{
		Label:    "How many years of foreign work experience do you have",
		Validate: validateYears(0, 10),
	}
	foreignAnswer, err := foreignPrompt.Run()
	if err != nil {
		return nil, err
	}
	foreign, _ := strconv.Atoi(strings.TrimSpace(foreignAnswer))

	return &crs.Profile{
		Age:            age,
		Education:      educationChoices[educationIdx].value,
		Language:       languageChoices[languageIdx].value,
		WorkExperience: workChoices[workIdx].value,
		ForeignYears:   foreign,
	}, nil
}

func validateYears(min, max int) func(string) error {
	return func(input string) error {
		value, err := strconv.Atoi(strings.TrimSpace(input))
		if err != nil {
			return fmt.Errorf("please enter a valid number")
		}
		if value < min || value > max {
			return fmt.Errorf("please enter a number between %d and %d", min, max)
		}
		return nil
	}
}

func printBreakdown(profile crs.Profile, b crs.Breakdown) {
	fmt.Println()
	fmt.Println("YOUR CRS SCORE BREAKDOWN")
	fmt.Printf("Age (%d years old): %d points\n", profile.Age, b.Age)
	fmt.Printf("Education: %d points\n", b.Education)
	fmt.Printf("Language: %d points\n", b.Language)
	fmt.Printf("Work experience: %d points\n", b.WorkExperience)
	fmt.Printf("Skill transferability: %d points\n", b.Transferability)
	fmt.Printf("TOTAL CRS SCORE: %d points\n", b.Total)
	fmt.Println()
}

func printAdvice(ctx context.Context, logger *zap.Logger, config *Config, profile crs.Profile, breakdown crs.Breakdown) {
	advice, err := advisor.NewRuleBased().Advise(ctx, profile, breakdown)
	if err != nil {
		logger.Fatal("building recommendations", zap.Error(err))
	}

	fmt.Println(advice.Summary)
	for _, priority := range advice.Priorities {
		fmt.Printf("  - %s\n", priority)
	}

	aiAdvisor, err := newAIAdvisor(ctx, config, logger)
	if err != nil {
		logger.Warn("skipping AI advice", zap.Error(err))
		return
	}
	if aiAdvisor == nil {
		return
	}

	aiAdvice, err := aiAdvisor.Advise(ctx, profile, breakdown)
	if err != nil {
		logger.Warn("AI advice failed", zap.Error(err))
		return
	}

	fmt.Println()
	fmt.Printf("AI review: %s\n", aiAdvice.Summary)
	for _, priority := range aiAdvice.Priorities {
		fmt.Printf("  - %s\n", priority)
	}
}

// newAIAdvisor returns nil without an error when AI advice is not configured.
func newAIAdvisor(ctx context.Context, config *Config, logger *zap.Logger) (advisor.Advisor, error) {
	if config == nil || config.AI == nil || !config.AI.Enabled {
		return nil, nil
	}

	cfg := config.AI

	provider := strings.TrimSpace(strings.ToLower(cfg.Provider))
	if provider != "" && provider != "gemini" {
		return nil, fmt.Errorf("unsupported ai provider: %s", cfg.Provider)
	}

	if cfg.Gemini == nil {
		return nil, fmt.Errorf("gemini configuration is required when ai advice is enabled")
	}

	apiKey, err := secrets.Load(secrets.Source{
		Name: "gemini api key",
		File: cfg.Gemini.APIKeyFile,
	})
	if err != nil {
		return nil, fmt.Errorf("%w (set ai.gemini.api-key-file or GEMINI_API_KEY_FILE)", err)
	}

	generator, err := gemini.NewGenerator(ctx, apiKey, cfg.Gemini.Model)
	if err != nil {
		return nil, err
	}

	advisorLogger := logger.With(
		zap.String("provider", "gemini"),
		zap.String("model", generator.Model()),
		zap.Int("ai_retry_attempts", cfg.Gemini.MaxRetries),
	)

	return gemini.NewAdvisor(generator, advisorLogger, cfg.Gemini.MaxRetries, cfg.Gemini.MaxLogLength), nil
}

func labels[T any](choices []option[T]) []string {
	items := make([]string, 0, len(choices))
	for _, choice := range choices {
		items = append(items, choice.label)
	}
	return items
}
