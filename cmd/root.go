package cmd

import (
	"errors"
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/spigell/crs-analyzer/internal/crs"
)

const (
	app = "crs-analyzer"
)

type Config struct {
	Exploration *ExplorationConfig `mapstructure:"exploration"`
	AI          *AIConfig          `mapstructure:"ai"`
}

// ExplorationConfig bounds the combination search. Zero values fall back to
// the built-in defaults.
type ExplorationConfig struct {
	AgeMin            int      `mapstructure:"age-min"`
	AgeMax            int      `mapstructure:"age-max"`
	Educations        []string `mapstructure:"educations"`
	Languages         []string `mapstructure:"languages"`
	WorkExperiences   []string `mapstructure:"work-experiences"`
	ForeignYears      int      `mapstructure:"foreign-years"`
	Top               int      `mapstructure:"top"`
	Cutoff            int      `mapstructure:"cutoff"`
	ExcludeEducations []string `mapstructure:"exclude-educations"`
}

// ProfileConfig is a named reference profile used by the age sweep.
type ProfileConfig struct {
	Name           string `mapstructure:"name"`
	Education      string `mapstructure:"education"`
	Language       string `mapstructure:"language"`
	WorkExperience string `mapstructure:"work-experience"`
	ForeignYears   int    `mapstructure:"foreign-years"`
}

type AIConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Provider string        `mapstructure:"provider"`
	Gemini   *GeminiConfig `mapstructure:"gemini"`
}

type GeminiConfig struct {
	APIKeyFile   string `mapstructure:"api-key-file"`
	Model        string `mapstructure:"model"`
	MaxRetries   int    `mapstructure:"max-retries"`
	MaxLogLength int    `mapstructure:"max-log-length"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "crs-analyzer estimates an Express Entry CRS score and explores score-maximizing profiles",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	if err := viper.BindEnv("ai.gemini.api-key-file", "GEMINI_API_KEY_FILE"); err != nil {
		log.Fatalf("binding GEMINI_API_KEY_FILE environment variable: %v", err)
	}

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is crs-analyzer.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

func initConfig() {
	// The config is optional for every command: the built-in defaults make a
	// usable exploration and the calculator needs no config at all.
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app + ".yaml")
		viper.SetConfigType("yaml")
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return
		}
		log.Fatal(err)
	}
}

func getConfig() (*Config, error) {
	var config *Config
	err := viper.Unmarshal(&config)
	if err != nil {
		return config, err
	}

	return config, nil
}

// parsedEducations converts configured names into typed values, falling back
// to the provided defaults when nothing is configured.
func parsedEducations(names []string, fallback []crs.Education) []crs.Education {
	if len(names) == 0 {
		return fallback
	}
	out := make([]crs.Education, 0, len(names))
	for _, name := range names {
		out = append(out, crs.Education(name))
	}
	return out
}

func parsedLanguages(names []string, fallback []crs.Language) []crs.Language {
	if len(names) == 0 {
		return fallback
	}
	out := make([]crs.Language, 0, len(names))
	for _, name := range names {
		out = append(out, crs.Language(name))
	}
	return out
}

func parsedWorkExperiences(names []string, fallback []crs.WorkExperience) []crs.WorkExperience {
	if len(names) == 0 {
		return fallback
	}
	out := make([]crs.WorkExperience, 0, len(names))
	for _, name := range names {
		out = append(out, crs.WorkExperience(name))
	}
	return out
}
