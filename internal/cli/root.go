package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/corrobora/corrobora/internal/engine"
	"github.com/corrobora/corrobora/internal/logging"
	"github.com/corrobora/corrobora/internal/model"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "corrobora",
	Short: "Corrobora - evidence verification and claim-strength scoring",
	Long: `Corrobora checks quoted evidence against a corpus of extracted source
documents, scores how strongly each claim is corroborated across
independent sources, and ranks candidate papers by relevance to a
question or draft section.

It verifies that quotes exist where they are said to exist; it does not
judge whether the sources themselves are right.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Display the version number and build information for Corrobora.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("corrobora v0.1.0")
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.corrobora/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	// Bind flags to viper
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
}

// initConfig reads in config file and ENV variables
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
			return
		}

		// Search for config in home directory
		viper.AddConfigPath(home + "/.corrobora")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	// Read in environment variables that match CORROBORA_*
	viper.SetEnvPrefix("CORROBORA")
	viper.AutomaticEnv()

	// If a config file is found, read it in
	if err := viper.ReadInConfig(); err == nil && verbose {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	}
}

// loadConfig builds the effective configuration: defaults, then the
// config file, then environment variables
func loadConfig() (*model.Config, error) {
	cfg := model.DefaultConfig()

	if path := viper.ConfigFileUsed(); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// CORROBORA_EMBEDDING_PROVIDER etc. via viper's automatic env
	if provider := viper.GetString("embedding_provider"); provider != "" {
		cfg.Embedding.Provider = provider
	}
	if embeddingModel := viper.GetString("embedding_model"); embeddingModel != "" {
		cfg.Embedding.Model = embeddingModel
	}
	if baseURL := viper.GetString("embedding_base_url"); baseURL != "" {
		cfg.Embedding.BaseURL = baseURL
	}
	if cfg.Embedding.APIKey == "" {
		cfg.Embedding.APIKey = os.Getenv("OPENAI_API_KEY")
	}

	if verbose {
		cfg.Output.Verbose = true
	}

	return &cfg, nil
}

// newEngine builds the engine and its logger from the effective config
func newEngine() (*engine.Engine, *model.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}

	logger, err := logging.NewLogger(cfg.Output.Verbose)
	if err != nil {
		return nil, nil, fmt.Errorf("create logger: %w", err)
	}

	eng, err := engine.New(cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	return eng, cfg, nil
}
