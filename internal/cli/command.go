package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/schooltrans/internal"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "schooltrans [text]",
		Short: "School Communications Translator",
		Long: `schooltrans translates school flyers and communications into the
languages spoken by the school community, using the Google Cloud
Translation API.

Examples:
  schooltrans                                   # Launch interactive GUI (default)
  schooltrans "Tomorrow is a half-day"          # Translate to Spanish via CLI
  schooltrans --target vi "School is closed"    # Translate to Vietnamese
  schooltrans --list-languages                  # Show selectable languages`,
		Args:    cobra.MaximumNArgs(1),
		Version: internal.Version,
	}

	// Set up flags
	setupFlags(rootCmd, flags)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.schooltrans.yaml)")

	// Local flags
	cmd.Flags().StringVarP(&flags.Target, "target", "t", flags.Target, "Target language code (es, fr, de, ...)")
	cmd.Flags().StringVar(&flags.Provider, "provider", flags.Provider, "Translation provider: google, openai or gemini")
	cmd.Flags().BoolVar(&flags.ListLanguages, "list-languages", false, "List selectable target languages and exit")

	// Chat-model provider flags
	cmd.Flags().StringVar(&flags.OpenAIModel, "openai-model", flags.OpenAIModel, "OpenAI chat model used by the openai provider")
	cmd.Flags().StringVar(&flags.GeminiModel, "gemini-model", flags.GeminiModel, "Gemini model used by the gemini provider")

	// Bind flags to viper
	bindFlagsToViper(cmd)
}

func bindFlagsToViper(cmd *cobra.Command) {
	viper.BindPFlag("translator.target", cmd.Flags().Lookup("target"))
	viper.BindPFlag("translator.provider", cmd.Flags().Lookup("provider"))
	viper.BindPFlag("translator.openai_model", cmd.Flags().Lookup("openai-model"))
	viper.BindPFlag("translator.gemini_model", cmd.Flags().Lookup("gemini-model"))
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".schooltrans" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".schooltrans")
	}

	// Environment variables
	viper.SetEnvPrefix("SCHOOLTRANS")
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// GetOpenAIKey retrieves the OpenAI API key from environment or config
func GetOpenAIKey() string {
	// First check environment variable
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return key
	}

	// Then check config file
	return viper.GetString("translator.openai_key")
}

// GetGeminiKey retrieves the Gemini API key from environment or config
func GetGeminiKey() string {
	// First check environment variable
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		return key
	}

	// Then check config file
	return viper.GetString("translator.gemini_key")
}
