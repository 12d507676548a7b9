package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"codeberg.org/snonux/schooltrans/internal/cli"
	"codeberg.org/snonux/schooltrans/internal/credentials"
	"codeberg.org/snonux/schooltrans/internal/gui"
	"codeberg.org/snonux/schooltrans/internal/translation"
)

func main() {
	// Create flags instance
	flags := cli.NewFlags()

	// Create root command
	rootCmd := cli.CreateRootCommand(flags)

	// Set up command initialization
	cobra.OnInitialize(func() {
		cli.InitConfig(flags.CfgFile)
	})

	// Set the run function
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd, args, flags)
	}

	// Execute command
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCommand(cmd *cobra.Command, args []string, flags *cli.Flags) error {
	// Handle --list-languages flag
	if flags.ListLanguages {
		for _, lang := range translation.Languages {
			fmt.Printf("%-22s %s\n", lang.Name, lang.Code)
		}
		return nil
	}

	config := translation.DefaultProviderConfig()
	config.Provider = flags.Provider
	config.OpenAIModel = flags.OpenAIModel
	config.GeminiModel = flags.GeminiModel
	config.OpenAIKey = cli.GetOpenAIKey()
	config.GeminiKey = cli.GetGeminiKey()

	// The Google provider authenticates with a service account key.
	// A missing or unparseable key is fatal before any UI comes up.
	if config.Provider == "google" {
		resolver := credentials.NewResolver(credentials.NewViperStore())
		key, err := resolver.Key()
		if err != nil {
			return err
		}
		config.CredentialsJSON = key.Raw
	}

	service := translation.NewService(config)

	// With a text argument, translate once and print the result
	if len(args) > 0 {
		if _, ok := translation.NameForCode(flags.Target); !ok {
			return fmt.Errorf("unknown target language code %q (see --list-languages)", flags.Target)
		}

		translated, err := service.Translate(cmd.Context(), args[0], flags.Target)
		if err != nil {
			return err
		}
		fmt.Println(translated)
		return nil
	}

	// No input provided - launch GUI mode by default
	app := gui.New(&gui.Config{
		Service:       service,
		DefaultTarget: flags.Target,
	})
	app.Run()
	return nil
}
