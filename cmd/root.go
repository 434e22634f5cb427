/*
Copyright © 2025 Valentyn Solomko <valentyn.solomko@gmail.com>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/valpere/bhasha/internal/config"
	"github.com/valpere/bhasha/internal/logging"
)

var version = "0.1.0"

var (
	cfgFile string
	envFile string

	v      = viper.New()
	cfg    *config.Config
	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "bhasha",
	Short: "Indian Language Translator",
	Long: `Translate text into major Indian languages with OpenAI.

Supported languages: Hindi, Bengali, Telugu, Marathi, Tamil, Urdu,
Gujarati, Kannada, Odia, Malayalam, Punjabi, Assamese.

The OpenAI key is read once at startup from OPENAI_API_KEY (a .env file
in the working directory is loaded first).

Use "bhasha serve" for the web translator or "bhasha translate --help"
for one-off translations.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.LoadEnvFile(envFile); err != nil {
			return err
		}

		loaded, err := config.Load(v, cfgFile)
		if err != nil {
			return err
		}

		l, err := logging.New(os.Stderr, loaded.Log.Level, loaded.Log.Format)
		if err != nil {
			return err
		}

		cfg = loaded
		logger = l
		slog.SetDefault(logger)
		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default: ./bhasha.yaml if present)")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Dotenv file loaded before reading the environment")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().String("log-format", "text", "Log format: text or json")
	rootCmd.PersistentFlags().String("model", "", "OpenAI model (default gpt-4o)")
	rootCmd.PersistentFlags().String("client", "", "OpenAI client: http or sdk (default http)")

	v.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
	v.BindPFlag("log.format", rootCmd.PersistentFlags().Lookup("log-format"))
	v.BindPFlag("openai.model", rootCmd.PersistentFlags().Lookup("model"))
	v.BindPFlag("openai.client", rootCmd.PersistentFlags().Lookup("client"))
}
