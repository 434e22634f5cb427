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
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/valpere/bhasha/internal"
	"github.com/valpere/bhasha/internal/language"
	"github.com/valpere/bhasha/internal/markdown"
	"github.com/valpere/bhasha/internal/translation"
	"github.com/valpere/bhasha/internal/web"
)

var (
	inputFile  string
	inputText  string
	outputFile string
	targetLang string
)

// stderrNotifier prints notices for the terminal.
type stderrNotifier struct {
	w io.Writer
}

func (n stderrNotifier) Notify(notice translation.Notice) {
	fmt.Fprintln(n.w, notice.Text)
}

func (n stderrNotifier) Done() {}

var translateCmd = &cobra.Command{
	Use:   "translate",
	Short: "Translate text once and print the result",
	Long: `Translate a text into one of the supported Indian languages.

Read the text from --text, from --input (a file, or "-" for stdin).
The translation goes to stdout, or to --output.

Examples:
  bhasha translate -t Tamil --text "Good morning"
  bhasha translate -t hi -i letter.txt -o letter.hi.txt`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if inputFile != "" && inputFile == outputFile {
			return fmt.Errorf("input file and output file cannot be the same")
		}

		lang, err := language.Parse(targetLang)
		if err != nil {
			return err
		}

		text, err := readInput(cmd.InOrStdin())
		if err != nil {
			return err
		}

		if !cfg.HasAPIKey() {
			fmt.Fprintln(cmd.ErrOrStderr(), translation.MsgMissingCredential)
			fmt.Fprintln(cmd.ErrOrStderr())
			fmt.Fprintln(cmd.ErrOrStderr(), markdown.ToPlainText(web.SetupGuide()))
			return translation.ErrMissingCredential
		}

		svc, err := buildService(cfg)
		if err != nil {
			return err
		}

		res := svc.Translate(cmd.Context(), internal.TranslationRequest{
			APIKey:         cfg.OpenAI.APIKey,
			SourceText:     text,
			TargetLanguage: lang,
			Model:          cfg.OpenAI.Model,
		}, stderrNotifier{w: cmd.ErrOrStderr()})

		if res.Failed() {
			return fmt.Errorf("translation failed: %w", res.Err)
		}

		if outputFile == "" {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), res.Text)
			return err
		}

		if err := os.MkdirAll(filepath.Dir(outputFile), 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
		if err := os.WriteFile(outputFile, []byte(res.Text), 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Translated to %s: %s\n", lang, outputFile)
		return nil
	},
}

func readInput(stdin io.Reader) (string, error) {
	switch {
	case inputText != "" && inputFile != "":
		return "", fmt.Errorf("use either --text or --input, not both")
	case inputText != "":
		return inputText, nil
	case inputFile == "-":
		b, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(b), nil
	case inputFile != "":
		b, err := os.ReadFile(inputFile)
		if err != nil {
			return "", fmt.Errorf("failed to read input file: %w", err)
		}
		return string(b), nil
	default:
		return "", fmt.Errorf("nothing to translate: pass --text or --input")
	}
}

func init() {
	rootCmd.AddCommand(translateCmd)

	translateCmd.Flags().StringVarP(&inputFile, "input", "i", "", `Input file to translate ("-" for stdin)`)
	translateCmd.Flags().StringVar(&inputText, "text", "", "Text to translate")
	translateCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (default: stdout)")
	translateCmd.Flags().StringVarP(&targetLang, "target", "t", "", "Target language name or code, e.g. Tamil or ta (required)")

	translateCmd.MarkFlagRequired("target")
}
