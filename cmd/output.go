package cmd

import (
	"fmt"
	"io"
	"os"

	fingerrender "github.com/bnema/finger-cli/internal/adapters/render/finger"
	"github.com/bnema/finger-cli/internal/adapters/render/structured"
	"github.com/bnema/finger-cli/internal/application"
	"github.com/bnema/finger-cli/internal/domain"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

type outputFormat string

const (
	outputText outputFormat = "text"
	outputJSON outputFormat = "json"
	outputTOML outputFormat = "toml"
)

func parseOutputFormat(value string) (outputFormat, error) {
	switch outputFormat(value) {
	case outputText, outputJSON, outputTOML:
		return outputFormat(value), nil
	default:
		return "", fmt.Errorf("invalid --output %q (want text, json or toml)", value)
	}
}

type fingerResults struct {
	reports []domain.Report
	missing []string
}

func (r *fingerResults) add(entry application.Entry) error {
	if entry.Report != nil {
		r.reports = append(r.reports, *entry.Report)
		return nil
	}

	r.missing = append(r.missing, entry.Missing)
	return nil
}

func writeFingerOutput(cmd *cobra.Command, app *app, results fingerResults, output outputFormat, opts application.Options, allowColor bool) error {
	if output != outputText {
		err := app.structuredWriter(cmd.OutOrStdout(), results.reports, results.missing, structured.Options{
			Format:        structured.Format(output),
			PersonalFiles: opts.PersonalFiles,
		})
		if err != nil {
			return fmt.Errorf("write %s output: %w", output, err)
		}
		return nil
	}

	for _, query := range results.missing {
		if _, err := fmt.Fprintf(cmd.ErrOrStderr(), "User not found: %s\n", query); err != nil {
			return err
		}
	}

	if len(results.reports) == 0 {
		return nil
	}

	rendered := app.textRenderer(results.reports, fingerrender.RenderOptions{
		Format:        opts.Format,
		PersonalFiles: opts.PersonalFiles,
		Color:         allowColor && !termenv.EnvNoColor() && app.isTerminal(cmd.OutOrStdout()),
	})

	_, err := fmt.Fprint(cmd.OutOrStdout(), rendered)
	return err
}

func writerIsTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	return ok && term.IsTerminal(int(file.Fd()))
}
