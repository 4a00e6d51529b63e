package structured

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/bnema/finger-cli/internal/domain"
	"github.com/pelletier/go-toml/v2"
)

type Format string

const (
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
)

type Options struct {
	Format        Format
	PersonalFiles bool
}

func Write(w io.Writer, reports []domain.Report, missing []string, opts Options) error {
	doc := newDocument(reports, missing, opts.PersonalFiles)

	switch opts.Format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encode json output: %w", err)
		}
	case FormatTOML:
		enc := toml.NewEncoder(w)
		enc.SetIndentTables(true)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encode toml output: %w", err)
		}
	default:
		return fmt.Errorf("unsupported structured format %q", opts.Format)
	}

	return nil
}
