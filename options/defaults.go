package options

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// WriteDefault renders the declared options as a commented TOML config
// file: every section in declaration order, every option preceded by its
// help text and set to its declared default. CLIOnly options are omitted.
func (s *Set) WriteDefault(w io.Writer) error {
	wroteAny := false
	for _, sec := range s.sections {
		var visible []*option
		for _, o := range sec.opts {
			if !o.cliOnly {
				visible = append(visible, o)
			}
		}
		if len(visible) == 0 {
			continue
		}

		if wroteAny {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		wroteAny = true

		if sec.description != "" {
			if _, err := fmt.Fprintf(w, "# %s\n", sec.description); err != nil {
				return err
			}
		}
		if sec.name != "" {
			if _, err := fmt.Fprintf(w, "[%s]\n", sec.name); err != nil {
				return err
			}
		}

		for _, o := range visible {
			if o.help != "" {
				if _, err := fmt.Fprintf(w, "# %s\n", o.help); err != nil {
					return err
				}
			}
			line, err := tomlLine(o.name, o.def)
			if err != nil {
				return fmt.Errorf("rendering default for %q: %w", o.key, err)
			}
			if _, err := io.WriteString(w, line); err != nil {
				return err
			}
		}
	}
	return nil
}

// WriteDefaultFile writes the default config to path, creating parent
// directories as needed. An existing file is overwritten; callers that
// want write-if-missing check first.
func (s *Set) WriteDefaultFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	if err := s.WriteDefault(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// tomlLine renders one "name = value" line by marshaling a single-entry
// table, so value syntax always matches what the loader will parse back.
func tomlLine(name string, def any) (string, error) {
	out, err := toml.Marshal(map[string]any{name: def})
	if err != nil {
		return "", err
	}
	line := string(out)
	if !strings.HasSuffix(line, "\n") {
		line += "\n"
	}
	return line, nil
}
