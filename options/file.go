package options

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// applyFile overlays config-file values onto flags the command line did
// not set. Unknown keys and CLIOnly keys in the file are errors: a typo in
// a config file should fail loudly, not silently do nothing.
func (s *Set) applyFile(path string) error {
	raw, err := loadTOML(path)
	if err != nil {
		return err
	}

	for key, val := range flattenTables(raw) {
		o, ok := s.declared[key]
		if !ok {
			return fmt.Errorf("%s: %q: %w", path, key, ErrUnknownOption)
		}
		if o.cliOnly {
			return fmt.Errorf("%s: %q: %w", path, key, ErrNotConfigurable)
		}
		if s.fs.Changed(key) {
			continue // command line wins
		}
		if err := s.fs.Set(key, flagValue(val)); err != nil {
			return fmt.Errorf("%s: %q: %w", path, key, err)
		}
	}
	return nil
}

// loadTOML reads and parses a TOML file. A missing file is not an error;
// it simply contributes nothing.
func loadTOML(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return raw, nil
}

// flattenTables turns one level of TOML tables into "section.name" keys.
// Top-level scalars keep their bare name; anything nested deeper produces
// a key no one declared and fails upstream as unknown.
func flattenTables(raw map[string]any) map[string]any {
	flat := make(map[string]any, len(raw))
	for k, v := range raw {
		table, ok := v.(map[string]any)
		if !ok {
			flat[k] = v
			continue
		}
		for name, val := range table {
			if nested, ok := val.(map[string]any); ok {
				for deep, dv := range nested {
					flat[k+"."+name+"."+deep] = dv
				}
				continue
			}
			flat[k+"."+name] = val
		}
	}
	return flat
}

// flagValue renders a decoded TOML value in the form pflag's Set accepts.
func flagValue(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'g', -1, 64)
	case []any:
		parts := make([]string, len(val))
		for i, item := range val {
			parts[i] = flagValue(item)
		}
		return strings.Join(parts, ",")
	default:
		return fmt.Sprintf("%v", val)
	}
}
