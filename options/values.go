package options

import "fmt"

// Parse builds the merged option view: it parses the command-line args,
// rejects FileOnly options that appeared there, then overlays the config
// file at configPath (empty path skips the file). Command-line values win
// over file values; file values win over declared defaults.
func (s *Set) Parse(args []string, configPath string) (*Values, error) {
	if err := s.fs.Parse(args); err != nil {
		return nil, err
	}

	for key, o := range s.declared {
		if o.fileOnly && s.fs.Changed(key) {
			return nil, fmt.Errorf("--%s: %w", key, ErrNotCommandLine)
		}
	}

	if configPath != "" {
		if err := s.applyFile(configPath); err != nil {
			return nil, err
		}
	}

	return &Values{set: s}, nil
}

// Values is the read view handed to OnInitialize. Lookups use the full
// key ("section.name"); an undeclared key yields the type's zero value.
type Values struct {
	set *Set
}

// String returns the merged value of a string option.
func (v *Values) String(key string) string {
	val, _ := v.set.fs.GetString(key)
	return val
}

// Int returns the merged value of an integer option.
func (v *Values) Int(key string) int {
	val, _ := v.set.fs.GetInt(key)
	return val
}

// Int64 returns the merged value of a 64-bit integer option.
func (v *Values) Int64(key string) int64 {
	val, _ := v.set.fs.GetInt64(key)
	return val
}

// Bool returns the merged value of a boolean option.
func (v *Values) Bool(key string) bool {
	val, _ := v.set.fs.GetBool(key)
	return val
}

// Float64 returns the merged value of a floating-point option.
func (v *Values) Float64(key string) float64 {
	val, _ := v.set.fs.GetFloat64(key)
	return val
}

// StringSlice returns the merged value of a repeatable string option.
func (v *Values) StringSlice(key string) []string {
	val, _ := v.set.fs.GetStringSlice(key)
	return val
}

// Raw returns the merged value rendered as its flag text, regardless of
// the declared type. The second result is false for undeclared keys.
// Intended for generic consumers like script bindings.
func (v *Values) Raw(key string) (string, bool) {
	if _, ok := v.set.declared[key]; !ok {
		return "", false
	}
	f := v.set.fs.Lookup(key)
	if f == nil {
		return "", false
	}
	return f.Value.String(), true
}

// IsSet reports whether the option was set explicitly, on the command
// line or in the config file, as opposed to resting at its default.
func (v *Values) IsSet(key string) bool {
	return v.set.fs.Changed(key)
}

// Declared reports whether any plugin declared the option.
func (v *Values) Declared(key string) bool {
	_, ok := v.set.declared[key]
	return ok
}
