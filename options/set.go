package options

import (
	"fmt"

	"github.com/spf13/pflag"
)

// Mark adjusts where a declared option may appear.
type Mark int

const (
	// CLIOnly - The option is accepted on the command line but never read
	// from the config file and omitted from the generated default config.
	CLIOnly Mark = iota + 1

	// FileOnly - The option is read from the config file only; using it
	// on the command line is an error.
	FileOnly
)

// Set is the option declaration surface. The runtime creates one Set per
// application and passes it to every plugin's DeclareOptions.
type Set struct {
	fs       *pflag.FlagSet
	sections []*Section
	byName   map[string]*Section
	declared map[string]*option
}

// Section groups the options of one plugin under a shared prefix and a
// shared config-file table.
type Section struct {
	set         *Set
	name        string
	description string
	opts        []*option
}

type option struct {
	key      string // full flag name, e.g. "chain.readonly"
	name     string // bare name within the section
	help     string
	def      any
	cliOnly  bool
	fileOnly bool
}

// NewSet creates an empty option set. The name seeds the flag set's usage
// output.
func NewSet(name string) *Set {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SortFlags = false
	return &Set{
		fs:       fs,
		byName:   make(map[string]*Section),
		declared: make(map[string]*option),
	}
}

// Section returns the named section, creating it on first use. The
// description becomes the section's comment in the generated default
// config. The empty name is the top-level section: its options have no
// prefix and live at the root of the config file.
func (s *Set) Section(name, description string) *Section {
	if sec, ok := s.byName[name]; ok {
		if sec.description == "" {
			sec.description = description
		}
		return sec
	}
	sec := &Section{set: s, name: name, description: description}
	s.sections = append(s.sections, sec)
	s.byName[name] = sec
	return sec
}

// FlagSet exposes the underlying flag set, primarily for usage output.
func (s *Set) FlagSet() *pflag.FlagSet {
	return s.fs
}

func (sec *Section) fullKey(name string) string {
	if sec.name == "" {
		return name
	}
	return sec.name + "." + name
}

func (sec *Section) add(name, help string, def any, marks []Mark) *option {
	key := sec.fullKey(name)
	if _, dup := sec.set.declared[key]; dup {
		panic(fmt.Sprintf("options: %q declared twice", key))
	}
	o := &option{key: key, name: name, help: help, def: def}
	for _, m := range marks {
		switch m {
		case CLIOnly:
			o.cliOnly = true
		case FileOnly:
			o.fileOnly = true
		}
	}
	sec.opts = append(sec.opts, o)
	sec.set.declared[key] = o
	return o
}

// String declares a string option.
func (sec *Section) String(name, def, help string, marks ...Mark) {
	sec.add(name, help, def, marks)
	sec.set.fs.String(sec.fullKey(name), def, help)
}

// Int declares an integer option.
func (sec *Section) Int(name string, def int, help string, marks ...Mark) {
	sec.add(name, help, def, marks)
	sec.set.fs.Int(sec.fullKey(name), def, help)
}

// Int64 declares a 64-bit integer option.
func (sec *Section) Int64(name string, def int64, help string, marks ...Mark) {
	sec.add(name, help, def, marks)
	sec.set.fs.Int64(sec.fullKey(name), def, help)
}

// Bool declares a boolean option.
func (sec *Section) Bool(name string, def bool, help string, marks ...Mark) {
	sec.add(name, help, def, marks)
	sec.set.fs.Bool(sec.fullKey(name), def, help)
}

// Float64 declares a floating-point option.
func (sec *Section) Float64(name string, def float64, help string, marks ...Mark) {
	sec.add(name, help, def, marks)
	sec.set.fs.Float64(sec.fullKey(name), def, help)
}

// StringSlice declares a repeatable string option. On the command line it
// may be given multiple times or comma-separated; in the config file it is
// an array.
func (sec *Section) StringSlice(name string, def []string, help string, marks ...Mark) {
	sec.add(name, help, def, marks)
	sec.set.fs.StringSlice(sec.fullKey(name), def, help)
}
