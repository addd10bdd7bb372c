package options

import "errors"

// Option errors.
var (
	// ErrUnknownOption - The config file names an option nobody declared.
	ErrUnknownOption = errors.New("unknown option")

	// ErrNotConfigurable - The config file sets a CLIOnly option.
	ErrNotConfigurable = errors.New("option is not configurable from a file")

	// ErrNotCommandLine - A FileOnly option appeared on the command line.
	ErrNotCommandLine = errors.New("option is not a command-line option")
)
