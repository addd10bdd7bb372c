// Package options implements the two option views the runtime hands to
// plugins: the declaration surface (Set) a plugin fills in from
// DeclareOptions, and the merged read view (Values) it receives in
// OnInitialize.
//
// Options are declared into named sections — one per plugin by
// convention — and surface in two places: as --section.name command-line
// flags and as "name" keys under a [section] table in the TOML config
// file. Precedence is command line over config file over declared
// default. An option can be marked CLIOnly (never read from or written to
// the config file) or FileOnly (rejected on the command line), mirroring
// flags like --replay that make no sense persisted and tuning knobs that
// make no sense as flags.
//
// The package can also render the declared set into a commented default
// config file, which the runtime writes on first run.
package options
