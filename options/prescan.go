package options

import "strings"

// Prescan extracts the --home and --config values from raw arguments
// before full parsing. The runtime needs the config file location to
// build the file-backed view the real parse depends on, so these two
// options are read with a plain scan first and declared as normal
// (CLIOnly) options afterward for help output.
func Prescan(args []string) (home, config string) {
	return scanArg(args, "--home"), scanArg(args, "--config")
}

func scanArg(args []string, name string) string {
	for i, a := range args {
		if a == name {
			if i+1 < len(args) {
				return args[i+1]
			}
			return ""
		}
		if strings.HasPrefix(a, name+"=") {
			return a[len(name)+1:]
		}
	}
	return ""
}
