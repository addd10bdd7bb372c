package app

import "github.com/dshills/chassis/plugin"

// host pairs a registered plugin with its runtime bookkeeping. State
// transitions happen only in the lifecycle driver; the host itself is
// passive.
type host struct {
	name     string
	plugin   plugin.Plugin
	state    plugin.State
	requires []string
}
