// Package plugin defines the contract a component implements to participate
// in a chassis application: the lifecycle hook set, the Spec that names a
// plugin and declares its static dependencies, and the four-state lifecycle
// state machine the runtime drives plugins through.
//
// Plugins never drive their own lifecycle. The application registry
// constructs them from Specs, resolves dependency order, and invokes hooks
// in dependency-first order for initialize/startup and reverse startup
// order for shutdown.
package plugin
