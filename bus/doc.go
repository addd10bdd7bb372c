// Package bus provides the typed method/channel registry that lets plugins
// interact without compile-time coupling.
//
// Endpoints are keyed by declaration keys — typed strings that carry the
// payload type in their type parameter — and are lazily constructed on
// first lookup, memoized for the process lifetime, and shared by every
// plugin that looks them up. Two plugins that agree on a key can exchange
// data knowing nothing about each other's concrete types.
//
// A Channel is broadcast pub/sub: publication is always deferred through
// the scheduler, so a publish never re-enters the caller's stack and
// delivery always happens on the single cooperative thread. A Method is a
// synchronous request/response endpoint bound to at most one handler.
package bus
