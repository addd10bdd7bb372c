// Package luaplug runs Lua scripts as first-class plugins. A script
// participates in the lifecycle by defining global functions:
//
//	function on_initialize() ... end
//	function on_startup()    ... end
//	function on_shutdown()   ... end
//	function on_reload()     ... end
//
// Every function is optional; a missing hook is a no-op. Scripts read
// merged configuration through the injected get_option(key) function.
// Each plugin owns a private interpreter created at initialize and
// closed at shutdown.
package luaplug
