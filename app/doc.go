// Package app provides the chassis application runtime: the plugin
// registry and dependency resolver, the lifecycle driver, the cooperative
// exec loop, and the signal-driven quiescence controller.
//
// An App is an explicit runtime context, created once at process start and
// passed to whatever needs it — there is no process-wide singleton. The
// usual shape of a main program:
//
//	a := app.New("myapp")
//	a.Register(net.Spec())           // pulls in dependencies transitively
//	if err := a.ParseConfig(os.Args[1:]); err != nil { ... }
//	if err := a.Initialize("net"); err != nil { ... }
//	if err := a.Startup(); err != nil { ... }
//	if err := a.Exec(); err != nil { ... }
//
// Exec runs until Quit is called (directly or by a terminate signal) and
// performs shutdown — reverse startup order — before returning.
//
// Threading: everything except Quit and Post must be called from the
// main goroutine. Startup briefly runs a bounded auxiliary goroutine
// whose only job is catching terminate signals while startup hooks hold
// the main thread; steady state is strictly single-threaded.
package app
