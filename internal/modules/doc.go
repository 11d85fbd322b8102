// Package modules contains the self-contained features of the landing site.
//
// Each subdirectory is a module that implements the `module.Module` interface.
// Modules are listed in `internal/app/modules.go`, registered and booted by
// the server at startup and shut down in reverse order.
package modules
