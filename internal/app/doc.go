// Package app contains the core application logic. It defines the App
// struct, its configuration, and the interactive menu shell that owns the
// current adventure graph, decoupled from any specific entrypoint like a CLI.
package app
