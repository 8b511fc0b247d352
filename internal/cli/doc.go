// Package cli implements the sidebar command line.
//
//	sidebar run              full-screen dashboard (needs a terminal)
//	sidebar replay <file>    headless playback, one block per redraw
//	sidebar ping             record a server ping in the params store
//	sidebar init             write a .sidebar.yaml
//	sidebar version          build information
//
// Every command honours the global --config flag; otherwise config is
// discovered as described in the config package.
package cli
