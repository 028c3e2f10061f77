// Package main provides the entry point for azmodal.
//
// azmodal is a terminal demo of a single dismissible modal dialog: a trigger
// button that opens an overlay which closes on an outside click, Esc, its
// close button, or a click on its content, fading out before it unmounts.
//
// Usage:
//
//	azmodal [--label text] [--content text] [--config-dir dir] [--no-mouse]
//	azmodal config init [path]
package main

import "github.com/riordanpawley/azmodal/internal/cli"

func main() {
	cli.Execute()
}
