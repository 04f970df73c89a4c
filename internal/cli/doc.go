// Package cli is the command-line entry point. With no subcommand it runs the
// whole pipeline the way the desktop app always has: fetch every region, merge
// the region files, then open the viewer. Subcommands run one stage each, or
// print the dataset to the terminal.
package cli
