// Package main is the entry point for the cargo-clean-recursive command-line tool.
package main

import "cleanrec.dev/pkg/cleanrec/cmd"

func main() {
	cmd.Execute()
}
