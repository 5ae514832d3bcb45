// Package main is the entry point for the pvc CLI.
package main

import "github.com/jeqcho/pvc-playground/cmd"

func main() {
	cmd.Execute()
}
