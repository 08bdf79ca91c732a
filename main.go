// Package main is the entry point for the codeclimate-clippy engine.
package main

import "github.com/codeclimate-community/codeclimate-clippy/cmd"

func main() {
	cmd.Execute()
}
