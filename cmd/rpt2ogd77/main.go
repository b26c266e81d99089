package main

import "github.com/rpt2ogd77/rpt2ogd77/cmd/rpt2ogd77/cmd"

var version string // set by the compiler

func main() {
	cmd.Execute(version)
}
