package main

import "github.com/fretemap/fretemap-cli/cmd"

func main() {
	cmd.Execute()
}
