package main

import "github.com/fipl-hse/2024-2-level-ctlr/cmd"

func main() {
	cmd.Execute()
}
