package main

import "github.com/katalvlaran/frontline/cmd/frontline/cmd"

func main() {
	cmd.Execute()
}
