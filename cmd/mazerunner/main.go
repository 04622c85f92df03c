package main

import "github.com/katalvlaran/mazerunner/cmd"

func main() {
	cmd.Execute()
}
