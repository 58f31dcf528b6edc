package main

import "github.com/katalvlaran/lvforest/cmd/lvforest/commands"

func main() {
	commands.Execute()
}
