package main

import (
	"martianoff/matchcheck/cmd/matchcheck/commands"
)

func main() {
	commands.Execute()
}
