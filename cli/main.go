package main

import (
	"github.com/apex/log"

	"github.com/node-headers/node-headers-cli/cli/commands"
	"github.com/node-headers/node-headers-cli/cli/project"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			log.Fatalf("%s", project.InternalError("Unhandled internal error: %s", r))
		}
	}()

	commands.Execute()
}
