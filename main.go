package main

import (
	"os"

	"github.com/tonhe/bwbar/cmd"
)

func main() {
	if len(os.Args) > 1 && cmd.IsSubcommand(os.Args[1]) {
		cmd.Execute(os.Args[1:])
		return
	}
	os.Exit(cmd.Monitor(os.Args[1:]))
}
