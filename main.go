package main

import (
	"os"
	"strings"

	"github.com/tonhe/ifgraph/cmd"
)

func main() {
	args := os.Args[1:]
	if len(args) > 0 && !cmd.IsSubcommand(args[0]) && !strings.HasPrefix(args[0], "-") {
		args = append([]string{"browse"}, args...)
	}
	cmd.Execute(args)
}
