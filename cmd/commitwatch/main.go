package main

import (
	"github.com/adrianpk/commitwatch/internal/cli"
	"github.com/adrianpk/commitwatch/internal/exitcode"
)

func main() {
	exitcode.Exit(cli.Execute())
}
