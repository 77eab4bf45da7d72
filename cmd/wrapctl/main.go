package main

import (
	"os"

	"github.com/ib-77/wrap3/internal/cli"
)

func main() {
	err := cli.New(cli.Name("wrapctl")).Run(os.Args[1:]...)
	if err != nil {
		os.Exit(1)
	}
}
