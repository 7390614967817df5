package main

import (
	"os"

	"rpa-roi/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
