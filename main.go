package main

import (
	"os"

	"github.com/datejp/dateinfo/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
