package main

import (
	"os"

	"github.com/agubarev/easypass/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
