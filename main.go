package main

import (
	"os"

	"github.com/abhisek/zerohall/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
