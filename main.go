package main

import (
	"os"

	"github.com/abhisek/moneypath/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
