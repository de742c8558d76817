package main

import (
	"os"

	"github.com/kraev/ai-review/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
