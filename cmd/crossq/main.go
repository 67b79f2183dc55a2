package main

import (
	"os"
)

func main() {
	if err := buildCrossqCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
