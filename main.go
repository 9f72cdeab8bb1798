package main

import (
	"os"

	"github.com/interviewqs/qbank/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
