package main

import (
	"os"

	"github.com/hospitech/fcproc/internal/exitcode"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(exitcode.UsageError)
	}
	os.Exit(exitcode.Success)
}
