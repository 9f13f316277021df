package main

import (
	"os"

	"github.com/alantheprice/projgen/cmd"
	"github.com/alantheprice/projgen/pkg/utils"
)

func main() {
	logger := utils.GetLogger()
	// Defer closing the logger to ensure all buffered logs are written
	defer func() {
		if err := logger.Close(); err != nil {
			// Since the logger itself might be the issue, print to stderr
			os.Stderr.WriteString("Error closing logger: " + err.Error() + "\n")
		}
	}()

	if err := cmd.Execute(); err != nil {
		logger.Logf("Application error: %v", err)
		logger.Close()
		os.Exit(1)
	}
}
