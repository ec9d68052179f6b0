package main

import (
	"os"

	"github.com/anoideaopen/methodhandles/core/logger"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logger.Logger().WithError(err).Error("methodhandles failed")
		os.Exit(1)
	}
}
