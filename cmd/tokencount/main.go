package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/temirov/flatten/internal/cli"
	"github.com/temirov/flatten/internal/utils"
)

// main is the entry point for the tokencount command.
func main() {
	loggerInstance, loggerInitializationError := utils.NewApplicationLogger(zap.NewAtomicLevelAt(zap.InfoLevel))
	if loggerInitializationError != nil {
		panic(fmt.Errorf(utils.LoggerInitializationFailedMessageFormat, loggerInitializationError))
	}
	defer loggerInstance.Sync()
	if applicationExecutionError := cli.ExecuteTokenCount(loggerInstance, os.Args[1:]); applicationExecutionError != nil {
		loggerInstance.Fatal(utils.ApplicationExecutionFailedMessage + ": " + applicationExecutionError.Error())
	}
}
