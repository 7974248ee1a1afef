package zlogger

import (
	"os"

	"github.com/0chain/gosdk/core/logger"
)

var defaultLogLevel = logger.DEBUG
var Logger logger.Logger

func init() {
	Logger.Init(defaultLogLevel, "gjutil")
}

// SetLogFile sends log output to logFile. With verbose set the output is
// also echoed to the console.
func SetLogFile(logFile string, verbose bool) error {
	f, err := os.OpenFile(logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	Logger.SetLogFile(f, verbose)
	return nil
}
