package logger

import (
	"go.uber.org/zap"
)

// Init builds the process logger and installs it as the zap global so
// packages without an injected logger can use zap.L().
func Init(production bool) *zap.Logger {
	var (
		log *zap.Logger
		err error
	)
	if production {
		log, err = zap.NewProduction()
	} else {
		log, err = zap.NewDevelopment()
	}
	if err != nil {
		panic(err)
	}
	zap.ReplaceGlobals(log)
	return log
}
