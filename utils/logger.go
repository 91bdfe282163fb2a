package utils

import (
	"log"
	"os"
)

// InitLogger builds the application logger. Services log swallowed remote
// failures through it so divergence stays observable.
func InitLogger() *log.Logger {
	return log.New(os.Stdout, "[academy] ", log.LstdFlags|log.LUTC)
}
