// Package internal holds shared helpers for the scenario generator.
package internal

import (
	"log"
	"os"
)

// InitLogging routes the generator logs to stdout with timestamps.
func InitLogging() {
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
}
