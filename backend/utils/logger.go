package utils

import (
	"log"
	"os"
)

// InitLogger builds the process logger every request log line goes through.
func InitLogger(output ...*os.File) *log.Logger {
	out := os.Stdout
	if len(output) > 0 && output[0] != nil {
		out = output[0]
	}
	return log.New(out, "[coursehub] ", log.LstdFlags|log.LUTC)
}
