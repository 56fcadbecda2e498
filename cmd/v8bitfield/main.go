package main

import (
	"log/slog"

	"v8bitfield/internal/v8bitfield/cmd"
	"v8bitfield/internal/v8bitfield/log"
)

func main() {
	defer log.RecoverPanic("main", func() {
		slog.Error("Application terminated due to unhandled panic")
	})

	cmd.Execute()
}
