package log

import (
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync"
	"sync/atomic"

	charmlog "github.com/charmbracelet/log"

	"v8bitfield/internal/logging"
)

var (
	initOnce    sync.Once
	initialized atomic.Bool
	closeLogger func() error
)

// Setup routes log/slog through the charm logger. Only the first call has
// any effect.
func Setup(debug bool) {
	initOnce.Do(func() {
		lg := logging.NewLogger()
		if debug {
			lg.SetLevel(charmlog.DebugLevel)
			lg.SetReportCaller(true)
		}
		closeLogger = lg.Close

		slog.SetDefault(slog.New(lg.Logger))
		initialized.Store(true)
	})
}

func Initialized() bool {
	return initialized.Load()
}

// Close releases the log file, if logging to one.
func Close() error {
	if closeLogger == nil {
		return nil
	}
	return closeLogger()
}

func RecoverPanic(name string, cleanup func()) {
	if r := recover(); r != nil {
		if Initialized() {
			slog.Error(fmt.Sprintf("Panic in %s", name),
				"panic", r,
				"stack", string(debug.Stack()))
		}
		if cleanup != nil {
			cleanup()
		}
	}
}
