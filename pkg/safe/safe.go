package safe

import (
	"log/slog"
	"runtime/debug"
)

// Run executes f, recovering and logging any panic. Meant for goroutines that
// must not take the process down.
func Run(f func()) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("panic recovered", slog.Any("panic", r), slog.String("stack", string(debug.Stack())))
		}
	}()
	f()
}
