package logging

import (
	"log/slog"
	"os"
)

// Setup installs the process-wide JSON logger. It runs before the database
// is connected; once migrations are done, main replaces the default with a
// MultiHandler that also feeds ERROR+ records into system_logs.
func Setup() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))
}
