// Command convert turns a traffic sources CSV report into a JavaScript data
// module and can optionally import the records into PostgreSQL.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/JonMunkholm/trafficsrc/internal/config"
	"github.com/JonMunkholm/trafficsrc/internal/core"
	"github.com/JonMunkholm/trafficsrc/internal/logging"
	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; Overload lets it win over the shell environment.
	_ = godotenv.Overload()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)

	if err := newRootCmd(cfg).Execute(); err != nil {
		slog.Error("conversion failed", "error", err)
		fmt.Fprintln(os.Stderr, core.FormatUserError(err))
		os.Exit(1)
	}
}
