package main

import (
	"log/slog"
	"os"

	"casino_web/internal/app"
)

func main() {
	if err := app.NewApp().Run(); err != nil {
		slog.Error("server exited", "error", err)
		os.Exit(1)
	}
}
