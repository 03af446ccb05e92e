// Command extract runs acquisition and field extraction on one document
// and prints the result as JSON. Useful for tuning patterns against real
// bills without a database or server.
package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"

	"github.com/lucasveras/faturahub/internal/common"
	"github.com/lucasveras/faturahub/internal/extract"
	"github.com/lucasveras/faturahub/internal/textacq"
)

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))
	slog.SetDefault(logger)

	if len(os.Args) != 2 {
		logger.Error("usage", "cmd", "extract <document.pdf>")
		os.Exit(2)
	}
	path := os.Args[1]

	cfg := common.LoadConfig()
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Acquisition.Timeout)
	defer cancel()

	acquirer := textacq.NewAcquirer(textacq.Config{
		Language:    cfg.Acquisition.Language,
		DPI:         cfg.Acquisition.DPI,
		MaxPages:    cfg.Acquisition.MaxPages,
		TessdataDir: cfg.Acquisition.TessdataDir,
	}, logger)
	engine := extract.NewEngine(acquirer, logger)

	start := time.Now()
	res := engine.ExtractFile(ctx, path, filepath.Base(path))

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(res); err != nil {
		logger.Error("encode result", "error", err)
		os.Exit(1)
	}
	logger.Warn("extraction finished",
		"source", res.SourceName, "status", res.Status,
		"duration_ms", time.Since(start).Milliseconds())
}
