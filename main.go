package main

import (
	"errors"
	"os"

	"revenue-check/config"
	"revenue-check/models"
	"revenue-check/services"
	"revenue-check/storage"
	"revenue-check/utils"
)

// Exit codes used when STRICT_EXIT is set.
const (
	exitOK             = 0
	exitFatal          = 1
	exitMissingOrder   = 2
	exitReviewRequired = 3
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg := config.Load()
	logger := utils.NewLogger(cfg.LogLevel)
	defer logger.Sync()

	if !cfg.DotEnvLoaded {
		logger.Info("[config] No .env file found, falling back to system env vars")
	}

	if err := cfg.Validate(); err != nil {
		logger.Error("%v", err)
		return exitFatal
	}

	ref, err := config.LoadReference(cfg.ReferenceFile)
	if err != nil {
		logger.Error("Failed to load reference totals: %v", err)
		return exitFatal
	}
	ref = cfg.Apply(ref)

	logger.Info("=== Sales export revenue check starting ===")
	logger.Info("Config: source: %s | period: %s | order: %d | strict exit: %t",
		sourceName(cfg), ref.Period, ref.MissingOrder, cfg.StrictExit)

	src, err := storage.NewSource(cfg)
	if err != nil {
		logFatal(logger, err)
		return exitFatal
	}
	defer src.Close()

	raw, err := src.Load()
	if err != nil {
		logFatal(logger, err)
		return exitFatal
	}
	logger.Info("Loaded %d rows from %s", len(raw.Rows), raw.Source)

	table, err := services.NewNormalizer(logger).Normalize(raw)
	if err != nil {
		logFatal(logger, err)
		return exitFatal
	}

	report := services.NewAuditor(logger).Audit(table, ref)
	services.NewReporter(os.Stdout, cfg.NoColor).Print(report)

	return exitCode(report.Verification.Verdict, cfg.StrictExit)
}

// exitCode maps a verdict to the process status. Without strict mode every verdict exits 0.
func exitCode(v models.Verdict, strict bool) int {
	if !strict {
		return exitOK
	}
	switch v {
	case models.VerdictComplete:
		return exitOK
	case models.VerdictMissingOrder:
		return exitMissingOrder
	default:
		return exitReviewRequired
	}
}

func logFatal(logger *utils.Logger, err error) {
	var inErr *models.InputError
	var fmtErr *models.FormatError
	switch {
	case errors.As(err, &fmtErr):
		logger.Error("Malformed export, aborting before analysis: %v", fmtErr)
	case errors.As(err, &inErr):
		logger.Error("Cannot read export, aborting: %v", inErr)
	default:
		logger.Error("Unexpected failure: %v", err)
	}
}

func sourceName(cfg *config.Config) string {
	if cfg.SalesSource == config.SourcePostgres {
		return "postgres table " + cfg.SalesTable
	}
	return cfg.SalesFile
}
