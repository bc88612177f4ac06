package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/codemarcinu/pantry-tracker/constants"
	"github.com/codemarcinu/pantry-tracker/internal/common"
	"github.com/codemarcinu/pantry-tracker/internal/correction"
	"github.com/codemarcinu/pantry-tracker/internal/export"
	"github.com/codemarcinu/pantry-tracker/internal/extract/tesseract"
	"github.com/codemarcinu/pantry-tracker/internal/extract/vision"
	"github.com/codemarcinu/pantry-tracker/internal/inventory"
	"github.com/codemarcinu/pantry-tracker/internal/learning"
	"github.com/codemarcinu/pantry-tracker/internal/matching"
	"github.com/codemarcinu/pantry-tracker/internal/parsing"
	"github.com/codemarcinu/pantry-tracker/internal/pipeline"
	"github.com/codemarcinu/pantry-tracker/internal/quality"
	repo "github.com/codemarcinu/pantry-tracker/internal/repository"

	"github.com/shopspring/decimal"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		inmem = flag.Bool("inmem", false, "use an in-memory SQLite database")
		dir   = flag.String("dir", "", "directory to process receipts from (required)")
		out   = flag.String("out", "", "output XLSX file path (optional, defaults to parent directory)")
	)
	flag.Parse()

	if *dir == "" {
		printError("Error: --dir is required\n")
		os.Exit(1)
	}
	if *out == "" {
		*out = filepath.Join(filepath.Dir(*dir), "inventory.xlsx")
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()
	cfg := common.LoadConfig()

	db, err := common.InitDatabase(ctx, cfg, *inmem, logger)
	if err != nil {
		logger.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer db.Cleanup()

	receiptsRepo := repo.NewReceiptRepository(db.Client, logger)
	productsRepo := repo.NewProductRepository(db.Client, logger)
	categoriesRepo := repo.NewCategoryRepository(db.Client, logger)
	inventoryRepo := repo.NewInventoryRepository(db.Client, logger)
	patternsRepo := repo.NewPatternRepository(db.Client, logger)
	samplesRepo := repo.NewSampleRepository(db.Client, logger)

	localEngine := tesseract.NewEngine(tesseract.Config{
		Tesseract:     cfg.OCR.Tesseract,
		Pdftotext:     cfg.OCR.Pdftotext,
		Pdftoppm:      cfg.OCR.Pdftoppm,
		Pdfinfo:       cfg.OCR.Pdfinfo,
		Identify:      cfg.OCR.Identify,
		TesseractLang: cfg.OCR.TesseractLang,
		TessdataDir:   cfg.OCR.TessdataDir,
		DPI:           cfg.OCR.DPI,
	}, logger)
	visionClient := vision.NewClient(vision.Config{
		APIKey:  cfg.Vision.APIKey,
		BaseURL: cfg.Vision.BaseURL,
		Model:   cfg.Vision.Model,
		Timeout: cfg.Vision.Timeout,
	}, logger)
	if cfg.Vision.APIKey == "" {
		logger.Warn("VISION_API_KEY not configured, low-quality receipts cannot escalate")
	}

	totalTol, err := decimal.NewFromString(cfg.Pipeline.TotalTolerance)
	if err != nil {
		totalTol = decimal.RequireFromString("0.05")
	}
	lineTol, err := decimal.NewFromString(cfg.Pipeline.LineTolerance)
	if err != nil {
		lineTol = decimal.RequireFromString("0.05")
	}

	corrector := correction.NewCorrector(logger)
	parser := parsing.NewParser(parsing.Config{TotalTolerance: totalTol, LineTolerance: lineTol}, logger)
	matcher := matching.NewMatcher(productsRepo, matching.NewNormalizer(nil), matching.Config{
		Threshold: cfg.Pipeline.FuzzyThreshold,
	}, logger)
	finalizer := inventory.NewFinalizer(inventoryRepo, categoriesRepo, logger)
	learner := learning.NewService(&repo.LearningStore{
		PatternRepository: patternsRepo,
		SampleRepository:  samplesRepo,
	}, cfg.Pipeline.MinSamples, logger)

	orch := pipeline.NewOrchestrator(
		pipeline.Config{
			Thresholds: quality.Thresholds{
				MinConfidence: cfg.Pipeline.MinConfidence,
				AcceptDPI:     cfg.Pipeline.AcceptDPI,
			},
			OCRSlots:     cfg.Pipeline.OCRSlots,
			MatchSlots:   cfg.Pipeline.MatchSlots,
			StageTimeout: cfg.Pipeline.StageTimeout,
		},
		receiptsRepo, patternsRepo, localEngine, visionClient,
		corrector, parser, matcher, productsRepo, finalizer, learner, nil, logger,
	)

	entries, err := os.ReadDir(*dir)
	if err != nil {
		logger.Error("failed to read directory", "dir", *dir, "error", err)
		os.Exit(1)
	}

	var processed, failed, skipped int
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(*dir, entry.Name())
		if constants.MapExtToFormat(filepath.Ext(path)) == "" {
			logger.Info("skipping unsupported file", "path", path)
			skipped++
			continue
		}

		rec, err := receiptsRepo.Create(ctx, &repo.CreateReceiptRequest{SourcePath: path})
		if err != nil {
			logger.Error("failed to register receipt", "path", path, "error", err)
			failed++
			continue
		}
		if err := orch.Process(ctx, rec.ID); err != nil {
			logger.Error("processing failed", "path", path, "receipt_id", rec.ID, "error", err)
			failed++
			continue
		}
		processed++
	}

	exporter := export.NewService(inventoryRepo, productsRepo, logger)
	data, err := exporter.ExportInventoryXLSX(ctx, nil, nil)
	if err != nil {
		logger.Error("inventory export failed", "error", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, data, 0o644); err != nil {
		logger.Error("failed to write export", "path", *out, "error", err)
		os.Exit(1)
	}

	logger.Info("batch complete",
		"processed", processed,
		"failed", failed,
		"skipped", skipped,
		"export", *out,
	)
	if failed > 0 {
		os.Exit(1)
	}
}
