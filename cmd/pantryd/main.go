package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"

	"github.com/google/uuid"

	pantrypb "github.com/codemarcinu/pantry-tracker/gen/proto/pantry/v1"
	"github.com/codemarcinu/pantry-tracker/constants"
	"github.com/codemarcinu/pantry-tracker/internal/async"
	"github.com/codemarcinu/pantry-tracker/internal/common"
	"github.com/codemarcinu/pantry-tracker/internal/correction"
	"github.com/codemarcinu/pantry-tracker/internal/export"
	"github.com/codemarcinu/pantry-tracker/internal/extract/tesseract"
	"github.com/codemarcinu/pantry-tracker/internal/extract/vision"
	"github.com/codemarcinu/pantry-tracker/internal/ingest"
	"github.com/codemarcinu/pantry-tracker/internal/inventory"
	"github.com/codemarcinu/pantry-tracker/internal/learning"
	"github.com/codemarcinu/pantry-tracker/internal/matching"
	"github.com/codemarcinu/pantry-tracker/internal/parsing"
	"github.com/codemarcinu/pantry-tracker/internal/pipeline"
	"github.com/codemarcinu/pantry-tracker/internal/quality"
	repo "github.com/codemarcinu/pantry-tracker/internal/repository"
	svc "github.com/codemarcinu/pantry-tracker/internal/server"

	"github.com/shopspring/decimal"
)

// statusLogger surfaces pipeline transitions in the server log; a real
// push channel can replace it without touching the orchestrator.
type statusLogger struct {
	logger *slog.Logger
}

func (n *statusLogger) NotifyStatus(receiptID uuid.UUID, status constants.ReceiptStatus, message string) {
	n.logger.Info("receipt.status", "receipt_id", receiptID, "status", string(status), "message", message)
}

func main() {
	// Setup structured logger that outputs messages with variables but no time/level
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey || a.Key == slog.LevelKey {
				return slog.Attr{}
			}
			return a
		},
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(2)
	}
	addr := cfg.Server.GRPCAddr
	if !strings.Contains(addr, ":") {
		addr = ":" + addr
	}
	if cfg.Vision.APIKey == "" {
		logger.Warn("VISION_API_KEY not set; escalation to the vision backend will fail")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := common.InitDatabase(ctx, cfg, false, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Cleanup()

	if err := repo.HealthCheck(ctx, db.Pool, cfg.Database.DialTimeout, logger); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	lis, err := net.Listen("tcp", addr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", addr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer()

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

	corrector := correction.NewCorrector(logger)
	parser := parsing.NewParser(parsing.Config{
		TotalTolerance: mustAmount(cfg.Pipeline.TotalTolerance, "0.05"),
		LineTolerance:  mustAmount(cfg.Pipeline.LineTolerance, "0.05"),
	}, logger)
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
		receiptsRepo,
		patternsRepo,
		localEngine,
		visionClient,
		corrector,
		parser,
		matcher,
		productsRepo,
		finalizer,
		learner,
		&statusLogger{logger: logger},
		logger,
	)

	queue := async.NewProcessorQueue(orch, logger,
		async.WithWorkers(cfg.Pipeline.Workers),
		async.WithQueueSize(512),
		async.WithProcessTimeout(cfg.Pipeline.StageTimeout*4),
	)

	exporter := export.NewService(inventoryRepo, productsRepo, logger)

	// Optional drop-folder ingestion: files appearing under WATCH_DIRS are
	// registered and queued automatically.
	if dirs := os.Getenv("WATCH_DIRS"); dirs != "" {
		ingestor := ingest.NewFSIngestor(receiptsRepo, queue, logger)
		events, watchErrs, err := ingest.StartWatcher(ctx, ingest.WatchConfig{
			Roots:       strings.Split(dirs, ","),
			InitialScan: true,
			Debounce:    2 * time.Second,
		}, logger)
		if err != nil {
			logger.Error("failed to start directory watcher", "dirs", dirs, "error", err)
			os.Exit(1)
		}
		go func() {
			for events != nil || watchErrs != nil {
				select {
				case path, ok := <-events:
					if !ok {
						events = nil
						continue
					}
					if _, err := ingestor.IngestPath(ctx, path); err != nil {
						logger.Error("watch ingest failed", "path", path, "error", err)
					}
				case _, ok := <-watchErrs:
					if !ok {
						watchErrs = nil
					}
				}
			}
		}()
		logger.Info("watching for receipts", "dirs", dirs)
	}

	pantrypb.RegisterReceiptsServiceServer(grpcServer, svc.NewReceiptService(receiptsRepo, queue, orch, logger))
	pantrypb.RegisterInventoryServiceServer(grpcServer, svc.NewInventoryService(inventoryRepo, exporter, logger))
	pantrypb.RegisterPatternsServiceServer(grpcServer, svc.NewPatternService(patternsRepo, logger))

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)

	logger.Info("pantryd listening", "addr", addr)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	queue.Shutdown(context.Background())
	grpcServer.GracefulStop()
}

func mustAmount(raw, fallback string) decimal.Decimal {
	d, err := decimal.NewFromString(raw)
	if err != nil {
		d, _ = decimal.NewFromString(fallback)
	}
	return d
}
