package ingest

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/codemarcinu/pantry-tracker/constants"
	"github.com/codemarcinu/pantry-tracker/internal/async"
	"github.com/codemarcinu/pantry-tracker/internal/repository"
)

// IngestionResult is the outcome for one file.
type IngestionResult struct {
	SourcePath   string
	ReceiptID    string
	Deduplicated bool
	HashHex      string
	Err          string
}

// DirStats aggregates a directory walk.
type DirStats struct {
	Scanned      uint32
	Matched      uint32
	Succeeded    uint32
	Deduplicated uint32
	Failed       uint32
}

// Enqueuer hands registered receipts to the processing workers.
type Enqueuer interface {
	Enqueue(ctx context.Context, job async.Job) error
}

// FSIngestor registers receipt files from the local filesystem and queues
// them for processing. Files already seen (by content hash) are skipped.
type FSIngestor struct {
	receipts repository.ReceiptRepository
	queue    Enqueuer
	logger   *slog.Logger
}

func NewFSIngestor(receipts repository.ReceiptRepository, queue Enqueuer, logger *slog.Logger) *FSIngestor {
	if logger == nil {
		logger = slog.Default()
	}
	return &FSIngestor{receipts: receipts, queue: queue, logger: logger}
}

func (i *FSIngestor) IngestPath(ctx context.Context, path string) (IngestionResult, error) {
	var out IngestionResult

	abs, err := filepath.Abs(path)
	if err != nil {
		return out, fmt.Errorf("abs path: %w", err)
	}
	if constants.MapExtToFormat(filepath.Ext(abs)) == "" {
		return out, fmt.Errorf("unsupported or missing extension: %q", filepath.Ext(abs))
	}

	sum, err := hashFile(abs)
	if err != nil {
		return out, err
	}
	hexSum := hex.EncodeToString(sum)

	existing, err := i.receipts.FindByContentHash(ctx, hexSum)
	if err != nil {
		return out, fmt.Errorf("dedup lookup: %w", err)
	}
	if existing != nil {
		i.logger.Info("ingest.dedup", "path", abs, "receipt_id", existing.ID)
		return IngestionResult{
			SourcePath:   abs,
			ReceiptID:    existing.ID.String(),
			Deduplicated: true,
			HashHex:      hexSum,
		}, nil
	}

	rec, err := i.receipts.Create(ctx, &repository.CreateReceiptRequest{
		SourcePath:  abs,
		ContentHash: hexSum,
	})
	if err != nil {
		return out, fmt.Errorf("register receipt: %w", err)
	}
	if i.queue != nil {
		if err := i.queue.Enqueue(ctx, async.Job{ReceiptID: rec.ID}); err != nil {
			i.logger.Error("ingest.enqueue_failed", "receipt_id", rec.ID, "error", err)
		}
	}

	i.logger.Info("ingest.ok", "path", abs, "receipt_id", rec.ID)
	return IngestionResult{
		SourcePath: abs,
		ReceiptID:  rec.ID.String(),
		HashHex:    hexSum,
	}, nil
}

// IngestDirectory walks root, skips hidden entries if requested, and calls
// IngestPath for each supported file. Per-file failures do not stop the walk.
func (i *FSIngestor) IngestDirectory(ctx context.Context, root string, skipHidden bool) ([]IngestionResult, DirStats, error) {
	if strings.TrimSpace(root) == "" {
		return nil, DirStats{}, errors.New("root path is required")
	}

	var results []IngestionResult
	var stats DirStats

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		stats.Scanned++
		if walkErr != nil {
			results = append(results, IngestionResult{SourcePath: path, Err: walkErr.Error()})
			stats.Failed++
			return nil
		}
		if skipHidden && isHidden(path) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if constants.MapExtToFormat(filepath.Ext(path)) == "" {
			return nil
		}
		stats.Matched++

		r, err := i.IngestPath(ctx, path)
		if err != nil {
			results = append(results, IngestionResult{SourcePath: path, Err: err.Error()})
			stats.Failed++
			return nil
		}
		results = append(results, r)
		stats.Succeeded++
		if r.Deduplicated {
			stats.Deduplicated++
		}
		return nil
	})
	if err != nil {
		return results, stats, fmt.Errorf("walk: %w", err)
	}
	return results, stats, nil
}

func hashFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			slog.Warn("close file", "path", path, "error", cerr)
		}
	}()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return nil, fmt.Errorf("hash: %w", err)
	}
	return h.Sum(nil), nil
}

func isHidden(path string) bool {
	return strings.HasPrefix(filepath.Base(path), ".")
}
