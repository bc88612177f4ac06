// Package pipeline drives one receipt from uploaded file to inventory:
// extraction, quality gating, correction, parsing, matching, finalization.
package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/semaphore"

	"github.com/codemarcinu/pantry-tracker/constants"
	"github.com/codemarcinu/pantry-tracker/internal/common"
	"github.com/codemarcinu/pantry-tracker/internal/correction"
	"github.com/codemarcinu/pantry-tracker/internal/entity"
	"github.com/codemarcinu/pantry-tracker/internal/extract"
	"github.com/codemarcinu/pantry-tracker/internal/inventory"
	"github.com/codemarcinu/pantry-tracker/internal/matching"
	"github.com/codemarcinu/pantry-tracker/internal/parsing"
	"github.com/codemarcinu/pantry-tracker/internal/quality"
)

// ReceiptStore is the persistence surface the orchestrator needs.
type ReceiptStore interface {
	Get(ctx context.Context, id uuid.UUID) (*entity.Receipt, error)
	Update(ctx context.Context, r *entity.Receipt) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status constants.ReceiptStatus, note string) error
	ReplaceLineItems(ctx context.Context, receiptID uuid.UUID, lines []entity.LineItem) ([]entity.LineItem, error)
	SetLineMatch(ctx context.Context, lineID, productID uuid.UUID, meta json.RawMessage) error
	ListLineItems(ctx context.Context, receiptID uuid.UUID) ([]entity.LineItem, error)
}

// ProductSource loads catalog rows by ID when a reviewed receipt resumes.
type ProductSource interface {
	Get(ctx context.Context, id uuid.UUID) (*entity.Product, error)
}

// PatternSource loads the active correction patterns for a parse run and
// records which ones were actually used.
type PatternSource interface {
	ActivePatterns(ctx context.Context) ([]entity.CorrectionPattern, error)
	IncrementUsage(ctx context.Context, ids []uuid.UUID) error
}

// Learner mines correction patterns from a weak/strong transcript pair.
type Learner interface {
	Learn(ctx context.Context, receiptID uuid.UUID, weakText, strongText string) error
}

// Notifier receives status-change events. Delivery is external; the
// orchestrator only decides that and what to notify.
type Notifier interface {
	NotifyStatus(receiptID uuid.UUID, status constants.ReceiptStatus, message string)
}

// Config bounds the orchestrator's concurrency and stage timing.
type Config struct {
	Thresholds   quality.Thresholds
	OCRSlots     int64 // receipts in extraction at once
	MatchSlots   int64 // receipts in matching at once
	StageTimeout time.Duration
}

type Orchestrator struct {
	cfg       Config
	receipts  ReceiptStore
	patterns  PatternSource
	local     extract.Backend
	teacher   extract.Backend
	corrector *correction.Corrector
	parser    *parsing.Parser
	matcher   *matching.Matcher
	products  ProductSource
	finalizer *inventory.Finalizer
	learner   Learner
	notifier  Notifier
	logger    *slog.Logger
	ocrSem    *semaphore.Weighted
	matchSem  *semaphore.Weighted
}

func NewOrchestrator(
	cfg Config,
	receipts ReceiptStore,
	patterns PatternSource,
	local, teacher extract.Backend,
	corrector *correction.Corrector,
	parser *parsing.Parser,
	matcher *matching.Matcher,
	products ProductSource,
	finalizer *inventory.Finalizer,
	learner Learner,
	notifier Notifier,
	logger *slog.Logger,
) *Orchestrator {
	if cfg.OCRSlots <= 0 {
		cfg.OCRSlots = 2
	}
	if cfg.MatchSlots <= 0 {
		cfg.MatchSlots = 4
	}
	if cfg.StageTimeout <= 0 {
		cfg.StageTimeout = 2 * time.Minute
	}
	if cfg.Thresholds.MinConfidence <= 0 {
		cfg.Thresholds.MinConfidence = 0.8
	}
	if cfg.Thresholds.AcceptDPI <= 0 {
		cfg.Thresholds.AcceptDPI = 300
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Orchestrator{
		cfg:       cfg,
		receipts:  receipts,
		patterns:  patterns,
		local:     local,
		teacher:   teacher,
		corrector: corrector,
		parser:    parser,
		matcher:   matcher,
		products:  products,
		finalizer: finalizer,
		learner:   learner,
		notifier:  notifier,
		logger:    logger,
		ocrSem:    semaphore.NewWeighted(cfg.OCRSlots),
		matchSem:  semaphore.NewWeighted(cfg.MatchSlots),
	}
}

// Process runs the full pipeline for one receipt. Recoverable conditions
// (total mismatch, ghost products) land in review_pending; only extraction
// and finalization failures reach the terminal error state.
func (o *Orchestrator) Process(ctx context.Context, receiptID uuid.UUID) error {
	receipt, err := o.receipts.Get(ctx, receiptID)
	if err != nil {
		return fmt.Errorf("load receipt %s: %w", receiptID, err)
	}
	if receipt.Status.Terminal() {
		o.logger.Warn("pipeline.skip_terminal",
			"receipt_id", receiptID, "status", receipt.Status)
		return nil
	}

	// --- extraction ---
	if stop, err := o.checkCancelled(ctx, receipt); stop || err != nil {
		return err
	}
	result, weakText, strongText, runLearning, err := o.runExtraction(ctx, receipt)
	if err != nil {
		return o.fail(ctx, receipt, "extraction", err)
	}
	if runLearning && o.learner != nil && weakText != "" && strongText != "" {
		go o.runLearner(receiptID, weakText, strongText)
	}
	if err := o.recordExtraction(ctx, receipt, result); err != nil {
		return o.fail(ctx, receipt, "extraction", err)
	}

	// --- parsing ---
	if stop, err := o.checkCancelled(ctx, receipt); stop || err != nil {
		return err
	}
	parseRes, lines, err := o.runParsing(ctx, receipt, result)
	if err != nil {
		return o.fail(ctx, receipt, "parsing", err)
	}

	// --- matching ---
	if stop, err := o.checkCancelled(ctx, receipt); stop || err != nil {
		return err
	}
	products, ghosts, err := o.runMatching(ctx, receipt, lines)
	if err != nil {
		return o.fail(ctx, receipt, "matching", err)
	}

	// Total mismatch parks the receipt before any stock is written; a human
	// corrects the lines and finalization is retried externally.
	if parseRes.NeedsReview {
		note := fmt.Sprintf("declared total differs from line sum by %s",
			parseRes.TotalDiff.Abs().String())
		return o.transition(ctx, receipt, constants.StatusReviewPending, note)
	}

	// --- finalization ---
	if stop, err := o.checkCancelled(ctx, receipt); stop || err != nil {
		return err
	}
	if err := o.transition(ctx, receipt, constants.StatusFinalizingInventory, "creating inventory items"); err != nil {
		return err
	}
	// A reprocessed receipt may already carry its inventory batch from the
	// first run; writing it again would duplicate stock.
	written, err := o.finalizer.AlreadyFinalized(ctx, receipt)
	if err != nil {
		return o.fail(ctx, receipt, "finalization", err)
	}
	if written {
		o.logger.Info("pipeline.inventory_exists",
			"receipt_id", receipt.ID, "batch_id", receipt.ID.String())
	} else if _, err := o.finalizer.Finalize(ctx, receipt, lines, products); err != nil {
		return o.fail(ctx, receipt, "finalization", err)
	}

	if ghosts > 0 {
		note := fmt.Sprintf("%d unrecognized product(s) created as placeholders", ghosts)
		return o.transition(ctx, receipt, constants.StatusReviewPending, note)
	}
	return o.transition(ctx, receipt, constants.StatusCompleted, "receipt processed")
}

// Resume retries finalization for a receipt a human has reviewed. Line
// corrections must already be persisted; every line needs a matched
// product. A receipt whose stock was already written (ghost review) is
// closed without touching inventory again.
func (o *Orchestrator) Resume(ctx context.Context, receiptID uuid.UUID) error {
	receipt, err := o.receipts.Get(ctx, receiptID)
	if err != nil {
		return fmt.Errorf("load receipt %s: %w", receiptID, err)
	}
	if receipt.Status != constants.StatusReviewPending {
		return fmt.Errorf("receipt %s is %s, not %s", receiptID, receipt.Status, constants.StatusReviewPending)
	}

	done, err := o.finalizer.AlreadyFinalized(ctx, receipt)
	if err != nil {
		return fmt.Errorf("check inventory batch: %w", err)
	}
	if done {
		return o.transition(ctx, receipt, constants.StatusCompleted, "review approved")
	}

	lines, err := o.receipts.ListLineItems(ctx, receiptID)
	if err != nil {
		return fmt.Errorf("load line items: %w", err)
	}
	if len(lines) == 0 {
		return fmt.Errorf("receipt %s has no line items to finalize", receiptID)
	}
	products := make(map[uuid.UUID]*entity.Product, len(lines))
	for _, line := range lines {
		if line.MatchedID == nil {
			return fmt.Errorf("line %q has no matched product; correct it before approving", line.RawText)
		}
		if _, ok := products[*line.MatchedID]; ok {
			continue
		}
		p, err := o.products.Get(ctx, *line.MatchedID)
		if err != nil {
			return fmt.Errorf("load product %s: %w", *line.MatchedID, err)
		}
		products[*line.MatchedID] = p
	}

	if err := o.transition(ctx, receipt, constants.StatusFinalizingInventory, "review approved; creating inventory items"); err != nil {
		return err
	}
	if _, err := o.finalizer.Finalize(ctx, receipt, lines, products); err != nil {
		return o.fail(ctx, receipt, "finalization", err)
	}
	return o.transition(ctx, receipt, constants.StatusCompleted, "receipt processed after review")
}

// runExtraction runs the local backend under the OCR semaphore, applies the
// quality gate and escalates to the teacher when told to. The teacher also
// serves as the one fallback retry when the local engine fails outright.
func (o *Orchestrator) runExtraction(ctx context.Context, receipt *entity.Receipt) (extract.Result, string, string, bool, error) {
	if err := o.transition(ctx, receipt, constants.StatusOCRInProgress, "extracting text"); err != nil {
		return extract.Result{}, "", "", false, err
	}
	if err := o.ocrSem.Acquire(ctx, 1); err != nil {
		return extract.Result{}, "", "", false, err
	}
	defer o.ocrSem.Release(1)

	file := extract.FileMeta{
		Path:   receipt.SourcePath,
		Format: formatForPath(receipt.SourcePath),
	}

	local, err := o.runBackend(ctx, o.local, file)
	if err != nil {
		return extract.Result{}, "", "", false, err
	}
	decision := quality.Evaluate(file, local, o.cfg.Thresholds)
	o.logger.Info("pipeline.quality_gate",
		"receipt_id", receipt.ID,
		"reason", decision.Reason,
		"use_teacher", decision.UseTeacher,
		"mean_confidence", local.MeanConfidence(),
	)
	if !decision.UseTeacher {
		return local, "", "", false, nil
	}

	strong, err := o.runBackend(ctx, o.teacher, file)
	if err != nil {
		return extract.Result{}, "", "", false, err
	}
	if strong.Failed() {
		// Teacher unavailable. A usable local result still carries the
		// receipt; two dead engines end it.
		if !local.Failed() && len(local.Lines) > 0 {
			o.logger.Warn("pipeline.teacher_unavailable_using_local",
				"receipt_id", receipt.ID, "reason", strong.Failure.Reason)
			return local, "", "", false, nil
		}
		return extract.Result{}, "", "", false, fmt.Errorf(
			"local: %s, teacher: %s: %w",
			failureDetail(local), failureDetail(strong), common.ErrExtractionFailure)
	}
	return strong, local.Text(), strong.Text(), decision.RunLearning, nil
}

func (o *Orchestrator) runBackend(ctx context.Context, b extract.Backend, file extract.FileMeta) (extract.Result, error) {
	ctx, cancel := context.WithTimeout(ctx, o.cfg.StageTimeout)
	defer cancel()
	res, err := b.Extract(ctx, file)
	if err != nil {
		return extract.Result{}, fmt.Errorf("%s backend: %v: %w", b.Name(), err, common.ErrExtractionFailure)
	}
	return res, nil
}

func (o *Orchestrator) recordExtraction(ctx context.Context, receipt *entity.Receipt, res extract.Result) error {
	raw, err := json.Marshal(struct {
		Engine     string         `json:"engine"`
		Lines      []extract.Line `json:"lines"`
		Confidence float64        `json:"mean_confidence"`
	}{res.Meta.Engine, res.Lines, res.MeanConfidence()})
	if err != nil {
		return err
	}
	receipt.RawExtraction = raw
	if err := o.receipts.Update(ctx, receipt); err != nil {
		return err
	}
	return o.transition(ctx, receipt, constants.StatusOCRCompleted,
		fmt.Sprintf("extracted %d lines via %s", len(res.Lines), res.Meta.Engine))
}

func (o *Orchestrator) runParsing(ctx context.Context, receipt *entity.Receipt, res extract.Result) (parsing.Result, []entity.LineItem, error) {
	if err := o.transition(ctx, receipt, constants.StatusParsingInProgress, "parsing lines"); err != nil {
		return parsing.Result{}, nil, err
	}

	rawLines := make([]string, len(res.Lines))
	for i, l := range res.Lines {
		rawLines[i] = l.Text
	}
	if o.patterns != nil && o.corrector != nil {
		patterns, err := o.patterns.ActivePatterns(ctx)
		if err != nil {
			return parsing.Result{}, nil, fmt.Errorf("load correction patterns: %w", err)
		}
		var applied []correction.Applied
		rawLines, applied = o.corrector.ApplyLines(rawLines, patterns)
		if len(applied) > 0 {
			o.logger.Info("pipeline.corrections_applied",
				"receipt_id", receipt.ID, "count", len(applied))
			if err := o.patterns.IncrementUsage(ctx, appliedPatternIDs(applied)); err != nil {
				// Usage stats are advisory; a failed bump never fails the parse.
				o.logger.Warn("pipeline.pattern_usage_update_failed",
					"receipt_id", receipt.ID, "error", err)
			}
		}
	}

	parseRes := o.parser.Parse(rawLines, receipt.Total)

	if receipt.StoreName == nil && parseRes.Header.StoreName != "" {
		receipt.StoreName = &parseRes.Header.StoreName
	}
	if receipt.PurchasedAt == nil {
		receipt.PurchasedAt = parseRes.Header.PurchasedAt
	}
	if receipt.Total == nil {
		receipt.Total = parseRes.Header.Total
	}
	if parseRes.Header.Currency != "" {
		receipt.Currency = parseRes.Header.Currency
	}
	receipt.TotalDiff = parseRes.TotalDiff
	if err := o.receipts.Update(ctx, receipt); err != nil {
		return parsing.Result{}, nil, err
	}

	items := make([]entity.LineItem, 0, len(parseRes.Lines))
	for _, c := range parseRes.Lines {
		item := entity.LineItem{
			ReceiptID:   receipt.ID,
			RawText:     c.RawText,
			ProductName: c.ProductName,
			Quantity:    c.Quantity,
			UnitPrice:   c.UnitPrice,
			LineTotal:   c.LineTotal,
		}
		if c.VATCode != "" {
			vat := c.VATCode
			item.VATCode = &vat
		}
		meta, _ := json.Marshal(map[string]any{
			"grammar":    c.Grammar,
			"confidence": c.Confidence,
		})
		item.Meta = meta
		items = append(items, item)
	}
	saved, err := o.receipts.ReplaceLineItems(ctx, receipt.ID, items)
	if err != nil {
		return parsing.Result{}, nil, err
	}

	note := fmt.Sprintf("parsed %d product lines (%d dropped)", len(saved), parseRes.Dropped)
	if err := o.transition(ctx, receipt, constants.StatusParsingCompleted, note); err != nil {
		return parsing.Result{}, nil, err
	}
	return parseRes, saved, nil
}

// appliedPatternIDs collects the distinct pattern IDs behind one run's
// corrections, for the times_applied bump.
func appliedPatternIDs(applied []correction.Applied) []uuid.UUID {
	seen := make(map[string]bool, len(applied))
	ids := make([]uuid.UUID, 0, len(applied))
	for _, a := range applied {
		if seen[a.PatternID] {
			continue
		}
		seen[a.PatternID] = true
		id, err := uuid.Parse(a.PatternID)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}

func (o *Orchestrator) runMatching(ctx context.Context, receipt *entity.Receipt, lines []entity.LineItem) (map[uuid.UUID]*entity.Product, int, error) {
	if err := o.transition(ctx, receipt, constants.StatusMatchingInProgress, "matching products"); err != nil {
		return nil, 0, err
	}
	if err := o.matchSem.Acquire(ctx, 1); err != nil {
		return nil, 0, err
	}
	defer o.matchSem.Release(1)

	products := make(map[uuid.UUID]*entity.Product, len(lines))
	ghosts := 0
	for i := range lines {
		m, err := o.matcher.Resolve(ctx, lines[i].ProductName, "")
		if err != nil {
			return nil, 0, err
		}
		if m.Ghost {
			ghosts++
		}
		id := m.Product.ID
		lines[i].MatchedID = &id
		products[id] = m.Product

		meta, _ := json.Marshal(map[string]any{
			"method": m.Method,
			"score":  m.Score,
			"ghost":  m.Ghost,
		})
		if err := o.receipts.SetLineMatch(ctx, lines[i].ID, id, meta); err != nil {
			return nil, 0, err
		}
	}

	note := fmt.Sprintf("matched %d lines, %d placeholder(s)", len(lines), ghosts)
	if err := o.transition(ctx, receipt, constants.StatusMatchingCompleted, note); err != nil {
		return nil, 0, err
	}
	return products, ghosts, nil
}

func (o *Orchestrator) runLearner(receiptID uuid.UUID, weak, strong string) {
	ctx, cancel := context.WithTimeout(context.Background(), o.cfg.StageTimeout)
	defer cancel()
	if err := o.learner.Learn(ctx, receiptID, weak, strong); err != nil {
		o.logger.Error("pipeline.learning_failed",
			"receipt_id", receiptID, "error", err)
	}
}

// checkCancelled reloads the cancellation flag between stages and
// short-circuits to the cancelled state without starting new work.
func (o *Orchestrator) checkCancelled(ctx context.Context, receipt *entity.Receipt) (bool, error) {
	fresh, err := o.receipts.Get(ctx, receipt.ID)
	if err != nil {
		return true, err
	}
	if !fresh.Cancelled {
		return false, nil
	}
	o.logger.Info("pipeline.cancelled", "receipt_id", receipt.ID, "status", receipt.Status)
	return true, o.transition(ctx, receipt, constants.StatusCancelled, "cancelled by user")
}

func (o *Orchestrator) transition(ctx context.Context, receipt *entity.Receipt, to constants.ReceiptStatus, note string) error {
	if !receipt.Status.CanTransition(to) {
		return fmt.Errorf("illegal transition %s -> %s for receipt %s",
			receipt.Status, to, receipt.ID)
	}
	if err := o.receipts.UpdateStatus(ctx, receipt.ID, to, note); err != nil {
		return fmt.Errorf("update status to %s: %w", to, err)
	}
	o.logger.Info("pipeline.transition",
		"receipt_id", receipt.ID, "from", receipt.Status, "to", to, "note", note)
	receipt.Status = to
	receipt.ProcessingNotes = note
	if o.notifier != nil {
		o.notifier.NotifyStatus(receipt.ID, to, note)
	}
	return nil
}

// fail routes a receipt to the terminal error state, keeping the stage and
// cause in the processing notes for diagnosis.
func (o *Orchestrator) fail(ctx context.Context, receipt *entity.Receipt, stage string, cause error) error {
	note := fmt.Sprintf("%s failed: %v", stage, cause)
	if terr := o.transition(ctx, receipt, constants.StatusError, note); terr != nil {
		o.logger.Error("pipeline.fail_transition_failed",
			"receipt_id", receipt.ID, "error", terr)
	}
	return cause
}

func failureDetail(r extract.Result) string {
	if r.Failure == nil {
		return "empty output"
	}
	return string(r.Failure.Reason)
}

func formatForPath(path string) string {
	if f := constants.MapExtToFormat(filepath.Ext(path)); f != "" {
		return f
	}
	return constants.IMAGE
}
