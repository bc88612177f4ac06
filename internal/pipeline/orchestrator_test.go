package pipeline

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/codemarcinu/pantry-tracker/constants"
	"github.com/codemarcinu/pantry-tracker/internal/correction"
	"github.com/codemarcinu/pantry-tracker/internal/entity"
	"github.com/codemarcinu/pantry-tracker/internal/extract"
	"github.com/codemarcinu/pantry-tracker/internal/inventory"
	"github.com/codemarcinu/pantry-tracker/internal/matching"
	"github.com/codemarcinu/pantry-tracker/internal/parsing"
	"github.com/codemarcinu/pantry-tracker/internal/quality"
)

// --- fakes ---

type fakeBackend struct {
	name   string
	result extract.Result
	calls  int
}

func (f *fakeBackend) Name() string { return f.name }
func (f *fakeBackend) Extract(_ context.Context, _ extract.FileMeta) (extract.Result, error) {
	f.calls++
	return f.result, nil
}

type fakeReceipts struct {
	mu       sync.Mutex
	receipt  entity.Receipt
	statuses []constants.ReceiptStatus
	lines    []entity.LineItem
}

func (f *fakeReceipts) Get(_ context.Context, _ uuid.UUID) (*entity.Receipt, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r := f.receipt
	return &r, nil
}

func (f *fakeReceipts) Update(_ context.Context, r *entity.Receipt) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.receipt = *r
	return nil
}

func (f *fakeReceipts) UpdateStatus(_ context.Context, _ uuid.UUID, status constants.ReceiptStatus, note string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.receipt.Status = status
	f.receipt.ProcessingNotes = note
	f.statuses = append(f.statuses, status)
	return nil
}

func (f *fakeReceipts) ReplaceLineItems(_ context.Context, receiptID uuid.UUID, lines []entity.LineItem) ([]entity.LineItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range lines {
		lines[i].ID = uuid.New()
		lines[i].ReceiptID = receiptID
	}
	f.lines = lines
	return lines, nil
}

func (f *fakeReceipts) SetLineMatch(_ context.Context, lineID, productID uuid.UUID, _ json.RawMessage) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.lines {
		if f.lines[i].ID == lineID {
			id := productID
			f.lines[i].MatchedID = &id
		}
	}
	return nil
}

func (f *fakeReceipts) ListLineItems(_ context.Context, _ uuid.UUID) ([]entity.LineItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]entity.LineItem, len(f.lines))
	copy(out, f.lines)
	return out, nil
}

type fakePatterns struct {
	mu       sync.Mutex
	patterns []entity.CorrectionPattern
	usage    map[uuid.UUID]int
}

func (f *fakePatterns) ActivePatterns(_ context.Context) ([]entity.CorrectionPattern, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.patterns, nil
}

func (f *fakePatterns) IncrementUsage(_ context.Context, ids []uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.usage == nil {
		f.usage = make(map[uuid.UUID]int)
	}
	for _, id := range ids {
		f.usage[id]++
	}
	return nil
}

type fakeLearner struct {
	mu     sync.Mutex
	called chan struct{}
}

func (f *fakeLearner) Learn(_ context.Context, _ uuid.UUID, _, _ string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	select {
	case f.called <- struct{}{}:
	default:
	}
	return nil
}

type fakeNotifier struct {
	mu     sync.Mutex
	events []constants.ReceiptStatus
}

func (f *fakeNotifier) NotifyStatus(_ uuid.UUID, status constants.ReceiptStatus, _ string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, status)
}

type fakeCatalog struct {
	products []entity.Product
}

func (f *fakeCatalog) FindByBarcode(_ context.Context, _ string) (*entity.Product, error) {
	return nil, nil
}
func (f *fakeCatalog) FindCandidates(_ context.Context, _ string) ([]entity.Product, error) {
	return f.products, nil
}
func (f *fakeCatalog) CreateGhost(_ context.Context, normalized, raw string) (*entity.Product, error) {
	return &entity.Product{ID: uuid.New(), Name: normalized, Aliases: []string{raw}}, nil
}
func (f *fakeCatalog) AddAlias(_ context.Context, _, _ string) error { return nil }

func (f *fakeCatalog) Get(_ context.Context, id uuid.UUID) (*entity.Product, error) {
	for i := range f.products {
		if f.products[i].ID == id {
			return &f.products[i], nil
		}
	}
	return &entity.Product{ID: id, Name: "placeholder"}, nil
}

type fakeInventory struct {
	mu      sync.Mutex
	batches int
}

func (f *fakeInventory) CreateBatch(_ context.Context, _ []entity.InventoryItem) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.batches++
	return nil
}

func (f *fakeInventory) BatchExists(_ context.Context, _ string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.batches > 0, nil
}

// --- fixtures ---

func goodLines(texts ...string) []extract.Line {
	lines := make([]extract.Line, len(texts))
	for i, t := range texts {
		lines[i] = extract.Line{Text: t, Confidence: 0.95}
	}
	return lines
}

type env struct {
	orch     *Orchestrator
	receipts *fakeReceipts
	patterns *fakePatterns
	notifier *fakeNotifier
	learner  *fakeLearner
	local    *fakeBackend
	teacher  *fakeBackend
	stock    *fakeInventory
}

func newEnv(t *testing.T, local, teacher *fakeBackend, products ...entity.Product) *env {
	t.Helper()
	receipts := &fakeReceipts{receipt: entity.Receipt{
		ID:         uuid.New(),
		Status:     constants.StatusPendingOCR,
		SourcePath: "/data/receipt.jpg",
		Currency:   "PLN",
	}}
	notifier := &fakeNotifier{}
	learner := &fakeLearner{called: make(chan struct{}, 1)}
	stock := &fakeInventory{}
	patterns := &fakePatterns{}

	catalog := &fakeCatalog{products: products}
	matcher := matching.NewMatcher(catalog, nil, matching.Config{Threshold: 85}, nil)
	finalizer := inventory.NewFinalizer(stock, nil, nil)

	orch := NewOrchestrator(
		Config{
			Thresholds:   quality.Thresholds{MinConfidence: 0.8, AcceptDPI: 300},
			StageTimeout: 5 * time.Second,
		},
		receipts, patterns,
		local, teacher,
		correction.NewCorrector(nil),
		parsing.NewParser(parsing.DefaultConfig(), nil),
		matcher, catalog, finalizer, learner, notifier, nil,
	)
	return &env{orch: orch, receipts: receipts, patterns: patterns, notifier: notifier,
		learner: learner, local: local, teacher: teacher, stock: stock}
}

func receiptText() []extract.Line {
	return goodLines(
		"LIDL sp. z o.o.",
		"2024-03-15 14:32",
		"Mleko UHT 1 * 3,19 3,19 A",
		"SUMA PLN 3,19",
	)
}

// --- tests ---

func TestProcessHappyPath(t *testing.T) {
	local := &fakeBackend{name: "local", result: extract.Result{
		Lines: receiptText(),
		Meta:  extract.Meta{Engine: "local", DPI: 600},
	}}
	teacher := &fakeBackend{name: "teacher"}
	e := newEnv(t, local, teacher, entity.Product{ID: uuid.New(), Name: "Mleko UHT", IsActive: true})

	if err := e.orch.Process(context.Background(), e.receipts.receipt.ID); err != nil {
		t.Fatal(err)
	}

	want := []constants.ReceiptStatus{
		constants.StatusOCRInProgress,
		constants.StatusOCRCompleted,
		constants.StatusParsingInProgress,
		constants.StatusParsingCompleted,
		constants.StatusMatchingInProgress,
		constants.StatusMatchingCompleted,
		constants.StatusFinalizingInventory,
		constants.StatusCompleted,
	}
	if len(e.receipts.statuses) != len(want) {
		t.Fatalf("transitions = %v", e.receipts.statuses)
	}
	for i, s := range want {
		if e.receipts.statuses[i] != s {
			t.Errorf("transition[%d] = %s, want %s", i, e.receipts.statuses[i], s)
		}
	}
	if teacher.calls != 0 {
		t.Error("teacher called for a high-quality local result")
	}
	if e.stock.batches != 1 {
		t.Errorf("inventory batches = %d", e.stock.batches)
	}
	if len(e.notifier.events) != len(want) {
		t.Errorf("notifications = %d, want %d", len(e.notifier.events), len(want))
	}
	if e.receipts.receipt.StoreName == nil || *e.receipts.receipt.StoreName != "Lidl" {
		t.Errorf("store = %v", e.receipts.receipt.StoreName)
	}
}

func TestProcessEscalatesToTeacherAndLearns(t *testing.T) {
	// 150 DPI, weak confidence: the gate must escalate and schedule learning.
	weak := receiptText()
	for i := range weak {
		weak[i].Confidence = 0.62
	}
	local := &fakeBackend{name: "local", result: extract.Result{
		Lines: weak,
		Meta:  extract.Meta{Engine: "local", DPI: 150},
	}}
	teacher := &fakeBackend{name: "teacher", result: extract.Result{
		Lines: receiptText(),
		Meta:  extract.Meta{Engine: "teacher"},
	}}
	e := newEnv(t, local, teacher, entity.Product{ID: uuid.New(), Name: "Mleko UHT", IsActive: true})

	if err := e.orch.Process(context.Background(), e.receipts.receipt.ID); err != nil {
		t.Fatal(err)
	}
	if teacher.calls != 1 {
		t.Errorf("teacher calls = %d", teacher.calls)
	}
	select {
	case <-e.learner.called:
	case <-time.After(2 * time.Second):
		t.Error("learning run was not scheduled")
	}
	if e.receipts.receipt.Status != constants.StatusCompleted {
		t.Errorf("status = %s", e.receipts.receipt.Status)
	}
}

func TestProcessBothBackendsFailIsTerminalError(t *testing.T) {
	failed := extract.Result{Failure: &extract.Failure{Reason: extract.ReasonEngineUnavailable}}
	local := &fakeBackend{name: "local", result: failed}
	teacher := &fakeBackend{name: "teacher", result: failed}
	e := newEnv(t, local, teacher)

	err := e.orch.Process(context.Background(), e.receipts.receipt.ID)
	if err == nil {
		t.Fatal("expected error")
	}
	if e.receipts.receipt.Status != constants.StatusError {
		t.Errorf("status = %s", e.receipts.receipt.Status)
	}
	if teacher.calls != 1 {
		t.Errorf("teacher calls = %d, want one fallback retry", teacher.calls)
	}
}

func TestProcessTeacherDownFallsBackToLocal(t *testing.T) {
	weak := receiptText()
	for i := range weak {
		weak[i].Confidence = 0.62
	}
	local := &fakeBackend{name: "local", result: extract.Result{
		Lines: weak,
		Meta:  extract.Meta{Engine: "local", DPI: 150},
	}}
	teacher := &fakeBackend{name: "teacher", result: extract.Result{
		Failure: &extract.Failure{Reason: extract.ReasonTimeout},
	}}
	e := newEnv(t, local, teacher, entity.Product{ID: uuid.New(), Name: "Mleko UHT", IsActive: true})

	if err := e.orch.Process(context.Background(), e.receipts.receipt.ID); err != nil {
		t.Fatal(err)
	}
	if e.receipts.receipt.Status != constants.StatusCompleted {
		t.Errorf("status = %s", e.receipts.receipt.Status)
	}
}

func TestProcessTotalMismatchParksForReview(t *testing.T) {
	local := &fakeBackend{name: "local", result: extract.Result{
		Lines: goodLines(
			"Mleko UHT 1 * 3,19 3,19 A",
			"SUMA PLN 9,99",
		),
		Meta: extract.Meta{Engine: "local", DPI: 600},
	}}
	e := newEnv(t, local, &fakeBackend{name: "teacher"},
		entity.Product{ID: uuid.New(), Name: "Mleko UHT", IsActive: true})

	if err := e.orch.Process(context.Background(), e.receipts.receipt.ID); err != nil {
		t.Fatal(err)
	}
	if e.receipts.receipt.Status != constants.StatusReviewPending {
		t.Errorf("status = %s", e.receipts.receipt.Status)
	}
	if e.stock.batches != 0 {
		t.Error("inventory written despite total mismatch")
	}
	if !strings.Contains(e.receipts.receipt.ProcessingNotes, "differs") {
		t.Errorf("notes = %q", e.receipts.receipt.ProcessingNotes)
	}
	if e.receipts.receipt.TotalDiff == nil ||
		!e.receipts.receipt.TotalDiff.Equal(decimal.RequireFromString("-6.80")) {
		t.Errorf("total diff = %v", e.receipts.receipt.TotalDiff)
	}
}

func TestProcessGhostProductsFinalizeThenReview(t *testing.T) {
	local := &fakeBackend{name: "local", result: extract.Result{
		Lines: goodLines(
			"Pasta Wasabi Premium 1 * 8,99 8,99 A",
			"SUMA PLN 8,99",
		),
		Meta: extract.Meta{Engine: "local", DPI: 600},
	}}
	e := newEnv(t, local, &fakeBackend{name: "teacher"}) // empty catalog

	if err := e.orch.Process(context.Background(), e.receipts.receipt.ID); err != nil {
		t.Fatal(err)
	}
	if e.receipts.receipt.Status != constants.StatusReviewPending {
		t.Errorf("status = %s", e.receipts.receipt.Status)
	}
	if e.stock.batches != 1 {
		t.Error("ghost-matched lines must still produce inventory")
	}
}

func TestProcessRecordsPatternUsage(t *testing.T) {
	local := &fakeBackend{name: "local", result: extract.Result{
		Lines: goodLines(
			"LIDL sp. z o.o.",
			"Melko UHT 1 * 3,19 3,19 A",
			"SUMA PLN 3,19",
		),
		Meta: extract.Meta{Engine: "local", DPI: 600},
	}}
	e := newEnv(t, local, &fakeBackend{name: "teacher"},
		entity.Product{ID: uuid.New(), Name: "Mleko UHT", IsActive: true})
	p := entity.CorrectionPattern{
		ID:             uuid.New(),
		ErrorPattern:   "Melko",
		CorrectPattern: "Mleko",
		Confidence:     0.9,
		IsActive:       true,
	}
	e.patterns.patterns = []entity.CorrectionPattern{p}

	if err := e.orch.Process(context.Background(), e.receipts.receipt.ID); err != nil {
		t.Fatal(err)
	}
	if e.patterns.usage[p.ID] != 1 {
		t.Errorf("usage[%s] = %d, want 1", p.ID, e.patterns.usage[p.ID])
	}
}

func TestProcessReprocessDoesNotDuplicateInventory(t *testing.T) {
	// A ghost receipt finalizes, parks for review and is then reprocessed
	// from scratch; the second run must not write a second batch.
	local := &fakeBackend{name: "local", result: extract.Result{
		Lines: goodLines(
			"Pasta Wasabi Premium 1 * 8,99 8,99 A",
			"SUMA PLN 8,99",
		),
		Meta: extract.Meta{Engine: "local", DPI: 600},
	}}
	e := newEnv(t, local, &fakeBackend{name: "teacher"}) // empty catalog

	if err := e.orch.Process(context.Background(), e.receipts.receipt.ID); err != nil {
		t.Fatal(err)
	}
	if e.stock.batches != 1 {
		t.Fatalf("batches after first run = %d", e.stock.batches)
	}

	e.receipts.receipt.Status = constants.StatusPendingOCR // reprocess reset
	if err := e.orch.Process(context.Background(), e.receipts.receipt.ID); err != nil {
		t.Fatal(err)
	}
	if e.stock.batches != 1 {
		t.Errorf("batches after reprocess = %d, want 1", e.stock.batches)
	}
	if e.receipts.receipt.Status != constants.StatusReviewPending {
		t.Errorf("status = %s", e.receipts.receipt.Status)
	}
}

func TestProcessCancellationShortCircuits(t *testing.T) {
	local := &fakeBackend{name: "local", result: extract.Result{
		Lines: receiptText(),
		Meta:  extract.Meta{Engine: "local", DPI: 600},
	}}
	e := newEnv(t, local, &fakeBackend{name: "teacher"})
	e.receipts.receipt.Cancelled = true

	if err := e.orch.Process(context.Background(), e.receipts.receipt.ID); err != nil {
		t.Fatal(err)
	}
	if e.receipts.receipt.Status != constants.StatusCancelled {
		t.Errorf("status = %s", e.receipts.receipt.Status)
	}
	if local.calls != 0 {
		t.Error("extraction started for a cancelled receipt")
	}
}

func TestProcessSkipsTerminalReceipts(t *testing.T) {
	local := &fakeBackend{name: "local"}
	e := newEnv(t, local, &fakeBackend{name: "teacher"})
	e.receipts.receipt.Status = constants.StatusCompleted

	if err := e.orch.Process(context.Background(), e.receipts.receipt.ID); err != nil {
		t.Fatal(err)
	}
	if local.calls != 0 {
		t.Error("work started for a terminal receipt")
	}
	if len(e.receipts.statuses) != 0 {
		t.Errorf("transitions = %v", e.receipts.statuses)
	}
}

func TestStatusTransitionRules(t *testing.T) {
	if constants.StatusCompleted.CanTransition(constants.StatusReviewPending) {
		t.Error("terminal state allowed a transition")
	}
	if !constants.StatusOCRInProgress.CanTransition(constants.StatusError) {
		t.Error("error branch blocked from in-progress state")
	}
	if constants.StatusParsingCompleted.CanTransition(constants.StatusOCRInProgress) {
		t.Error("backward transition allowed")
	}
	if !constants.StatusReviewPending.CanTransition(constants.StatusFinalizingInventory) {
		t.Error("review resume into finalization blocked")
	}
	if !constants.StatusReviewPending.CanTransition(constants.StatusCompleted) {
		t.Error("review close-out to completed blocked")
	}
	if constants.StatusReviewPending.CanTransition(constants.StatusOCRCompleted) {
		t.Error("review resumed into an arbitrary mid-pipeline state")
	}
}

func TestResumeFinalizesReviewedReceipt(t *testing.T) {
	product := entity.Product{ID: uuid.New(), Name: "Mleko UHT"}
	e := newEnv(t, &fakeBackend{name: "local"}, &fakeBackend{name: "teacher"}, product)
	e.receipts.receipt.Status = constants.StatusReviewPending
	matched := product.ID
	e.receipts.lines = []entity.LineItem{{
		ID:        uuid.New(),
		ReceiptID: e.receipts.receipt.ID,
		RawText:   "Mleko UHT 1 * 3,19 3,19 A",
		Quantity:  decimal.NewFromInt(1),
		MatchedID: &matched,
	}}

	if err := e.orch.Resume(context.Background(), e.receipts.receipt.ID); err != nil {
		t.Fatal(err)
	}
	if e.stock.batches != 1 {
		t.Errorf("batches = %d, want 1", e.stock.batches)
	}
	if e.receipts.receipt.Status != constants.StatusCompleted {
		t.Errorf("status = %s, want %s", e.receipts.receipt.Status, constants.StatusCompleted)
	}
	want := []constants.ReceiptStatus{constants.StatusFinalizingInventory, constants.StatusCompleted}
	if len(e.receipts.statuses) != len(want) {
		t.Fatalf("transitions = %v, want %v", e.receipts.statuses, want)
	}
	for i, s := range want {
		if e.receipts.statuses[i] != s {
			t.Errorf("transition %d = %s, want %s", i, e.receipts.statuses[i], s)
		}
	}
}

func TestResumeClosesAlreadyFinalizedReceipt(t *testing.T) {
	e := newEnv(t, &fakeBackend{name: "local"}, &fakeBackend{name: "teacher"})
	e.receipts.receipt.Status = constants.StatusReviewPending
	e.stock.batches = 1

	if err := e.orch.Resume(context.Background(), e.receipts.receipt.ID); err != nil {
		t.Fatal(err)
	}
	if e.stock.batches != 1 {
		t.Errorf("batches = %d, want 1 (stock double-written)", e.stock.batches)
	}
	if e.receipts.receipt.Status != constants.StatusCompleted {
		t.Errorf("status = %s, want %s", e.receipts.receipt.Status, constants.StatusCompleted)
	}
}

func TestResumeRejectsUnmatchedLines(t *testing.T) {
	e := newEnv(t, &fakeBackend{name: "local"}, &fakeBackend{name: "teacher"})
	e.receipts.receipt.Status = constants.StatusReviewPending
	e.receipts.lines = []entity.LineItem{{
		ID:        uuid.New(),
		ReceiptID: e.receipts.receipt.ID,
		RawText:   "Chleb 1 * 4,50 4,50 A",
		Quantity:  decimal.NewFromInt(1),
	}}

	err := e.orch.Resume(context.Background(), e.receipts.receipt.ID)
	if err == nil {
		t.Fatal("resume accepted a receipt with an unmatched line")
	}
	if !strings.Contains(err.Error(), "no matched product") {
		t.Errorf("err = %v", err)
	}
	if e.stock.batches != 0 {
		t.Errorf("batches = %d, want 0", e.stock.batches)
	}
}

func TestResumeRejectsWrongStatus(t *testing.T) {
	e := newEnv(t, &fakeBackend{name: "local"}, &fakeBackend{name: "teacher"})
	e.receipts.receipt.Status = constants.StatusPendingOCR

	if err := e.orch.Resume(context.Background(), e.receipts.receipt.ID); err == nil {
		t.Fatal("resume accepted a receipt outside review_pending")
	}
}
