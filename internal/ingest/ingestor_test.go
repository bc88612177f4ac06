package ingest

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"

	"github.com/codemarcinu/pantry-tracker/internal/async"
	"github.com/codemarcinu/pantry-tracker/internal/entity"
	"github.com/codemarcinu/pantry-tracker/internal/repository"
)

type fakeReceipts struct {
	repository.ReceiptRepository
	byHash  map[string]*entity.Receipt
	created []*repository.CreateReceiptRequest
}

func newFakeReceipts() *fakeReceipts {
	return &fakeReceipts{byHash: map[string]*entity.Receipt{}}
}

func (f *fakeReceipts) FindByContentHash(_ context.Context, hash string) (*entity.Receipt, error) {
	return f.byHash[hash], nil
}

func (f *fakeReceipts) Create(_ context.Context, req *repository.CreateReceiptRequest) (*entity.Receipt, error) {
	f.created = append(f.created, req)
	rec := &entity.Receipt{ID: uuid.New(), SourcePath: req.SourcePath, ContentHash: req.ContentHash}
	f.byHash[req.ContentHash] = rec
	return rec, nil
}

type fakeQueue struct {
	jobs []async.Job
}

func (f *fakeQueue) Enqueue(_ context.Context, job async.Job) error {
	f.jobs = append(f.jobs, job)
	return nil
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestIngestPathRegistersAndEnqueues(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "receipt.jpg", "fake image bytes")

	repo := newFakeReceipts()
	queue := &fakeQueue{}
	ing := NewFSIngestor(repo, queue, nil)

	res, err := ing.IngestPath(context.Background(), path)
	if err != nil {
		t.Fatalf("IngestPath: %v", err)
	}
	if res.Deduplicated {
		t.Error("first ingest should not dedup")
	}
	if res.HashHex == "" {
		t.Error("expected content hash")
	}
	if len(repo.created) != 1 {
		t.Fatalf("created = %d, want 1", len(repo.created))
	}
	if repo.created[0].ContentHash != res.HashHex {
		t.Errorf("stored hash %q != result hash %q", repo.created[0].ContentHash, res.HashHex)
	}
	if len(queue.jobs) != 1 {
		t.Fatalf("enqueued = %d, want 1", len(queue.jobs))
	}
}

func TestIngestPathDeduplicatesByContent(t *testing.T) {
	dir := t.TempDir()
	first := writeFile(t, dir, "a.jpg", "same bytes")
	second := writeFile(t, dir, "b.jpg", "same bytes")

	repo := newFakeReceipts()
	queue := &fakeQueue{}
	ing := NewFSIngestor(repo, queue, nil)

	if _, err := ing.IngestPath(context.Background(), first); err != nil {
		t.Fatal(err)
	}
	res, err := ing.IngestPath(context.Background(), second)
	if err != nil {
		t.Fatal(err)
	}
	if !res.Deduplicated {
		t.Error("identical content should dedup")
	}
	if len(repo.created) != 1 {
		t.Errorf("created = %d, want 1", len(repo.created))
	}
	if len(queue.jobs) != 1 {
		t.Errorf("enqueued = %d, want 1 (dedup must not requeue)", len(queue.jobs))
	}
}

func TestIngestPathRejectsUnsupportedExtension(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "notes.txt", "not a receipt")

	ing := NewFSIngestor(newFakeReceipts(), &fakeQueue{}, nil)
	if _, err := ing.IngestPath(context.Background(), path); err == nil {
		t.Fatal("expected error for unsupported extension")
	}
}

func TestIngestDirectoryWalks(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "one.jpg", "one")
	writeFile(t, dir, "two.png", "two")
	writeFile(t, dir, "skip.txt", "text")
	writeFile(t, dir, ".hidden.jpg", "hidden")

	repo := newFakeReceipts()
	ing := NewFSIngestor(repo, &fakeQueue{}, nil)

	results, stats, err := ing.IngestDirectory(context.Background(), dir, true)
	if err != nil {
		t.Fatalf("IngestDirectory: %v", err)
	}
	if stats.Matched != 2 {
		t.Errorf("matched = %d, want 2", stats.Matched)
	}
	if stats.Succeeded != 2 {
		t.Errorf("succeeded = %d, want 2", stats.Succeeded)
	}
	if stats.Failed != 0 {
		t.Errorf("failed = %d, want 0", stats.Failed)
	}
	if len(results) != 2 {
		t.Errorf("results = %d, want 2", len(results))
	}
}
