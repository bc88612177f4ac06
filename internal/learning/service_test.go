package learning

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/codemarcinu/pantry-tracker/internal/entity"
)

type fakeStore struct {
	samples  []entity.TrainingSample
	patterns map[string]entity.CorrectionPattern
}

func newFakeStore() *fakeStore {
	return &fakeStore{patterns: make(map[string]entity.CorrectionPattern)}
}

func (f *fakeStore) SaveSample(_ context.Context, s entity.TrainingSample) error {
	f.samples = append(f.samples, s)
	return nil
}

func (f *fakeStore) FindPatternByError(_ context.Context, errorPattern string) (*entity.CorrectionPattern, error) {
	p, ok := f.patterns[errorPattern]
	if !ok {
		return nil, nil
	}
	cp := p
	return &cp, nil
}

func (f *fakeStore) CreatePattern(_ context.Context, p entity.CorrectionPattern) error {
	f.patterns[p.ErrorPattern] = p
	return nil
}

func (f *fakeStore) UpdatePattern(_ context.Context, p entity.CorrectionPattern) error {
	f.patterns[p.ErrorPattern] = p
	return nil
}

func TestLearnPromotesAfterMinSamples(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store, 2, nil)
	ctx := context.Background()

	if err := svc.Learn(ctx, uuid.New(), "Melko UHT", "Mleko UHT"); err != nil {
		t.Fatal(err)
	}
	p, ok := store.patterns["Melko"]
	if !ok {
		t.Fatal("pattern not created after first sample")
	}
	if p.IsActive {
		t.Error("pattern active after a single sample")
	}
	if p.SampleCount != 1 {
		t.Errorf("SampleCount = %d", p.SampleCount)
	}

	if err := svc.Learn(ctx, uuid.New(), "Melko swieze", "Mleko swieze"); err != nil {
		t.Fatal(err)
	}
	p = store.patterns["Melko"]
	if !p.IsActive {
		t.Error("pattern not promoted at min samples")
	}
	if p.SampleCount != 2 {
		t.Errorf("SampleCount = %d", p.SampleCount)
	}
	if len(store.samples) != 2 {
		t.Errorf("samples stored = %d", len(store.samples))
	}
}

func TestLearnNeverRepromotesDeactivated(t *testing.T) {
	store := newFakeStore()
	store.patterns["Melko"] = entity.CorrectionPattern{
		ID:               uuid.New(),
		ErrorPattern:     "Melko",
		CorrectPattern:   "Mleko",
		SampleCount:      10,
		IsActive:         false,
		HumanDeactivated: true,
	}
	svc := NewService(store, 2, nil)

	if err := svc.Learn(context.Background(), uuid.New(), "Melko UHT", "Mleko UHT"); err != nil {
		t.Fatal(err)
	}
	p := store.patterns["Melko"]
	if p.IsActive {
		t.Error("operator-deactivated pattern was re-promoted")
	}
	if p.SampleCount != 10 {
		t.Errorf("SampleCount changed to %d", p.SampleCount)
	}
}

func TestLearnDedupesWithinOneSample(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store, 2, nil)

	// The same misread appears on two lines of one receipt; it still counts
	// as a single observation.
	weak := "Melko UHT\nMelko kozie"
	strong := "Mleko UHT\nMleko kozie"
	if err := svc.Learn(context.Background(), uuid.New(), weak, strong); err != nil {
		t.Fatal(err)
	}
	if got := store.patterns["Melko"].SampleCount; got != 1 {
		t.Errorf("SampleCount = %d, want 1", got)
	}
}
