package matching

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/codemarcinu/pantry-tracker/internal/entity"
)

type fakeCatalog struct {
	products []entity.Product
	byCode   map[string]*entity.Product
	ghosts   []string
	aliases  map[string][]string
}

func newFakeCatalog(products ...entity.Product) *fakeCatalog {
	f := &fakeCatalog{
		products: products,
		byCode:   make(map[string]*entity.Product),
		aliases:  make(map[string][]string),
	}
	for i := range f.products {
		if f.products[i].Barcode != nil {
			f.byCode[*f.products[i].Barcode] = &f.products[i]
		}
	}
	return f
}

func (f *fakeCatalog) FindByBarcode(_ context.Context, code string) (*entity.Product, error) {
	return f.byCode[code], nil
}

func (f *fakeCatalog) FindCandidates(_ context.Context, _ string) ([]entity.Product, error) {
	return f.products, nil
}

func (f *fakeCatalog) CreateGhost(_ context.Context, normalized, raw string) (*entity.Product, error) {
	f.ghosts = append(f.ghosts, normalized)
	return &entity.Product{
		ID:      uuid.New(),
		Name:    normalized,
		Aliases: []string{raw},
	}, nil
}

func (f *fakeCatalog) AddAlias(_ context.Context, productID, alias string) error {
	f.aliases[productID] = append(f.aliases[productID], alias)
	return nil
}

func product(name string, aliases ...string) entity.Product {
	return entity.Product{ID: uuid.New(), Name: name, IsActive: true, Aliases: aliases}
}

func TestResolveBarcodeWinsOverFuzzy(t *testing.T) {
	code := "5900512345678"
	byCode := product("Masło Extra 200g")
	byCode.Barcode = &code
	byName := product("Masło Extra")

	cat := newFakeCatalog(byCode, byName)
	m := NewMatcher(cat, nil, Config{}, nil)

	got, err := m.Resolve(context.Background(), "Maslo Extra", code)
	if err != nil {
		t.Fatal(err)
	}
	if got.Method != "barcode" || got.Score != 100 {
		t.Errorf("match = %+v", got)
	}
	if got.Product.Name != "Masło Extra 200g" {
		t.Errorf("product = %q", got.Product.Name)
	}
}

func TestResolveFuzzyAboveThreshold(t *testing.T) {
	cat := newFakeCatalog(product("Mleko UHT 3,2%"))
	m := NewMatcher(cat, nil, Config{Threshold: 85}, nil)

	got, err := m.Resolve(context.Background(), "Mleko UHT 3,2", "")
	if err != nil {
		t.Fatal(err)
	}
	if got.Method != "fuzzy" {
		t.Fatalf("match = %+v", got)
	}
	if got.Ghost {
		t.Error("fuzzy hit marked as ghost")
	}
	if len(cat.ghosts) != 0 {
		t.Errorf("ghosts created: %v", cat.ghosts)
	}
}

func TestResolveTokenOrderIrrelevant(t *testing.T) {
	cat := newFakeCatalog(product("Sok jabłkowy tłoczony"))
	m := NewMatcher(cat, nil, Config{Threshold: 85}, nil)

	got, err := m.Resolve(context.Background(), "tłoczony sok jabłkowy", "")
	if err != nil {
		t.Fatal(err)
	}
	if got.Method != "fuzzy" || got.Score < 85 {
		t.Errorf("match = %+v", got)
	}
}

func TestResolveAliasHit(t *testing.T) {
	cat := newFakeCatalog(product("Jogurt naturalny 400g", "jog nat 400"))
	m := NewMatcher(cat, nil, Config{Threshold: 85}, nil)

	got, err := m.Resolve(context.Background(), "Jog nat 400", "")
	if err != nil {
		t.Fatal(err)
	}
	if got.Method != "fuzzy" {
		t.Errorf("match = %+v", got)
	}
}

func TestResolveCreatesGhostBelowThreshold(t *testing.T) {
	cat := newFakeCatalog(product("Mleko UHT"))
	m := NewMatcher(cat, nil, Config{Threshold: 85}, nil)

	got, err := m.Resolve(context.Background(), "Pasta Wasabi Premium", "")
	if err != nil {
		t.Fatal(err)
	}
	if !got.Ghost || got.Method != "ghost" {
		t.Fatalf("match = %+v", got)
	}
	if got.Product == nil {
		t.Fatal("ghost resolve returned no product")
	}
	if len(cat.ghosts) != 1 || cat.ghosts[0] != "pasta wasabi premium" {
		t.Errorf("ghosts = %v", cat.ghosts)
	}
}

func TestResolveIgnoresInactiveProducts(t *testing.T) {
	ghost := product("pasta wasabi premium")
	ghost.IsActive = false
	cat := newFakeCatalog(ghost)
	m := NewMatcher(cat, nil, Config{Threshold: 85}, nil)

	got, err := m.Resolve(context.Background(), "Pasta Wasabi Premium", "")
	if err != nil {
		t.Fatal(err)
	}
	// Inactive products never win fuzzy matching; the miss goes through
	// CreateGhost, whose upsert reuses the existing ghost row.
	if got.Method != "ghost" {
		t.Errorf("match = %+v", got)
	}
}

func TestNormalize(t *testing.T) {
	n := NewNormalizer(nil)
	tests := []struct {
		in, want string
	}{
		{"Mleko UHT 3,2%", "mleko uht"},
		{"Masło extra 200g", "maslo extra"},
		{"CHLEB ŻYTNI.", "chleb zytni"},
		{"Jog nat", "jogurt naturalny"},
		{"  Ser   Gouda  ", "ser gouda"},
	}
	for _, tt := range tests {
		if got := n.Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestScore(t *testing.T) {
	if got := Score("mleko uht", "mleko uht"); got != 100 {
		t.Errorf("identical score = %d", got)
	}
	if got := Score("mleko uht", "uht mleko"); got != 100 {
		t.Errorf("token-set score = %d", got)
	}
	if got := Score("mleko", "czekolada"); got >= 85 {
		t.Errorf("unrelated score = %d", got)
	}
	if got := Score("", "mleko"); got != 0 {
		t.Errorf("empty score = %d", got)
	}
}
