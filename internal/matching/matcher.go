package matching

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/agext/levenshtein"

	"github.com/codemarcinu/pantry-tracker/internal/entity"
)

// Catalog is the product read/write surface the matcher needs. The
// repository layer implements it; CreateGhost must be an idempotent upsert
// keyed by normalized name since concurrent receipts race on new products.
type Catalog interface {
	FindByBarcode(ctx context.Context, barcode string) (*entity.Product, error)
	FindCandidates(ctx context.Context, normalizedName string) ([]entity.Product, error)
	CreateGhost(ctx context.Context, normalizedName, rawAlias string) (*entity.Product, error)
	AddAlias(ctx context.Context, productID string, alias string) error
}

// Match is the outcome for one line.
type Match struct {
	Product *entity.Product
	Score   int // 0..100, 100 for barcode hits
	Ghost   bool
	Method  string // barcode | fuzzy | ghost
}

type Config struct {
	// Threshold is the minimum fuzzy score (0..100) to accept a match.
	Threshold int
}

type Matcher struct {
	catalog    Catalog
	normalizer *Normalizer
	cfg        Config
	logger     *slog.Logger
}

func NewMatcher(catalog Catalog, normalizer *Normalizer, cfg Config, logger *slog.Logger) *Matcher {
	if cfg.Threshold <= 0 {
		cfg.Threshold = 85
	}
	if normalizer == nil {
		normalizer = NewNormalizer(nil)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Matcher{catalog: catalog, normalizer: normalizer, cfg: cfg, logger: logger}
}

// Resolve maps a raw product name (and optional barcode) to a catalog
// product. Order is strict: barcode, fuzzy above threshold, ghost. Every
// call returns a product; a nil product means infrastructure failure.
func (m *Matcher) Resolve(ctx context.Context, rawName, barcode string) (Match, error) {
	if barcode != "" {
		p, err := m.catalog.FindByBarcode(ctx, barcode)
		if err != nil {
			return Match{}, fmt.Errorf("barcode lookup: %w", err)
		}
		if p != nil {
			return Match{Product: p, Score: 100, Method: "barcode"}, nil
		}
	}

	normalized := m.normalizer.Normalize(rawName)
	if normalized == "" {
		normalized = strings.ToLower(strings.TrimSpace(rawName))
	}

	candidates, err := m.catalog.FindCandidates(ctx, normalized)
	if err != nil {
		return Match{}, fmt.Errorf("candidate lookup: %w", err)
	}

	best, bestScore := m.pickBest(normalized, candidates)
	if best != nil && bestScore >= m.cfg.Threshold {
		m.logger.Debug("matching.fuzzy_hit",
			"raw", rawName, "product", best.Name, "score", bestScore)
		// Remember the raw spelling so the next receipt matches exactly.
		if !containsFold(best.AllNames(), rawName) {
			if err := m.catalog.AddAlias(ctx, best.ID.String(), rawName); err != nil {
				m.logger.Warn("matching.alias_save_failed",
					"product_id", best.ID.String(), "error", err)
			}
		}
		return Match{Product: best, Score: bestScore, Method: "fuzzy"}, nil
	}

	ghost, err := m.catalog.CreateGhost(ctx, normalized, rawName)
	if err != nil {
		return Match{}, fmt.Errorf("create ghost product: %w", err)
	}
	m.logger.Info("matching.ghost_created",
		"raw", rawName, "normalized", normalized, "best_score", bestScore)
	return Match{Product: ghost, Score: bestScore, Ghost: true, Method: "ghost"}, nil
}

// pickBest scores the query against every candidate name and alias and
// keeps the best.
func (m *Matcher) pickBest(normalized string, candidates []entity.Product) (*entity.Product, int) {
	var best *entity.Product
	bestScore := 0
	for i := range candidates {
		p := &candidates[i]
		if !p.IsActive {
			continue
		}
		for _, name := range p.AllNames() {
			score := Score(normalized, m.normalizer.Normalize(name))
			if score > bestScore {
				best, bestScore = p, score
			}
		}
	}
	return best, bestScore
}

// Score blends plain edit-distance similarity with token-set similarity and
// returns the higher of the two on a 0..100 scale. Token-set comparison
// makes word order irrelevant: "mleko uht 3,2%" and "3,2% UHT mleko" are the
// same product.
func Score(a, b string) int {
	if a == "" || b == "" {
		return 0
	}
	if a == b {
		return 100
	}
	direct := levenshtein.Similarity(a, b, nil)

	ta := strings.Join(TokenSet(a), " ")
	tb := strings.Join(TokenSet(b), " ")
	tokenSet := levenshtein.Similarity(ta, tb, nil)

	score := direct
	if tokenSet > score {
		score = tokenSet
	}
	return int(score * 100)
}

func containsFold(haystack []string, needle string) bool {
	for _, s := range haystack {
		if strings.EqualFold(s, needle) {
			return true
		}
	}
	return false
}
