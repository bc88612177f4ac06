package repository

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/codemarcinu/pantry-tracker/gen/ent"
	"github.com/codemarcinu/pantry-tracker/gen/ent/category"
	"github.com/codemarcinu/pantry-tracker/gen/ent/product"
	"github.com/codemarcinu/pantry-tracker/internal/entity"
	"github.com/codemarcinu/pantry-tracker/internal/matching"
	"github.com/codemarcinu/pantry-tracker/internal/utils"
)

// ProductRepository is the catalog surface: reads for the fuzzy matcher,
// idempotent ghost creation for misses.
type ProductRepository interface {
	matching.Catalog
	Get(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	List(ctx context.Context, activeOnly bool) ([]*entity.Product, error)
}

type productRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewProductRepository(client *ent.Client, logger *slog.Logger) ProductRepository {
	return &productRepository{client: client, logger: logger}
}

func (r *productRepository) Get(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	row, err := r.client.Product.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return utils.ToProduct(row), nil
}

func (r *productRepository) List(ctx context.Context, activeOnly bool) ([]*entity.Product, error) {
	q := r.client.Product.Query()
	if activeOnly {
		q = q.Where(product.IsActive(true))
	}
	rows, err := q.Order(product.ByName()).All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.Product, len(rows))
	for i, row := range rows {
		out[i] = utils.ToProduct(row)
	}
	return out, nil
}

func (r *productRepository) FindByBarcode(ctx context.Context, barcode string) (*entity.Product, error) {
	row, err := r.client.Product.Query().
		Where(product.BarcodeEQ(barcode)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return utils.ToProduct(row), nil
}

// FindCandidates returns the active catalog for fuzzy scoring. The catalog
// is small and read-mostly; scoring in process beats guessing which SQL
// LIKE pattern a misread name would need.
func (r *productRepository) FindCandidates(ctx context.Context, _ string) ([]entity.Product, error) {
	rows, err := r.client.Product.Query().
		Where(product.IsActive(true)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entity.Product, len(rows))
	for i, row := range rows {
		out[i] = *utils.ToProduct(row)
	}
	return out, nil
}

// categoryKeywords backs the ghost-category guess: an unknown product still
// gets a best-effort category so expiry inference has something to work
// with. Keywords are diacritic-folded to match normalized names.
var categoryKeywords = []struct {
	name     string
	keywords []string
}{
	{"Dairy", []string{"mleko", "milk", "jogurt", "yogurt", "ser", "cheese", "maslo", "butter", "smietana", "cream"}},
	{"Meat", []string{"mieso", "meat", "kielbasa", "sausage", "wedlina", "szynka", "ham", "kurczak", "chicken"}},
	{"Vegetables", []string{"warzywa", "vegetables", "marchew", "carrot", "ziemniak", "potato", "cebula", "onion"}},
	{"Fruits", []string{"owoce", "fruits", "jablko", "apple", "banan", "banana", "pomarancza", "orange"}},
	{"Bread", []string{"chleb", "bread", "bulka", "roll", "bagietka", "baguette"}},
	{"Beverages", []string{"napoje", "beverages", "woda", "water", "sok", "juice", "cola", "piwo", "beer"}},
	{"Cleaning", []string{"czyszczenie", "cleaning", "detergent", "mydlo", "soap"}},
}

// guessCategoryName picks the category with the most keyword hits in the
// normalized name. Empty when nothing matches.
func guessCategoryName(normalizedName string) string {
	best := ""
	bestScore := 0
	for _, c := range categoryKeywords {
		score := 0
		for _, kw := range c.keywords {
			if strings.Contains(normalizedName, kw) {
				score++
			}
		}
		if score > bestScore {
			bestScore = score
			best = c.name
		}
	}
	return best
}

// CreateGhost get-or-creates an inactive placeholder keyed by normalized
// name. Concurrent receipts race on the same unknown product; the unique
// constraint turns the race into a re-read.
func (r *productRepository) CreateGhost(ctx context.Context, normalizedName, rawAlias string) (*entity.Product, error) {
	create := r.client.Product.Create().
		SetName(normalizedName).
		SetNormalizedName(normalizedName).
		SetIsActive(false).
		SetAliases([]string{rawAlias})
	categoryName := guessCategoryName(normalizedName)
	if categoryName != "" {
		cat, cerr := r.ghostCategory(ctx, categoryName)
		if cerr != nil {
			r.logger.Warn("ghost category lookup failed",
				"category", categoryName, "error", cerr)
		} else {
			create = create.SetCategoryID(cat.ID)
		}
	}
	row, err := create.Save(ctx)
	if err == nil {
		r.logger.Info("created ghost product",
			"name", normalizedName, "category", categoryName)
		return utils.ToProduct(row), nil
	}
	if !ent.IsConstraintError(err) {
		return nil, err
	}

	// Lost the race or the ghost already exists: reuse it and remember the
	// new raw spelling.
	existing, qerr := r.client.Product.Query().
		Where(product.NormalizedName(normalizedName)).
		Only(ctx)
	if qerr != nil {
		return nil, qerr
	}
	if !contains(existing.Aliases, rawAlias) {
		updated, uerr := existing.Update().
			SetAliases(append(existing.Aliases, rawAlias)).
			Save(ctx)
		if uerr == nil {
			existing = updated
		} else {
			r.logger.Warn("failed to append ghost alias",
				"product_id", existing.ID, "error", uerr)
		}
	}
	return utils.ToProduct(existing), nil
}

// ghostCategory get-or-creates the guessed category by name, mirroring the
// constraint-then-requery idiom used for the ghost itself.
func (r *productRepository) ghostCategory(ctx context.Context, name string) (*ent.Category, error) {
	row, err := r.client.Category.Create().
		SetName(name).
		SetMeta(entity.CategoryMeta{}).
		Save(ctx)
	if err == nil {
		return row, nil
	}
	if !ent.IsConstraintError(err) {
		return nil, err
	}
	return r.client.Category.Query().
		Where(category.Name(name)).
		Only(ctx)
}

func (r *productRepository) AddAlias(ctx context.Context, productID string, alias string) error {
	id, err := uuid.Parse(productID)
	if err != nil {
		return err
	}
	row, err := r.client.Product.Get(ctx, id)
	if err != nil {
		return err
	}
	if contains(row.Aliases, alias) {
		return nil
	}
	_, err = row.Update().SetAliases(append(row.Aliases, alias)).Save(ctx)
	return err
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
