package repository

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/codemarcinu/pantry-tracker/constants"
	"github.com/codemarcinu/pantry-tracker/gen/ent"
	"github.com/codemarcinu/pantry-tracker/gen/ent/receipt"
	"github.com/codemarcinu/pantry-tracker/gen/ent/receiptlineitem"
	"github.com/codemarcinu/pantry-tracker/internal/entity"
	"github.com/codemarcinu/pantry-tracker/internal/utils"
)

// CreateReceiptRequest wraps parameters for registering an uploaded receipt.
type CreateReceiptRequest struct {
	SourcePath    string
	ContentHash   string
	StoreName     *string
	DeclaredTotal *decimal.Decimal
	Currency      string
}

type ReceiptRepository interface {
	Create(ctx context.Context, req *CreateReceiptRequest) (*entity.Receipt, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Receipt, error)
	// FindByContentHash returns the receipt previously ingested with the
	// same file contents, or nil when the hash is unseen.
	FindByContentHash(ctx context.Context, hash string) (*entity.Receipt, error)
	List(ctx context.Context, status *constants.ReceiptStatus, fromDate, toDate *time.Time) ([]*entity.Receipt, error)
	Update(ctx context.Context, r *entity.Receipt) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status constants.ReceiptStatus, note string) error
	MarkCancelled(ctx context.Context, id uuid.UUID) error
	ReplaceLineItems(ctx context.Context, receiptID uuid.UUID, lines []entity.LineItem) ([]entity.LineItem, error)
	SetLineMatch(ctx context.Context, lineID, productID uuid.UUID, meta json.RawMessage) error
	ListLineItems(ctx context.Context, receiptID uuid.UUID) ([]entity.LineItem, error)
}

type receiptRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewReceiptRepository(client *ent.Client, logger *slog.Logger) ReceiptRepository {
	return &receiptRepository{client: client, logger: logger}
}

func (r *receiptRepository) Create(ctx context.Context, req *CreateReceiptRequest) (*entity.Receipt, error) {
	builder := r.client.Receipt.Create().
		SetSourcePath(req.SourcePath).
		SetStatus(string(constants.StatusPendingOCR))
	if req.ContentHash != "" {
		builder = builder.SetContentHash(req.ContentHash)
	}
	if req.StoreName != nil {
		builder = builder.SetStoreName(*req.StoreName)
	}
	if req.DeclaredTotal != nil {
		builder = builder.SetTotal(req.DeclaredTotal.InexactFloat64())
	}
	if req.Currency != "" {
		builder = builder.SetCurrency(req.Currency)
	}

	rec, err := builder.Save(ctx)
	if err != nil {
		r.logger.Error("failed to create receipt", "path", req.SourcePath, "error", err)
		return nil, err
	}
	return utils.ToReceipt(rec), nil
}

func (r *receiptRepository) Get(ctx context.Context, id uuid.UUID) (*entity.Receipt, error) {
	rec, err := r.client.Receipt.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return utils.ToReceipt(rec), nil
}

func (r *receiptRepository) FindByContentHash(ctx context.Context, hash string) (*entity.Receipt, error) {
	rec, err := r.client.Receipt.Query().
		Where(receipt.ContentHash(hash)).
		Order(receipt.ByCreatedAt()).
		First(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return utils.ToReceipt(rec), nil
}

func (r *receiptRepository) List(ctx context.Context, status *constants.ReceiptStatus, fromDate, toDate *time.Time) ([]*entity.Receipt, error) {
	q := r.client.Receipt.Query()
	if status != nil {
		q = q.Where(receipt.Status(string(*status)))
	}
	if fromDate != nil {
		q = q.Where(receipt.CreatedAtGTE(*fromDate))
	}
	if toDate != nil {
		q = q.Where(receipt.CreatedAtLTE(*toDate))
	}
	recs, err := q.Order(receipt.ByCreatedAt()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list receipts", "error", err)
		return nil, err
	}

	result := make([]*entity.Receipt, len(recs))
	for i, rec := range recs {
		result[i] = utils.ToReceipt(rec)
	}
	return result, nil
}

func (r *receiptRepository) Update(ctx context.Context, in *entity.Receipt) error {
	builder := r.client.Receipt.UpdateOneID(in.ID).
		SetCurrency(in.Currency)
	if in.StoreName != nil {
		builder = builder.SetStoreName(*in.StoreName)
	}
	if in.PurchasedAt != nil {
		builder = builder.SetPurchasedAt(*in.PurchasedAt)
	}
	if in.Total != nil {
		builder = builder.SetTotal(in.Total.InexactFloat64())
	}
	if in.TotalDiff != nil {
		builder = builder.SetTotalDiff(in.TotalDiff.InexactFloat64())
	}
	if len(in.RawExtraction) > 0 {
		builder = builder.SetRawExtraction(in.RawExtraction)
	}

	if _, err := builder.Save(ctx); err != nil {
		r.logger.Error("failed to update receipt", "receipt_id", in.ID, "error", err)
		return err
	}
	return nil
}

func (r *receiptRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status constants.ReceiptStatus, note string) error {
	_, err := r.client.Receipt.UpdateOneID(id).
		SetStatus(string(status)).
		SetProcessingNotes(note).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to update receipt status",
			"receipt_id", id, "status", status, "error", err)
	}
	return err
}

func (r *receiptRepository) MarkCancelled(ctx context.Context, id uuid.UUID) error {
	_, err := r.client.Receipt.UpdateOneID(id).SetCancelled(true).Save(ctx)
	return err
}

// ReplaceLineItems swaps a receipt's parsed lines atomically. Reprocessing a
// receipt re-runs parsing, so stale lines from the previous run must go.
func (r *receiptRepository) ReplaceLineItems(ctx context.Context, receiptID uuid.UUID, lines []entity.LineItem) ([]entity.LineItem, error) {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return nil, err
	}

	if _, err := tx.ReceiptLineItem.Delete().
		Where(receiptlineitem.ReceiptID(receiptID)).
		Exec(ctx); err != nil {
		return nil, rollback(tx, err)
	}

	saved := make([]entity.LineItem, 0, len(lines))
	for _, l := range lines {
		builder := tx.ReceiptLineItem.Create().
			SetReceiptID(receiptID).
			SetRawText(l.RawText).
			SetProductName(l.ProductName).
			SetQuantity(l.Quantity.InexactFloat64()).
			SetUnitPrice(l.UnitPrice.InexactFloat64()).
			SetLineTotal(l.LineTotal.InexactFloat64())
		if l.VATCode != nil {
			builder = builder.SetVatCode(*l.VATCode)
		}
		if len(l.Meta) > 0 {
			builder = builder.SetMeta(l.Meta)
		}
		row, err := builder.Save(ctx)
		if err != nil {
			return nil, rollback(tx, err)
		}
		saved = append(saved, utils.ToLineItem(row))
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return saved, nil
}

func (r *receiptRepository) SetLineMatch(ctx context.Context, lineID, productID uuid.UUID, meta json.RawMessage) error {
	builder := r.client.ReceiptLineItem.UpdateOneID(lineID).
		SetMatchedProductID(productID)
	if len(meta) > 0 {
		builder = builder.SetMeta(meta)
	}
	_, err := builder.Save(ctx)
	if err != nil {
		r.logger.Error("failed to link line to product",
			"line_id", lineID, "product_id", productID, "error", err)
	}
	return err
}

func (r *receiptRepository) ListLineItems(ctx context.Context, receiptID uuid.UUID) ([]entity.LineItem, error) {
	rows, err := r.client.ReceiptLineItem.Query().
		Where(receiptlineitem.ReceiptID(receiptID)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entity.LineItem, len(rows))
	for i, row := range rows {
		out[i] = utils.ToLineItem(row)
	}
	return out, nil
}

func rollback(tx *ent.Tx, err error) error {
	if rerr := tx.Rollback(); rerr != nil {
		return rerr
	}
	return err
}
