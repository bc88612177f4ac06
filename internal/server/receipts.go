package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pantrypb "github.com/codemarcinu/pantry-tracker/gen/proto/pantry/v1"
	"github.com/codemarcinu/pantry-tracker/constants"
	"github.com/codemarcinu/pantry-tracker/internal/async"
	"github.com/codemarcinu/pantry-tracker/internal/common"
	"github.com/codemarcinu/pantry-tracker/internal/repository"
	"github.com/codemarcinu/pantry-tracker/internal/utils"
)

// Resumer continues a reviewed receipt through finalization.
type Resumer interface {
	Resume(ctx context.Context, receiptID uuid.UUID) error
}

type ReceiptService struct {
	pantrypb.UnimplementedReceiptsServiceServer
	receiptRepo repository.ReceiptRepository
	queue       *async.ProcessorQueue
	resumer     Resumer
	logger      *slog.Logger
}

func NewReceiptService(receiptRepo repository.ReceiptRepository, queue *async.ProcessorQueue, resumer Resumer, logger *slog.Logger) *ReceiptService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReceiptService{
		receiptRepo: receiptRepo,
		queue:       queue,
		resumer:     resumer,
		logger:      logger,
	}
}

func (s *ReceiptService) UploadReceipt(ctx context.Context, req *pantrypb.UploadReceiptRequest) (*pantrypb.UploadReceiptResponse, error) {
	path := strings.TrimSpace(req.GetSourcePath())
	if path == "" {
		s.logger.Error("upload request missing source_path")
		return nil, status.Error(codes.InvalidArgument, "source_path is required")
	}
	if constants.MapExtToFormat(filepath.Ext(path)) == "" {
		s.logger.Error("unsupported receipt format", "source_path", path)
		return nil, status.Errorf(codes.InvalidArgument, "unsupported file format: %s", filepath.Ext(path))
	}

	v := common.NewValidator()
	if cur := strings.TrimSpace(req.GetCurrency()); cur != "" {
		v.Field("currency", cur, common.CurrencyCode)
	}
	if raw := strings.TrimSpace(req.GetDeclaredTotal()); raw != "" {
		v.Field("declared_total", raw, common.PositiveAmount)
	}
	if err := common.ValidateAndReturnError(v); err != nil {
		s.logger.Error("upload request rejected", "source_path", path, "error", err)
		return nil, err
	}

	create := &repository.CreateReceiptRequest{
		SourcePath: path,
		Currency:   strings.TrimSpace(req.GetCurrency()),
	}
	if name := strings.TrimSpace(req.GetStoreName()); name != "" {
		create.StoreName = &name
	}
	if raw := strings.TrimSpace(req.GetDeclaredTotal()); raw != "" {
		total, err := decimal.NewFromString(strings.ReplaceAll(raw, ",", "."))
		if err != nil {
			return nil, status.Errorf(codes.InvalidArgument, "declared_total: %v", err)
		}
		create.DeclaredTotal = &total
	}

	rec, err := s.receiptRepo.Create(ctx, create)
	if err != nil {
		s.logger.Error("failed to create receipt", "source_path", path, "error", err)
		return nil, status.Errorf(codes.Internal, "create receipt: %v", err)
	}

	if err := s.queue.Enqueue(ctx, async.Job{ReceiptID: rec.ID}); err != nil {
		s.logger.Error("failed to enqueue receipt", "receipt_id", rec.ID, "error", err)
	}

	s.logger.Info("receipt uploaded", "receipt_id", rec.ID, "source_path", path)
	return &pantrypb.UploadReceiptResponse{Receipt: utils.ToPBReceiptFromEntity(rec)}, nil
}

func (s *ReceiptService) GetReceipt(ctx context.Context, req *pantrypb.GetReceiptRequest) (*pantrypb.GetReceiptResponse, error) {
	id, err := parseID(req.GetReceiptId(), "receipt_id")
	if err != nil {
		return nil, err
	}
	rec, err := s.receiptRepo.Get(ctx, id)
	if err != nil {
		s.logger.Error("failed to get receipt", "receipt_id", id, "error", err)
		return nil, status.Errorf(codes.NotFound, "receipt %s: %v", id, err)
	}
	return &pantrypb.GetReceiptResponse{Receipt: utils.ToPBReceiptFromEntity(rec)}, nil
}

func (s *ReceiptService) ListReceipts(ctx context.Context, req *pantrypb.ListReceiptsRequest) (*pantrypb.ListReceiptsResponse, error) {
	var st *constants.ReceiptStatus
	if raw := strings.TrimSpace(req.GetStatus()); raw != "" {
		v := constants.ReceiptStatus(raw)
		st = &v
	}

	var fromDate, toDate *time.Time
	if fd := strings.TrimSpace(req.GetFromDate()); fd != "" {
		from, err := utils.ParseYMD(fd)
		if err != nil {
			s.logger.Error("invalid from_date format", "from_date", fd, "error", err)
			return nil, status.Errorf(codes.InvalidArgument, "from_date invalid (YYYY-MM-DD): %v", err)
		}
		fromDate = &from
	}
	if td := strings.TrimSpace(req.GetToDate()); td != "" {
		to, err := utils.ParseYMD(td)
		if err != nil {
			s.logger.Error("invalid to_date format", "to_date", td, "error", err)
			return nil, status.Errorf(codes.InvalidArgument, "to_date invalid (YYYY-MM-DD): %v", err)
		}
		toDate = &to
	}

	recs, err := s.receiptRepo.List(ctx, st, fromDate, toDate)
	if err != nil {
		s.logger.Error("failed to list receipts", "error", err)
		return nil, status.Errorf(codes.Internal, "list receipts: %v", err)
	}

	out := make([]*pantrypb.Receipt, 0, len(recs))
	for _, r := range recs {
		out = append(out, utils.ToPBReceiptFromEntity(r))
	}
	return &pantrypb.ListReceiptsResponse{Receipts: out}, nil
}

func (s *ReceiptService) ListLineItems(ctx context.Context, req *pantrypb.ListLineItemsRequest) (*pantrypb.ListLineItemsResponse, error) {
	id, err := parseID(req.GetReceiptId(), "receipt_id")
	if err != nil {
		return nil, err
	}
	lines, err := s.receiptRepo.ListLineItems(ctx, id)
	if err != nil {
		s.logger.Error("failed to list line items", "receipt_id", id, "error", err)
		return nil, status.Errorf(codes.Internal, "list line items: %v", err)
	}
	out := make([]*pantrypb.LineItem, 0, len(lines))
	for i := range lines {
		out = append(out, utils.ToPBLineItem(&lines[i]))
	}
	return &pantrypb.ListLineItemsResponse{LineItems: out}, nil
}

func (s *ReceiptService) CancelReceipt(ctx context.Context, req *pantrypb.CancelReceiptRequest) (*pantrypb.CancelReceiptResponse, error) {
	id, err := parseID(req.GetReceiptId(), "receipt_id")
	if err != nil {
		return nil, err
	}
	rec, err := s.receiptRepo.Get(ctx, id)
	if err != nil {
		return nil, status.Errorf(codes.NotFound, "receipt %s: %v", id, err)
	}
	if rec.Status.Terminal() {
		return nil, status.Errorf(codes.FailedPrecondition, "receipt %s is already %s", id, rec.Status)
	}
	if err := s.receiptRepo.MarkCancelled(ctx, id); err != nil {
		s.logger.Error("failed to cancel receipt", "receipt_id", id, "error", err)
		return nil, status.Errorf(codes.Internal, "cancel receipt: %v", err)
	}

	s.logger.Info("receipt cancellation requested", "receipt_id", id)
	rec, err = s.receiptRepo.Get(ctx, id)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "reload receipt: %v", err)
	}
	return &pantrypb.CancelReceiptResponse{Receipt: utils.ToPBReceiptFromEntity(rec)}, nil
}

func (s *ReceiptService) ReprocessReceipt(ctx context.Context, req *pantrypb.ReprocessReceiptRequest) (*pantrypb.ReprocessReceiptResponse, error) {
	id, err := parseID(req.GetReceiptId(), "receipt_id")
	if err != nil {
		return nil, err
	}
	rec, err := s.receiptRepo.Get(ctx, id)
	if err != nil {
		return nil, status.Errorf(codes.NotFound, "receipt %s: %v", id, err)
	}
	switch rec.Status {
	case constants.StatusReviewPending, constants.StatusError:
	default:
		return nil, status.Errorf(codes.FailedPrecondition,
			"receipt %s is %s; only review_pending or error receipts can be reprocessed", id, rec.Status)
	}

	if err := s.receiptRepo.UpdateStatus(ctx, id, constants.StatusPendingOCR, "reprocess requested"); err != nil {
		s.logger.Error("failed to reset receipt status", "receipt_id", id, "error", err)
		return nil, status.Errorf(codes.Internal, "reset receipt: %v", err)
	}
	if err := s.queue.Enqueue(ctx, async.Job{ReceiptID: id}); err != nil {
		s.logger.Error("failed to enqueue receipt", "receipt_id", id, "error", err)
	}

	s.logger.Info("receipt requeued", "receipt_id", id)
	rec, err = s.receiptRepo.Get(ctx, id)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "reload receipt: %v", err)
	}
	return &pantrypb.ReprocessReceiptResponse{Receipt: utils.ToPBReceiptFromEntity(rec)}, nil
}

func (s *ReceiptService) ReviewReceipt(ctx context.Context, req *pantrypb.ReviewReceiptRequest) (*pantrypb.ReviewReceiptResponse, error) {
	id, err := parseID(req.GetReceiptId(), "receipt_id")
	if err != nil {
		return nil, err
	}
	rec, err := s.receiptRepo.Get(ctx, id)
	if err != nil {
		return nil, status.Errorf(codes.NotFound, "receipt %s: %v", id, err)
	}
	if rec.Status != constants.StatusReviewPending {
		return nil, status.Errorf(codes.FailedPrecondition,
			"receipt %s is %s; only review_pending receipts can be reviewed", id, rec.Status)
	}

	for i, c := range req.GetCorrections() {
		lineID, err := parseID(c.GetLineId(), "corrections.line_id")
		if err != nil {
			return nil, err
		}
		productID, err := parseID(c.GetProductId(), "corrections.product_id")
		if err != nil {
			return nil, err
		}
		if err := s.receiptRepo.SetLineMatch(ctx, lineID, productID, json.RawMessage(`{"method":"human"}`)); err != nil {
			s.logger.Error("failed to apply line correction", "receipt_id", id, "line_id", lineID, "error", err)
			return nil, status.Errorf(codes.Internal, "apply correction %d: %v", i, err)
		}
	}

	if err := s.resumer.Resume(ctx, id); err != nil {
		s.logger.Error("failed to resume reviewed receipt", "receipt_id", id, "error", err)
		return nil, status.Errorf(codes.FailedPrecondition, "resume receipt: %v", err)
	}

	s.logger.Info("receipt reviewed", "receipt_id", id, "corrections", len(req.GetCorrections()))
	rec, err = s.receiptRepo.Get(ctx, id)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "reload receipt: %v", err)
	}
	return &pantrypb.ReviewReceiptResponse{Receipt: utils.ToPBReceiptFromEntity(rec)}, nil
}

func parseID(raw, field string) (uuid.UUID, error) {
	if strings.TrimSpace(raw) == "" {
		return uuid.Nil, status.Errorf(codes.InvalidArgument, "%s is required", field)
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, status.Errorf(codes.InvalidArgument, "%s must be a UUID", field)
	}
	return id, nil
}
