package server

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pantrypb "github.com/codemarcinu/pantry-tracker/gen/proto/pantry/v1"
	"github.com/codemarcinu/pantry-tracker/internal/export"
	"github.com/codemarcinu/pantry-tracker/internal/repository"
	"github.com/codemarcinu/pantry-tracker/internal/utils"
)

type InventoryService struct {
	pantrypb.UnimplementedInventoryServiceServer
	inventoryRepo repository.InventoryRepository
	exporter      *export.Service
	logger        *slog.Logger
}

func NewInventoryService(inventoryRepo repository.InventoryRepository, exporter *export.Service, logger *slog.Logger) *InventoryService {
	if logger == nil {
		logger = slog.Default()
	}
	return &InventoryService{
		inventoryRepo: inventoryRepo,
		exporter:      exporter,
		logger:        logger,
	}
}

func (s *InventoryService) ListInventory(ctx context.Context, req *pantrypb.ListInventoryRequest) (*pantrypb.ListInventoryResponse, error) {
	var productID *uuid.UUID
	if raw := strings.TrimSpace(req.GetProductId()); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, "product_id must be a UUID")
		}
		productID = &id
	}

	var expiringBefore *time.Time
	if raw := strings.TrimSpace(req.GetExpiringBefore()); raw != "" {
		t, err := utils.ParseYMD(raw)
		if err != nil {
			return nil, status.Errorf(codes.InvalidArgument, "expiring_before invalid (YYYY-MM-DD): %v", err)
		}
		expiringBefore = &t
	}

	items, err := s.inventoryRepo.List(ctx, productID, expiringBefore)
	if err != nil {
		s.logger.Error("failed to list inventory", "error", err)
		return nil, status.Errorf(codes.Internal, "list inventory: %v", err)
	}

	out := make([]*pantrypb.InventoryItem, 0, len(items))
	for i := range items {
		out = append(out, utils.ToPBInventoryItem(&items[i]))
	}
	return &pantrypb.ListInventoryResponse{Items: out}, nil
}

func (s *InventoryService) ConsumeItem(ctx context.Context, req *pantrypb.ConsumeItemRequest) (*pantrypb.ConsumeItemResponse, error) {
	id, err := parseID(req.GetItemId(), "item_id")
	if err != nil {
		return nil, err
	}
	raw := strings.TrimSpace(req.GetQuantity())
	if raw == "" {
		return nil, status.Error(codes.InvalidArgument, "quantity is required")
	}
	qty, err := decimal.NewFromString(strings.ReplaceAll(raw, ",", "."))
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "quantity invalid: %v", err)
	}
	if !qty.IsPositive() {
		return nil, status.Error(codes.InvalidArgument, "quantity must be positive")
	}

	item, err := s.inventoryRepo.Consume(ctx, id, qty, req.GetNotes())
	if err != nil {
		s.logger.Error("failed to consume item", "item_id", id, "error", err)
		return nil, status.Errorf(codes.Internal, "consume item: %v", err)
	}

	s.logger.Info("inventory item consumed", "item_id", id, "quantity", qty.String())
	return &pantrypb.ConsumeItemResponse{Item: utils.ToPBInventoryItem(item)}, nil
}

func (s *InventoryService) ExportInventory(ctx context.Context, req *pantrypb.ExportInventoryRequest) (*pantrypb.ExportInventoryResponse, error) {
	outPath := strings.TrimSpace(req.GetOutputPath())
	if outPath == "" {
		return nil, status.Error(codes.InvalidArgument, "output_path is required")
	}

	data, err := s.exporter.ExportInventoryXLSX(ctx, nil, nil)
	if err != nil {
		s.logger.Error("inventory export failed", "error", err)
		return nil, status.Errorf(codes.Internal, "export inventory: %v", err)
	}

	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return nil, status.Errorf(codes.Internal, "create export directory: %v", err)
	}
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		return nil, status.Errorf(codes.Internal, "write export file: %v", err)
	}

	items, err := s.inventoryRepo.List(ctx, nil, nil)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "count exported rows: %v", err)
	}

	s.logger.Info("inventory exported", "path", outPath, "rows", len(items))
	return &pantrypb.ExportInventoryResponse{Path: outPath, Rows: int32(len(items))}, nil
}
