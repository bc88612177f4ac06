package server

import (
	"context"
	"log/slog"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pantrypb "github.com/codemarcinu/pantry-tracker/gen/proto/pantry/v1"
	"github.com/codemarcinu/pantry-tracker/internal/entity"
	"github.com/codemarcinu/pantry-tracker/internal/repository"
	"github.com/codemarcinu/pantry-tracker/internal/utils"
)

type PatternService struct {
	pantrypb.UnimplementedPatternsServiceServer
	patternRepo repository.PatternRepository
	logger      *slog.Logger
}

func NewPatternService(patternRepo repository.PatternRepository, logger *slog.Logger) *PatternService {
	if logger == nil {
		logger = slog.Default()
	}
	return &PatternService{patternRepo: patternRepo, logger: logger}
}

func (s *PatternService) ListPatterns(ctx context.Context, req *pantrypb.ListPatternsRequest) (*pantrypb.ListPatternsResponse, error) {
	var (
		patterns []entity.CorrectionPattern
		err      error
	)
	if req.GetActiveOnly() {
		patterns, err = s.patternRepo.ActivePatterns(ctx)
	} else {
		patterns, err = s.patternRepo.ListAll(ctx)
	}
	if err != nil {
		s.logger.Error("failed to list patterns", "error", err)
		return nil, status.Errorf(codes.Internal, "list patterns: %v", err)
	}

	out := make([]*pantrypb.CorrectionPattern, 0, len(patterns))
	for i := range patterns {
		out = append(out, utils.ToPBPattern(&patterns[i]))
	}
	return &pantrypb.ListPatternsResponse{Patterns: out}, nil
}

// DeactivatePattern is the human veto: the pattern stops applying and the
// learner will never re-promote it.
func (s *PatternService) DeactivatePattern(ctx context.Context, req *pantrypb.DeactivatePatternRequest) (*pantrypb.DeactivatePatternResponse, error) {
	id, err := parseID(req.GetPatternId(), "pattern_id")
	if err != nil {
		return nil, err
	}
	if err := s.patternRepo.Deactivate(ctx, id, true); err != nil {
		s.logger.Error("failed to deactivate pattern", "pattern_id", id, "error", err)
		return nil, status.Errorf(codes.Internal, "deactivate pattern: %v", err)
	}

	s.logger.Info("pattern deactivated by operator", "pattern_id", id)
	patterns, err := s.patternRepo.ListAll(ctx)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "reload pattern: %v", err)
	}
	for i := range patterns {
		if patterns[i].ID == id {
			return &pantrypb.DeactivatePatternResponse{Pattern: utils.ToPBPattern(&patterns[i])}, nil
		}
	}
	return nil, status.Errorf(codes.NotFound, "pattern %s not found", id)
}
