package service

import (
	"context"

	"supplementdb/internal/dto"
	"supplementdb/internal/repository"
)

// SupplementService defines the read-side contract backing the HTTP API.
type SupplementService interface {
	GetByBarcode(ctx context.Context, barcode string) (*dto.SupplementExport, error)
	Search(ctx context.Context, req dto.SearchRequest) ([]dto.SupplementExport, error)
}

type supplementService struct {
	repo repository.SupplementRepository
}

func NewSupplementService(repo repository.SupplementRepository) SupplementService {
	return &supplementService{repo: repo}
}

func (s *supplementService) GetByBarcode(ctx context.Context, barcode string) (*dto.SupplementExport, error) {
	m, err := s.repo.FindByBarcode(ctx, barcode)
	if err != nil {
		return nil, err
	}
	resp := dto.FromModel(*m)
	return &resp, nil
}

func (s *supplementService) Search(ctx context.Context, req dto.SearchRequest) ([]dto.SupplementExport, error) {
	rows, err := s.repo.SearchByName(ctx, req.Query, req.Limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SupplementExport, 0, len(rows))
	for _, row := range rows {
		out = append(out, dto.FromModel(row))
	}
	return out, nil
}
