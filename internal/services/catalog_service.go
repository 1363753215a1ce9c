package services

import (
	"ramgate/internal/domain"
	"ramgate/internal/repos"
	"ramgate/internal/validate"
)

// Fallback page-size bounds when the storefront settings row is missing.
const (
	defaultMinLimit = 12
	defaultMaxLimit = 48
)

type CatalogService struct {
	Prods *repos.ProductRepo
	Cards *CardBuilder
}

func NewCatalogService(prods *repos.ProductRepo, cards *CardBuilder) *CatalogService {
	return &CatalogService{Prods: prods, Cards: cards}
}

// ClampLimit bounds a requested page size to the storefront's configured
// page-size choices ("12,24,36,48" after the per-page migration).
func (s *CatalogService) ClampLimit(limit int) int {
	lo, hi := defaultMinLimit, defaultMaxLimit
	if opts := s.Prods.PerPageOptions(); len(opts) > 0 {
		lo, hi = opts[0], opts[0]
		for _, n := range opts[1:] {
			if n < lo {
				lo = n
			}
			if n > hi {
				hi = n
			}
		}
	}
	return validate.Clamp(limit, lo, hi)
}

// Popular returns active, visible products newest first. The applied limit is
// returned so the handler can echo it in the response meta.
func (s *CatalogService) Popular(limit, offset int) ([]domain.ProductCard, int, int, error) {
	limit = s.ClampLimit(limit)
	if offset < 0 {
		offset = 0
	}

	prods, err := s.Prods.ListPopular(limit, offset)
	if err != nil {
		return nil, 0, limit, err
	}
	total, err := s.Prods.CountVisible()
	if err != nil {
		return nil, 0, limit, err
	}

	cards := make([]domain.ProductCard, 0, len(prods))
	for _, p := range prods {
		cards = append(cards, s.Cards.Build(p))
	}
	return cards, total, limit, nil
}
