package services

import (
	"ramgate/internal/domain"
	"ramgate/internal/repos"
)

type FavoritesService struct {
	Wish      *repos.WishlistRepo
	Prods     *repos.ProductRepo
	Cards     *CardBuilder
	ChannelID string
}

func NewFavoritesService(wish *repos.WishlistRepo, prods *repos.ProductRepo, cards *CardBuilder, channelID string) *FavoritesService {
	return &FavoritesService{Wish: wish, Prods: prods, Cards: cards, ChannelID: channelID}
}

// Toggle flips set membership of (channel, customer, product): present →
// removed (false), absent → added (true). Strict alternation, not a counter.
func (s *FavoritesService) Toggle(customer *domain.Customer, productID int64) (bool, error) {
	p, err := s.Prods.Get(productID)
	if err != nil {
		return false, err
	}
	if p == nil {
		return false, ErrProductNotFound
	}
	if !p.Active {
		return false, ErrProductUnavailable
	}

	removed, err := s.Wish.Remove(s.ChannelID, customer.ID, productID)
	if err != nil {
		return false, err
	}
	if removed {
		return false, nil
	}
	if err := s.Wish.Add(s.ChannelID, customer.ID, productID); err != nil {
		return false, err
	}
	return true, nil
}

// List returns every favorited product id, plus product cards when
// withDetails is set. Products that are gone or deactivated keep their id in
// the first slice but are skipped from the cards.
func (s *FavoritesService) List(customer *domain.Customer, withDetails bool) ([]int64, []domain.ProductCard, error) {
	ids, err := s.Wish.ProductIDs(s.ChannelID, customer.ID)
	if err != nil {
		return nil, nil, err
	}
	if !withDetails {
		return ids, nil, nil
	}

	cards := []domain.ProductCard{}
	for _, id := range ids {
		p, err := s.Prods.Get(id)
		if err != nil {
			return nil, nil, err
		}
		if p == nil || !p.Active {
			continue
		}
		cards = append(cards, s.Cards.Build(*p))
	}
	return ids, cards, nil
}
