package services

import (
	"ramgate/internal/domain"
	"ramgate/internal/repos"
	"ramgate/internal/validate"
)

type CartService struct {
	Carts     *repos.CartRepo
	Prods     *repos.ProductRepo
	ChannelID string
}

func NewCartService(carts *repos.CartRepo, prods *repos.ProductRepo, channelID string) *CartService {
	return &CartService{Carts: carts, Prods: prods, ChannelID: channelID}
}

// AddItem puts qty of the product into the customer's active cart, creating
// the cart on demand and merging quantity into an existing line for the same
// product. Returns the summed item count of the cart afterwards.
func (s *CartService) AddItem(customer *domain.Customer, productID int64, qty int) (int, error) {
	qty = validate.Qty(qty)

	p, err := s.Prods.Get(productID)
	if err != nil {
		return 0, err
	}
	if p == nil {
		return 0, ErrProductNotFound
	}
	if !p.Active {
		return 0, ErrProductUnavailable
	}

	cartID, err := s.Carts.EnsureActive(customer.ID, s.ChannelID)
	if err != nil {
		return 0, err
	}
	if err := s.Carts.UpsertItem(cartID, productID, qty, p.MinimalPrice()); err != nil {
		return 0, err
	}
	return s.Carts.ItemCount(customer.ID, s.ChannelID)
}

// Count returns the summed quantity of the customer's active cart; a nil
// customer or missing cart counts as zero. Never fails.
func (s *CartService) Count(customer *domain.Customer) int {
	if customer == nil {
		return 0
	}
	n, err := s.Carts.ItemCount(customer.ID, s.ChannelID)
	if err != nil {
		return 0
	}
	return n
}
