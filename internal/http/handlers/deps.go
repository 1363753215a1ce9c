package handlers

import (
	"github.com/jmoiron/sqlx"

	"ramgate/internal/config"
	"ramgate/internal/repos"
	"ramgate/internal/services"
)

type Deps struct {
	ProductsHandler *ProductsHandler
	CartHandler     *CartHandler
	WishlistHandler *WishlistHandler
}

func NewDeps(db *sqlx.DB, cfg config.Config) *Deps {
	custRepo := repos.NewCustomerRepo(db)
	prodRepo := repos.NewProductRepo(db)
	cartRepo := repos.NewCartRepo(db)
	wishRepo := repos.NewWishlistRepo(db)

	cards := services.NewCardBuilder(cfg.AppURL, cfg.PublicURL, cfg.Currency)
	identitySvc := services.NewIdentityService(custRepo, cfg.ChannelID)
	catalogSvc := services.NewCatalogService(prodRepo, cards)
	cartSvc := services.NewCartService(cartRepo, prodRepo, cfg.ChannelID)
	favSvc := services.NewFavoritesService(wishRepo, prodRepo, cards, cfg.ChannelID)

	return &Deps{
		ProductsHandler: &ProductsHandler{Catalog: catalogSvc},
		CartHandler:     &CartHandler{Identity: identitySvc, Cart: cartSvc},
		WishlistHandler: &WishlistHandler{Identity: identitySvc, Favorites: favSvc},
	}
}
