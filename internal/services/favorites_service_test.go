package services_test

import (
	"strings"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"ramgate/internal/repos"
	"ramgate/internal/services"
)

func newFavorites(db *sqlx.DB) *services.FavoritesService {
	cards := services.NewCardBuilder("http://shop-internal:8080", "https://shop.example.com", "MXN")
	return services.NewFavoritesService(repos.NewWishlistRepo(db), repos.NewProductRepo(db), cards, "default")
}

func TestToggleAlternates(t *testing.T) {
	db := openTestDB(t)
	svc := newFavorites(db)
	c := provision(t, db, "ext-fav-1")

	fav, err := svc.Toggle(c, 42)
	require.NoError(t, err)
	require.True(t, fav)

	fav, err = svc.Toggle(c, 42)
	require.NoError(t, err)
	require.False(t, fav)

	fav, err = svc.Toggle(c, 42)
	require.NoError(t, err)
	require.True(t, fav)
}

func TestToggleRejectsInactiveProduct(t *testing.T) {
	db := openTestDB(t)
	svc := newFavorites(db)
	c := provision(t, db, "ext-fav-2")

	_, err := svc.Toggle(c, 43)
	require.ErrorIs(t, err, services.ErrProductUnavailable)

	_, err = svc.Toggle(c, 9999)
	require.ErrorIs(t, err, services.ErrProductNotFound)
}

func TestListSkipsDeactivatedCardsButKeepsIDs(t *testing.T) {
	db := openTestDB(t)
	svc := newFavorites(db)
	c := provision(t, db, "ext-fav-3")

	_, err := svc.Toggle(c, 41)
	require.NoError(t, err)
	_, err = svc.Toggle(c, 42)
	require.NoError(t, err)

	_, execErr := db.Exec(`UPDATE products SET active=0 WHERE id=42`)
	require.NoError(t, execErr)

	ids, cards, err := svc.List(c, true)
	require.NoError(t, err)
	require.ElementsMatch(t, []int64{41, 42}, ids)
	require.Len(t, cards, 1)
	require.Equal(t, int64(41), cards[0].ID)
}

func TestListWithoutDetailsOmitsCards(t *testing.T) {
	db := openTestDB(t)
	svc := newFavorites(db)
	c := provision(t, db, "ext-fav-4")

	_, err := svc.Toggle(c, 41)
	require.NoError(t, err)

	ids, cards, err := svc.List(c, false)
	require.NoError(t, err)
	require.Equal(t, []int64{41}, ids)
	require.Nil(t, cards)
}

func TestCardUsesPublicBaseURL(t *testing.T) {
	db := openTestDB(t)
	svc := newFavorites(db)
	c := provision(t, db, "ext-fav-5")

	_, err := svc.Toggle(c, 41)
	require.NoError(t, err)

	_, cards, err := svc.List(c, true)
	require.NoError(t, err)
	require.Len(t, cards, 1)

	card := cards[0]
	require.True(t, strings.HasPrefix(card.ImageURL, "https://shop.example.com/"), card.ImageURL)
	require.Equal(t, "https://shop.example.com/playera-ram", card.URL)
	require.Equal(t, 299.00, card.Price) // special price beats regular
	require.True(t, card.OnSale)
	require.NotEmpty(t, card.PriceFormatted)
}

func TestCardDescriptionFallsBackToTruncatedLongDescription(t *testing.T) {
	db := openTestDB(t)
	svc := newFavorites(db)
	c := provision(t, db, "ext-fav-6")

	long := "<p>" + strings.Repeat("palabra ", 40) + "</p>"
	_, execErr := db.Exec(`UPDATE products SET short_description='', description=? WHERE id=42`, long)
	require.NoError(t, execErr)

	_, err := svc.Toggle(c, 42)
	require.NoError(t, err)

	_, cards, err := svc.List(c, true)
	require.NoError(t, err)
	require.Len(t, cards, 1)
	require.NotContains(t, cards[0].Description, "<p>")
	require.LessOrEqual(t, len([]rune(cards[0].Description)), 100)
}
