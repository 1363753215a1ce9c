package services

import (
	"regexp"
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"ramgate/internal/domain"
)

// CardBuilder shapes products into the trimmed card the partner app renders.
// All generated links use the public base URL; the service itself may be
// reached on an internal host that browsers cannot resolve.
type CardBuilder struct {
	AppURL    string
	PublicURL string
	unit      currency.Unit
	printer   *message.Printer
}

func NewCardBuilder(appURL, publicURL, currencyCode string) *CardBuilder {
	unit, err := currency.ParseISO(currencyCode)
	if err != nil {
		unit = currency.USD
	}
	return &CardBuilder{
		AppURL:    appURL,
		PublicURL: publicURL,
		unit:      unit,
		printer:   message.NewPrinter(language.Spanish),
	}
}

func (b *CardBuilder) Build(p domain.Product) domain.ProductCard {
	desc := p.ShortDesc
	if desc == "" {
		desc = truncate(stripTags(p.Description), 100)
	}

	imageURL := ""
	if p.ImagePath != "" {
		imageURL = RewriteBase(b.AppURL, b.PublicURL, strings.TrimRight(b.AppURL, "/")+p.ImagePath)
	}

	price := p.MinimalPrice()
	return domain.ProductCard{
		ID:             p.ID,
		Name:           p.Name,
		Description:    desc,
		Price:          price,
		PriceFormatted: b.FormatPrice(price),
		ImageURL:       imageURL,
		URL:            strings.TrimRight(b.PublicURL, "/") + "/" + p.URLKey,
		IsSaleable:     p.Saleable,
		OnSale:         p.OnSale(),
	}
}

func (b *CardBuilder) FormatPrice(v float64) string {
	return b.printer.Sprint(currency.Symbol(b.unit.Amount(v)))
}

var reTag = regexp.MustCompile(`<[^>]*>`)

func stripTags(s string) string {
	return strings.TrimSpace(reTag.ReplaceAllString(s, ""))
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
