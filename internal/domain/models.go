package domain

// ProviderRAM is the provider_name under which partner identities are linked.
const ProviderRAM = "ram"

type Customer struct {
	ID        string  `db:"id"`
	Email     *string `db:"email"` // nullable: OAuth-style provisioning may omit it
	FirstName string  `db:"first_name"`
	LastName  string  `db:"last_name"`
	ChannelID string  `db:"channel_id"`
	GroupID   int     `db:"customer_group_id"`
	Verified  bool    `db:"verified"`
	Active    bool    `db:"active"`
	Hash      string  `db:"password_hash"`
	CreatedAt string  `db:"created_at"`
}

type IdentityLink struct {
	ProviderName string `db:"provider_name"`
	ProviderID   string `db:"provider_id"`
	CustomerID   string `db:"customer_id"`
	CreatedAt    string `db:"created_at"`
}

type Product struct {
	ID           int64    `db:"id"`
	Name         string   `db:"name"`
	ShortDesc    string   `db:"short_description"`
	Description  string   `db:"description"`
	Price        float64  `db:"price"`
	SpecialPrice *float64 `db:"special_price"`
	URLKey       string   `db:"url_key"`
	ImagePath    string   `db:"image_path"`
	Active       bool     `db:"active"`
	Visible      bool     `db:"visible"`
	Saleable     bool     `db:"saleable"`
	CreatedAt    string   `db:"created_at"`
}

// MinimalPrice is the effective sell price: the special price when one is set
// below the regular price.
func (p Product) MinimalPrice() float64 {
	if p.SpecialPrice != nil && *p.SpecialPrice < p.Price {
		return *p.SpecialPrice
	}
	return p.Price
}

func (p Product) OnSale() bool {
	return p.SpecialPrice != nil && *p.SpecialPrice < p.Price
}

// ProductCard is the trimmed product shape returned to the partner app.
type ProductCard struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	Description    string  `json:"description"`
	Price          float64 `json:"price"`
	PriceFormatted string  `json:"price_formatted"`
	ImageURL       string  `json:"image_url"`
	URL            string  `json:"url"`
	IsSaleable     bool    `json:"is_saleable"`
	OnSale         bool    `json:"on_sale"`
}
