package entities

import (
	"bytes"
	"encoding/gob"
	"slices"

	"github.com/shopspring/decimal"
)

type Category string

const (
	CategoryEssential Category = "Essential"
	CategoryPremium   Category = "Premium"
	CategoryArtisan   Category = "Artisan"
	CategoryLuxury    Category = "Luxury"
	CategoryLimited   Category = "Limited"
)

var categories = []Category{
	CategoryEssential,
	CategoryPremium,
	CategoryArtisan,
	CategoryLuxury,
	CategoryLimited,
}

func (c Category) Valid() bool {
	return slices.Contains(categories, c)
}

// Product is immutable from the checkout's point of view: fetched, never mutated.
type Product struct {
	ID          string
	Name        string
	Description string
	Price       decimal.Decimal
	Category    Category
	Featured    bool
}

// CustomerDetails lives for a single checkout attempt.
type CustomerDetails struct {
	Name  string
	Email string
}

func (c CustomerDetails) IsZero() bool {
	return c.Name == "" && c.Email == ""
}

func (p *Product) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)
	if err := enc.Encode(p); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (p *Product) Unmarshal(data []byte) error {
	buf := bytes.NewBuffer(data)
	dec := gob.NewDecoder(buf)
	return dec.Decode(p)
}

// Catalog is a cached product listing.
type Catalog []Product

func (c Catalog) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(c); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (c *Catalog) Unmarshal(data []byte) error {
	return gob.NewDecoder(bytes.NewBuffer(data)).Decode(c)
}

// ContactMessage is a storefront contact form submission.
type ContactMessage struct {
	Name    string
	Email   string
	Message string
}

func init() {
	gob.Register(Product{})
}
