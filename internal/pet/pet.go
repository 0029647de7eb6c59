package pet

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrNotFound = errors.New("pet not found")
)

// Pet represents a pet listed in the storefront. JSON tags follow the
// camelCase convention used by the mobile client.
type Pet struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Breed string `json:"breed"`
	// Age is only present for user-submitted pets; the seeded catalog does
	// not carry one.
	Age      *int            `json:"age,omitempty"`
	Price    decimal.Decimal `json:"price"`
	ImageURL string          `json:"imageUrl,omitempty"`
}

// SeedPets returns the catalog pets shown before anyone submits their own.
func SeedPets() []Pet {
	return []Pet{
		{
			ID:       "dog-1",
			Name:     "Max",
			Breed:    "Labrador Retriever",
			Price:    decimal.NewFromInt(500),
			ImageURL: "https://images.dog.ceo/breeds/retriever-golden/n02099601_3004.jpg",
		},
		{
			ID:       "dog-2",
			Name:     "Bella",
			Breed:    "German Shepherd",
			Price:    decimal.NewFromInt(650),
			ImageURL: "https://images.dog.ceo/breeds/retriever-golden/n02099601_3004.jpg",
		},
		{
			ID:       "dog-3",
			Name:     "Charlie",
			Breed:    "Golden Retriever",
			Price:    decimal.NewFromInt(600),
			ImageURL: "https://images.dog.ceo/breeds/retriever-golden/n02099601_3004.jpg",
		},
	}
}
