// Package cuisine specializes the generic plugin manager for the Chef
// capability family. It narrows the capability type to Chef, offers an
// AChef convenience accessor, and carries the package-level
// contribution chain that independently packaged chef implementations
// register into.
package cuisine

import (
	"context"

	"github.com/google/uuid"
)

// Family is the capability family name for chef plugins.
const Family = "chef"

// Dish is what a Chef produces.
type Dish struct {
	// ID uniquely identifies this serving.
	ID string `json:"id"`
	// Technique is the identifier of the chef that made it.
	Technique string `json:"technique"`
	// Description is a human-readable account of the dish.
	Description string `json:"description"`
}

// NewDish creates a Dish with a generated ID.
func NewDish(technique, description string) *Dish {
	return &Dish{
		ID:          uuid.NewString(),
		Technique:   technique,
		Description: description,
	}
}

// Chef is the capability contract every chef plugin satisfies.
type Chef interface {
	// Make produces a dish. Implementations should honor ctx
	// cancellation if preparation involves real work.
	Make(ctx context.Context) (*Dish, error)
}
