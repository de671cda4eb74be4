package model

import (
	"time"

	"github.com/google/uuid"
)

// Product is a catalog item. Reads are public; writes are admin-only.
type Product struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Price       float64   `json:"price"`
	Unit        *string   `json:"unit,omitempty"`
	ImageURL    *string   `json:"image_url,omitempty"`
	Featured    bool      `json:"featured"`
	InStock     bool      `json:"in_stock"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ProductFilter narrows and pages the public catalog listing.
type ProductFilter struct {
	Category *string
	Featured *bool
	Search   string
	Page     int
	Limit    int
}
