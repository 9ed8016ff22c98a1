package models

import "time"

type Category struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type Service struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	CategoryID  string `json:"category_id,omitempty"`
	Price       int    `json:"price"`
	DurationMin int    `json:"duration_min"`
	Active      bool   `json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Combo is a fixed-price bundle of services sold as one catalog item.
// Membership auto-discount never applies to combos.
type Combo struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	ServiceNames []string `json:"service_names"`
	Price        int      `json:"price"`
	Active       bool     `json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Package struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Price        int    `json:"price"`
	ValidityDays int    `json:"validity_days"`
	Benefits     string `json:"benefits"`
	Active       bool   `json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CouponTemplate struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Code         string `json:"code"`
	Description  string `json:"description"`
	Value        int    `json:"value"`
	ValidityDays int    `json:"validity_days"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
