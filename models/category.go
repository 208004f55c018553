package models

import "time"

// Subcategory is a named subdivision of a spending category.
type Subcategory struct {
	ID         string `json:"id"`
	Name       string `json:"name" validate:"required"`
	CategoryID string `json:"category_id"`
}

// Category groups expenses for budgeting and charts. Subcategories travel
// with their parent: in the backup sheet they are serialized into a single
// JSON cell rather than a sheet of their own.
type Category struct {
	ID            string        `json:"id"`
	Name          string        `json:"name" validate:"required"`
	Icon          string        `json:"icon,omitempty"`
	Color         string        `json:"color,omitempty"`
	Subcategories []Subcategory `json:"subcategories,omitempty"`
	Timestamp     time.Time     `json:"timestamp"`
	SyncStatus    SyncStatus    `json:"sync_status"`
}
