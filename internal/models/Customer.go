// internal/models/customer.go
package models

import "time"

// Customer is a served delivery location. CustomerNumber is assigned
// once at creation and never mutated afterwards.
type Customer struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	CustomerNumber  string  `json:"customer_number" gorm:"uniqueIndex"`
	CustomerName    string  `json:"customer_name" binding:"required"`
	CustomerAddress string  `json:"customer_address"`
	Area            string  `json:"area"`
	ContactPerson   string  `json:"contact_person"`
	ContactPhone    string  `json:"contact_phone"`
	Longitude       float64 `json:"longitude"`
	Latitude        float64 `json:"latitude"`
	Status          string  `json:"status" gorm:"default:active"`
	UpdateBy        string  `json:"update_by"`
}
