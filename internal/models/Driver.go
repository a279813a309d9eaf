// internal/models/driver.go
package models

import "time"

type Driver struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	UserID uint `json:"user_id" gorm:"uniqueIndex"` // Foreign key to User
	User   User `gorm:"foreignKey:UserID" json:"user,omitempty"`

	Name         string `json:"name"`
	Phone        string `json:"phone"`
	DriverCode   string `json:"driver_code"`
	VehiclePlate string `json:"vehicle_plate"`
	VehicleType  string `json:"vehicle_type"`
	Area         string `json:"area"`
	Status       string `json:"status" gorm:"default:active"`

	// Last reported position, stamped by UpdateLocation.
	Longitude float64    `json:"longitude"`
	Latitude  float64    `json:"latitude"`
	Address   string     `json:"address"`
	LocatedAt *time.Time `json:"located_at"`
}
