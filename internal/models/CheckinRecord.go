package models

import "time"

// CheckinRecord is a timestamped presence event reported by a driver.
type CheckinRecord struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	DriverID    uint      `json:"driver_id" gorm:"index"`
	Driver      Driver    `gorm:"foreignKey:DriverID" json:"driver,omitempty"`
	Longitude   float64   `json:"longitude"`
	Latitude    float64   `json:"latitude"`
	Address     string    `json:"address"`
	Note        string    `json:"note"`
	CheckinTime time.Time `json:"checkin_time"`
}
