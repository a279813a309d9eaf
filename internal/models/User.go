package models

import "time"

// User account types.
const (
	UserTypeAdmin  = "admin"
	UserTypeDriver = "driver"
	UserTypeSales  = "sales"
)

// User account statuses.
const (
	StatusActive    = "active"
	StatusInactive  = "inactive"
	StatusSuspended = "suspended"
)

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Username     string     `json:"username" gorm:"uniqueIndex;not null"`
	Password     string     `json:"-"` // bcrypt hash, never serialized
	RealName     string     `json:"real_name"`
	Nickname     string     `json:"nickname"`
	Gender       string     `json:"gender"` // "male", "female"
	Phone        string     `json:"phone"`
	Email        string     `json:"email"`
	Avatar       string     `json:"avatar"`
	WechatOpenid string     `json:"wechat_openid" gorm:"index"`
	UserType     string     `json:"user_type" gorm:"default:sales"` // "admin", "driver", "sales"
	Status       string     `json:"status" gorm:"default:active"`   // "active", "inactive", "suspended"
	DriverCode   string     `json:"driver_code"`
	LastLoginAt  *time.Time `json:"last_login_at"`
}
