package models

import "time"

// Notification is a banner shown on the public site, optionally advertising a coupon.
type Notification struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	BackgroundImage string    `gorm:"size:512" json:"backgroundImage"`
	Image           string    `gorm:"size:512" json:"image"`
	Text            string    `gorm:"type:text;not null" json:"text"`
	SecondaryText   string    `gorm:"type:text" json:"secondaryText"`
	Coupon          bool      `gorm:"not null;default:false" json:"coupon"`
	CouponCode      string    `gorm:"size:64" json:"couponCode"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func (Notification) TableName() string {
	return "notifications"
}
