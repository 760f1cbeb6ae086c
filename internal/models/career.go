package models

import "time"

// CareerRequest is a "join us" application.
type CareerRequest struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Name       string    `gorm:"size:255;not null" json:"name"`
	Skills     string    `gorm:"type:text;not null" json:"skills"`
	Experience string    `gorm:"type:text;not null" json:"experience"`
	Phone      string    `gorm:"size:10;not null" json:"phone"`
	Email      string    `gorm:"size:255;not null" json:"email"`
	Location   string    `gorm:"size:255;not null" json:"location"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func (CareerRequest) TableName() string {
	return "career_requests"
}
