package models

import (
	"time"

	"teenxcel/internal/domain"
)

type CallRequest struct {
	ID        uint              `gorm:"primaryKey" json:"id"`
	Name      string            `gorm:"size:255;not null" json:"name"`
	Phone     string            `gorm:"size:10;not null" json:"phone"`
	School    string            `gorm:"size:255;not null" json:"school"`
	Sem       string            `gorm:"size:64;not null" json:"sem"`
	Status    domain.CallStatus `gorm:"size:16;not null;default:'pending';index" json:"status"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`
}

func (CallRequest) TableName() string {
	return "call_requests"
}
