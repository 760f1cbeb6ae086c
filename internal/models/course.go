package models

import (
	"time"

	"teenxcel/internal/domain"
)

type Course struct {
	ID                uint              `gorm:"primaryKey" json:"id"`
	CourseCode        string            `gorm:"uniqueIndex;size:64;not null" json:"courseCode"`
	Title             string            `gorm:"size:255;not null" json:"title"`
	Price             int64             `gorm:"not null" json:"price"`
	Duration          string            `gorm:"size:128" json:"duration"`
	Level             string            `gorm:"size:128" json:"level"`
	Description       string            `gorm:"type:text" json:"description"`
	Objectives        string            `gorm:"type:text" json:"objectives"`
	Img               string            `gorm:"size:512" json:"img"`
	MentorName        string            `gorm:"size:255" json:"mentorName"`
	MentorImg         string            `gorm:"size:512" json:"mentorImg"`
	MentorDesignation string            `gorm:"size:255" json:"mentorDesignation"`
	MentorDesc        string            `gorm:"type:text" json:"mentorDesc"`
	CourseType        domain.CourseType `gorm:"size:16;not null;default:'short'" json:"courseType"`
	Category          domain.Category   `gorm:"size:64;not null;default:'Most popular'" json:"category"`
	CreatedAt         time.Time         `json:"createdAt"`
	UpdatedAt         time.Time         `json:"updatedAt"`
}

func (Course) TableName() string {
	return "courses"
}
