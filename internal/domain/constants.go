package domain

import "regexp"

type CourseType string

const (
	CourseTypeLive  CourseType = "live"
	CourseTypeShort CourseType = "short"
)

func (t CourseType) Valid() bool {
	return t == CourseTypeLive || t == CourseTypeShort
}

type Category string

const (
	CategoryCyberSecurity Category = "Cyber security"
	CategoryAI            Category = "AI"
	CategoryDevelopment   Category = "Development"
	CategoryMostPopular   Category = "Most popular"
	CategoryDesign        Category = "Design & Multimedia"
)

var categories = map[Category]struct{}{
	CategoryCyberSecurity: {},
	CategoryAI:            {},
	CategoryDevelopment:   {},
	CategoryMostPopular:   {},
	CategoryDesign:        {},
}

func (c Category) Valid() bool {
	_, ok := categories[c]
	return ok
}

type CallStatus string

const (
	CallPending   CallStatus = "pending"
	CallScheduled CallStatus = "scheduled"
	CallCompleted CallStatus = "completed"
	CallCancelled CallStatus = "cancelled"
	CallRejected  CallStatus = "rejected"
	CallContacted CallStatus = "contacted"
	CallResolved  CallStatus = "resolved"
)

func ParseCallStatus(s string) (CallStatus, bool) {
	switch CallStatus(s) {
	case CallPending, CallScheduled, CallCompleted, CallCancelled, CallRejected, CallContacted, CallResolved:
		return CallStatus(s), true
	}
	return "", false
}

// DefaultNotificationBackground is used when a banner is created without one.
const DefaultNotificationBackground = "https://plus.unsplash.com/premium_photo-1701534008693-0eee0632d47a?fm=jpg&q=60&w=3000"

var phonePattern = regexp.MustCompile(`^\d{10}$`)

func ValidPhone(phone string) bool {
	return phonePattern.MatchString(phone)
}
