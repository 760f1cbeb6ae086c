package service

import (
	"context"
	"strings"

	"teenxcel/internal/apperror"
	"teenxcel/internal/domain"
	"teenxcel/internal/models"
)

type CourseService struct {
	courses CourseStore
}

func NewCourseService(courses CourseStore) *CourseService {
	return &CourseService{courses: courses}
}

// CourseInput carries create and update fields. Nil pointers are left
// unchanged on update.
type CourseInput struct {
	CourseCode        string
	Title             *string
	Price             *int64
	Duration          *string
	Level             *string
	Description       *string
	Objectives        *string
	Img               *string
	MentorName        *string
	MentorImg         *string
	MentorDesignation *string
	MentorDesc        *string
	CourseType        *string
	Category          *string
}

func (s *CourseService) Create(ctx context.Context, in CourseInput) (*models.Course, error) {
	code := strings.TrimSpace(in.CourseCode)
	var missing []string
	if code == "" {
		missing = append(missing, "courseCode")
	}
	if in.Title == nil || strings.TrimSpace(*in.Title) == "" {
		missing = append(missing, "title")
	}
	if in.Price == nil {
		missing = append(missing, "price")
	}
	if len(missing) > 0 {
		return nil, apperror.MissingFields(missing...)
	}

	c := &models.Course{
		CourseCode: code,
		CourseType: domain.CourseTypeShort,
		Category:   domain.CategoryMostPopular,
	}
	if err := apply(c, in); err != nil {
		return nil, err
	}
	if err := s.courses.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Update modifies the course identified by in.CourseCode.
func (s *CourseService) Update(ctx context.Context, in CourseInput) (*models.Course, error) {
	code := strings.TrimSpace(in.CourseCode)
	if code == "" {
		return nil, apperror.MissingFields("courseCode")
	}
	c, err := s.courses.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if err := apply(c, in); err != nil {
		return nil, err
	}
	if err := s.courses.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CourseService) Get(ctx context.Context, code string) (*models.Course, error) {
	return s.courses.GetByCode(ctx, strings.TrimSpace(code))
}

func (s *CourseService) List(ctx context.Context) ([]models.Course, error) {
	return s.courses.List(ctx)
}

func (s *CourseService) Delete(ctx context.Context, id uint) error {
	return s.courses.Delete(ctx, id)
}

func apply(c *models.Course, in CourseInput) error {
	if in.Price != nil {
		if *in.Price <= 0 {
			return apperror.Validation("price must be a positive amount", "price")
		}
		c.Price = *in.Price
	}
	if in.CourseType != nil && *in.CourseType != "" {
		t := domain.CourseType(strings.TrimSpace(*in.CourseType))
		if !t.Valid() {
			return apperror.Validation("courseType must be live or short", "courseType")
		}
		c.CourseType = t
	}
	if in.Category != nil && *in.Category != "" {
		cat := domain.Category(strings.TrimSpace(*in.Category))
		if !cat.Valid() {
			return apperror.Validation("unknown category", "category")
		}
		c.Category = cat
	}
	setText(&c.Title, in.Title)
	setText(&c.Duration, in.Duration)
	setText(&c.Level, in.Level)
	setText(&c.Description, in.Description)
	setText(&c.Objectives, in.Objectives)
	setText(&c.Img, in.Img)
	setText(&c.MentorName, in.MentorName)
	setText(&c.MentorImg, in.MentorImg)
	setText(&c.MentorDesignation, in.MentorDesignation)
	setText(&c.MentorDesc, in.MentorDesc)
	return nil
}

// setText overwrites dst with a trimmed, non-empty src.
func setText(dst *string, src *string) {
	if src == nil {
		return
	}
	if v := strings.TrimSpace(*src); v != "" {
		*dst = v
	}
}
