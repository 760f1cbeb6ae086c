package service

import (
	"context"
	"testing"

	"teenxcel/internal/apperror"
	"teenxcel/internal/domain"
	"teenxcel/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func strp(s string) *string { return &s }

func TestCourseCreate_Defaults(t *testing.T) {
	courses := new(mockCourseStore)
	courses.On("Create", mock.Anything, mock.AnythingOfType("*models.Course")).Return(nil)
	s := NewCourseService(courses)

	c, err := s.Create(context.Background(), CourseInput{
		CourseCode: " CS101 ",
		Title:      strp("Intro to Security"),
		Price:      int64p(1999),
	})

	require.NoError(t, err)
	assert.Equal(t, "CS101", c.CourseCode)
	assert.Equal(t, domain.CourseTypeShort, c.CourseType)
	assert.Equal(t, domain.CategoryMostPopular, c.Category)
}

func TestCourseCreate_Validation(t *testing.T) {
	courses := new(mockCourseStore)
	s := NewCourseService(courses)

	_, err := s.Create(context.Background(), CourseInput{})
	assert.Equal(t, []string{"courseCode", "title", "price"}, apperror.FieldsOf(err))

	_, err = s.Create(context.Background(), CourseInput{CourseCode: "X", Title: strp("X"), Price: int64p(0)})
	assert.True(t, apperror.IsValidation(err))

	_, err = s.Create(context.Background(), CourseInput{CourseCode: "X", Title: strp("X"), Price: int64p(10), CourseType: strp("recorded")})
	assert.True(t, apperror.IsValidation(err))

	_, err = s.Create(context.Background(), CourseInput{CourseCode: "X", Title: strp("X"), Price: int64p(10), Category: strp("Music")})
	assert.True(t, apperror.IsValidation(err))

	courses.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCourseCreate_Duplicate(t *testing.T) {
	courses := new(mockCourseStore)
	courses.On("Create", mock.Anything, mock.Anything).Return(apperror.ErrDuplicateCourse)
	s := NewCourseService(courses)

	_, err := s.Create(context.Background(), CourseInput{CourseCode: "CS101", Title: strp("T"), Price: int64p(10)})

	assert.True(t, apperror.IsConflict(err))
}

func TestCourseUpdate_Partial(t *testing.T) {
	existing := &models.Course{CourseCode: "CS101", Title: "Old", Price: 1000, Level: "Beginner", CourseType: domain.CourseTypeShort}
	courses := new(mockCourseStore)
	courses.On("GetByCode", mock.Anything, "CS101").Return(existing, nil)
	courses.On("Update", mock.Anything, existing).Return(nil)
	s := NewCourseService(courses)

	c, err := s.Update(context.Background(), CourseInput{
		CourseCode: "CS101",
		Title:      strp("  New title "),
		Level:      strp(""),
		CourseType: strp("live"),
	})

	require.NoError(t, err)
	assert.Equal(t, "New title", c.Title)
	assert.Equal(t, "Beginner", c.Level)
	assert.Equal(t, int64(1000), c.Price)
	assert.Equal(t, domain.CourseTypeLive, c.CourseType)
}

func TestCourseUpdate_NotFound(t *testing.T) {
	courses := new(mockCourseStore)
	courses.On("GetByCode", mock.Anything, "NOPE").Return(nil, apperror.ErrCourseNotFound)
	s := NewCourseService(courses)

	_, err := s.Update(context.Background(), CourseInput{CourseCode: "NOPE"})
	assert.ErrorIs(t, err, apperror.ErrCourseNotFound)

	_, err = s.Update(context.Background(), CourseInput{})
	assert.ErrorIs(t, err, apperror.ErrMissingFields)
}
