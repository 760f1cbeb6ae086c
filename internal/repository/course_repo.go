package repository

import (
	"context"

	"teenxcel/internal/apperror"
	"teenxcel/internal/models"

	"gorm.io/gorm"
)

type CourseRepository struct {
	db *gorm.DB
}

func NewCourseRepository(db *gorm.DB) *CourseRepository {
	return &CourseRepository{db: db}
}

func (r *CourseRepository) Create(ctx context.Context, c *models.Course) error {
	return translate(r.db.WithContext(ctx).Create(c).Error, nil, apperror.ErrDuplicateCourse)
}

func (r *CourseRepository) GetByCode(ctx context.Context, code string) (*models.Course, error) {
	var c models.Course
	if err := r.db.WithContext(ctx).Where("course_code = ?", code).First(&c).Error; err != nil {
		return nil, translate(err, apperror.ErrCourseNotFound, nil)
	}
	return &c, nil
}

func (r *CourseRepository) List(ctx context.Context) ([]models.Course, error) {
	var list []models.Course
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&list).Error
	return list, translate(err, nil, nil)
}

func (r *CourseRepository) Update(ctx context.Context, c *models.Course) error {
	return translate(r.db.WithContext(ctx).Save(c).Error, apperror.ErrCourseNotFound, apperror.ErrDuplicateCourse)
}

func (r *CourseRepository) Delete(ctx context.Context, id uint) error {
	return deleted(r.db.WithContext(ctx).Delete(&models.Course{}, id), apperror.ErrCourseNotFound)
}
