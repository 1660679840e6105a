package repositories

import (
	"errors"
	"fmt"
	"time"

	"github.com/john-san/rest-api/db"
	"github.com/john-san/rest-api/entities"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type coursePgRepository struct {
	db db.Database
}

func NewCoursePgRepository(database db.Database) CourseRepository {
	return &coursePgRepository{db: database}
}

func (r *coursePgRepository) Create(course *entities.Course) error {
	err := r.db.GetDB().Omit(clause.Associations).Create(course).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateKey
		}
		return fmt.Errorf("create course: %w", err)
	}
	return nil
}

func (r *coursePgRepository) GetByID(id string) (*entities.Course, error) {
	var course entities.Course
	err := r.db.GetDB().Preload("User").Where("id = ?", id).First(&course).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get course by id: %w", err)
	}
	return &course, nil
}

func (r *coursePgRepository) GetByTitle(title string) (*entities.Course, error) {
	var course entities.Course
	err := r.db.GetDB().Where("title = ?", title).First(&course).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get course by title: %w", err)
	}
	return &course, nil
}

// GetAll returns courses with their owner preloaded, in insertion order.
func (r *coursePgRepository) GetAll() ([]entities.Course, error) {
	var courses []entities.Course
	err := r.db.GetDB().Preload("User").Order("created_at ASC").Find(&courses).Error
	if err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	return courses, nil
}

func (r *coursePgRepository) Update(course *entities.Course) error {
	course.UpdatedAt = time.Now().Format(time.RFC3339)
	err := r.db.GetDB().Omit(clause.Associations).Save(course).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateKey
		}
		return fmt.Errorf("update course: %w", err)
	}
	return nil
}

func (r *coursePgRepository) Delete(id string) error {
	if err := r.db.GetDB().Where("id = ?", id).Delete(&entities.Course{}).Error; err != nil {
		return fmt.Errorf("delete course: %w", err)
	}
	return nil
}
