package usecases

import (
	"fmt"

	"github.com/john-san/rest-api/cache"
	"github.com/john-san/rest-api/entities"
	"github.com/john-san/rest-api/repositories"
)

const (
	cacheKeyAllCourses  = "courses:all"
	cacheKeyCoursePrefx = "courses:"
)

// CatalogNotifier receives course lifecycle events. Implemented by the
// websocket event dispatcher; handlers must never block on it.
type CatalogNotifier interface {
	CourseCreated(course *entities.Course)
	CourseUpdated(course *entities.Course)
	CourseDeleted(course *entities.Course)
}

type CourseUseCase struct {
	CourseRepo repositories.CourseRepository
	catalog    *cache.Catalog
	notifier   CatalogNotifier
}

func NewCourseUseCase(courseRepo repositories.CourseRepository, catalog *cache.Catalog, notifier CatalogNotifier) *CourseUseCase {
	return &CourseUseCase{
		CourseRepo: courseRepo,
		catalog:    catalog,
		notifier:   notifier,
	}
}

// UpdateCourseInput carries the whitelisted mutable course fields.
type UpdateCourseInput struct {
	Title       string
	Description string
}

// ListCourses returns every course with its owner, read through the cache.
func (uc *CourseUseCase) ListCourses() ([]entities.Course, error) {
	if v, ok := uc.catalog.Get(cacheKeyAllCourses); ok {
		return v.([]entities.Course), nil
	}
	courses, err := uc.CourseRepo.GetAll()
	if err != nil {
		return nil, err
	}
	uc.catalog.Set(cacheKeyAllCourses, courses)
	return courses, nil
}

// GetCourse returns a single course with its owner.
func (uc *CourseUseCase) GetCourse(id string) (*entities.Course, error) {
	if v, ok := uc.catalog.Get(cacheKeyCoursePrefx + id); ok {
		return v.(*entities.Course), nil
	}
	course, err := uc.CourseRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if course == nil {
		return nil, ErrNotFound
	}
	uc.catalog.Set(cacheKeyCoursePrefx+id, course)
	return course, nil
}

// CreateCourse inserts a course owned by the authenticated caller.
func (uc *CourseUseCase) CreateCourse(owner *entities.User, course *entities.Course) error {
	existing, err := uc.CourseRepo.GetByTitle(course.Title)
	if err != nil {
		return err
	}
	if existing != nil {
		return &ConflictError{Message: fmt.Sprintf("the course titled %q already exists", course.Title)}
	}

	course.UserID = owner.ID
	if err := uc.CourseRepo.Create(course); err != nil {
		if err == repositories.ErrDuplicateKey {
			return &ConflictError{Message: fmt.Sprintf("the course titled %q already exists", course.Title)}
		}
		return err
	}

	uc.catalog.Flush()
	uc.notifier.CourseCreated(course)
	return nil
}

// UpdateCourse applies title/description if the caller owns the course.
func (uc *CourseUseCase) UpdateCourse(current *entities.User, id string, in UpdateCourseInput) error {
	course, err := uc.CourseRepo.GetByID(id)
	if err != nil {
		return err
	}
	if course == nil {
		return ErrNotFound
	}
	if course.UserID != current.ID {
		return ErrPermissionDenied
	}

	course.Title = in.Title
	course.Description = in.Description

	if err := uc.CourseRepo.Update(course); err != nil {
		if err == repositories.ErrDuplicateKey {
			return &ConflictError{Message: fmt.Sprintf("the course titled %q already exists", in.Title)}
		}
		return err
	}

	uc.catalog.Flush()
	uc.notifier.CourseUpdated(course)
	return nil
}

// DeleteCourse removes the course if the caller owns it.
func (uc *CourseUseCase) DeleteCourse(current *entities.User, id string) error {
	course, err := uc.CourseRepo.GetByID(id)
	if err != nil {
		return err
	}
	if course == nil {
		return ErrNotFound
	}
	if course.UserID != current.ID {
		return ErrPermissionDenied
	}

	if err := uc.CourseRepo.Delete(id); err != nil {
		return err
	}

	uc.catalog.Flush()
	uc.notifier.CourseDeleted(course)
	return nil
}
