package repositories

import (
	"errors"

	"github.com/john-san/rest-api/entities"
)

// ErrDuplicateKey is returned when an insert or update violates a unique
// constraint in the store. Uniqueness pre-checks in the use-case layer are
// best-effort; this is the race-safety net.
var ErrDuplicateKey = errors.New("duplicate key value violates a unique constraint")

// Lookup methods return (nil, nil) when no row matches; a non-nil error
// always means the store itself failed.
type UserRepository interface {
	Create(user *entities.User) error
	GetByID(id string) (*entities.User, error)
	GetByEmail(email string) (*entities.User, error)
	Update(user *entities.User) error
	Delete(id string) error
}

type CourseRepository interface {
	Create(course *entities.Course) error
	GetByID(id string) (*entities.Course, error)
	GetByTitle(title string) (*entities.Course, error)
	GetAll() ([]entities.Course, error)
	Update(course *entities.Course) error
	Delete(id string) error
}
