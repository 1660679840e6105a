package repositories

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/john-san/rest-api/entities"
)

// In-memory implementations backing tests and local development. They honor
// the same contracts as the Postgres repositories, including ErrDuplicateKey
// on unique-constraint violations.

type memoryUserRepository struct {
	mu    sync.RWMutex
	users map[string]entities.User
}

func NewUserMemoryRepository() UserRepository {
	return &memoryUserRepository{users: make(map[string]entities.User)}
}

func (r *memoryUserRepository) Create(user *entities.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.EmailAddress == user.EmailAddress {
			return ErrDuplicateKey
		}
	}
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	if user.CreatedAt == "" {
		user.CreatedAt = time.Now().Format(time.RFC3339)
		user.UpdatedAt = user.CreatedAt
	}
	r.users[user.ID] = *user
	return nil
}

func (r *memoryUserRepository) GetByID(id string) (*entities.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if u, ok := r.users[id]; ok {
		return &u, nil
	}
	return nil, nil
}

func (r *memoryUserRepository) GetByEmail(email string) (*entities.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.EmailAddress == email {
			return &u, nil
		}
	}
	return nil, nil
}

func (r *memoryUserRepository) Update(user *entities.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.EmailAddress == user.EmailAddress && u.ID != user.ID {
			return ErrDuplicateKey
		}
	}
	user.UpdatedAt = time.Now().Format(time.RFC3339)
	r.users[user.ID] = *user
	return nil
}

func (r *memoryUserRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.users, id)
	return nil
}

type memoryCourseRepository struct {
	mu      sync.RWMutex
	courses map[string]entities.Course
	users   UserRepository
}

// NewCourseMemoryRepository takes the user repository used to hydrate the
// owner association on reads, mirroring the Postgres preload.
func NewCourseMemoryRepository(users UserRepository) CourseRepository {
	return &memoryCourseRepository{courses: make(map[string]entities.Course), users: users}
}

func (r *memoryCourseRepository) Create(course *entities.Course) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.courses {
		if c.Title == course.Title {
			return ErrDuplicateKey
		}
	}
	if course.ID == "" {
		course.ID = uuid.New().String()
	}
	if course.CreatedAt == "" {
		course.CreatedAt = time.Now().Format(time.RFC3339)
		course.UpdatedAt = course.CreatedAt
	}
	stored := *course
	stored.User = nil
	r.courses[course.ID] = stored
	return nil
}

func (r *memoryCourseRepository) GetByID(id string) (*entities.Course, error) {
	r.mu.RLock()
	c, ok := r.courses[id]
	r.mu.RUnlock()
	if !ok {
		return nil, nil
	}
	if owner, err := r.users.GetByID(c.UserID); err == nil && owner != nil {
		c.User = owner
	}
	return &c, nil
}

func (r *memoryCourseRepository) GetByTitle(title string) (*entities.Course, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.courses {
		if c.Title == title {
			out := c
			return &out, nil
		}
	}
	return nil, nil
}

func (r *memoryCourseRepository) GetAll() ([]entities.Course, error) {
	r.mu.RLock()
	courses := make([]entities.Course, 0, len(r.courses))
	for _, c := range r.courses {
		courses = append(courses, c)
	}
	r.mu.RUnlock()

	sort.Slice(courses, func(i, j int) bool {
		if courses[i].CreatedAt == courses[j].CreatedAt {
			return courses[i].ID < courses[j].ID
		}
		return courses[i].CreatedAt < courses[j].CreatedAt
	})
	for i := range courses {
		if owner, err := r.users.GetByID(courses[i].UserID); err == nil && owner != nil {
			courses[i].User = owner
		}
	}
	return courses, nil
}

func (r *memoryCourseRepository) Update(course *entities.Course) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.courses {
		if c.Title == course.Title && c.ID != course.ID {
			return ErrDuplicateKey
		}
	}
	course.UpdatedAt = time.Now().Format(time.RFC3339)
	stored := *course
	stored.User = nil
	r.courses[course.ID] = stored
	return nil
}

func (r *memoryCourseRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.courses, id)
	return nil
}
