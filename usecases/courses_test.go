package usecases

import (
	"testing"
	"time"

	"github.com/john-san/rest-api/cache"
	"github.com/john-san/rest-api/entities"
	"github.com/john-san/rest-api/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingNotifier struct {
	events []string
}

func (n *recordingNotifier) CourseCreated(c *entities.Course) {
	n.events = append(n.events, "created:"+c.Title)
}

func (n *recordingNotifier) CourseUpdated(c *entities.Course) {
	n.events = append(n.events, "updated:"+c.Title)
}

func (n *recordingNotifier) CourseDeleted(c *entities.Course) {
	n.events = append(n.events, "deleted:"+c.Title)
}

type courseFixture struct {
	uc       *CourseUseCase
	catalog  *cache.Catalog
	notifier *recordingNotifier
	owner    *entities.User
	other    *entities.User
}

func newCourseFixture(t *testing.T) *courseFixture {
	t.Helper()

	users := NewUserUseCase(repositories.NewUserMemoryRepository())
	owner, err := users.Register("Joe", "Smith", "joe@smith.com", "joepassword")
	require.NoError(t, err)
	other, err := users.Register("Sally", "Jones", "sally@jones.com", "sallypassword")
	require.NoError(t, err)

	catalog := cache.New(time.Minute)
	notifier := &recordingNotifier{}
	repo := repositories.NewCourseMemoryRepository(users.UserRepo)

	return &courseFixture{
		uc:       NewCourseUseCase(repo, catalog, notifier),
		catalog:  catalog,
		notifier: notifier,
		owner:    owner,
		other:    other,
	}
}

func TestCreateCourse(t *testing.T) {
	t.Parallel()

	f := newCourseFixture(t)
	course := &entities.Course{Title: "Learn Go", Description: "A course about Go"}
	require.NoError(t, f.uc.CreateCourse(f.owner, course))

	assert.NotEmpty(t, course.ID)
	assert.Equal(t, f.owner.ID, course.UserID)
	assert.Equal(t, []string{"created:Learn Go"}, f.notifier.events)
}

func TestCreateCourseTitleConflict(t *testing.T) {
	t.Parallel()

	f := newCourseFixture(t)
	require.NoError(t, f.uc.CreateCourse(f.owner, &entities.Course{Title: "Learn Go", Description: "d"}))

	err := f.uc.CreateCourse(f.other, &entities.Course{Title: "Learn Go", Description: "d"})
	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Contains(t, conflict.Message, "Learn Go")
}

func TestGetCourse(t *testing.T) {
	t.Parallel()

	f := newCourseFixture(t)
	course := &entities.Course{Title: "Learn Go", Description: "d"}
	require.NoError(t, f.uc.CreateCourse(f.owner, course))

	got, err := f.uc.GetCourse(course.ID)
	require.NoError(t, err)
	assert.Equal(t, "Learn Go", got.Title)
	// Owner association is hydrated for read endpoints.
	require.NotNil(t, got.User)
	assert.Equal(t, "joe@smith.com", got.User.EmailAddress)
}

func TestGetCourseNotFound(t *testing.T) {
	t.Parallel()

	f := newCourseFixture(t)
	_, err := f.uc.GetCourse("missing-id")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListCoursesReadsThroughCache(t *testing.T) {
	t.Parallel()

	f := newCourseFixture(t)
	require.NoError(t, f.uc.CreateCourse(f.owner, &entities.Course{Title: "Learn Go", Description: "d"}))

	first, err := f.uc.ListCourses()
	require.NoError(t, err)
	require.Len(t, first, 1)

	second, err := f.uc.ListCourses()
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, uint64(1), f.catalog.Stats().Hits)
}

func TestMutationsFlushCache(t *testing.T) {
	t.Parallel()

	f := newCourseFixture(t)
	require.NoError(t, f.uc.CreateCourse(f.owner, &entities.Course{Title: "Learn Go", Description: "d"}))

	courses, err := f.uc.ListCourses()
	require.NoError(t, err)
	require.Len(t, courses, 1)

	require.NoError(t, f.uc.CreateCourse(f.owner, &entities.Course{Title: "Learn SQL", Description: "d"}))

	courses, err = f.uc.ListCourses()
	require.NoError(t, err)
	assert.Len(t, courses, 2)
}

func TestUpdateCourse(t *testing.T) {
	t.Parallel()

	f := newCourseFixture(t)
	course := &entities.Course{Title: "Learn Go", Description: "d", EstimatedTime: "8 hours"}
	require.NoError(t, f.uc.CreateCourse(f.owner, course))

	err := f.uc.UpdateCourse(f.owner, course.ID, UpdateCourseInput{Title: "Learn Go Deeply", Description: "more"})
	require.NoError(t, err)

	got, err := f.uc.GetCourse(course.ID)
	require.NoError(t, err)
	assert.Equal(t, "Learn Go Deeply", got.Title)
	assert.Equal(t, "more", got.Description)
	// Only title and description are mutable through update.
	assert.Equal(t, "8 hours", got.EstimatedTime)
	assert.Contains(t, f.notifier.events, "updated:Learn Go Deeply")
}

func TestUpdateCourseOwnership(t *testing.T) {
	t.Parallel()

	f := newCourseFixture(t)
	course := &entities.Course{Title: "Learn Go", Description: "d"}
	require.NoError(t, f.uc.CreateCourse(f.owner, course))

	err := f.uc.UpdateCourse(f.other, course.ID, UpdateCourseInput{Title: "Hijacked", Description: "x"})
	assert.ErrorIs(t, err, ErrPermissionDenied)

	got, err := f.uc.GetCourse(course.ID)
	require.NoError(t, err)
	assert.Equal(t, "Learn Go", got.Title)
}

func TestUpdateCourseNotFound(t *testing.T) {
	t.Parallel()

	f := newCourseFixture(t)
	err := f.uc.UpdateCourse(f.owner, "missing-id", UpdateCourseInput{Title: "t", Description: "d"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteCourse(t *testing.T) {
	t.Parallel()

	f := newCourseFixture(t)
	course := &entities.Course{Title: "Learn Go", Description: "d"}
	require.NoError(t, f.uc.CreateCourse(f.owner, course))

	assert.ErrorIs(t, f.uc.DeleteCourse(f.other, course.ID), ErrPermissionDenied)

	require.NoError(t, f.uc.DeleteCourse(f.owner, course.ID))
	assert.Contains(t, f.notifier.events, "deleted:Learn Go")

	// Deleting an already-deleted course reports not found, not success.
	assert.ErrorIs(t, f.uc.DeleteCourse(f.owner, course.ID), ErrNotFound)
}
