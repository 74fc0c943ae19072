package store

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coursehub/backend/models"
)

func createTestUser(t *testing.T, s *Store, username string) models.User {
	t.Helper()
	user, err := s.CreateUser(models.User{
		Username: username,
		Password: "hashed-password",
		Email:    username + "@example.com",
	})
	require.NoError(t, err)
	return user
}

func createTestCourse(t *testing.T, s *Store, slug string, price float64) models.Course {
	t.Helper()
	instructor := createTestUser(t, s, "instructor-"+slug)
	course, err := s.CreateCourse(models.Course{
		Title:        "Course " + slug,
		Slug:         slug,
		Description:  "A test course",
		Price:        price,
		InstructorID: instructor.ID,
	})
	require.NoError(t, err)
	return course
}

func addLessons(t *testing.T, s *Store, courseID, n int) []models.Lesson {
	t.Helper()
	lessons := make([]models.Lesson, 0, n)
	for i := 1; i <= n; i++ {
		lesson, err := s.CreateLesson(models.Lesson{
			Title:    fmt.Sprintf("Lesson %d", i),
			CourseID: courseID,
			Duration: 30,
			Order:    i,
		})
		require.NoError(t, err)
		lessons = append(lessons, lesson)
	}
	return lessons
}

func TestCreateUserAssignsDefaults(t *testing.T) {
	s := New()

	user, err := s.CreateUser(models.User{Username: "alice", Password: "pw"})
	require.NoError(t, err)

	assert.Equal(t, 1, user.ID)
	assert.Equal(t, "student", user.Role)
	assert.False(t, user.CreatedAt.IsZero())

	got, err := s.GetUser(user.ID)
	require.NoError(t, err)
	assert.Equal(t, user, got)
}

func TestCreateUserUniqueness(t *testing.T) {
	s := New()
	createTestUser(t, s, "alice")

	_, err := s.CreateUser(models.User{Username: "Alice", Password: "pw"})
	assert.ErrorIs(t, err, ErrConflict)

	_, err = s.CreateUser(models.User{Username: "bob", Password: "pw", Email: "alice@example.com"})
	assert.ErrorIs(t, err, ErrConflict)

	_, err = s.CreateUser(models.User{Username: "", Password: "pw"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetUserByUsername(t *testing.T) {
	s := New()
	created := createTestUser(t, s, "alice")

	got, err := s.GetUserByUsername("ALICE")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	_, err = s.GetUserByUsername("nobody")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateUserMergesFields(t *testing.T) {
	s := New()
	user := createTestUser(t, s, "alice")

	updated, err := s.UpdateUser(user.ID, UserUpdate{FirstName: "Alice", Bio: "hello"})
	require.NoError(t, err)
	assert.Equal(t, "Alice", updated.FirstName)
	assert.Equal(t, "hello", updated.Bio)
	assert.Equal(t, user.Email, updated.Email)

	_, err = s.UpdateUser(999, UserUpdate{Bio: "x"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCategoryUniqueness(t *testing.T) {
	s := New()

	_, err := s.CreateCategory(models.Category{Name: "Programming", Slug: "programming"})
	require.NoError(t, err)

	_, err = s.CreateCategory(models.Category{Name: "programming", Slug: "other"})
	assert.ErrorIs(t, err, ErrConflict)

	_, err = s.CreateCategory(models.Category{Name: "Other", Slug: "programming"})
	assert.ErrorIs(t, err, ErrConflict)
}

func TestUpdateCategory(t *testing.T) {
	s := New()

	category, err := s.CreateCategory(models.Category{Name: "Programming", Slug: "programming"})
	require.NoError(t, err)

	updated, err := s.UpdateCategory(category.ID, CategoryUpdate{Description: "All things code", Icon: "fas fa-laptop-code"})
	require.NoError(t, err)
	assert.Equal(t, "All things code", updated.Description)
	assert.Equal(t, "programming", updated.Slug)

	_, err = s.UpdateCategory(999, CategoryUpdate{Description: "x"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCategoryCourseCount(t *testing.T) {
	s := New()
	instructor := createTestUser(t, s, "teach")

	category, err := s.CreateCategory(models.Category{Name: "Programming", Slug: "programming"})
	require.NoError(t, err)
	assert.Equal(t, 0, category.CourseCount)

	for i := 1; i <= 3; i++ {
		_, err := s.CreateCourse(models.Course{
			Title:        fmt.Sprintf("Course %d", i),
			Slug:         fmt.Sprintf("course-%d", i),
			Price:        10,
			InstructorID: instructor.ID,
			CategoryID:   category.ID,
		})
		require.NoError(t, err)
	}

	got, err := s.GetCategory(category.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, got.CourseCount)
}

func TestCreateCourseDefaultsAndValidation(t *testing.T) {
	s := New()
	instructor := createTestUser(t, s, "teach")

	course, err := s.CreateCourse(models.Course{
		Title:        "Go Basics",
		Slug:         "go-basics",
		Price:        49.99,
		InstructorID: instructor.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, "beginner", course.Level)
	assert.Zero(t, course.Rating)
	assert.Zero(t, course.ReviewCount)
	assert.False(t, course.CreatedAt.IsZero())

	_, err = s.CreateCourse(models.Course{Title: "Dup", Slug: "go-basics", Price: 1, InstructorID: instructor.ID})
	assert.ErrorIs(t, err, ErrConflict)

	_, err = s.CreateCourse(models.Course{Title: "Bad", Slug: "bad-price", Price: -1, InstructorID: instructor.ID})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = s.CreateCourse(models.Course{Title: "Bad", Slug: "bad-cat", Price: 1, InstructorID: instructor.ID, CategoryID: 42})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateLessonUpdatesCourse(t *testing.T) {
	s := New()
	course := createTestCourse(t, s, "go-basics", 49.99)
	before, err := s.GetCourse(course.ID)
	require.NoError(t, err)

	addLessons(t, s, course.ID, 2)

	after, err := s.GetCourse(course.ID)
	require.NoError(t, err)
	assert.Equal(t, before.LessonCount+2, after.LessonCount)
	assert.False(t, after.UpdatedAt.Before(before.UpdatedAt))

	_, err = s.CreateLesson(models.Lesson{Title: "Orphan", CourseID: 999})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateCoursePatchesFields(t *testing.T) {
	s := New()
	course := createTestCourse(t, s, "go-basics", 49.99)

	discount := 29.99
	featured := true
	updated, err := s.UpdateCourse(course.ID, CourseUpdate{
		Title:         "Go Basics, Second Edition",
		DiscountPrice: &discount,
		IsFeatured:    &featured,
	})
	require.NoError(t, err)
	assert.Equal(t, "Go Basics, Second Edition", updated.Title)
	require.NotNil(t, updated.DiscountPrice)
	assert.Equal(t, 29.99, *updated.DiscountPrice)
	assert.True(t, updated.IsFeatured)
	assert.Equal(t, 49.99, updated.Price)

	_, err = s.UpdateCourse(999, CourseUpdate{Title: "x"})
	assert.ErrorIs(t, err, ErrNotFound)
}
