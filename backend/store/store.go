package store

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"coursehub/backend/models"
)

// Store holds every entity collection behind a single lock. Ids are assigned
// from per-type counters, start at 1 and are never reused; nothing is ever
// deleted, so ascending-id iteration equals insertion order.
type Store struct {
	mu sync.RWMutex

	users       map[int]models.User
	categories  map[int]models.Category
	courses     map[int]models.Course
	lessons     map[int]models.Lesson
	enrollments map[int]models.Enrollment
	payments    map[int]models.Payment
	reviews     map[int]models.Review

	nextUserID       int
	nextCategoryID   int
	nextCourseID     int
	nextLessonID     int
	nextEnrollmentID int
	nextPaymentID    int
	nextReviewID     int
}

func New() *Store {
	return &Store{
		users:       make(map[int]models.User),
		categories:  make(map[int]models.Category),
		courses:     make(map[int]models.Course),
		lessons:     make(map[int]models.Lesson),
		enrollments: make(map[int]models.Enrollment),
		payments:    make(map[int]models.Payment),
		reviews:     make(map[int]models.Review),
	}
}

func sortedIDs[T any](m map[int]T) []int {
	ids := make([]int, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

func normalize(s string) string {
	return strings.TrimSpace(strings.ToLower(s))
}

// User methods

func (s *Store) GetUser(id int) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return models.User{}, fmt.Errorf("user %d: %w", id, ErrNotFound)
	}
	return user, nil
}

func (s *Store) GetUserByUsername(username string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, id := range sortedIDs(s.users) {
		if normalize(s.users[id].Username) == normalize(username) {
			return s.users[id], nil
		}
	}
	return models.User{}, fmt.Errorf("user %q: %w", username, ErrNotFound)
}

func (s *Store) CreateUser(user models.User) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if strings.TrimSpace(user.Username) == "" || user.Password == "" {
		return models.User{}, fmt.Errorf("username and password are required: %w", ErrInvalidInput)
	}
	for _, existing := range s.users {
		if normalize(existing.Username) == normalize(user.Username) {
			return models.User{}, fmt.Errorf("username %q taken: %w", user.Username, ErrConflict)
		}
		if user.Email != "" && normalize(existing.Email) == normalize(user.Email) {
			return models.User{}, fmt.Errorf("email %q taken: %w", user.Email, ErrConflict)
		}
	}

	s.nextUserID++
	user.ID = s.nextUserID
	if user.Role == "" {
		user.Role = "student"
	}
	user.CreatedAt = time.Now().UTC()
	s.users[user.ID] = user
	return user, nil
}

// UserUpdate patches profile fields; empty strings leave the stored value
// untouched. Identity fields (id, username, role) are not updatable here.
type UserUpdate struct {
	Email     string
	FirstName string
	LastName  string
	Avatar    string
	Bio       string
}

func (s *Store) UpdateUser(id int, update UserUpdate) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return models.User{}, fmt.Errorf("user %d: %w", id, ErrNotFound)
	}
	if update.Email != "" {
		for _, existing := range s.users {
			if existing.ID != id && normalize(existing.Email) == normalize(update.Email) {
				return models.User{}, fmt.Errorf("email %q taken: %w", update.Email, ErrConflict)
			}
		}
		user.Email = update.Email
	}
	if update.FirstName != "" {
		user.FirstName = update.FirstName
	}
	if update.LastName != "" {
		user.LastName = update.LastName
	}
	if update.Avatar != "" {
		user.Avatar = update.Avatar
	}
	if update.Bio != "" {
		user.Bio = update.Bio
	}
	s.users[id] = user
	return user, nil
}

// Category methods

func (s *Store) GetCategory(id int) (models.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	category, ok := s.categories[id]
	if !ok {
		return models.Category{}, fmt.Errorf("category %d: %w", id, ErrNotFound)
	}
	return category, nil
}

func (s *Store) GetCategoryBySlug(slug string) (models.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, id := range sortedIDs(s.categories) {
		if s.categories[id].Slug == slug {
			return s.categories[id], nil
		}
	}
	return models.Category{}, fmt.Errorf("category %q: %w", slug, ErrNotFound)
}

func (s *Store) AllCategories() []models.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()

	categories := make([]models.Category, 0, len(s.categories))
	for _, id := range sortedIDs(s.categories) {
		categories = append(categories, s.categories[id])
	}
	return categories
}

func (s *Store) CreateCategory(category models.Category) (models.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if strings.TrimSpace(category.Name) == "" || strings.TrimSpace(category.Slug) == "" {
		return models.Category{}, fmt.Errorf("category name and slug are required: %w", ErrInvalidInput)
	}
	for _, existing := range s.categories {
		if normalize(existing.Name) == normalize(category.Name) {
			return models.Category{}, fmt.Errorf("category name %q taken: %w", category.Name, ErrConflict)
		}
		if existing.Slug == category.Slug {
			return models.Category{}, fmt.Errorf("category slug %q taken: %w", category.Slug, ErrConflict)
		}
	}

	s.nextCategoryID++
	category.ID = s.nextCategoryID
	category.CourseCount = 0
	s.categories[category.ID] = category
	return category, nil
}

// CategoryUpdate patches descriptive fields; name, slug and the derived
// course count are not updatable.
type CategoryUpdate struct {
	Description string
	Icon        string
}

func (s *Store) UpdateCategory(id int, update CategoryUpdate) (models.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	category, ok := s.categories[id]
	if !ok {
		return models.Category{}, fmt.Errorf("category %d: %w", id, ErrNotFound)
	}
	if update.Description != "" {
		category.Description = update.Description
	}
	if update.Icon != "" {
		category.Icon = update.Icon
	}
	s.categories[id] = category
	return category, nil
}
