package store

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"coursehub/backend/models"
)

// CourseFilter narrows ListCourses. Zero values impose no constraint; all set
// fields are ANDed together.
type CourseFilter struct {
	// CategoryID matches courses in exactly this category.
	CategoryID int
	// Search is a case-insensitive substring match against title or description.
	Search string
	// MinPrice/MaxPrice bound the effective price (discount if lower), inclusive.
	MinPrice *float64
	MaxPrice *float64
	// Level matches the course level exactly.
	Level string
}

func (f CourseFilter) matches(c models.Course) bool {
	if f.CategoryID != 0 && c.CategoryID != f.CategoryID {
		return false
	}
	if f.Search != "" {
		search := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(c.Title), search) &&
			!strings.Contains(strings.ToLower(c.Description), search) {
			return false
		}
	}
	if f.MinPrice != nil && c.EffectivePrice() < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && c.EffectivePrice() > *f.MaxPrice {
		return false
	}
	if f.Level != "" && c.Level != f.Level {
		return false
	}
	return true
}

func (s *Store) GetCourse(id int) (models.Course, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	course, ok := s.courses[id]
	if !ok {
		return models.Course{}, fmt.Errorf("course %d: %w", id, ErrNotFound)
	}
	return course, nil
}

func (s *Store) GetCourseBySlug(slug string) (models.Course, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, id := range sortedIDs(s.courses) {
		if s.courses[id].Slug == slug {
			return s.courses[id], nil
		}
	}
	return models.Course{}, fmt.Errorf("course %q: %w", slug, ErrNotFound)
}

func (s *Store) ListCourses(filter CourseFilter) []models.Course {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var courses []models.Course
	for _, id := range sortedIDs(s.courses) {
		if filter.matches(s.courses[id]) {
			courses = append(courses, s.courses[id])
		}
	}
	return courses
}

func (s *Store) FeaturedCourses() []models.Course {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var courses []models.Course
	for _, id := range sortedIDs(s.courses) {
		if s.courses[id].IsFeatured {
			courses = append(courses, s.courses[id])
		}
	}
	return courses
}

func (s *Store) CoursesInCategory(categoryID int) []models.Course {
	return s.ListCourses(CourseFilter{CategoryID: categoryID})
}

func (s *Store) CoursesByInstructor(instructorID int) []models.Course {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var courses []models.Course
	for _, id := range sortedIDs(s.courses) {
		if s.courses[id].InstructorID == instructorID {
			courses = append(courses, s.courses[id])
		}
	}
	return courses
}

func (s *Store) CreateCourse(course models.Course) (models.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if strings.TrimSpace(course.Title) == "" || strings.TrimSpace(course.Slug) == "" {
		return models.Course{}, fmt.Errorf("course title and slug are required: %w", ErrInvalidInput)
	}
	if course.Price < 0 {
		return models.Course{}, fmt.Errorf("price must not be negative: %w", ErrInvalidInput)
	}
	for _, existing := range s.courses {
		if existing.Slug == course.Slug {
			return models.Course{}, fmt.Errorf("course slug %q taken: %w", course.Slug, ErrConflict)
		}
	}
	if course.CategoryID != 0 {
		if _, ok := s.categories[course.CategoryID]; !ok {
			return models.Course{}, fmt.Errorf("category %d: %w", course.CategoryID, ErrNotFound)
		}
	}

	s.nextCourseID++
	course.ID = s.nextCourseID
	course.Rating = 0
	course.ReviewCount = 0
	if course.Level == "" {
		course.Level = "beginner"
	}
	now := time.Now().UTC()
	course.CreatedAt = now
	course.UpdatedAt = now
	s.courses[course.ID] = course

	// Category course counts only ever grow; there is no course delete path.
	if course.CategoryID != 0 {
		category := s.categories[course.CategoryID]
		category.CourseCount++
		s.categories[category.ID] = category
	}

	return course, nil
}

// CourseUpdate patches course fields. String zero values are skipped; pointer
// fields distinguish "leave alone" from "set to zero".
type CourseUpdate struct {
	Title         string
	Description   string
	Price         *float64
	DiscountPrice *float64
	Thumbnail     string
	Duration      *int
	Level         string
	IsFeatured    *bool
	IsBestseller  *bool
	IsNew         *bool
}

func (s *Store) UpdateCourse(id int, update CourseUpdate) (models.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	course, ok := s.courses[id]
	if !ok {
		return models.Course{}, fmt.Errorf("course %d: %w", id, ErrNotFound)
	}
	if update.Title != "" {
		course.Title = update.Title
	}
	if update.Description != "" {
		course.Description = update.Description
	}
	if update.Price != nil {
		if *update.Price < 0 {
			return models.Course{}, fmt.Errorf("price must not be negative: %w", ErrInvalidInput)
		}
		course.Price = *update.Price
	}
	if update.DiscountPrice != nil {
		course.DiscountPrice = update.DiscountPrice
	}
	if update.Thumbnail != "" {
		course.Thumbnail = update.Thumbnail
	}
	if update.Duration != nil {
		course.Duration = *update.Duration
	}
	if update.Level != "" {
		course.Level = update.Level
	}
	if update.IsFeatured != nil {
		course.IsFeatured = *update.IsFeatured
	}
	if update.IsBestseller != nil {
		course.IsBestseller = *update.IsBestseller
	}
	if update.IsNew != nil {
		course.IsNew = *update.IsNew
	}
	course.UpdatedAt = time.Now().UTC()
	s.courses[id] = course
	return course, nil
}

// Lesson methods

func (s *Store) GetLesson(id int) (models.Lesson, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	lesson, ok := s.lessons[id]
	if !ok {
		return models.Lesson{}, fmt.Errorf("lesson %d: %w", id, ErrNotFound)
	}
	return lesson, nil
}

// LessonsByCourse returns the course's lessons ordered by their sequence
// position. The sort is stable so equal positions keep insertion order.
func (s *Store) LessonsByCourse(courseID int) []models.Lesson {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.lessonsByCourseLocked(courseID)
}

func (s *Store) lessonsByCourseLocked(courseID int) []models.Lesson {
	var lessons []models.Lesson
	for _, id := range sortedIDs(s.lessons) {
		if s.lessons[id].CourseID == courseID {
			lessons = append(lessons, s.lessons[id])
		}
	}
	sort.SliceStable(lessons, func(i, j int) bool {
		return lessons[i].Order < lessons[j].Order
	})
	return lessons
}

func (s *Store) CreateLesson(lesson models.Lesson) (models.Lesson, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if strings.TrimSpace(lesson.Title) == "" {
		return models.Lesson{}, fmt.Errorf("lesson title is required: %w", ErrInvalidInput)
	}
	course, ok := s.courses[lesson.CourseID]
	if !ok {
		return models.Lesson{}, fmt.Errorf("course %d: %w", lesson.CourseID, ErrNotFound)
	}

	s.nextLessonID++
	lesson.ID = s.nextLessonID
	s.lessons[lesson.ID] = lesson

	course.LessonCount++
	course.UpdatedAt = time.Now().UTC()
	s.courses[course.ID] = course

	return lesson, nil
}

// LessonUpdate patches lesson fields; Order uses a pointer since position
// zero is a legal value.
type LessonUpdate struct {
	Title       string
	Description string
	Content     string
	Duration    *int
	Order       *int
}

func (s *Store) UpdateLesson(id int, update LessonUpdate) (models.Lesson, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lesson, ok := s.lessons[id]
	if !ok {
		return models.Lesson{}, fmt.Errorf("lesson %d: %w", id, ErrNotFound)
	}
	if update.Title != "" {
		lesson.Title = update.Title
	}
	if update.Description != "" {
		lesson.Description = update.Description
	}
	if update.Content != "" {
		lesson.Content = update.Content
	}
	if update.Duration != nil {
		lesson.Duration = *update.Duration
	}
	if update.Order != nil {
		lesson.Order = *update.Order
	}
	s.lessons[id] = lesson
	return lesson, nil
}
