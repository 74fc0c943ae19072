package store

import (
	"fmt"
	"math"
	"time"

	"coursehub/backend/models"
)

func (s *Store) GetEnrollmentByID(id int) (models.Enrollment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	enrollment, ok := s.enrollments[id]
	if !ok {
		return models.Enrollment{}, fmt.Errorf("enrollment %d: %w", id, ErrNotFound)
	}
	return enrollment, nil
}

// GetEnrollment is the point lookup by (user, course) pair.
func (s *Store) GetEnrollment(userID, courseID int) (models.Enrollment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	enrollment, ok := s.findEnrollmentLocked(userID, courseID)
	if !ok {
		return models.Enrollment{}, fmt.Errorf("enrollment for user %d course %d: %w", userID, courseID, ErrNotFound)
	}
	return enrollment, nil
}

func (s *Store) findEnrollmentLocked(userID, courseID int) (models.Enrollment, bool) {
	for _, id := range sortedIDs(s.enrollments) {
		e := s.enrollments[id]
		if e.UserID == userID && e.CourseID == courseID {
			return e, true
		}
	}
	return models.Enrollment{}, false
}

// UserEnrollments returns the user's enrollments joined with their courses.
func (s *Store) UserEnrollments(userID int) ([]models.EnrolledCourse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var enrolled []models.EnrolledCourse
	for _, id := range sortedIDs(s.enrollments) {
		e := s.enrollments[id]
		if e.UserID != userID {
			continue
		}
		course, ok := s.courses[e.CourseID]
		if !ok {
			// Courses are never deleted, so a dangling reference is a bug.
			return nil, fmt.Errorf("enrollment %d references missing course %d: %w", e.ID, e.CourseID, ErrInconsistentState)
		}
		enrolled = append(enrolled, models.EnrolledCourse{Enrollment: e, Course: course})
	}
	return enrolled, nil
}

// Enroll creates an active enrollment. A second enroll for the same pair
// surfaces ErrConflict rather than duplicating state, which makes the call
// safe to retry.
func (s *Store) Enroll(userID, courseID int) (models.Enrollment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.enrollLocked(userID, courseID)
}

func (s *Store) enrollLocked(userID, courseID int) (models.Enrollment, error) {
	if _, ok := s.courses[courseID]; !ok {
		return models.Enrollment{}, fmt.Errorf("course %d: %w", courseID, ErrNotFound)
	}
	if _, ok := s.findEnrollmentLocked(userID, courseID); ok {
		return models.Enrollment{}, fmt.Errorf("user %d already enrolled in course %d: %w", userID, courseID, ErrConflict)
	}

	s.nextEnrollmentID++
	enrollment := models.Enrollment{
		ID:               s.nextEnrollmentID,
		UserID:           userID,
		CourseID:         courseID,
		Status:           models.EnrollmentActive,
		Progress:         0,
		CompletedLessons: []int{},
		CreatedAt:        time.Now().UTC(),
	}
	s.enrollments[enrollment.ID] = enrollment
	return enrollment, nil
}

// CompleteLesson marks a lesson done on the caller's enrollment and rederives
// progress from the completed-lesson set. The enrollment id must belong to the
// caller's enrollment for the course.
func (s *Store) CompleteLesson(userID, enrollmentID, courseID, lessonID int) (models.Enrollment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	enrollment, ok := s.findEnrollmentLocked(userID, courseID)
	if !ok || enrollment.ID != enrollmentID {
		return models.Enrollment{}, fmt.Errorf("enrollment %d does not belong to user %d: %w", enrollmentID, userID, ErrForbidden)
	}
	return s.recordLessonLocked(enrollment, lessonID)
}

func (s *Store) recordLessonLocked(enrollment models.Enrollment, lessonID int) (models.Enrollment, error) {
	if _, ok := s.courses[enrollment.CourseID]; !ok {
		return models.Enrollment{}, fmt.Errorf("course %d: %w", enrollment.CourseID, ErrNotFound)
	}
	total := len(s.lessonsByCourseLocked(enrollment.CourseID))
	if total == 0 {
		return models.Enrollment{}, fmt.Errorf("course %d has no lessons: %w", enrollment.CourseID, ErrNotFound)
	}

	completed := enrollment.CompletedLessons
	seen := false
	for _, id := range completed {
		if id == lessonID {
			seen = true
			break
		}
	}
	if !seen {
		completed = append(completed, lessonID)
	}
	enrollment.CompletedLessons = completed

	progress := int(math.Round(float64(len(completed)) / float64(total) * 100))
	if progress > 100 {
		progress = 100
	}
	s.applyProgressLocked(&enrollment, progress)
	s.enrollments[enrollment.ID] = enrollment
	return enrollment, nil
}

// SetProgress is the generic progress-update path. With a lesson id it records
// the lesson and derives progress from the completed-lesson set, keeping the
// set the single source of truth; only a bare call accepts the value as given.
// lessonID zero means no lesson was supplied.
func (s *Store) SetProgress(enrollmentID, progress, lessonID int) (models.Enrollment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	enrollment, ok := s.enrollments[enrollmentID]
	if !ok {
		return models.Enrollment{}, fmt.Errorf("enrollment %d: %w", enrollmentID, ErrNotFound)
	}
	if lessonID != 0 {
		return s.recordLessonLocked(enrollment, lessonID)
	}

	if progress < 0 || progress > 100 {
		return models.Enrollment{}, fmt.Errorf("progress %d out of range: %w", progress, ErrInvalidInput)
	}
	s.applyProgressLocked(&enrollment, progress)
	s.enrollments[enrollment.ID] = enrollment
	return enrollment, nil
}

// applyProgressLocked persists a progress value and performs the one-way
// active -> completed transition at 100%, stamping completedAt once.
func (s *Store) applyProgressLocked(enrollment *models.Enrollment, progress int) {
	enrollment.Progress = progress
	if progress == 100 {
		enrollment.Status = models.EnrollmentCompleted
		if enrollment.CompletedAt == nil {
			now := time.Now().UTC()
			enrollment.CompletedAt = &now
		}
	}
}
