package store

import (
	"fmt"
	"time"

	"coursehub/backend/models"
)

func (s *Store) GetReview(id int) (models.Review, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	review, ok := s.reviews[id]
	if !ok {
		return models.Review{}, fmt.Errorf("review %d: %w", id, ErrNotFound)
	}
	return review, nil
}

// GetUserReview is the point lookup by (user, course) pair.
func (s *Store) GetUserReview(userID, courseID int) (models.Review, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, id := range sortedIDs(s.reviews) {
		r := s.reviews[id]
		if r.UserID == userID && r.CourseID == courseID {
			return r, nil
		}
	}
	return models.Review{}, fmt.Errorf("review by user %d for course %d: %w", userID, courseID, ErrNotFound)
}

// CourseReviews returns the course's reviews joined with their authors.
func (s *Store) CourseReviews(courseID int) ([]models.CourseReview, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var reviews []models.CourseReview
	for _, id := range sortedIDs(s.reviews) {
		r := s.reviews[id]
		if r.CourseID != courseID {
			continue
		}
		user, ok := s.users[r.UserID]
		if !ok {
			return nil, fmt.Errorf("review %d references missing user %d: %w", r.ID, r.UserID, ErrInconsistentState)
		}
		reviews = append(reviews, models.CourseReview{Review: r, User: user})
	}
	return reviews, nil
}

// CreateReview stores a review and synchronously refreshes the course's
// rating aggregate, so a read of the course right after this returns sees the
// new review. Reviews are immutable once written. Reviewing requires an
// enrollment in the course, and one review per (user, course) pair.
func (s *Store) CreateReview(userID, courseID, rating int, comment string) (models.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if rating < 1 || rating > 5 {
		return models.Review{}, fmt.Errorf("rating %d outside 1-5: %w", rating, ErrInvalidInput)
	}
	if _, ok := s.courses[courseID]; !ok {
		return models.Review{}, fmt.Errorf("course %d: %w", courseID, ErrNotFound)
	}
	if _, ok := s.findEnrollmentLocked(userID, courseID); !ok {
		return models.Review{}, fmt.Errorf("user %d must be enrolled in course %d to review it: %w", userID, courseID, ErrForbidden)
	}
	for _, existing := range s.reviews {
		if existing.UserID == userID && existing.CourseID == courseID {
			return models.Review{}, fmt.Errorf("user %d already reviewed course %d: %w", userID, courseID, ErrConflict)
		}
	}

	s.nextReviewID++
	review := models.Review{
		ID:        s.nextReviewID,
		UserID:    userID,
		CourseID:  courseID,
		Rating:    rating,
		Comment:   comment,
		CreatedAt: time.Now().UTC(),
	}
	s.reviews[review.ID] = review

	s.updateCourseRatingLocked(courseID)
	return review, nil
}

// UpdateCourseRating recomputes the rating aggregate from scratch. It is
// idempotent; recomputing twice yields the same values.
func (s *Store) UpdateCourseRating(courseID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.courses[courseID]; !ok {
		return fmt.Errorf("course %d: %w", courseID, ErrNotFound)
	}
	s.updateCourseRatingLocked(courseID)
	return nil
}

func (s *Store) updateCourseRatingLocked(courseID int) {
	course := s.courses[courseID]

	var sum, count int
	for _, r := range s.reviews {
		if r.CourseID == courseID {
			sum += r.Rating
			count++
		}
	}
	if count == 0 {
		course.Rating = 0
		course.ReviewCount = 0
	} else {
		// Stored unrounded; rounding is a presentation concern.
		course.Rating = float64(sum) / float64(count)
		course.ReviewCount = count
	}
	course.UpdatedAt = time.Now().UTC()
	s.courses[courseID] = course
}
