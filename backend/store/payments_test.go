package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coursehub/backend/models"
)

func createTestPayment(t *testing.T, s *Store, userID, courseID int, ref string) models.Payment {
	t.Helper()
	payment, err := s.CreatePayment(models.Payment{
		UserID:     userID,
		CourseID:   courseID,
		Amount:     49.99,
		PaymentRef: ref,
	})
	require.NoError(t, err)
	return payment
}

func TestCreatePaymentDefaults(t *testing.T) {
	s := New()
	user := createTestUser(t, s, "alice")
	course := createTestCourse(t, s, "go-basics", 49.99)

	payment := createTestPayment(t, s, user.ID, course.ID, "pi_123")
	assert.Equal(t, "USD", payment.Currency)
	assert.Equal(t, models.PaymentPending, payment.Status)
	assert.False(t, payment.CreatedAt.IsZero())

	got, err := s.GetPaymentByRef("pi_123")
	require.NoError(t, err)
	assert.Equal(t, payment.ID, got.ID)
}

func TestCreatePaymentValidation(t *testing.T) {
	s := New()
	user := createTestUser(t, s, "alice")
	course := createTestCourse(t, s, "go-basics", 49.99)

	_, err := s.CreatePayment(models.Payment{UserID: user.ID, CourseID: course.ID})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = s.CreatePayment(models.Payment{UserID: user.ID, CourseID: 999, PaymentRef: "pi_x"})
	assert.ErrorIs(t, err, ErrNotFound)

	createTestPayment(t, s, user.ID, course.ID, "pi_123")
	_, err = s.CreatePayment(models.Payment{UserID: user.ID, CourseID: course.ID, PaymentRef: "pi_123"})
	assert.ErrorIs(t, err, ErrConflict)
}

func TestNotifyPaymentOutcomeCompletedEnrolls(t *testing.T) {
	s := New()
	user := createTestUser(t, s, "alice")
	course := createTestCourse(t, s, "go-basics", 49.99)
	createTestPayment(t, s, user.ID, course.ID, "pi_123")

	payment, err := s.NotifyPaymentOutcome("pi_123", models.PaymentCompleted)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentCompleted, payment.Status)

	enrollment, err := s.GetEnrollment(user.ID, course.ID)
	require.NoError(t, err)
	assert.Equal(t, models.EnrollmentActive, enrollment.Status)
}

func TestNotifyPaymentOutcomeIsIdempotent(t *testing.T) {
	s := New()
	user := createTestUser(t, s, "alice")
	course := createTestCourse(t, s, "go-basics", 49.99)
	createTestPayment(t, s, user.ID, course.ID, "pi_123")

	_, err := s.NotifyPaymentOutcome("pi_123", models.PaymentCompleted)
	require.NoError(t, err)

	// A re-delivered notification neither errors nor duplicates state.
	_, err = s.NotifyPaymentOutcome("pi_123", models.PaymentCompleted)
	require.NoError(t, err)

	enrollments, err := s.UserEnrollments(user.ID)
	require.NoError(t, err)
	assert.Len(t, enrollments, 1)
}

func TestNotifyPaymentOutcomeFailed(t *testing.T) {
	s := New()
	user := createTestUser(t, s, "alice")
	course := createTestCourse(t, s, "go-basics", 49.99)
	createTestPayment(t, s, user.ID, course.ID, "pi_123")

	payment, err := s.NotifyPaymentOutcome("pi_123", models.PaymentFailed)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentFailed, payment.Status)

	// Failed payments never enroll.
	_, err = s.GetEnrollment(user.ID, course.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestNotifyPaymentOutcomeErrors(t *testing.T) {
	s := New()
	user := createTestUser(t, s, "alice")
	course := createTestCourse(t, s, "go-basics", 49.99)
	createTestPayment(t, s, user.ID, course.ID, "pi_123")

	_, err := s.NotifyPaymentOutcome("pi_missing", models.PaymentCompleted)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.NotifyPaymentOutcome("pi_123", "refunded")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUserPayments(t *testing.T) {
	s := New()
	alice := createTestUser(t, s, "alice")
	bob := createTestUser(t, s, "bob")
	course := createTestCourse(t, s, "go-basics", 49.99)

	createTestPayment(t, s, alice.ID, course.ID, "pi_1")
	createTestPayment(t, s, bob.ID, course.ID, "pi_2")
	createTestPayment(t, s, alice.ID, course.ID, "pi_3")

	payments := s.UserPayments(alice.ID)
	require.Len(t, payments, 2)
	assert.Equal(t, "pi_1", payments[0].PaymentRef)
	assert.Equal(t, "pi_3", payments[1].PaymentRef)
}
