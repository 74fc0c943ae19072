package store

import (
	"errors"
	"fmt"
	"time"

	"coursehub/backend/models"
)

func (s *Store) GetPayment(id int) (models.Payment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	payment, ok := s.payments[id]
	if !ok {
		return models.Payment{}, fmt.Errorf("payment %d: %w", id, ErrNotFound)
	}
	return payment, nil
}

// GetPaymentByRef looks a payment up by the external gateway reference.
func (s *Store) GetPaymentByRef(ref string) (models.Payment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	payment, ok := s.paymentByRefLocked(ref)
	if !ok {
		return models.Payment{}, fmt.Errorf("payment %q: %w", ref, ErrNotFound)
	}
	return payment, nil
}

func (s *Store) paymentByRefLocked(ref string) (models.Payment, bool) {
	for _, id := range sortedIDs(s.payments) {
		if s.payments[id].PaymentRef == ref {
			return s.payments[id], true
		}
	}
	return models.Payment{}, false
}

func (s *Store) UserPayments(userID int) []models.Payment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var payments []models.Payment
	for _, id := range sortedIDs(s.payments) {
		if s.payments[id].UserID == userID {
			payments = append(payments, s.payments[id])
		}
	}
	return payments
}

// CreatePayment records a pending charge for a course checkout. The caller
// supplies the gateway reference so the later outcome notification can find
// the payment again.
func (s *Store) CreatePayment(payment models.Payment) (models.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if payment.PaymentRef == "" {
		return models.Payment{}, fmt.Errorf("payment reference is required: %w", ErrInvalidInput)
	}
	if payment.Amount < 0 {
		return models.Payment{}, fmt.Errorf("amount must not be negative: %w", ErrInvalidInput)
	}
	if _, ok := s.courses[payment.CourseID]; !ok {
		return models.Payment{}, fmt.Errorf("course %d: %w", payment.CourseID, ErrNotFound)
	}
	if _, ok := s.paymentByRefLocked(payment.PaymentRef); ok {
		return models.Payment{}, fmt.Errorf("payment reference %q taken: %w", payment.PaymentRef, ErrConflict)
	}

	s.nextPaymentID++
	payment.ID = s.nextPaymentID
	if payment.Currency == "" {
		payment.Currency = "USD"
	}
	if payment.Status == "" {
		payment.Status = models.PaymentPending
	}
	payment.CreatedAt = time.Now().UTC()
	s.payments[payment.ID] = payment
	return payment, nil
}

// NotifyPaymentOutcome applies a gateway outcome to the pending payment. A
// completed payment enrolls the user in the course it was created for; the
// whole call is idempotent, so re-delivered notifications neither fail nor
// duplicate the enrollment.
func (s *Store) NotifyPaymentOutcome(ref, status string) (models.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	payment, ok := s.paymentByRefLocked(ref)
	if !ok {
		return models.Payment{}, fmt.Errorf("payment %q: %w", ref, ErrNotFound)
	}

	switch status {
	case models.PaymentCompleted:
		payment.Status = models.PaymentCompleted
		s.payments[payment.ID] = payment
		if _, err := s.enrollLocked(payment.UserID, payment.CourseID); err != nil && !errors.Is(err, ErrConflict) {
			return models.Payment{}, err
		}
	case models.PaymentFailed:
		payment.Status = models.PaymentFailed
		s.payments[payment.ID] = payment
	default:
		return models.Payment{}, fmt.Errorf("payment status %q: %w", status, ErrInvalidInput)
	}
	return payment, nil
}
