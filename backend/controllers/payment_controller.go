package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"coursehub/backend/config"
	"coursehub/backend/models"
	"coursehub/backend/store"
	"coursehub/backend/utils"
)

// PaymentController covers the checkout flow and the gateway's outcome
// webhook. The gateway itself is an external collaborator; we only hold the
// pending payment and the reference it will call back with.
type PaymentController struct {
	Store *store.Store
	Cfg   *config.Config
}

func NewPaymentController(st *store.Store, cfg *config.Config) *PaymentController {
	return &PaymentController{Store: st, Cfg: cfg}
}

// CreateCheckout opens a pending payment for a course at its effective price
// and returns the reference the client hands to the gateway.
func (pc *PaymentController) CreateCheckout(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, pc.Cfg)
	if err != nil {
		return utils.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var input struct {
		CourseID int `json:"courseId" validate:"required,gt=0"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "Cannot parse JSON")
	}
	if fields := utils.ValidateStruct(input); fields != nil {
		return utils.ValidationError(c, fields)
	}

	course, err := pc.Store.GetCourse(input.CourseID)
	if err != nil {
		return utils.StoreError(c, err)
	}

	if _, err := pc.Store.GetEnrollment(userID, course.ID); err == nil {
		return utils.Error(c, fiber.StatusConflict, "Already enrolled in this course")
	} else if !errors.Is(err, store.ErrNotFound) {
		return utils.StoreError(c, err)
	}

	payment, err := pc.Store.CreatePayment(models.Payment{
		UserID:     userID,
		CourseID:   course.ID,
		Amount:     course.EffectivePrice(),
		Currency:   "USD",
		Status:     models.PaymentPending,
		PaymentRef: "pi_" + uuid.NewString(),
	})
	if err != nil {
		return utils.StoreError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"paymentRef": payment.PaymentRef,
		"amount":     payment.Amount,
		"currency":   payment.Currency,
	})
}

func (pc *PaymentController) GetMyPayments(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, pc.Cfg)
	if err != nil {
		return utils.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	return c.JSON(pc.Store.UserPayments(userID))
}

// Webhook receives the gateway's outcome notification. The store call is
// idempotent, so the gateway retrying a delivery is harmless.
func (pc *PaymentController) Webhook(c *fiber.Ctx) error {
	var event struct {
		Type       string `json:"type"`
		PaymentRef string `json:"paymentRef"`
	}
	if err := c.BodyParser(&event); err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "Cannot parse JSON")
	}

	var status string
	switch event.Type {
	case "payment.succeeded":
		status = models.PaymentCompleted
	case "payment.failed":
		status = models.PaymentFailed
	default:
		return utils.Error(c, fiber.StatusBadRequest, "Unknown event type")
	}

	payment, err := pc.Store.NotifyPaymentOutcome(event.PaymentRef, status)
	if err != nil {
		return utils.StoreError(c, err)
	}
	return c.JSON(fiber.Map{
		"received": true,
		"payment":  payment,
	})
}
