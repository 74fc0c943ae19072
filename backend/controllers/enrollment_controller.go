package controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"coursehub/backend/config"
	"coursehub/backend/store"
	"coursehub/backend/utils"
)

type EnrollmentController struct {
	Store *store.Store
	Cfg   *config.Config
}

func NewEnrollmentController(st *store.Store, cfg *config.Config) *EnrollmentController {
	return &EnrollmentController{Store: st, Cfg: cfg}
}

// GetMyEnrollments returns the caller's enrollments joined with their courses.
func (ec *EnrollmentController) GetMyEnrollments(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, ec.Cfg)
	if err != nil {
		return utils.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	enrollments, err := ec.Store.UserEnrollments(userID)
	if err != nil {
		return utils.StoreError(c, err)
	}
	return c.JSON(enrollments)
}

func (ec *EnrollmentController) Enroll(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, ec.Cfg)
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

	enrollment, err := ec.Store.Enroll(userID, input.CourseID)
	if err != nil {
		return utils.StoreError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(enrollment)
}

// UpdateProgress is the generic progress path: with a lessonId in the body it
// marks the lesson done and derives progress from the completed set, otherwise
// it applies the given percentage directly.
func (ec *EnrollmentController) UpdateProgress(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, ec.Cfg)
	if err != nil {
		return utils.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	enrollmentID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "Invalid enrollment ID")
	}

	var input struct {
		Progress int `json:"progress"`
		LessonID int `json:"lessonId"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "Cannot parse JSON")
	}

	enrollment, err := ec.Store.GetEnrollmentByID(enrollmentID)
	if err != nil {
		return utils.StoreError(c, err)
	}
	if enrollment.UserID != userID {
		return utils.Error(c, fiber.StatusForbidden, "Not authorized to update this enrollment")
	}

	updated, err := ec.Store.SetProgress(enrollmentID, input.Progress, input.LessonID)
	if err != nil {
		return utils.StoreError(c, err)
	}
	return c.JSON(updated)
}

func (ec *EnrollmentController) CompleteLesson(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, ec.Cfg)
	if err != nil {
		return utils.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	enrollmentID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "Invalid enrollment ID")
	}
	lessonID, err := strconv.Atoi(c.Params("lessonId"))
	if err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "Invalid lesson ID")
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

	enrollment, err := ec.Store.CompleteLesson(userID, enrollmentID, input.CourseID, lessonID)
	if err != nil {
		return utils.StoreError(c, err)
	}
	return c.JSON(enrollment)
}
