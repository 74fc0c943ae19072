package controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"coursehub/backend/config"
	"coursehub/backend/store"
	"coursehub/backend/utils"
)

type ReviewController struct {
	Store *store.Store
	Cfg   *config.Config
}

func NewReviewController(st *store.Store, cfg *config.Config) *ReviewController {
	return &ReviewController{Store: st, Cfg: cfg}
}

func (rc *ReviewController) GetCourseReviews(c *fiber.Ctx) error {
	courseID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "Invalid course ID")
	}

	if _, err := rc.Store.GetCourse(courseID); err != nil {
		return utils.StoreError(c, err)
	}
	reviews, err := rc.Store.CourseReviews(courseID)
	if err != nil {
		return utils.StoreError(c, err)
	}
	return c.JSON(reviews)
}

func (rc *ReviewController) CreateReview(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, rc.Cfg)
	if err != nil {
		return utils.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	courseID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "Invalid course ID")
	}

	var input struct {
		Rating  int    `json:"rating" validate:"required,min=1,max=5"`
		Comment string `json:"comment"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "Cannot parse JSON")
	}
	if fields := utils.ValidateStruct(input); fields != nil {
		return utils.ValidationError(c, fields)
	}

	review, err := rc.Store.CreateReview(userID, courseID, input.Rating, input.Comment)
	if err != nil {
		return utils.StoreError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(review)
}
