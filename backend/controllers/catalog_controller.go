package controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"coursehub/backend/config"
	"coursehub/backend/models"
	"coursehub/backend/store"
	"coursehub/backend/utils"
)

// CatalogController serves the browsing side: categories, courses, lessons.
type CatalogController struct {
	Store *store.Store
	Cfg   *config.Config
}

func NewCatalogController(st *store.Store, cfg *config.Config) *CatalogController {
	return &CatalogController{Store: st, Cfg: cfg}
}

func (cc *CatalogController) GetCategories(c *fiber.Ctx) error {
	return c.JSON(cc.Store.AllCategories())
}

func (cc *CatalogController) GetCategory(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "Invalid category ID")
	}

	category, err := cc.Store.GetCategory(id)
	if err != nil {
		return utils.StoreError(c, err)
	}
	return c.JSON(category)
}

// GetCourses lists the catalog filtered by the recognized query params:
// categoryId, search, minPrice, maxPrice, level.
func (cc *CatalogController) GetCourses(c *fiber.Ctx) error {
	var filter store.CourseFilter

	if v := c.Query("categoryId"); v != "" {
		id, err := strconv.Atoi(v)
		if err != nil {
			return utils.Error(c, fiber.StatusBadRequest, "Invalid categoryId")
		}
		filter.CategoryID = id
	}
	filter.Search = c.Query("search")
	if v := c.Query("minPrice"); v != "" {
		price, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return utils.Error(c, fiber.StatusBadRequest, "Invalid minPrice")
		}
		filter.MinPrice = &price
	}
	if v := c.Query("maxPrice"); v != "" {
		price, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return utils.Error(c, fiber.StatusBadRequest, "Invalid maxPrice")
		}
		filter.MaxPrice = &price
	}
	filter.Level = c.Query("level")

	return c.JSON(cc.Store.ListCourses(filter))
}

func (cc *CatalogController) GetFeaturedCourses(c *fiber.Ctx) error {
	return c.JSON(cc.Store.FeaturedCourses())
}

func (cc *CatalogController) GetCourse(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "Invalid course ID")
	}

	course, err := cc.Store.GetCourse(id)
	if err != nil {
		return utils.StoreError(c, err)
	}
	return c.JSON(course)
}

func (cc *CatalogController) GetCourseLessons(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "Invalid course ID")
	}

	if _, err := cc.Store.GetCourse(id); err != nil {
		return utils.StoreError(c, err)
	}
	return c.JSON(cc.Store.LessonsByCourse(id))
}

func (cc *CatalogController) CreateCategory(c *fiber.Ctx) error {
	var input struct {
		Name        string `json:"name" validate:"required"`
		Slug        string `json:"slug" validate:"required"`
		Description string `json:"description"`
		Icon        string `json:"icon"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "Cannot parse JSON")
	}
	if fields := utils.ValidateStruct(input); fields != nil {
		return utils.ValidationError(c, fields)
	}

	category, err := cc.Store.CreateCategory(models.Category{
		Name:        input.Name,
		Slug:        input.Slug,
		Description: input.Description,
		Icon:        input.Icon,
	})
	if err != nil {
		return utils.StoreError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(category)
}

func (cc *CatalogController) CreateCourse(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, cc.Cfg)
	if err != nil {
		return utils.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var input struct {
		Title         string   `json:"title" validate:"required"`
		Slug          string   `json:"slug" validate:"required"`
		Description   string   `json:"description"`
		Price         float64  `json:"price" validate:"gte=0"`
		DiscountPrice *float64 `json:"discountPrice"`
		Thumbnail     string   `json:"thumbnail"`
		CategoryID    int      `json:"categoryId"`
		Duration      int      `json:"duration"`
		Level         string   `json:"level" validate:"omitempty,oneof=beginner intermediate advanced"`
		IsFeatured    bool     `json:"isFeatured"`
		IsBestseller  bool     `json:"isBestseller"`
		IsNew         bool     `json:"isNew"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "Cannot parse JSON")
	}
	if fields := utils.ValidateStruct(input); fields != nil {
		return utils.ValidationError(c, fields)
	}

	course, err := cc.Store.CreateCourse(models.Course{
		Title:         input.Title,
		Slug:          input.Slug,
		Description:   input.Description,
		Price:         input.Price,
		DiscountPrice: input.DiscountPrice,
		Thumbnail:     input.Thumbnail,
		InstructorID:  userID,
		CategoryID:    input.CategoryID,
		Duration:      input.Duration,
		Level:         input.Level,
		IsFeatured:    input.IsFeatured,
		IsBestseller:  input.IsBestseller,
		IsNew:         input.IsNew,
	})
	if err != nil {
		return utils.StoreError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(course)
}

func (cc *CatalogController) UpdateCourse(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, cc.Cfg)
	if err != nil {
		return utils.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "Invalid course ID")
	}

	course, err := cc.Store.GetCourse(id)
	if err != nil {
		return utils.StoreError(c, err)
	}
	if course.InstructorID != userID {
		user, err := cc.Store.GetUser(userID)
		if err != nil || user.Role != "admin" {
			return utils.Error(c, fiber.StatusForbidden, "You don't have permission to edit this course")
		}
	}

	var input struct {
		Title         string   `json:"title"`
		Description   string   `json:"description"`
		Price         *float64 `json:"price"`
		DiscountPrice *float64 `json:"discountPrice"`
		Thumbnail     string   `json:"thumbnail"`
		Duration      *int     `json:"duration"`
		Level         string   `json:"level" validate:"omitempty,oneof=beginner intermediate advanced"`
		IsFeatured    *bool    `json:"isFeatured"`
		IsBestseller  *bool    `json:"isBestseller"`
		IsNew         *bool    `json:"isNew"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "Cannot parse JSON")
	}
	if fields := utils.ValidateStruct(input); fields != nil {
		return utils.ValidationError(c, fields)
	}

	updated, err := cc.Store.UpdateCourse(id, store.CourseUpdate{
		Title:         input.Title,
		Description:   input.Description,
		Price:         input.Price,
		DiscountPrice: input.DiscountPrice,
		Thumbnail:     input.Thumbnail,
		Duration:      input.Duration,
		Level:         input.Level,
		IsFeatured:    input.IsFeatured,
		IsBestseller:  input.IsBestseller,
		IsNew:         input.IsNew,
	})
	if err != nil {
		return utils.StoreError(c, err)
	}
	return c.JSON(updated)
}

func (cc *CatalogController) AddLesson(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, cc.Cfg)
	if err != nil {
		return utils.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	courseID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "Invalid course ID")
	}

	course, err := cc.Store.GetCourse(courseID)
	if err != nil {
		return utils.StoreError(c, err)
	}
	if course.InstructorID != userID {
		return utils.Error(c, fiber.StatusForbidden, "You don't have permission to add lessons to this course")
	}

	var input struct {
		Title       string `json:"title" validate:"required"`
		Description string `json:"description"`
		Content     string `json:"content"`
		Duration    int    `json:"duration"`
		Order       int    `json:"order"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "Cannot parse JSON")
	}
	if fields := utils.ValidateStruct(input); fields != nil {
		return utils.ValidationError(c, fields)
	}

	order := input.Order
	if order == 0 {
		order = len(cc.Store.LessonsByCourse(courseID)) + 1
	}

	lesson, err := cc.Store.CreateLesson(models.Lesson{
		Title:       input.Title,
		Description: input.Description,
		Content:     input.Content,
		CourseID:    courseID,
		Duration:    input.Duration,
		Order:       order,
	})
	if err != nil {
		return utils.StoreError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(lesson)
}
