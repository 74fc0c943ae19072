package controllers

import (
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"coursehub/backend/config"
	"coursehub/backend/models"
	"coursehub/backend/store"
	"coursehub/backend/utils"
)

type AuthController struct {
	Store *store.Store
	Cfg   *config.Config
}

func NewAuthController(st *store.Store, cfg *config.Config) *AuthController {
	return &AuthController{Store: st, Cfg: cfg}
}

func (ac *AuthController) Register(c *fiber.Ctx) error {
	var input struct {
		Username  string `json:"username" validate:"required,min=3"`
		Password  string `json:"password" validate:"required,min=6"`
		Email     string `json:"email" validate:"omitempty,email"`
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "Cannot parse JSON")
	}
	if fields := utils.ValidateStruct(input); fields != nil {
		return utils.ValidationError(c, fields)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return utils.Error(c, fiber.StatusInternalServerError, "Could not hash password")
	}

	user, err := ac.Store.CreateUser(models.User{
		Username:  input.Username,
		Password:  string(hashedPassword),
		Email:     input.Email,
		FirstName: input.FirstName,
		LastName:  input.LastName,
	})
	if err != nil {
		return utils.StoreError(c, err)
	}

	token, err := utils.GenerateJWTToken(user.ID, ac.Cfg)
	if err != nil {
		return utils.Error(c, fiber.StatusInternalServerError, "Could not generate token")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"token": token,
		"user":  user,
	})
}

func (ac *AuthController) Login(c *fiber.Ctx) error {
	var input struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "Cannot parse JSON")
	}

	user, err := ac.Store.GetUserByUsername(input.Username)
	if err != nil {
		return utils.Error(c, fiber.StatusUnauthorized, "Invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		return utils.Error(c, fiber.StatusUnauthorized, "Invalid credentials")
	}

	token, err := utils.GenerateJWTToken(user.ID, ac.Cfg)
	if err != nil {
		return utils.Error(c, fiber.StatusInternalServerError, "Could not generate token")
	}

	return c.JSON(fiber.Map{
		"token": token,
		"user":  user,
	})
}

func (ac *AuthController) GetProfile(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, ac.Cfg)
	if err != nil {
		return utils.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	user, err := ac.Store.GetUser(userID)
	if err != nil {
		return utils.StoreError(c, err)
	}
	return c.JSON(user)
}

func (ac *AuthController) UpdateProfile(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, ac.Cfg)
	if err != nil {
		return utils.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var input struct {
		Email     string `json:"email" validate:"omitempty,email"`
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
		Avatar    string `json:"avatar"`
		Bio       string `json:"bio"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "Cannot parse JSON")
	}
	if fields := utils.ValidateStruct(input); fields != nil {
		return utils.ValidationError(c, fields)
	}

	user, err := ac.Store.UpdateUser(userID, store.UserUpdate{
		Email:     input.Email,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Avatar:    input.Avatar,
		Bio:       input.Bio,
	})
	if err != nil {
		return utils.StoreError(c, err)
	}
	return c.JSON(user)
}
