package middleware

import (
	"github.com/gofiber/fiber/v2"

	"coursehub/backend/config"
	"coursehub/backend/store"
	"coursehub/backend/utils"
)

func AuthMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		_, err := utils.ExtractUserIDFromToken(c, cfg)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Unauthorized",
			})
		}
		return c.Next()
	}
}

// InstructorMiddleware admits instructors and admins; catalog writes go
// through here.
func InstructorMiddleware(cfg *config.Config, st *store.Store) fiber.Handler {
	return requireRole(cfg, st, "instructor", "admin")
}

func AdminMiddleware(cfg *config.Config, st *store.Store) fiber.Handler {
	return requireRole(cfg, st, "admin")
}

func requireRole(cfg *config.Config, st *store.Store, roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := utils.ExtractUserIDFromToken(c, cfg)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Unauthorized",
			})
		}

		user, err := st.GetUser(userID)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Unauthorized",
			})
		}
		for _, role := range roles {
			if user.Role == role {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Forbidden - insufficient role",
		})
	}
}
