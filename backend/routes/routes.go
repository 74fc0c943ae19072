package routes

import (
	"github.com/gofiber/fiber/v2"

	"coursehub/backend/config"
	"coursehub/backend/controllers"
	"coursehub/backend/middleware"
	"coursehub/backend/store"
)

func SetupRoutes(app *fiber.App, st *store.Store, cfg *config.Config) {
	// Auth routes
	authController := controllers.NewAuthController(st, cfg)
	app.Post("/api/auth/register", authController.Register)
	app.Post("/api/auth/login", authController.Login)

	// Middleware
	authMiddleware := middleware.AuthMiddleware(cfg)
	instructorMiddleware := middleware.InstructorMiddleware(cfg, st)
	adminMiddleware := middleware.AdminMiddleware(cfg, st)

	// Profile routes
	app.Get("/api/user/profile", authMiddleware, authController.GetProfile)
	app.Put("/api/user/profile", authMiddleware, authController.UpdateProfile)

	// Catalog routes
	catalogController := controllers.NewCatalogController(st, cfg)
	app.Get("/api/categories", catalogController.GetCategories)
	app.Get("/api/categories/:id", catalogController.GetCategory)
	app.Get("/api/courses", catalogController.GetCourses)
	app.Get("/api/courses/featured", catalogController.GetFeaturedCourses)
	app.Get("/api/courses/:id", catalogController.GetCourse)
	app.Get("/api/courses/:id/lessons", catalogController.GetCourseLessons)

	// Catalog management
	app.Post("/api/categories", authMiddleware, adminMiddleware, catalogController.CreateCategory)
	app.Post("/api/courses", authMiddleware, instructorMiddleware, catalogController.CreateCourse)
	app.Put("/api/courses/:id", authMiddleware, instructorMiddleware, catalogController.UpdateCourse)
	app.Post("/api/courses/:id/lessons", authMiddleware, instructorMiddleware, catalogController.AddLesson)

	// Enrollment routes
	enrollmentController := controllers.NewEnrollmentController(st, cfg)
	app.Get("/api/user/enrollments", authMiddleware, enrollmentController.GetMyEnrollments)
	app.Post("/api/enroll", authMiddleware, enrollmentController.Enroll)
	app.Post("/api/enrollments/:id/progress", authMiddleware, enrollmentController.UpdateProgress)
	app.Post("/api/enrollments/:id/complete-lesson/:lessonId", authMiddleware, enrollmentController.CompleteLesson)

	// Review routes
	reviewController := controllers.NewReviewController(st, cfg)
	app.Get("/api/courses/:id/reviews", reviewController.GetCourseReviews)
	app.Post("/api/courses/:id/reviews", authMiddleware, reviewController.CreateReview)

	// Payment routes
	paymentController := controllers.NewPaymentController(st, cfg)
	app.Post("/api/checkout", authMiddleware, paymentController.CreateCheckout)
	app.Get("/api/user/payments", authMiddleware, paymentController.GetMyPayments)
	app.Post("/api/payment-webhook", paymentController.Webhook)
}
