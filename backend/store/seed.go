package store

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"coursehub/backend/models"
)

// Seed fills an empty store with a demo catalog so the API is browsable out
// of the box. All demo accounts share the password "password123".
func (s *Store) Seed() error {
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	instructors := []models.User{
		{Username: "davidmitchell", Email: "david@example.com", FirstName: "David", LastName: "Mitchell", Role: "instructor"},
		{Username: "sarahjohnson", Email: "sarah@example.com", FirstName: "Sarah", LastName: "Johnson", Role: "instructor"},
		{Username: "michaelcarter", Email: "michael@example.com", FirstName: "Michael", LastName: "Carter", Role: "instructor"},
		{Username: "jessicalee", Email: "jessica@example.com", FirstName: "Jessica", LastName: "Lee", Role: "instructor"},
	}
	created := make([]models.User, 0, len(instructors))
	for _, u := range instructors {
		u.Password = string(hash)
		user, err := s.CreateUser(u)
		if err != nil {
			return fmt.Errorf("seed user %s: %w", u.Username, err)
		}
		created = append(created, user)
	}

	categories := []models.Category{
		{Name: "Programming", Slug: "programming", Description: "Learn programming languages and coding skills", Icon: "fas fa-laptop-code"},
		{Name: "Business", Slug: "business", Description: "Business, entrepreneurship, and management courses", Icon: "fas fa-chart-line"},
		{Name: "Design", Slug: "design", Description: "Graphic design, UX/UI, and creative courses", Icon: "fas fa-palette"},
		{Name: "Marketing", Slug: "marketing", Description: "Digital marketing, SEO, and promotion strategies", Icon: "fas fa-bullhorn"},
		{Name: "Photography", Slug: "photography", Description: "Photography, videography, and visual arts", Icon: "fas fa-camera"},
		{Name: "Health", Slug: "health", Description: "Health, fitness, and wellness courses", Icon: "fas fa-heartbeat"},
	}
	catIDs := make(map[string]int, len(categories))
	for _, c := range categories {
		cat, err := s.CreateCategory(c)
		if err != nil {
			return fmt.Errorf("seed category %s: %w", c.Slug, err)
		}
		catIDs[cat.Slug] = cat.ID
	}

	courses := []models.Course{
		{
			Title:        "Complete Web Development Bootcamp",
			Slug:         "web-development-bootcamp",
			Description:  "Learn HTML, CSS, JavaScript, React and Node.js in this comprehensive course.",
			Price:        89.99,
			Thumbnail:    "https://images.unsplash.com/photo-1498050108023-c5249f4df085",
			InstructorID: created[0].ID,
			CategoryID:   catIDs["programming"],
			Duration:     2520,
			Level:        "beginner",
			IsFeatured:   true,
			IsBestseller: true,
		},
		{
			Title:        "Data Science and Machine Learning",
			Slug:         "data-science-machine-learning",
			Description:  "Master Python, data analysis, and machine learning algorithms.",
			Price:        119.99,
			Thumbnail:    "https://images.unsplash.com/photo-1551288049-bebda4e38f71",
			InstructorID: created[1].ID,
			CategoryID:   catIDs["programming"],
			Duration:     3360,
			Level:        "intermediate",
			IsFeatured:   true,
		},
		{
			Title:        "Digital Marketing Masterclass",
			Slug:         "digital-marketing-masterclass",
			Description:  "Learn SEO, social media marketing, email campaigns and more.",
			Price:        79.99,
			Thumbnail:    "https://images.unsplash.com/photo-1606857521015-7f9fcf423740",
			InstructorID: created[2].ID,
			CategoryID:   catIDs["marketing"],
			Duration:     2280,
			Level:        "beginner",
			IsFeatured:   true,
			IsNew:        true,
		},
		{
			Title:        "UX/UI Design Principles",
			Slug:         "ux-ui-design-principles",
			Description:  "Create user-centered designs and improve your design thinking skills.",
			Price:        99.99,
			Thumbnail:    "https://images.unsplash.com/photo-1587440871875-191322ee64b0",
			InstructorID: created[3].ID,
			CategoryID:   catIDs["design"],
			Duration:     1920,
			Level:        "beginner",
			IsFeatured:   true,
		},
	}
	for _, c := range courses {
		course, err := s.CreateCourse(c)
		if err != nil {
			return fmt.Errorf("seed course %s: %w", c.Slug, err)
		}
		for i := 1; i <= 5; i++ {
			_, err := s.CreateLesson(models.Lesson{
				Title:       fmt.Sprintf("%s - Lesson %d", course.Title, i),
				Description: fmt.Sprintf("Part %d", i),
				Content:     "Lesson content goes here...",
				CourseID:    course.ID,
				Duration:    30,
				Order:       i,
			})
			if err != nil {
				return fmt.Errorf("seed lessons for %s: %w", course.Slug, err)
			}
		}
	}

	return nil
}
