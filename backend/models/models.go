package models

import "time"

type User struct {
	ID        int       `json:"id"`
	Username  string    `json:"username"`
	Password  string    `json:"-"`
	Email     string    `json:"email,omitempty"`
	FirstName string    `json:"firstName,omitempty"`
	LastName  string    `json:"lastName,omitempty"`
	Avatar    string    `json:"avatar,omitempty"`
	Role      string    `json:"role"` // student, instructor, admin
	Bio       string    `json:"bio,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type Category struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
	Icon        string `json:"icon,omitempty"`
	CourseCount int    `json:"courseCount"`
}

type Course struct {
	ID            int       `json:"id"`
	Title         string    `json:"title"`
	Slug          string    `json:"slug"`
	Description   string    `json:"description,omitempty"`
	Price         float64   `json:"price"`
	DiscountPrice *float64  `json:"discountPrice,omitempty"`
	Thumbnail     string    `json:"thumbnail,omitempty"`
	InstructorID  int       `json:"instructorId"`
	CategoryID    int       `json:"categoryId,omitempty"`
	Rating        float64   `json:"rating"`
	ReviewCount   int       `json:"reviewCount"`
	LessonCount   int       `json:"lessonCount"`
	Duration      int       `json:"duration"` // in minutes
	Level         string    `json:"level"`    // beginner, intermediate, advanced
	IsFeatured    bool      `json:"isFeatured"`
	IsBestseller  bool      `json:"isBestseller"`
	IsNew         bool      `json:"isNew"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// EffectivePrice is the price checkout charges: the discount price when one is
// set and actually lower than the list price.
func (c Course) EffectivePrice() float64 {
	if c.DiscountPrice != nil && *c.DiscountPrice < c.Price {
		return *c.DiscountPrice
	}
	return c.Price
}

type Lesson struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Content     string `json:"content,omitempty"`
	CourseID    int    `json:"courseId"`
	Duration    int    `json:"duration"` // in minutes
	Order       int    `json:"order"`
}

const (
	EnrollmentActive    = "active"
	EnrollmentCompleted = "completed"
	EnrollmentCancelled = "cancelled"
)

type Enrollment struct {
	ID               int        `json:"id"`
	UserID           int        `json:"userId"`
	CourseID         int        `json:"courseId"`
	Status           string     `json:"status"` // active, completed, cancelled
	Progress         int        `json:"progress"`
	CompletedLessons []int      `json:"completedLessons"`
	CompletedAt      *time.Time `json:"completedAt,omitempty"`
	CreatedAt        time.Time  `json:"createdAt"`
}

const (
	PaymentPending   = "pending"
	PaymentCompleted = "completed"
	PaymentFailed    = "failed"
)

type Payment struct {
	ID         int       `json:"id"`
	UserID     int       `json:"userId"`
	CourseID   int       `json:"courseId"`
	Amount     float64   `json:"amount"`
	Currency   string    `json:"currency"`
	Status     string    `json:"status"` // pending, completed, failed
	PaymentRef string    `json:"paymentRef"`
	CreatedAt  time.Time `json:"createdAt"`
}

type Review struct {
	ID        int       `json:"id"`
	UserID    int       `json:"userId"`
	CourseID  int       `json:"courseId"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// EnrolledCourse is an enrollment joined with its course for the
// my-courses listing.
type EnrolledCourse struct {
	Enrollment
	Course Course `json:"course"`
}

// CourseReview is a review joined with the user who wrote it.
type CourseReview struct {
	Review
	User User `json:"user"`
}
