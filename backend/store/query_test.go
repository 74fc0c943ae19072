package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coursehub/backend/models"
)

func float(v float64) *float64 { return &v }

func buildCatalog(t *testing.T) *Store {
	t.Helper()
	s := New()
	instructor := createTestUser(t, s, "teach")
	programming, err := s.CreateCategory(models.Category{Name: "Programming", Slug: "programming"})
	require.NoError(t, err)
	design, err := s.CreateCategory(models.Category{Name: "Design", Slug: "design"})
	require.NoError(t, err)

	courses := []models.Course{
		{Title: "Web Development Bootcamp", Slug: "web-dev", Description: "HTML and JavaScript", Price: 89.99, CategoryID: programming.ID, Level: "beginner", IsFeatured: true},
		{Title: "Machine Learning", Slug: "ml", Description: "Python for data science", Price: 119.99, CategoryID: programming.ID, Level: "intermediate"},
		{Title: "UX Design", Slug: "ux", Description: "Design thinking", Price: 149.99, DiscountPrice: float(75), CategoryID: design.ID, Level: "beginner", IsFeatured: true},
		{Title: "Cheap Sketching", Slug: "sketching", Description: "Pencil basics", Price: 20, CategoryID: design.ID, Level: "beginner"},
	}
	for _, c := range courses {
		c.InstructorID = instructor.ID
		_, err := s.CreateCourse(c)
		require.NoError(t, err)
	}
	return s
}

func slugs(courses []models.Course) []string {
	out := make([]string, 0, len(courses))
	for _, c := range courses {
		out = append(out, c.Slug)
	}
	return out
}

func TestListCoursesNoFilterKeepsInsertionOrder(t *testing.T) {
	s := buildCatalog(t)

	got := s.ListCourses(CourseFilter{})
	assert.Equal(t, []string{"web-dev", "ml", "ux", "sketching"}, slugs(got))
}

func TestListCoursesPriceRangeUsesEffectivePrice(t *testing.T) {
	s := buildCatalog(t)

	// ux lists at 149.99 but discounts to 75, so it falls inside [50,100];
	// ml at 119.99 does not.
	got := s.ListCourses(CourseFilter{MinPrice: float(50), MaxPrice: float(100)})
	assert.Equal(t, []string{"web-dev", "ux"}, slugs(got))
}

func TestListCoursesPriceBoundsInclusive(t *testing.T) {
	s := buildCatalog(t)

	got := s.ListCourses(CourseFilter{MinPrice: float(89.99), MaxPrice: float(89.99)})
	assert.Equal(t, []string{"web-dev"}, slugs(got))
}

func TestListCoursesSearchIsCaseInsensitive(t *testing.T) {
	s := buildCatalog(t)

	assert.Equal(t, []string{"web-dev"}, slugs(s.ListCourses(CourseFilter{Search: "JAVASCRIPT"})))
	// Matches descriptions as well as titles.
	assert.Equal(t, []string{"ml"}, slugs(s.ListCourses(CourseFilter{Search: "python"})))
	assert.Empty(t, s.ListCourses(CourseFilter{Search: "cobol"}))
}

func TestListCoursesFiltersAreANDed(t *testing.T) {
	s := buildCatalog(t)
	design, err := s.GetCategoryBySlug("design")
	require.NoError(t, err)

	got := s.ListCourses(CourseFilter{CategoryID: design.ID, Level: "beginner", MaxPrice: float(50)})
	assert.Equal(t, []string{"sketching"}, slugs(got))
}

func TestFeaturedCourses(t *testing.T) {
	s := buildCatalog(t)

	assert.Equal(t, []string{"web-dev", "ux"}, slugs(s.FeaturedCourses()))
}

func TestCoursesInCategoryAndByInstructor(t *testing.T) {
	s := buildCatalog(t)
	programming, err := s.GetCategoryBySlug("programming")
	require.NoError(t, err)

	assert.Equal(t, []string{"web-dev", "ml"}, slugs(s.CoursesInCategory(programming.ID)))

	instructor, err := s.GetUserByUsername("teach")
	require.NoError(t, err)
	assert.Len(t, s.CoursesByInstructor(instructor.ID), 4)
	assert.Empty(t, s.CoursesByInstructor(999))
}

func TestLessonsByCourseSortedByOrder(t *testing.T) {
	s := New()
	course := createTestCourse(t, s, "go-basics", 10)

	for _, order := range []int{3, 1, 2} {
		_, err := s.CreateLesson(models.Lesson{Title: "L", CourseID: course.ID, Order: order})
		require.NoError(t, err)
	}

	lessons := s.LessonsByCourse(course.ID)
	require.Len(t, lessons, 3)
	assert.Equal(t, []int{1, 2, 3}, []int{lessons[0].Order, lessons[1].Order, lessons[2].Order})
}

func TestLessonsByCourseStableOnEqualOrder(t *testing.T) {
	s := New()
	course := createTestCourse(t, s, "go-basics", 10)

	first, err := s.CreateLesson(models.Lesson{Title: "first", CourseID: course.ID, Order: 1})
	require.NoError(t, err)
	second, err := s.CreateLesson(models.Lesson{Title: "second", CourseID: course.ID, Order: 1})
	require.NoError(t, err)

	lessons := s.LessonsByCourse(course.ID)
	require.Len(t, lessons, 2)
	assert.Equal(t, first.ID, lessons[0].ID)
	assert.Equal(t, second.ID, lessons[1].ID)
}

func TestGetCourseBySlug(t *testing.T) {
	s := buildCatalog(t)

	course, err := s.GetCourseBySlug("ml")
	require.NoError(t, err)
	assert.Equal(t, "Machine Learning", course.Title)

	_, err = s.GetCourseBySlug("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestEffectivePriceIgnoresHigherDiscount(t *testing.T) {
	course := models.Course{Price: 50, DiscountPrice: float(80)}
	assert.Equal(t, 50.0, course.EffectivePrice())

	course.DiscountPrice = float(30)
	assert.Equal(t, 30.0, course.EffectivePrice())

	course.DiscountPrice = nil
	assert.Equal(t, 50.0, course.EffectivePrice())
}
