package store

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jas-4484/enrollment-api/internal/models"
)

func TestCourseCatalog(t *testing.T) {
	c := NewCourseCatalog([]models.Course{
		{CourseID: "261207", CourseTitle: "Lab"},
		{CourseID: "CS101", CourseTitle: "Intro"},
	})

	course, ok := c.FindByID("CS101")
	assert.True(t, ok)
	assert.Equal(t, "Intro", course.CourseTitle)

	_, ok = c.FindByID("nope")
	assert.False(t, ok)

	list := c.List()
	list[0].CourseTitle = "changed"
	assert.Equal(t, "Lab", c.List()[0].CourseTitle)
}

func TestUserDirectory(t *testing.T) {
	d := NewUserDirectory([]models.User{{Username: "admin", Role: models.RoleAdmin}})

	u, ok := d.FindByUsername("admin")
	assert.True(t, ok)
	assert.Equal(t, models.RoleAdmin, u.Role)

	_, ok = d.FindByUsername("ghost")
	assert.False(t, ok)
}
