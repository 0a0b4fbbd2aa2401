package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMovieInput_Apply(t *testing.T) {
	oldType := "Film"
	m := &MovieDB{Name: "Old", ReleaseYear: 1999, Type: &oldType}

	name := "New"
	desc := "about"
	MovieInput{Name: &name, Description: &desc}.Apply(m)

	assert.Equal(t, "New", m.Name)
	assert.Equal(t, 1999, m.ReleaseYear)
	assert.Equal(t, "Film", *m.Type)
	assert.Equal(t, "about", *m.Description)

	desc = "changed after apply"
	assert.Equal(t, "about", *m.Description)
}

func TestNewMoviePage(t *testing.T) {
	page := NewMoviePage(MovieFilter{Page: 3, Limit: 20}, 45, nil)

	assert.Equal(t, 3, page.CurrentPage)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, 45, page.TotalMovies)
	assert.Equal(t, 40, page.Offset)
	assert.NotNil(t, page.Movies)
}

func TestIsValidDescriptor(t *testing.T) {
	for _, d := range []string{"Mild", "Moderate", "Severe", "No Rate"} {
		assert.True(t, IsValidDescriptor(d))
	}
	assert.False(t, IsValidDescriptor("Extreme"))
	assert.False(t, IsValidDescriptor(""))
}
