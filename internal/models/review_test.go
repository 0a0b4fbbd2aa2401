package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReviewDB_IsEmpty(t *testing.T) {
	text := func(s string) *string { return &s }
	rating := 6

	assert.True(t, (&ReviewDB{}).IsEmpty())
	assert.True(t, (&ReviewDB{Review: text("")}).IsEmpty())
	assert.True(t, (&ReviewDB{Review: text("  \n\t")}).IsEmpty())
	assert.False(t, (&ReviewDB{Review: text(" fine ")}).IsEmpty())
	assert.False(t, (&ReviewDB{Rating: &rating, Review: text(" ")}).IsEmpty())
}
