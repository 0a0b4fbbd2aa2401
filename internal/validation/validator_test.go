package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/gw-movie-catalog/internal/models"
)

type sample struct {
	Email    string  `json:"email" validate:"required,email"`
	Password string  `json:"password" validate:"min=8"`
	Rating   int     `json:"rating" validate:"gte=1,lte=10"`
	Kind     string  `json:"kind" validate:"omitempty,oneof=Film Series"`
	Violence *string `json:"violence" validate:"omitempty,descriptor"`
}

func TestStruct(t *testing.T) {
	tests := []struct {
		name       string
		in         sample
		wantFields []string
	}{
		{
			name: "valid",
			in:   sample{Email: "a@b.io", Password: "12345678", Rating: 5, Kind: "Film"},
		},
		{
			name:       "missing email",
			in:         sample{Password: "12345678", Rating: 5},
			wantFields: []string{"email"},
		},
		{
			name: "valid descriptor",
			in:   sample{Email: "a@b.io", Password: "12345678", Rating: 5, Violence: strRef("No Rate")},
		},
		{
			name:       "unknown descriptor",
			in:         sample{Email: "a@b.io", Password: "12345678", Rating: 5, Violence: strRef("Extreme")},
			wantFields: []string{"violence"},
		},
		{
			name:       "several failures",
			in:         sample{Email: "nope", Password: "short", Rating: 11, Kind: "Opera"},
			wantFields: []string{"email", "password", "rating", "kind"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Struct(tt.in)
			if tt.wantFields == nil {
				assert.NoError(t, err)
				return
			}

			var verr *Error
			assert.True(t, errors.As(err, &verr))
			var got []string
			for _, f := range verr.Fields {
				got = append(got, f.Field)
				assert.NotEmpty(t, f.Message)
			}
			assert.Equal(t, tt.wantFields, got)
		})
	}
}

func TestError_Message(t *testing.T) {
	err := Struct(sample{Email: "a@b.io", Password: "12345678", Rating: 0})
	assert.EqualError(t, err, "rating must be greater than or equal to 1")

	assert.Equal(t, "validation failed", (&Error{}).Error())
}

func TestStruct_OptionalRating(t *testing.T) {
	tests := []struct {
		name    string
		rating  models.OptionalInt
		wantErr string
	}{
		{name: "absent", rating: models.OptionalInt{}},
		{name: "explicit null", rating: models.IntNull()},
		{name: "lower bound", rating: models.IntValue(1)},
		{name: "upper bound", rating: models.IntValue(10)},
		{name: "zero", rating: models.IntValue(0), wantErr: "rating must be greater than or equal to 1"},
		{name: "too high", rating: models.IntValue(11), wantErr: "rating must be less than or equal to 10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Struct(models.ReviewInput{Rating: tt.rating})
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}

func strRef(s string) *string { return &s }
