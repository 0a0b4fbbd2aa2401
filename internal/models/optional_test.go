package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

type reviewPayload struct {
	Rating OptionalInt    `json:"rating"`
	Review OptionalString `json:"review"`
}

func TestOptional_Unmarshal(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantRating OptionalInt
		wantReview OptionalString
		wantErr    bool
	}{
		{
			name: "absent",
			body: `{}`,
		},
		{
			name:       "explicit null",
			body:       `{"rating": null, "review": null}`,
			wantRating: IntNull(),
			wantReview: StringNull(),
		},
		{
			name:       "values",
			body:       `{"rating": 7, "review": "great"}`,
			wantRating: IntValue(7),
			wantReview: StringValue("great"),
		},
		{
			name:       "zero is a value",
			body:       `{"rating": 0, "review": ""}`,
			wantRating: IntValue(0),
			wantReview: StringValue(""),
		},
		{
			name:    "fractional rating",
			body:    `{"rating": 7.5}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p reviewPayload
			err := json.Unmarshal([]byte(tt.body), &p)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantRating, p.Rating)
			assert.Equal(t, tt.wantReview, p.Review)
		})
	}
}

func TestOptional_Merge(t *testing.T) {
	old := 5
	oldText := "old"

	assert.Equal(t, &old, OptionalInt{}.Merge(&old))
	assert.Nil(t, IntNull().Merge(&old))
	assert.Equal(t, 9, *IntValue(9).Merge(&old))

	assert.Equal(t, &oldText, OptionalString{}.Merge(&oldText))
	assert.Nil(t, StringNull().Merge(&oldText))
	assert.Equal(t, "new", *StringValue("new").Merge(&oldText))
}

func TestOptional_Marshal(t *testing.T) {
	b, err := json.Marshal(reviewPayload{Rating: IntValue(3), Review: StringNull()})
	assert.NoError(t, err)
	assert.JSONEq(t, `{"rating": 3, "review": null}`, string(b))
}
