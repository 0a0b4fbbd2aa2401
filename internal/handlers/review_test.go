package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-movie-catalog/internal/models"
	"github.com/sbilibin2017/gw-movie-catalog/internal/services"
	"github.com/stretchr/testify/assert"
)

func intRef(v int) *int { return &v }

func TestSubmitReviewHandler(t *testing.T) {
	userID := uuid.New()
	movieID := uuid.New()

	tests := []struct {
		name           string
		movieID        string
		body           string
		anonymous      bool
		setupMock      func(m *MockReviewSubmitter)
		expectedStatus int
		expectedMsg    string
		expectedBody   string
	}{
		{
			name:    "created",
			movieID: movieID.String(),
			body:    `{"rating":8,"review":"Great"}`,
			setupMock: func(m *MockReviewSubmitter) {
				in := models.ReviewInput{Rating: models.IntValue(8), Review: models.StringValue("Great")}
				m.EXPECT().Submit(gomock.Any(), movieID, userID, in).
					Return(&models.ReviewDB{ReviewID: uuid.New(), Rating: intRef(8)}, true, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "Review created successfully",
		},
		{
			name:    "updated keeps absent text and clears nothing",
			movieID: movieID.String(),
			body:    `{"rating":10}`,
			setupMock: func(m *MockReviewSubmitter) {
				in := models.ReviewInput{Rating: models.IntValue(10)}
				m.EXPECT().Submit(gomock.Any(), movieID, userID, in).
					Return(&models.ReviewDB{Rating: intRef(10)}, false, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "Review updated successfully",
		},
		{
			name:    "explicit null clears rating",
			movieID: movieID.String(),
			body:    `{"rating":null,"review":"Changed my mind"}`,
			setupMock: func(m *MockReviewSubmitter) {
				in := models.ReviewInput{Rating: models.IntNull(), Review: models.StringValue("Changed my mind")}
				m.EXPECT().Submit(gomock.Any(), movieID, userID, in).Return(&models.ReviewDB{}, false, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "rating out of range",
			movieID:        movieID.String(),
			body:           `{"rating":11}`,
			setupMock:      func(m *MockReviewSubmitter) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"details":[{"field":"rating","tag":"lte","message":"rating must be less than or equal to 10"}]`,
		},
		{
			name:           "rating zero",
			movieID:        movieID.String(),
			body:           `{"rating":0,"review":"meh"}`,
			setupMock:      func(m *MockReviewSubmitter) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"tag":"gte"`,
		},
		{
			name:    "rating rejected by service",
			movieID: movieID.String(),
			body:    `{"rating":5}`,
			setupMock: func(m *MockReviewSubmitter) {
				m.EXPECT().Submit(gomock.Any(), movieID, userID, gomock.Any()).Return(nil, false, services.ErrInvalidRating)
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:    "empty review",
			movieID: movieID.String(),
			body:    `{}`,
			setupMock: func(m *MockReviewSubmitter) {
				m.EXPECT().Submit(gomock.Any(), movieID, userID, models.ReviewInput{}).Return(nil, false, services.ErrEmptyReview)
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:    "movie not found",
			movieID: movieID.String(),
			body:    `{"rating":5}`,
			setupMock: func(m *MockReviewSubmitter) {
				m.EXPECT().Submit(gomock.Any(), movieID, userID, gomock.Any()).Return(nil, false, services.ErrMovieNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "bad movie id",
			movieID:        "42",
			body:           `{"rating":5}`,
			setupMock:      func(m *MockReviewSubmitter) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "rating not a number",
			movieID:        movieID.String(),
			body:           `{"rating":"eight"}`,
			setupMock:      func(m *MockReviewSubmitter) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "anonymous",
			movieID:        movieID.String(),
			body:           `{"rating":5}`,
			anonymous:      true,
			setupMock:      func(m *MockReviewSubmitter) {},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := NewMockReviewSubmitter(ctrl)
			tt.setupMock(m)

			req := httptest.NewRequest(http.MethodPost, "/api/"+tt.movieID+"/review", strings.NewReader(tt.body))
			req = withURLParam(req, "id", tt.movieID)
			if !tt.anonymous {
				req = withUser(req, userID)
			}
			rr := httptest.NewRecorder()

			NewSubmitReviewHandler(m).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			if tt.expectedMsg != "" {
				assert.Equal(t, tt.expectedMsg, decodeBody(t, rr)["message"])
			}
			if tt.expectedBody != "" {
				assert.Contains(t, rr.Body.String(), tt.expectedBody)
			}
		})
	}
}

func TestDeleteReviewHandler(t *testing.T) {
	userID := uuid.New()
	movieID := uuid.New()
	reviewID := uuid.New()

	tests := []struct {
		name           string
		body           string
		setupMock      func(m *MockReviewDeleter)
		expectedStatus int
	}{
		{
			name: "deleted",
			body: `{"reviewID":"` + reviewID.String() + `"}`,
			setupMock: func(m *MockReviewDeleter) {
				m.EXPECT().Delete(gomock.Any(), movieID, reviewID, userID).Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "not the owner",
			body: `{"reviewID":"` + reviewID.String() + `"}`,
			setupMock: func(m *MockReviewDeleter) {
				m.EXPECT().Delete(gomock.Any(), movieID, reviewID, userID).Return(services.ErrReviewNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "missing review id",
			body:           `{}`,
			setupMock:      func(m *MockReviewDeleter) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "internal error",
			body: `{"reviewID":"` + reviewID.String() + `"}`,
			setupMock: func(m *MockReviewDeleter) {
				m.EXPECT().Delete(gomock.Any(), movieID, reviewID, userID).Return(errors.New("boom"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := NewMockReviewDeleter(ctrl)
			tt.setupMock(m)

			req := httptest.NewRequest(http.MethodDelete, "/", strings.NewReader(tt.body))
			req = withURLParam(withUser(req, userID), "id", movieID.String())
			rr := httptest.NewRecorder()

			NewDeleteReviewHandler(m).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
		})
	}
}

func TestListReviewsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	movieID := uuid.New()
	m := NewMockReviewLister(ctrl)
	m.EXPECT().List(gomock.Any(), movieID).Return(nil, nil)
	m.EXPECT().List(gomock.Any(), movieID).Return(nil, services.ErrMovieNotFound)

	rr := httptest.NewRecorder()
	NewListReviewsHandler(m).ServeHTTP(rr, withURLParam(httptest.NewRequest(http.MethodGet, "/", nil), "id", movieID.String()))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, []any{}, decodeBody(t, rr)["reviews"])

	rr = httptest.NewRecorder()
	NewListReviewsHandler(m).ServeHTTP(rr, withURLParam(httptest.NewRequest(http.MethodGet, "/", nil), "id", movieID.String()))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
