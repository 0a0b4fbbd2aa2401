package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/sbilibin2017/gw-movie-catalog/internal/models"
	"github.com/sbilibin2017/gw-movie-catalog/internal/services"
	"github.com/sbilibin2017/gw-movie-catalog/internal/validation"
)

const (
	multipartMemory    = 10 << 20
	thumbnailFormField = "thumbnail"
	genresFormField    = "genres"
)

// movieForm is a decoded create or update request. Close releases the uploaded file.
type movieForm struct {
	Input     models.MovieInput
	Thumbnail *services.Thumbnail
	file      multipart.File
}

func (f *movieForm) Close() {
	if f.file != nil {
		f.file.Close()
	}
}

// parseMovieForm reads a movie from a multipart form, or from a JSON body when
// the request is not multipart. Only multipart requests can carry a thumbnail.
func parseMovieForm(r *http.Request) (*movieForm, error) {
	form := &movieForm{}
	if !strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := json.NewDecoder(r.Body).Decode(&form.Input); err != nil {
			return nil, fieldError("body", "json", "Invalid request body")
		}
		return form, nil
	}

	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		return nil, fieldError("body", "multipart", "Invalid multipart form")
	}

	var errs []validation.FieldError
	str := func(name string) *string {
		if v, ok := r.MultipartForm.Value[name]; ok && len(v) > 0 {
			s := v[0]
			return &s
		}
		return nil
	}
	num := func(name string) *int {
		s := str(name)
		if s == nil || *s == "" {
			return nil
		}
		n, err := strconv.Atoi(strings.TrimSpace(*s))
		if err != nil {
			errs = append(errs, validation.FieldError{Field: name, Tag: "number", Message: name + " must be an integer"})
			return nil
		}
		return &n
	}

	in := &form.Input
	in.Name = str("name")
	in.ReleaseYear = num("releaseYear")
	in.Duration = num("duration")
	in.Type = str("type")
	in.Certificate = str("certificate")
	in.Episodes = num("episodes")
	in.Description = str("description")
	in.Nudity = str("nudity")
	in.Violence = str("violence")
	in.Profanity = str("profanity")
	in.Alcohol = str("alcohol")
	in.Frightening = str("frightening")

	genres, err := parseGenreIDs(r.MultipartForm.Value[genresFormField])
	if err != nil {
		errs = append(errs, validation.FieldError{Field: genresFormField, Tag: "number", Message: err.Error()})
	}
	in.GenreIDs = genres

	if len(errs) > 0 {
		return nil, &validation.Error{Fields: errs}
	}

	file, header, err := r.FormFile(thumbnailFormField)
	switch {
	case errors.Is(err, http.ErrMissingFile):
	case err != nil:
		return nil, fieldError(thumbnailFormField, "file", "Invalid thumbnail upload")
	default:
		form.file = file
		form.Thumbnail = &services.Thumbnail{
			ContentType: header.Header.Get("Content-Type"),
			Content:     file,
		}
	}
	return form, nil
}

// parseGenreIDs accepts genres as repeated form values or as one JSON array.
func parseGenreIDs(values []string) ([]int, error) {
	if len(values) == 1 && strings.HasPrefix(strings.TrimSpace(values[0]), "[") {
		var ids []int
		if err := json.Unmarshal([]byte(values[0]), &ids); err != nil {
			return nil, errors.New("genres must be a JSON array of genre ids")
		}
		return ids, nil
	}

	ids := make([]int, 0, len(values))
	for _, v := range values {
		id, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return nil, fmt.Errorf("genre id %q is not an integer", v)
		}
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return nil, nil
	}
	return ids, nil
}

func fieldError(field, tag, msg string) error {
	return &validation.Error{Fields: []validation.FieldError{{Field: field, Tag: tag, Message: msg}}}
}
