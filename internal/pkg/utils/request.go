package utils

import (
	"net/http"
	"strconv"
	"vaxtrack-service/internal/pkg/exceptions"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
)

// ParseRequestBody decodes the JSON body into dst without touching unknown fields.
func ParseRequestBody(r *http.Request, dst interface{}) error {
	err := json.NewDecoder(r.Body).Decode(dst)
	if err != nil {
		return exceptions.ErrCannotParseJSON(err)
	}
	return nil
}

// ParseURLParamID reads an integer path parameter. IDs in this API are plain
// integers, anything else is a client error.
func ParseURLParamID(r *http.Request, paramName string) (int, error) {
	raw := chi.URLParam(r, paramName)
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, exceptions.ErrURLParamIDValidation(err, paramName)
	}
	return id, nil
}
