package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/kevinaldroniya/crudSonarCube/internal/api/shared"
	"github.com/kevinaldroniya/crudSonarCube/internal/dto"
)

// getPathID extracts the int64 {id} path parameter.
// A missing or non-numeric value is a TypeMismatchError.
func getPathID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, &TypeMismatchError{Value: raw, RequiredType: typeInt64}
	}
	return id, nil
}

// decodeBody decodes the JSON body of r into v. Decoding failures are
// reported as a MalformedBodyError naming the offending field when the
// decoder identifies one.
func decodeBody(r *http.Request, v interface{}) error {
	err := shared.DecodeJSON(r, v)
	if err == nil {
		return nil
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return &MalformedBodyError{Field: typeErr.Field, Err: err}
	}
	return &MalformedBodyError{Err: err}
}

// decodeAndValidate decodes the body into v and applies its validate tags.
func decodeAndValidate(r *http.Request, v interface{}) error {
	if err := decodeBody(r, v); err != nil {
		return err
	}
	return validateBody(v)
}

// validateBody applies the validate tags of a decoded body.
func validateBody(v interface{}) error {
	fields, err := shared.ValidateRequest(v)
	if err != nil {
		return err
	}
	if len(fields) > 0 {
		return &FieldValidationError{Fields: fields}
	}
	return nil
}

// parseSearchParams reads the car search query parameters. Absent
// parameters keep their zero value; malformed numbers and booleans are a
// TypeMismatchError.
func parseSearchParams(r *http.Request, match dto.MakeMatch) (dto.SearchParams, error) {
	q := r.URL.Query()

	params := dto.SearchParams{
		Make:          q.Get("make"),
		Model:         q.Get("model"),
		Status:        q.Get("status"),
		SortBy:        q.Get("sortBy"),
		SortDirection: q.Get("sortDirection"),
		MakeMatch:     match,
	}

	var err error
	if params.Year, err = queryInt(q, "year"); err != nil {
		return dto.SearchParams{}, err
	}
	if params.Page, err = queryInt(q, "page"); err != nil {
		return dto.SearchParams{}, err
	}
	if params.Size, err = queryInt(q, "size"); err != nil {
		return dto.SearchParams{}, err
	}
	if params.IsElectric, err = queryBool(q, "isElectric"); err != nil {
		return dto.SearchParams{}, err
	}

	return params, nil
}

func queryInt(q url.Values, name string) (int, error) {
	raw := q.Get(name)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &TypeMismatchError{Value: raw, RequiredType: typeInt}
	}
	return n, nil
}

func queryBool(q url.Values, name string) (*bool, error) {
	raw := q.Get(name)
	if raw == "" {
		return nil, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, &TypeMismatchError{Value: raw, RequiredType: typeBool}
	}
	return &b, nil
}
