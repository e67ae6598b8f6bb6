package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hromada/hromada-api/internal/domain"
)

// flexString accepts a JSON string, number or null, keeping the raw
// text so numeric fields can be coerced (or nulled) downstream exactly
// as submitted.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = flexString(s)
		return nil
	}
	if string(data) == "null" {
		*f = ""
		return nil
	}
	*f = flexString(data)
	return nil
}

func flexPtr(f *flexString) *string {
	if f == nil {
		return nil
	}
	s := string(*f)
	return &s
}

// writeError maps domain errors onto the HTTP taxonomy: validation and
// state errors are 400, missing records 404, credential problems 401,
// duplicates 409, anything else the generic 500 fallback.
func writeError(c echo.Context, err error, fallback string) error {
	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": validationErr.Error(),
		})
	}

	var transitionErr *domain.TransitionError
	if errors.As(err, &transitionErr) {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": transitionErr.Error(),
		})
	}

	switch {
	case errors.Is(err, domain.ErrSubmissionNotFound),
		errors.Is(err, domain.ErrProjectNotFound),
		errors.Is(err, domain.ErrDonationNotFound),
		errors.Is(err, domain.ErrWireTransferNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrContactNotFound),
		errors.Is(err, domain.ErrSubscriberNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{
			"error": err.Error(),
		})

	case errors.Is(err, domain.ErrAlreadyReviewed),
		errors.Is(err, domain.ErrSubmissionNotEditable),
		errors.Is(err, domain.ErrRejectionReasonRequired):
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": err.Error(),
		})

	case errors.Is(err, domain.ErrEmailTaken):
		return c.JSON(http.StatusConflict, map[string]string{
			"error": err.Error(),
		})

	case errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrAccountDisabled):
		return c.JSON(http.StatusUnauthorized, map[string]string{
			"error": err.Error(),
		})
	}

	return c.JSON(http.StatusInternalServerError, map[string]string{
		"error": fallback,
	})
}
