package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/molter/wordsearch/internal/model"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest     = "INVALID_REQUEST"
	CodeInvalidSize        = "INVALID_SIZE"
	CodeInvalidWord        = "INVALID_WORD"
	CodeNoWords            = "NO_WORDS"
	CodePlacementExhausted = "PLACEMENT_EXHAUSTED"
	CodePuzzleNotFound     = "PUZZLE_NOT_FOUND"
	CodeWordListNotFound   = "WORDLIST_NOT_FOUND"
	CodeWordListExists     = "WORDLIST_EXISTS"
	CodeInternalError      = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	// Check for specific error types
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	// Map model errors
	switch {
	case errors.Is(err, model.ErrPlacementExhausted):
		return &httpError{http.StatusUnprocessableEntity, APIError{CodePlacementExhausted, "Cannot place all words; try a larger grid, fewer words, or disabling diagonals"}}
	case errors.Is(err, model.ErrInvalidSize):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidSize, "Grid size must not be negative"}}
	case errors.Is(err, model.ErrInvalidWord):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidWord, "Words must contain only letters"}}
	case errors.Is(err, model.ErrNoWords):
		return &httpError{http.StatusBadRequest, APIError{CodeNoWords, "Word list contains no usable words"}}
	case errors.Is(err, model.ErrPuzzleNotFound):
		return &httpError{http.StatusNotFound, APIError{CodePuzzleNotFound, "Puzzle not found"}}
	case errors.Is(err, model.ErrWordListNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeWordListNotFound, "Word list not found"}}
	case errors.Is(err, model.ErrWordListExists):
		return &httpError{http.StatusConflict, APIError{CodeWordListExists, "Word list already exists"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
