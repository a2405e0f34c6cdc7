package serverutils

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// ErrorKind classifies every recoverable failure the API can report. There
// is no fatal kind: the worst case is the current step failing to advance
// while keeping all entered data.
type ErrorKind string

const (
	KindValidation            ErrorKind = "VALIDATION"
	KindEvaluationUnavailable ErrorKind = "EVALUATION_UNAVAILABLE"
	KindChatUnavailable       ErrorKind = "CHAT_UNAVAILABLE"
	KindIncompleteQuiz        ErrorKind = "INCOMPLETE_QUIZ"
	KindInvalidTransition     ErrorKind = "INVALID_TRANSITION"
	KindPersistence           ErrorKind = "PERSISTENCE_WRITE_FAILURE"
	KindNotFound              ErrorKind = "NOT_FOUND"
)

var statusByKind = map[ErrorKind]int{
	KindValidation:            fiber.StatusBadRequest,
	KindEvaluationUnavailable: fiber.StatusServiceUnavailable,
	KindChatUnavailable:       fiber.StatusBadGateway,
	KindIncompleteQuiz:        fiber.StatusUnprocessableEntity,
	KindInvalidTransition:     fiber.StatusConflict,
	KindPersistence:           fiber.StatusInternalServerError,
	KindNotFound:              fiber.StatusNotFound,
}

type AppError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewAppError(kind ErrorKind, message string, err error) *AppError {
	return &AppError{Kind: kind, Message: message, Err: err}
}

func NewValidationError(message string) *AppError {
	return &AppError{Kind: KindValidation, Message: message}
}

func NewInvalidTransitionError(message string) *AppError {
	return &AppError{Kind: KindInvalidTransition, Message: message}
}

func NewNotFoundError(message string) *AppError {
	return &AppError{Kind: KindNotFound, Message: message}
}

// StatusFor maps an error kind onto its HTTP status code.
func StatusFor(kind ErrorKind) int {
	if code, ok := statusByKind[kind]; ok {
		return code
	}
	return fiber.StatusInternalServerError
}
