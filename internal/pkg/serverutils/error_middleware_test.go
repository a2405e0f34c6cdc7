package serverutils

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(handler fiber.Handler) *fiber.App {
	app := fiber.New()
	app.Use(ErrorHandlerMiddleware())
	app.Get("/probe", handler)
	return app
}

func probe(t *testing.T, app *fiber.App) (int, KindedResponse) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", "/probe", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var body KindedResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

func TestMiddlewareMapsAppErrorKinds(t *testing.T) {
	tests := []struct {
		kind       ErrorKind
		wantStatus int
	}{
		{KindValidation, fiber.StatusBadRequest},
		{KindEvaluationUnavailable, fiber.StatusServiceUnavailable},
		{KindChatUnavailable, fiber.StatusBadGateway},
		{KindIncompleteQuiz, fiber.StatusUnprocessableEntity},
		{KindInvalidTransition, fiber.StatusConflict},
		{KindPersistence, fiber.StatusInternalServerError},
		{KindNotFound, fiber.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			app := newTestApp(func(ctx *fiber.Ctx) error {
				return NewAppError(tt.kind, "boom", nil)
			})

			status, body := probe(t, app)
			assert.Equal(t, tt.wantStatus, status)
			assert.False(t, body.Success)
			assert.Equal(t, string(tt.kind), body.ErrorType)
			assert.Equal(t, "boom", body.Message)
		})
	}
}

func TestMiddlewareHidesUnknownErrors(t *testing.T) {
	app := newTestApp(func(ctx *fiber.Ctx) error {
		return assert.AnError
	})

	status, body := probe(t, app)
	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Equal(t, "internal server error", body.Message, "internal detail must not leak")
}

func TestMiddlewarePassesSuccessThrough(t *testing.T) {
	app := newTestApp(func(ctx *fiber.Ctx) error {
		return ctx.JSON(SuccessResponse("ok", fiber.Map{"x": 1}))
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/probe", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestValidateRequestListsFields(t *testing.T) {
	type form struct {
		Name string `validate:"required"`
		Age  int    `validate:"gte=10,lte=100"`
	}

	err := ValidateRequest(form{Age: 5})
	require.Error(t, err)

	appErr, ok := err.(*AppError)
	require.True(t, ok)
	assert.Equal(t, KindValidation, appErr.Kind)
	assert.Contains(t, appErr.Message, "Name")
	assert.Contains(t, appErr.Message, "Age")

	assert.NoError(t, ValidateRequest(form{Name: "ok", Age: 30}))
}
