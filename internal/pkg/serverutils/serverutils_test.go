package serverutils

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func newSessionApp() *fiber.App {
	app := fiber.New()
	app.Use(SessionMiddleware(SessionMiddlewareConfig{Secret: testSecret, CookieName: "bb_session"}))
	app.Get("/whoami", func(ctx *fiber.Ctx) error {
		return ctx.SendString(SessionID(ctx))
	})
	return app
}

func sessionCookie(resp *http.Response) *http.Cookie {
	for _, c := range resp.Cookies() {
		if c.Name == "bb_session" {
			return c
		}
	}
	return nil
}

func TestSessionMiddlewareIssuesSession(t *testing.T) {
	app := newSessionApp()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/whoami", nil))
	require.NoError(t, err)

	body, _ := io.ReadAll(resp.Body)
	_, parseErr := uuid.Parse(string(body))
	assert.NoError(t, parseErr)

	cookie := sessionCookie(resp)
	require.NotNil(t, cookie)
	assert.True(t, cookie.HttpOnly)
}

func TestSessionMiddlewareReusesValidCookie(t *testing.T) {
	app := newSessionApp()

	sid := uuid.NewString()
	token, err := signSessionToken(sid, []byte(testSecret))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.AddCookie(&http.Cookie{Name: "bb_session", Value: token})
	resp, err := app.Test(req)
	require.NoError(t, err)

	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, sid, string(body))
	assert.Nil(t, sessionCookie(resp), "no new cookie for a valid session")
}

func TestSessionMiddlewareRejectsForgedCookie(t *testing.T) {
	app := newSessionApp()

	sid := uuid.NewString()
	forged, err := signSessionToken(sid, []byte("other-secret"))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.AddCookie(&http.Cookie{Name: "bb_session", Value: forged})
	resp, err := app.Test(req)
	require.NoError(t, err)

	body, _ := io.ReadAll(resp.Body)
	assert.NotEqual(t, sid, string(body))
	assert.NotNil(t, sessionCookie(resp))
}

func TestErrorHandlerMiddleware(t *testing.T) {
	type request struct {
		CatId string `validate:"required"`
	}

	tests := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{"app not found", NotFound("Cat %s not found", "7"), fiber.StatusNotFound, "Cat 7 not found"},
		{"app conflict", Conflict("already adopted"), fiber.StatusConflict, "already adopted"},
		{"fiber error", fiber.NewError(fiber.StatusMethodNotAllowed, "nope"), fiber.StatusMethodNotAllowed, "nope"},
		{"validation", ValidateRequest(request{}), fiber.StatusBadRequest, "CatId failed on 'required'"},
		{"unknown", errors.New("db down"), fiber.StatusInternalServerError, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Use(ErrorHandlerMiddleware())
			app.Get("/", func(ctx *fiber.Ctx) error { return tt.err })

			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
			require.NoError(t, err)
			assert.Equal(t, tt.wantCode, resp.StatusCode)

			var envelope Response[any]
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
			assert.False(t, envelope.Success)
			assert.Equal(t, tt.wantMsg, envelope.Message)
		})
	}
}

func TestAppErrorMatchesSentinel(t *testing.T) {
	assert.True(t, errors.Is(NotFound("x"), ErrNotFound))
	assert.True(t, errors.Is(Conflict("x"), ErrConflict))
	assert.False(t, errors.Is(BadRequest("x"), ErrNotFound))
}
