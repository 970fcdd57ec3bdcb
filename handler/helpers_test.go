package handler_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"oneclickticket/model"
	"oneclickticket/router"
	"oneclickticket/testutil"

	"github.com/gofiber/fiber/v2"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"
)

type envelope[T any] struct {
	Status string `json:"status"`
	Data   T      `json:"data"`
}

func newApp(t *testing.T) (*fiber.App, *clockwork.FakeClock) {
	t.Helper()
	clock := testutil.Setup(t)
	return router.NewApp(), clock
}

func do(t *testing.T, app *fiber.App, method, path string, form url.Values, token string) *http.Response {
	t.Helper()
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, path, body)
	if form != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)
	}
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

type formView struct {
	Model     json.RawMessage                 `json:"model"`
	Errors    model.FieldErrors               `json:"errors"`
	Options   map[string][]model.SelectOption `json:"options"`
	CsrfToken string                          `json:"csrfToken"`
}

func selected(options []model.SelectOption) []string {
	var out []string
	for _, o := range options {
		if o.Selected {
			out = append(out, o.Value)
		}
	}
	return out
}
