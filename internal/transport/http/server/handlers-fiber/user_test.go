package handlers_fiber

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"employee-records/internal/api"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func createUser(t *testing.T, app *fiber.App, body api.CreateUserRequest) api.User {
	t.Helper()

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/users", body))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created api.User
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	return created
}

func TestCreateUserAndFindByUsername(t *testing.T) {
	app := newTestApp(t)

	created := createUser(t, app, api.CreateUserRequest{Username: "admin", Password: "secret"})
	require.NotEmpty(t, created.ID)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/users?username=admin", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got api.User
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	require.Equal(t, created.ID, got.ID)
}

func TestUserResponseOmitsCredential(t *testing.T) {
	app := newTestApp(t)
	created := createUser(t, app, api.CreateUserRequest{Username: "admin", Password: "secret"})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/users/"+created.ID, nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	var raw map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&raw))
	require.NotContains(t, raw, "password")
}

func TestCreateUserDuplicateUsername(t *testing.T) {
	app := newTestApp(t)
	createUser(t, app, api.CreateUserRequest{Username: "admin", Password: "secret"})

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/users", api.CreateUserRequest{Username: "admin", Password: "other"}))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusConflict, resp.StatusCode)
	require.Equal(t, api.USERNAMETAKEN, decodeErrorBody(t, resp).Error.Code)
}

func TestFindUserRequiresUsername(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/users", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestDeleteUser(t *testing.T) {
	app := newTestApp(t)
	created := createUser(t, app, api.CreateUserRequest{Username: "admin", Password: "secret"})

	resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/api/users/"+created.ID, nil))
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/users/"+created.ID, nil))
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}
