package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"employee-records/internal/api"
	"employee-records/internal/entities"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(handler http.Handler) (*Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	c := New(srv.URL, 2*time.Second, zap.NewNop().Sugar())
	return c, srv
}

func TestListEmployees(t *testing.T) {
	c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/api/employees", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]api.Employee{
			{ID: "e1", Name: "Amelia Hart", Department: "Engineering", Salary: 98000, Status: "active"},
			{ID: "e2", Name: "Bruno Keller", Department: "Sales", Salary: 76000, Status: "on-leave"},
		})
	}))
	defer srv.Close()

	rows, err := c.ListEmployees(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, "e1", rows[0].ID)
	require.Equal(t, entities.StatusOnLeave, rows[1].Status)
}

func TestGetEmployeeNotFound(t *testing.T) {
	c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := c.GetEmployee(context.Background(), "missing")
	require.ErrorIs(t, err, entities.ErrEmployeeNotFound)
}

func TestCreateEmployeeSendsPayload(t *testing.T) {
	c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body api.CreateEmployeeRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "Amelia Hart", body.Name)

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(api.Employee{ID: "e1", Name: body.Name, Salary: body.Salary})
	}))
	defer srv.Close()

	emp, err := c.CreateEmployee(context.Background(), api.CreateEmployeeRequest{Name: "Amelia Hart", Email: "a@example.com", Salary: 98000})
	require.NoError(t, err)
	require.Equal(t, "e1", emp.ID)
}

func TestDeleteEmployee(t *testing.T) {
	c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		require.Equal(t, "/api/employees/e1", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	require.NoError(t, c.DeleteEmployee(context.Background(), "e1"))
}

func TestDeleteEmployeeNotFound(t *testing.T) {
	c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	err := c.DeleteEmployee(context.Background(), "missing")
	require.ErrorIs(t, err, entities.ErrEmployeeNotFound)
}

func TestErrorBodyIsDecoded(t *testing.T) {
	c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		var body api.ErrorResponse
		body.Error.Code = api.USERNAMETAKEN
		body.Error.Message = "username already exists"
		_ = json.NewEncoder(w).Encode(body)
	}))
	defer srv.Close()

	_, err := c.CreateEmployee(context.Background(), api.CreateEmployeeRequest{Name: "x"})
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, http.StatusConflict, apiErr.StatusCode)
	require.Equal(t, api.USERNAMETAKEN, apiErr.Code)
}

func TestTransportFailureIsReturned(t *testing.T) {
	c, srv := newTestClient(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {}))
	srv.Close() // connection refused from here on

	_, err := c.ListEmployees(context.Background())
	require.Error(t, err)
}
