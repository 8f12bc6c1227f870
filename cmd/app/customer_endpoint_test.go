package main

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ashu-89/FoodOrderingApp-BackEnd-1/internal/model"
	"github.com/ashu-89/FoodOrderingApp-BackEnd-1/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memCustomerStore struct {
	byContact map[string]*model.Customer
	nextID    int64
}

func (m *memCustomerStore) Create(_ context.Context, c *model.Customer) (*model.Customer, error) {
	m.nextID++
	c.CustomerID = m.nextID
	m.byContact[c.ContactNumber] = c
	return c, nil
}

func (m *memCustomerStore) GetByContactNumber(_ context.Context, contactNumber string) (*model.Customer, error) {
	return m.byContact[contactNumber], nil
}

func (m *memCustomerStore) GetByUUID(_ context.Context, uuid string) (*model.Customer, error) {
	for _, c := range m.byContact {
		if c.UUID == uuid {
			return c, nil
		}
	}
	return nil, nil
}

func (m *memCustomerStore) Update(_ context.Context, c *model.Customer) error {
	m.byContact[c.ContactNumber] = c
	return nil
}

type memSessionStore struct {
	byToken map[string]*model.CustomerAuth
	nextID  int64
}

func (m *memSessionStore) Create(_ context.Context, a *model.CustomerAuth) error {
	m.nextID++
	a.AuthID = m.nextID
	m.byToken[a.AccessToken] = a
	return nil
}

func (m *memSessionStore) GetByToken(_ context.Context, accessToken string) (*model.CustomerAuth, error) {
	return m.byToken[accessToken], nil
}

func (m *memSessionStore) Update(_ context.Context, a *model.CustomerAuth) error {
	m.byToken[a.AccessToken] = a
	return nil
}

func newTestServer() *echo.Echo {
	cs := &memCustomerStore{byContact: map[string]*model.Customer{}}
	ss := &memSessionStore{byToken: map[string]*model.CustomerAuth{}}
	authSvc := services.NewAuthService(cs, ss, services.NewPasswordCrypto(), services.NewTokenIssuer())
	customerSvc := services.NewCustomerService(cs)

	e := echo.New()
	registerCustomerRoutes(e.Group("/api"), authSvc, customerSvc)
	return e
}

func doJSON(e *echo.Echo, method, path, body string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

const signupBody = `{
	"first_name": "Ravi",
	"last_name": "Kumar",
	"email_address": "ravi@example.com",
	"contact_number": "9876543210",
	"password": "Str0ng!pw"
}`

func basicAuth(contact, password string) http.Header {
	h := http.Header{}
	h.Set("Authorization", "Basic "+base64.StdEncoding.EncodeToString([]byte(contact+":"+password)))
	return h
}

func bearer(token string) http.Header {
	h := http.Header{}
	h.Set("Authorization", "Bearer "+token)
	return h
}

func TestSignupLoginLogoutFlow(t *testing.T) {
	e := newTestServer()

	rec := doJSON(e, http.MethodPost, "/api/customer/signup", signupBody, nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "CUSTOMER SUCCESSFULLY REGISTERED", body["status"])
	assert.NotEmpty(t, body["id"])

	rec = doJSON(e, http.MethodPost, "/api/customer/login", "", basicAuth("9876543210", "Str0ng!pw"))
	require.Equal(t, http.StatusOK, rec.Code)
	token := rec.Header().Get("access-token")
	require.NotEmpty(t, token)
	body = decodeBody(t, rec)
	assert.Equal(t, "LOGGED IN SUCCESSFULLY", body["message"])
	assert.Equal(t, "Ravi", body["first_name"])

	// the token opens protected endpoints
	rec = doJSON(e, http.MethodPut, "/api/customer", `{"first_name":"Ravindra","last_name":"K"}`, bearer(token))
	require.Equal(t, http.StatusOK, rec.Code)
	body = decodeBody(t, rec)
	assert.Equal(t, "CUSTOMER DETAILS UPDATED SUCCESSFULLY", body["message"])
	assert.Equal(t, "Ravindra", body["first_name"])

	rec = doJSON(e, http.MethodPost, "/api/customer/logout", "", bearer(token))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "LOGGED OUT SUCCESSFULLY", decodeBody(t, rec)["message"])

	// the same token is dead afterwards
	rec = doJSON(e, http.MethodPut, "/api/customer", `{"first_name":"X"}`, bearer(token))
	require.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "ATHR-002", decodeBody(t, rec)["code"])
}

func TestSignupValidationErrors(t *testing.T) {
	e := newTestServer()

	rec := doJSON(e, http.MethodPost, "/api/customer/signup", `{"first_name":"Ravi"}`, nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "SGR-005", decodeBody(t, rec)["code"])

	// duplicate contact
	rec = doJSON(e, http.MethodPost, "/api/customer/signup", signupBody, nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	rec = doJSON(e, http.MethodPost, "/api/customer/signup", signupBody, nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "SGR-001", decodeBody(t, rec)["code"])
}

func TestLoginHeaderFormats(t *testing.T) {
	e := newTestServer()
	rec := doJSON(e, http.MethodPost, "/api/customer/signup", signupBody, nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	t.Run("missing basic prefix", func(t *testing.T) {
		h := http.Header{}
		h.Set("Authorization", "Bearer something")
		rec := doJSON(e, http.MethodPost, "/api/customer/login", "", h)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "ATH-003", decodeBody(t, rec)["code"])
	})

	t.Run("not base64", func(t *testing.T) {
		h := http.Header{}
		h.Set("Authorization", "Basic %%%")
		rec := doJSON(e, http.MethodPost, "/api/customer/login", "", h)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "ATH-003", decodeBody(t, rec)["code"])
	})

	t.Run("no colon", func(t *testing.T) {
		h := http.Header{}
		h.Set("Authorization", "Basic "+base64.StdEncoding.EncodeToString([]byte("no-colon-here")))
		rec := doJSON(e, http.MethodPost, "/api/customer/login", "", h)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "ATH-003", decodeBody(t, rec)["code"])
	})

	t.Run("wrong password", func(t *testing.T) {
		rec := doJSON(e, http.MethodPost, "/api/customer/login", "", basicAuth("9876543210", "Wr0ng!pass"))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "ATH-002", decodeBody(t, rec)["code"])
	})
}

func TestProtectedEndpointsRequireToken(t *testing.T) {
	e := newTestServer()

	rec := doJSON(e, http.MethodPut, "/api/customer", `{"first_name":"X"}`, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "ATHR-001", decodeBody(t, rec)["code"])

	rec = doJSON(e, http.MethodPut, "/api/customer", `{"first_name":"X"}`, bearer("bogus-token"))
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "ATHR-001", decodeBody(t, rec)["code"])
}

func TestUpdatePasswordEndpoint(t *testing.T) {
	e := newTestServer()
	rec := doJSON(e, http.MethodPost, "/api/customer/signup", signupBody, nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	rec = doJSON(e, http.MethodPost, "/api/customer/login", "", basicAuth("9876543210", "Str0ng!pw"))
	require.Equal(t, http.StatusOK, rec.Code)
	token := rec.Header().Get("access-token")

	rec = doJSON(e, http.MethodPut, "/api/customer/password", `{"old_password":"","new_password":"N3w!passwd"}`, bearer(token))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "UCR-003", decodeBody(t, rec)["code"])

	rec = doJSON(e, http.MethodPut, "/api/customer/password", `{"old_password":"Str0ng!pw","new_password":"weakpass"}`, bearer(token))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "UCR-001", decodeBody(t, rec)["code"])

	rec = doJSON(e, http.MethodPut, "/api/customer/password", `{"old_password":"Str0ng!pw","new_password":"N3w!passwd"}`, bearer(token))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "CUSTOMER PASSWORD UPDATED SUCCESSFULLY", decodeBody(t, rec)["message"])

	// the old password no longer logs in, the new one does
	rec = doJSON(e, http.MethodPost, "/api/customer/login", "", basicAuth("9876543210", "Str0ng!pw"))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	rec = doJSON(e, http.MethodPost, "/api/customer/login", "", basicAuth("9876543210", "N3w!passwd"))
	assert.Equal(t, http.StatusOK, rec.Code)
}
