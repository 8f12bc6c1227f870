package main

import (
	"encoding/base64"
	"errors"
	"net/http"
	"strings"

	"github.com/ashu-89/FoodOrderingApp-BackEnd-1/internal/middleware"
	"github.com/ashu-89/FoodOrderingApp-BackEnd-1/internal/model"
	"github.com/ashu-89/FoodOrderingApp-BackEnd-1/internal/services"

	"github.com/labstack/echo/v4"
)

type signupCustomerRequest struct {
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	EmailAddress  string `json:"email_address"`
	ContactNumber string `json:"contact_number"`
	Password      string `json:"password"`
}

type updateCustomerRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type updatePasswordRequest struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

// apiError maps a service failure to its HTTP status by code family:
// SGR/UCR -> 400, ATH -> 401, ATHR -> 403. Anything else is unexpected.
func apiError(c echo.Context, err error) error {
	var apiErr *services.APIError
	if !errors.As(err, &apiErr) {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
	}
	status := http.StatusBadRequest
	switch {
	case strings.HasPrefix(apiErr.Code, "ATHR"):
		status = http.StatusForbidden
	case strings.HasPrefix(apiErr.Code, "ATH"):
		status = http.StatusUnauthorized
	}
	return c.JSON(status, apiErr)
}

// decodeBasicAuth splits a "Basic base64(contact:password)" header value.
func decodeBasicAuth(header string) (contactNumber, password string, err error) {
	const prefix = "Basic "
	if !strings.HasPrefix(header, prefix) {
		return "", "", services.ErrBadAuthHeader
	}
	decoded, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(header, prefix))
	if err != nil {
		return "", "", services.ErrBadAuthHeader
	}
	parts := strings.SplitN(string(decoded), ":", 2)
	if len(parts) != 2 {
		return "", "", services.ErrBadAuthHeader
	}
	return parts[0], parts[1], nil
}

func signupHandler(authSvc *services.AuthService) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := new(signupCustomerRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
		}

		customer := &model.Customer{
			FirstName:     req.FirstName,
			LastName:      req.LastName,
			Email:         req.EmailAddress,
			ContactNumber: req.ContactNumber,
			Password:      req.Password,
		}
		created, err := authSvc.Signup(c.Request().Context(), customer)
		if err != nil {
			return apiError(c, err)
		}

		return c.JSON(http.StatusCreated, echo.Map{
			"id":     created.UUID,
			"status": "CUSTOMER SUCCESSFULLY REGISTERED",
		})
	}
}

func loginHandler(authSvc *services.AuthService) echo.HandlerFunc {
	return func(c echo.Context) error {
		contactNumber, password, err := decodeBasicAuth(c.Request().Header.Get("Authorization"))
		if err != nil {
			return apiError(c, err)
		}

		auth, err := authSvc.Authenticate(c.Request().Context(), contactNumber, password)
		if err != nil {
			return apiError(c, err)
		}

		customer := auth.Customer
		c.Response().Header().Set("access-token", auth.AccessToken)
		return c.JSON(http.StatusOK, echo.Map{
			"id":             customer.UUID,
			"first_name":     customer.FirstName,
			"last_name":      customer.LastName,
			"email_address":  customer.Email,
			"contact_number": customer.ContactNumber,
			"message":        "LOGGED IN SUCCESSFULLY",
		})
	}
}

func logoutHandler(authSvc *services.AuthService) echo.HandlerFunc {
	return func(c echo.Context) error {
		auth, err := authSvc.Logout(c.Request().Context(), middleware.BearerToken(c))
		if err != nil {
			return apiError(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{
			"id":      auth.UUID,
			"message": "LOGGED OUT SUCCESSFULLY",
		})
	}
}

func updateCustomerHandler(custSvc *services.CustomerService) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := new(updateCustomerRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
		}

		customer := middleware.GetSession(c).Customer
		customer.FirstName = req.FirstName
		customer.LastName = req.LastName

		updated, err := custSvc.UpdateCustomer(c.Request().Context(), customer)
		if err != nil {
			return apiError(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{
			"id":         updated.UUID,
			"first_name": updated.FirstName,
			"last_name":  updated.LastName,
			"message":    "CUSTOMER DETAILS UPDATED SUCCESSFULLY",
		})
	}
}

func updatePasswordHandler(authSvc *services.AuthService) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := new(updatePasswordRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
		}
		if req.OldPassword == "" || req.NewPassword == "" {
			return apiError(c, services.ErrPasswordFieldsEmpty)
		}

		customer := middleware.GetSession(c).Customer
		updated, err := authSvc.UpdatePassword(c.Request().Context(), req.OldPassword, req.NewPassword, customer)
		if err != nil {
			return apiError(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{
			"id":      updated.UUID,
			"message": "CUSTOMER PASSWORD UPDATED SUCCESSFULLY",
		})
	}
}

func registerCustomerRoutes(g *echo.Group, authSvc *services.AuthService, custSvc *services.CustomerService) {
	customer := g.Group("/customer")

	// public
	customer.POST("/signup", signupHandler(authSvc))
	customer.POST("/login", loginHandler(authSvc))

	// logout validates (and closes) the session itself, no middleware
	customer.POST("/logout", logoutHandler(authSvc))

	// authenticated
	protected := customer.Group("")
	protected.Use(middleware.TokenAuth(authSvc))
	protected.PUT("", updateCustomerHandler(custSvc))
	protected.PUT("/password", updatePasswordHandler(authSvc))
}
