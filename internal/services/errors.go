package services

// APIError is a client-facing failure with a stable short code. The HTTP
// layer maps code families to status codes (SGR/UCR -> 400, ATH -> 401,
// ATHR -> 403); anything else that escapes a service is an unexpected
// persistence failure and surfaces as 500.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	return e.Code + ": " + e.Message
}

var (
	// signup
	ErrContactRegistered = &APIError{"SGR-001", "This contact number is already registered! Try other contact number."}
	ErrInvalidEmail      = &APIError{"SGR-002", "Invalid email-id format!"}
	ErrInvalidContact    = &APIError{"SGR-003", "Invalid contact number!"}
	ErrWeakPassword      = &APIError{"SGR-004", "Weak password!"}
	ErrFieldsMissing     = &APIError{"SGR-005", "Except last name all fields should be filled"}

	// login
	ErrContactNotRegistered = &APIError{"ATH-001", "This contact number has not been registered!"}
	ErrInvalidCredentials   = &APIError{"ATH-002", "Invalid Credentials"}
	ErrBadAuthHeader        = &APIError{"ATH-003", "Incorrect format of decoded customer name and password"}

	// token validation
	ErrNotLoggedIn    = &APIError{"ATHR-001", "Customer is not Logged in."}
	ErrLoggedOut      = &APIError{"ATHR-002", "Customer is logged out. Log in again to access this endpoint."}
	ErrSessionExpired = &APIError{"ATHR-003", "Your session is expired. Log in again to access this endpoint."}

	// customer update
	ErrWeakNewPassword      = &APIError{"UCR-001", "Weak password!"}
	ErrFirstNameEmpty       = &APIError{"UCR-002", "First name field should not be empty"}
	ErrPasswordFieldsEmpty  = &APIError{"UCR-003", "No field should be empty"}
	ErrIncorrectOldPassword = &APIError{"UCR-004", "Incorrect old password!"}
)
