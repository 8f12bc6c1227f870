package services

import (
	"context"
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/ashu-89/FoodOrderingApp-BackEnd-1/internal/model"

	"github.com/google/uuid"
)

// SessionValidFor is the validity window of a freshly issued token.
const SessionValidFor = 8 * time.Hour

// passwordSymbols is the allowed special-character set for the strength check.
const passwordSymbols = "#@$%&*!^"

var (
	emailRegex   = regexp.MustCompile(`(?i)^[A-Z0-9_.]+@[A-Z0-9_.]+\.[A-Z0-9]{2,7}$`)
	contactRegex = regexp.MustCompile(`^[0-9]{10}$`)
)

// CustomerStore is the persistence access the auth service needs for
// customer records. Lookups return (nil, nil) when no row matches.
type CustomerStore interface {
	Create(ctx context.Context, c *model.Customer) (*model.Customer, error)
	GetByContactNumber(ctx context.Context, contactNumber string) (*model.Customer, error)
	GetByUUID(ctx context.Context, uuid string) (*model.Customer, error)
	Update(ctx context.Context, c *model.Customer) error
}

// SessionStore is the persistence access for login sessions. GetByToken
// returns the session joined with its owning customer, or (nil, nil).
type SessionStore interface {
	Create(ctx context.Context, a *model.CustomerAuth) error
	GetByToken(ctx context.Context, accessToken string) (*model.CustomerAuth, error)
	Update(ctx context.Context, a *model.CustomerAuth) error
}

type AuthService struct {
	Customers CustomerStore
	Sessions  SessionStore
	Crypto    *PasswordCrypto
	Tokens    *TokenIssuer

	now func() time.Time
}

func NewAuthService(cs CustomerStore, ss SessionStore, crypto *PasswordCrypto, tokens *TokenIssuer) *AuthService {
	return &AuthService{
		Customers: cs,
		Sessions:  ss,
		Crypto:    crypto,
		Tokens:    tokens,
		now:       time.Now,
	}
}

// weakPassword reports whether pw fails the strength policy: at least 8
// characters with one digit, one lowercase, one uppercase and one symbol
// from the allowed set.
func weakPassword(pw string) bool {
	if len(pw) < 8 {
		return true
	}
	var digit, lower, upper, symbol bool
	for _, r := range pw {
		switch {
		case unicode.IsDigit(r):
			digit = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case strings.ContainsRune(passwordSymbols, r):
			symbol = true
		}
	}
	return !(digit && lower && upper && symbol)
}

// Signup validates and persists a new customer. Validation order is fixed so
// clients always see deterministic codes: required fields, then uniqueness,
// then email/contact format, then password strength.
func (s *AuthService) Signup(ctx context.Context, customer *model.Customer) (*model.Customer, error) {
	if customer.FirstName == "" || customer.ContactNumber == "" || customer.Email == "" || customer.Password == "" {
		return nil, ErrFieldsMissing
	}

	existing, err := s.Customers.GetByContactNumber(ctx, customer.ContactNumber)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrContactRegistered
	}

	if !emailRegex.MatchString(customer.Email) {
		return nil, ErrInvalidEmail
	}
	if !contactRegex.MatchString(customer.ContactNumber) {
		return nil, ErrInvalidContact
	}
	if weakPassword(customer.Password) {
		return nil, ErrWeakPassword
	}

	// The salt is generated exactly once, here. Whatever the caller put in
	// the Salt field is discarded.
	salt, hash, err := s.Crypto.Encrypt(customer.Password)
	if err != nil {
		return nil, err
	}
	customer.UUID = uuid.NewString()
	customer.Salt = salt
	customer.Password = hash

	return s.Customers.Create(ctx, customer)
}

// Authenticate verifies a contact number + password pair and opens a new
// session valid for eight hours.
func (s *AuthService) Authenticate(ctx context.Context, contactNumber, password string) (*model.CustomerAuth, error) {
	customer, err := s.Customers.GetByContactNumber(ctx, contactNumber)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, ErrContactNotRegistered
	}

	derived, err := s.Crypto.EncryptWithSalt(password, customer.Salt)
	if err != nil {
		// a corrupt salt is indistinguishable from a wrong password to the caller
		return nil, ErrInvalidCredentials
	}
	if !s.Crypto.Matches(derived, customer.Password) {
		return nil, ErrInvalidCredentials
	}

	loginAt := s.now()
	expiresAt := loginAt.Add(SessionValidFor)

	token, err := s.Tokens.IssueToken(customer.UUID, loginAt, expiresAt)
	if err != nil {
		return nil, err
	}

	auth := &model.CustomerAuth{
		UUID:        uuid.NewString(),
		CustomerID:  customer.CustomerID,
		AccessToken: token,
		LoginAt:     loginAt,
		ExpiresAt:   expiresAt,
		Customer:    customer,
	}
	if err := s.Sessions.Create(ctx, auth); err != nil {
		return nil, err
	}
	return auth, nil
}

// ValidateToken returns the session for an access token while it is still
// active. Logout is checked before expiry, and the expiry boundary is
// inclusive: a token is already invalid at exactly expiresAt.
func (s *AuthService) ValidateToken(ctx context.Context, accessToken string) (*model.CustomerAuth, error) {
	auth, err := s.Sessions.GetByToken(ctx, accessToken)
	if err != nil {
		return nil, err
	}
	if auth == nil {
		return nil, ErrNotLoggedIn
	}
	if auth.LogoutAt != nil {
		return nil, ErrLoggedOut
	}
	if !s.now().Before(auth.ExpiresAt) {
		return nil, ErrSessionExpired
	}
	return auth, nil
}

// Logout closes the session behind the token: the logout timestamp is set
// and the expiry collapses to now. The row stays around as an audit trail.
func (s *AuthService) Logout(ctx context.Context, accessToken string) (*model.CustomerAuth, error) {
	auth, err := s.ValidateToken(ctx, accessToken)
	if err != nil {
		return nil, err
	}
	now := s.now()
	auth.ExpiresAt = now
	auth.LogoutAt = &now
	if err := s.Sessions.Update(ctx, auth); err != nil {
		return nil, err
	}
	return auth, nil
}

// GetCustomer resolves an access token to its customer.
func (s *AuthService) GetCustomer(ctx context.Context, accessToken string) (*model.Customer, error) {
	auth, err := s.ValidateToken(ctx, accessToken)
	if err != nil {
		return nil, err
	}
	return auth.Customer, nil
}

// UpdatePassword re-derives the customer's hash with the new password,
// keeping the stored salt.
func (s *AuthService) UpdatePassword(ctx context.Context, oldPassword, newPassword string, customer *model.Customer) (*model.Customer, error) {
	if weakPassword(newPassword) {
		return nil, ErrWeakNewPassword
	}

	derivedOld, err := s.Crypto.EncryptWithSalt(oldPassword, customer.Salt)
	if err != nil {
		return nil, ErrIncorrectOldPassword
	}
	if !s.Crypto.Matches(derivedOld, customer.Password) {
		return nil, ErrIncorrectOldPassword
	}

	hash, err := s.Crypto.EncryptWithSalt(newPassword, customer.Salt)
	if err != nil {
		return nil, err
	}
	customer.Password = hash
	if err := s.Customers.Update(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}
