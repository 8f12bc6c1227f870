package repository

import (
	"context"
	"errors"

	"github.com/ashu-89/FoodOrderingApp-BackEnd-1/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CustomerAuthRepository struct {
	DB *pgxpool.Pool
}

func NewCustomerAuthRepository(db *pgxpool.Pool) *CustomerAuthRepository {
	return &CustomerAuthRepository{DB: db}
}

// Create inserts a new login session and fills in the generated id.
func (r *CustomerAuthRepository) Create(ctx context.Context, a *model.CustomerAuth) error {
	query := `
		INSERT INTO customer_auth (uuid, customerid, accesstoken, login_at, expires_at, logout_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING authid
	`
	return r.DB.QueryRow(ctx, query,
		a.UUID, a.CustomerID, a.AccessToken, a.LoginAt, a.ExpiresAt, a.LogoutAt,
	).Scan(&a.AuthID)
}

// GetByToken returns the session for an access token joined with its owning
// customer, or (nil, nil) when the token is unknown.
func (r *CustomerAuthRepository) GetByToken(ctx context.Context, accessToken string) (*model.CustomerAuth, error) {
	query := `
		SELECT a.authid, a.uuid, a.customerid, a.accesstoken, a.login_at, a.expires_at, a.logout_at,
		       c.customerid, c.uuid, c.firstname, c.lastname, c.email, c.contactnumber, c.password, c.salt, c.created_at
		FROM customer_auth a
		JOIN customers c ON c.customerid = a.customerid
		WHERE a.accesstoken=$1
	`
	var a model.CustomerAuth
	var c model.Customer
	err := r.DB.QueryRow(ctx, query, accessToken).Scan(
		&a.AuthID, &a.UUID, &a.CustomerID, &a.AccessToken, &a.LoginAt, &a.ExpiresAt, &a.LogoutAt,
		&c.CustomerID, &c.UUID, &c.FirstName, &c.LastName, &c.Email, &c.ContactNumber, &c.Password, &c.Salt, &c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	a.Customer = &c
	return &a, nil
}

// Update persists expiry/logout changes on an existing session.
func (r *CustomerAuthRepository) Update(ctx context.Context, a *model.CustomerAuth) error {
	query := `UPDATE customer_auth SET expires_at=$1, logout_at=$2 WHERE authid=$3`
	tag, err := r.DB.Exec(ctx, query, a.ExpiresAt, a.LogoutAt, a.AuthID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.New("session not found")
	}
	return nil
}
