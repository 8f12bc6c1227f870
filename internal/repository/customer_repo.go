package repository

import (
	"context"
	"errors"
	"time"

	"github.com/ashu-89/FoodOrderingApp-BackEnd-1/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CustomerRepository struct {
	DB *pgxpool.Pool
}

func NewCustomerRepository(db *pgxpool.Pool) *CustomerRepository {
	return &CustomerRepository{DB: db}
}

// Create inserts a new customer and fills in the generated id.
func (r *CustomerRepository) Create(ctx context.Context, c *model.Customer) (*model.Customer, error) {
	query := `
		INSERT INTO customers (uuid, firstname, lastname, email, contactnumber, password, salt, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING customerid
	`
	now := time.Now()
	if err := r.DB.QueryRow(ctx, query,
		c.UUID, c.FirstName, c.LastName, c.Email, c.ContactNumber, c.Password, c.Salt, now,
	).Scan(&c.CustomerID); err != nil {
		return nil, err
	}
	c.CreatedAt = &now
	return c, nil
}

// GetByContactNumber returns the customer with the given contact number, or
// (nil, nil) when none is registered.
func (r *CustomerRepository) GetByContactNumber(ctx context.Context, contactNumber string) (*model.Customer, error) {
	return r.getOne(ctx, `WHERE contactnumber=$1`, contactNumber)
}

// GetByUUID returns the customer with the given external id, or (nil, nil).
func (r *CustomerRepository) GetByUUID(ctx context.Context, uuid string) (*model.Customer, error) {
	return r.getOne(ctx, `WHERE uuid=$1`, uuid)
}

func (r *CustomerRepository) getOne(ctx context.Context, where string, arg any) (*model.Customer, error) {
	var c model.Customer
	query := `SELECT customerid, uuid, firstname, lastname, email, contactnumber, password, salt, created_at FROM customers ` + where
	err := r.DB.QueryRow(ctx, query, arg).Scan(
		&c.CustomerID, &c.UUID, &c.FirstName, &c.LastName, &c.Email,
		&c.ContactNumber, &c.Password, &c.Salt, &c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

// Update persists name, email, contact and credential changes for an
// existing customer.
func (r *CustomerRepository) Update(ctx context.Context, c *model.Customer) error {
	query := `
		UPDATE customers
		SET firstname=$1, lastname=$2, email=$3, contactnumber=$4, password=$5, salt=$6
		WHERE customerid=$7
	`
	tag, err := r.DB.Exec(ctx, query,
		c.FirstName, c.LastName, c.Email, c.ContactNumber, c.Password, c.Salt, c.CustomerID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.New("customer not found")
	}
	return nil
}
