package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kingresort/booking-api/internal/domain"
)

type ContactRepository interface {
	Create(ctx context.Context, req *domain.ContactReq) (*domain.Contact, error)
	List(ctx context.Context) ([]domain.Contact, error)
}

type contactRepository struct {
	pool *pgxpool.Pool
}

func NewContactRepository(pool *pgxpool.Pool) ContactRepository {
	return &contactRepository{pool: pool}
}

const contactCols = `id, name, email, subject, message, created_at`

func (r *contactRepository) Create(ctx context.Context, req *domain.ContactReq) (*domain.Contact, error) {
	const q = `INSERT INTO contacts (name, email, subject, message)
VALUES ($1,$2,$3,$4)
RETURNING ` + contactCols

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var c domain.Contact
	err := r.pool.QueryRow(ctx, q, req.Name, req.Email, req.Subject, req.Message).Scan(
		&c.ID, &c.Name, &c.Email, &c.Subject, &c.Message, &c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *contactRepository) List(ctx context.Context) ([]domain.Contact, error) {
	const q = `SELECT ` + contactCols + ` FROM contacts ORDER BY created_at DESC, id DESC`
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var contacts []domain.Contact
	for rows.Next() {
		var c domain.Contact
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Subject, &c.Message, &c.CreatedAt); err != nil {
			return nil, err
		}
		contacts = append(contacts, c)
	}
	return contacts, rows.Err()
}
