package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kingresort/booking-api/internal/domain"
)

type BookingRepository interface {
	// CreateIfAvailable admits a booking only while the number of overlapping
	// stays for the room type is below maxRooms. The overlap count and the
	// insert run in one serialized transaction per room type.
	CreateIfAvailable(ctx context.Context, req *domain.BookingReq, maxRooms int) (*domain.Booking, error)
	CountOverlapping(ctx context.Context, roomType, checkIn, checkOut string) (int, error)
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	List(ctx context.Context) ([]domain.Booking, error)
	Update(ctx context.Context, id int64, patch domain.BookingPatch) (*domain.Booking, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type bookingRepository struct {
	pool *pgxpool.Pool
}

func NewBookingRepository(pool *pgxpool.Pool) BookingRepository {
	return &bookingRepository{pool: pool}
}

const bookingCols = `id, name, email, check_in, check_out, guests, room_type, created_at`

// Half-open interval intersection: existing.check_in < new.check_out AND
// existing.check_out > new.check_in. Dates are ISO strings, so text
// comparison is chronological.
const overlapCountQuery = `SELECT count(*) FROM bookings
WHERE room_type = $1 AND check_in < $3 AND check_out > $2`

func (r *bookingRepository) CreateIfAvailable(ctx context.Context, req *domain.BookingReq, maxRooms int) (*domain.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	// Serialize concurrent admissions for the same room type. Without this
	// two requests can both observe free capacity and overbook.
	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, req.RoomType); err != nil {
		return nil, err
	}

	var count int
	if err := tx.QueryRow(ctx, overlapCountQuery, req.RoomType, req.CheckIn, req.CheckOut).Scan(&count); err != nil {
		return nil, err
	}
	if count >= maxRooms {
		return nil, domain.ErrCapacityExceeded
	}

	const q = `INSERT INTO bookings (name, email, check_in, check_out, guests, room_type)
VALUES ($1,$2,$3,$4,$5,$6)
RETURNING ` + bookingCols

	var b domain.Booking
	err = tx.QueryRow(ctx, q,
		req.Name, req.Email, req.CheckIn, req.CheckOut, req.Guests, req.RoomType,
	).Scan(
		&b.ID, &b.Name, &b.Email, &b.CheckIn, &b.CheckOut,
		&b.Guests, &b.RoomType, &b.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *bookingRepository) CountOverlapping(ctx context.Context, roomType, checkIn, checkOut string) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var count int
	err := r.pool.QueryRow(ctx, overlapCountQuery, roomType, checkIn, checkOut).Scan(&count)
	return count, err
}

func (r *bookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	const q = `SELECT ` + bookingCols + ` FROM bookings WHERE id=$1`
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var b domain.Booking
	err := r.pool.QueryRow(ctx, q, id).Scan(
		&b.ID, &b.Name, &b.Email, &b.CheckIn, &b.CheckOut,
		&b.Guests, &b.RoomType, &b.CreatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	return &b, err
}

func (r *bookingRepository) List(ctx context.Context) ([]domain.Booking, error) {
	const q = `SELECT ` + bookingCols + ` FROM bookings ORDER BY created_at DESC, id DESC`
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []domain.Booking
	for rows.Next() {
		var b domain.Booking
		if err := rows.Scan(
			&b.ID, &b.Name, &b.Email, &b.CheckIn, &b.CheckOut,
			&b.Guests, &b.RoomType, &b.CreatedAt,
		); err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

func (r *bookingRepository) Update(ctx context.Context, id int64, patch domain.BookingPatch) (*domain.Booking, error) {
	const q = `
		UPDATE bookings
		SET
			name      = COALESCE($2, name),
			email     = COALESCE($3, email),
			check_in  = COALESCE($4, check_in),
			check_out = COALESCE($5, check_out),
			guests    = COALESCE($6, guests),
			room_type = COALESCE($7, room_type)
		WHERE id=$1
		RETURNING ` + bookingCols

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var b domain.Booking
	err := r.pool.QueryRow(ctx, q,
		id,
		patch.Name,
		patch.Email,
		patch.CheckIn,
		patch.CheckOut,
		patch.Guests,
		patch.RoomType,
	).Scan(
		&b.ID, &b.Name, &b.Email, &b.CheckIn, &b.CheckOut,
		&b.Guests, &b.RoomType, &b.CreatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	return &b, err
}

func (r *bookingRepository) Delete(ctx context.Context, id int64) (bool, error) {
	const q = `DELETE FROM bookings WHERE id=$1`
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	result, err := r.pool.Exec(ctx, q, id)
	if err != nil {
		return false, err
	}
	return result.RowsAffected() > 0, nil
}
