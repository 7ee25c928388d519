package device

import (
	"context"
	"errors"

	"dollshop-backend/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const deviceColumns = `id, mac_address, name, user_id, created_at, updated_at`

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) Create(ctx context.Context, d domain.Device) (*domain.Device, error) {
	const q = `
INSERT INTO devices (mac_address, name)
VALUES ($1, $2)
RETURNING ` + deviceColumns
	created, err := scanDevice(r.pool.QueryRow(ctx, q, d.MACAddress, d.Name))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domain.ErrAlreadyExists
		}
		return nil, err
	}
	return created, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id int64) (*domain.Device, error) {
	const q = `SELECT ` + deviceColumns + ` FROM devices WHERE id = $1`
	return scanDevice(r.pool.QueryRow(ctx, q, id))
}

func (r *postgresRepo) GetByMAC(ctx context.Context, macAddress string) (*domain.Device, error) {
	const q = `SELECT ` + deviceColumns + ` FROM devices WHERE mac_address = $1`
	return scanDevice(r.pool.QueryRow(ctx, q, macAddress))
}

func (r *postgresRepo) List(ctx context.Context) ([]domain.Device, error) {
	const q = `SELECT ` + deviceColumns + ` FROM devices ORDER BY created_at DESC`
	return r.fetchDevices(ctx, q)
}

func (r *postgresRepo) ListByUser(ctx context.Context, userID int64) ([]domain.Device, error) {
	const q = `SELECT ` + deviceColumns + ` FROM devices WHERE user_id = $1 ORDER BY created_at DESC`
	return r.fetchDevices(ctx, q, userID)
}

func (r *postgresRepo) Update(ctx context.Context, id int64, d domain.Device) error {
	const q = `
UPDATE devices
SET mac_address = $2, name = $3, user_id = $4, updated_at = now()
WHERE id = $1
`
	cmd, err := r.pool.Exec(ctx, q, id, d.MACAddress, d.Name, d.UserID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SetUser binds (or, with nil, unbinds) the device to an account.
func (r *postgresRepo) SetUser(ctx context.Context, id int64, userID *int64) error {
	cmd, err := r.pool.Exec(ctx, `UPDATE devices SET user_id = $2, updated_at = now() WHERE id = $1`, id, userID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM devices WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) fetchDevices(ctx context.Context, query string, args ...any) ([]domain.Device, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var devices []domain.Device
	for rows.Next() {
		var d domain.Device
		if err := rows.Scan(&d.ID, &d.MACAddress, &d.Name, &d.UserID, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, err
		}
		devices = append(devices, d)
	}
	return devices, rows.Err()
}

func scanDevice(row pgx.Row) (*domain.Device, error) {
	var d domain.Device
	err := row.Scan(&d.ID, &d.MACAddress, &d.Name, &d.UserID, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &d, nil
}
