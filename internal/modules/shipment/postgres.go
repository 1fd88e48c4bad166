package shipment

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type postgres struct{ db *sql.DB }

func NewPostgresRepository(db *sql.DB) Repository { return &postgres{db: db} }

func (r *postgres) Create(ctx context.Context, s *Shipment) error {
	items, err := json.Marshal(s.Items)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, `
INSERT INTO shipments (id,status,items,dispatched_at) VALUES ($1,$2,$3,$4)`,
		s.ID, s.Status, items, s.DispatchedAt)
	return err
}

func (r *postgres) GetByID(ctx context.Context, id string) (*Shipment, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, err
	}
	row := r.db.QueryRowContext(ctx, `
SELECT id,status,items,dispatched_at,delivered_at FROM shipments WHERE id=$1`, uid)
	return scanShipment(row)
}

func (r *postgres) ListRecent(ctx context.Context, limit int) ([]*Shipment, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id,status,items,dispatched_at,delivered_at
FROM shipments ORDER BY dispatched_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectShipments(rows)
}

func (r *postgres) ListByStatuses(ctx context.Context, statuses []Status) ([]*Shipment, error) {
	names := make([]string, len(statuses))
	for i, s := range statuses {
		names[i] = string(s)
	}
	rows, err := r.db.QueryContext(ctx, `
SELECT id,status,items,dispatched_at,delivered_at
FROM shipments WHERE status = ANY($1) ORDER BY dispatched_at DESC`, pq.Array(names))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectShipments(rows)
}

func (r *postgres) MarkDelivered(ctx context.Context, id string, at time.Time) (bool, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return false, err
	}
	res, err := r.db.ExecContext(ctx, `
UPDATE shipments SET status=$1, delivered_at=$2 WHERE id=$3 AND status <> $1`,
		StatusDelivered, at, uid)
	if err != nil {
		return false, err
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanShipment(row rowScanner) (*Shipment, error) {
	s := &Shipment{}
	var items []byte
	var delivered sql.NullTime
	if err := row.Scan(&s.ID, &s.Status, &items, &s.DispatchedAt, &delivered); err != nil {
		return nil, err
	}
	if len(items) > 0 {
		if err := json.Unmarshal(items, &s.Items); err != nil {
			return nil, err
		}
	}
	if delivered.Valid {
		s.DeliveredAt = &delivered.Time
	}
	return s, nil
}

func collectShipments(rows *sql.Rows) ([]*Shipment, error) {
	var shipments []*Shipment
	for rows.Next() {
		s, err := scanShipment(rows)
		if err != nil {
			return nil, err
		}
		shipments = append(shipments, s)
	}
	return shipments, rows.Err()
}
