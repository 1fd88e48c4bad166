package ledger

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type postgres struct{ db *sql.DB }

func NewPostgresRepository(db *sql.DB) Repository { return &postgres{db: db} }

func (r *postgres) Insert(ctx context.Context, t *Transaction) error {
	items, err := json.Marshal(t.Items)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, `
INSERT INTO transactions (id,amount,items,payment_status,created_at) VALUES ($1,$2,$3,$4,$5)`,
		t.ID, t.Amount, items, t.PaymentStatus, t.CreatedAt)
	return err
}

func (r *postgres) GetByID(ctx context.Context, id string) (*Transaction, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, err
	}
	row := r.db.QueryRowContext(ctx, `
SELECT id,amount,items,payment_status,created_at FROM transactions WHERE id=$1`, uid)
	return scanTransaction(row)
}

func (r *postgres) ListSales(ctx context.Context, limit int) ([]*Transaction, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id,amount,items,payment_status,created_at
FROM transactions WHERE payment_status <> $1 ORDER BY created_at DESC LIMIT $2`,
		StatusPendingReservation, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectTransactions(rows)
}

func (r *postgres) ListPendingReservations(ctx context.Context) ([]*Transaction, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id,amount,items,payment_status,created_at
FROM transactions WHERE payment_status = $1 ORDER BY created_at DESC`,
		StatusPendingReservation)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectTransactions(rows)
}

func (r *postgres) ListByCustomer(ctx context.Context, customer string, statuses []PaymentStatus) ([]*Transaction, error) {
	match, err := json.Marshal(map[string]string{"Customer": customer})
	if err != nil {
		return nil, err
	}
	names := make([]string, len(statuses))
	for i, s := range statuses {
		names[i] = string(s)
	}
	rows, err := r.db.QueryContext(ctx, `
SELECT id,amount,items,payment_status,created_at
FROM transactions WHERE items @> $1 AND payment_status = ANY($2) ORDER BY created_at DESC`,
		match, pq.Array(names))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectTransactions(rows)
}

func (r *postgres) UpdateStatus(ctx context.Context, id string, from, to PaymentStatus) (bool, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return false, err
	}
	res, err := r.db.ExecContext(ctx, `
UPDATE transactions SET payment_status=$1 WHERE id=$2 AND payment_status=$3`, to, uid, from)
	if err != nil {
		return false, err
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanTransaction(row rowScanner) (*Transaction, error) {
	t := &Transaction{}
	var items []byte
	if err := row.Scan(&t.ID, &t.Amount, &items, &t.PaymentStatus, &t.CreatedAt); err != nil {
		return nil, err
	}
	if len(items) > 0 {
		if err := json.Unmarshal(items, &t.Items); err != nil {
			return nil, fmt.Errorf("bad items document on transaction %s: %w", t.ID, err)
		}
	}
	return t, nil
}

func collectTransactions(rows *sql.Rows) ([]*Transaction, error) {
	var txns []*Transaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		txns = append(txns, t)
	}
	return txns, rows.Err()
}
