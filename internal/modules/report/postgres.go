package report

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
)

type postgres struct{ db *sql.DB }

func NewPostgresRepository(db *sql.DB) Repository { return &postgres{db: db} }

func (r *postgres) Create(ctx context.Context, rep *Report) error {
	_, err := r.db.ExecContext(ctx, `
INSERT INTO reports (id,complainant_name,complaint_text,ration_id,status,created_at)
VALUES ($1,$2,$3,$4,$5,$6)`,
		rep.ID, rep.ComplainantName, rep.ComplaintText, rep.RationID, rep.Status, rep.CreatedAt)
	return err
}

func (r *postgres) ListRecent(ctx context.Context, limit int) ([]*Report, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id,complainant_name,complaint_text,ration_id,status,created_at
FROM reports ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectReports(rows)
}

func (r *postgres) ListByComplainant(ctx context.Context, name string) ([]*Report, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id,complainant_name,complaint_text,ration_id,status,created_at
FROM reports WHERE complainant_name=$1 ORDER BY created_at DESC`, name)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectReports(rows)
}

func (r *postgres) CountPending(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM reports WHERE status=$1`, StatusPending).Scan(&n)
	return n, err
}

func (r *postgres) Resolve(ctx context.Context, id string) (bool, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return false, err
	}
	res, err := r.db.ExecContext(ctx, `
UPDATE reports SET status=$1 WHERE id=$2 AND status=$3`, StatusResolved, uid, StatusPending)
	if err != nil {
		return false, err
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

func collectReports(rows *sql.Rows) ([]*Report, error) {
	var reports []*Report
	for rows.Next() {
		rep := &Report{}
		if err := rows.Scan(&rep.ID, &rep.ComplainantName, &rep.ComplaintText,
			&rep.RationID, &rep.Status, &rep.CreatedAt); err != nil {
			return nil, err
		}
		reports = append(reports, rep)
	}
	return reports, rows.Err()
}
