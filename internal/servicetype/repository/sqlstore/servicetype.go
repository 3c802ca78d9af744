package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"complaint-management/internal/servicetype"
	repo "complaint-management/internal/servicetype/repository"
)

type scanner interface {
	Scan(dest ...any) error
}

func scanServiceType(s scanner) (servicetype.ServiceType, error) {
	var st servicetype.ServiceType
	err := s.Scan(&st.ID, &st.IssueID, &st.Name, &st.IssueType, &st.CreatedAt, &st.UpdatedAt)
	return st, err
}

func (r *implRepository) CreateServiceType(ctx context.Context, opt repo.CreateServiceTypeOptions) (int64, error) {
	query := r.dialect.InsertReturningID("ServiceTypes", "service_id",
		"issue_id", "service_name", "created_at", "updated_at")

	now := time.Now().UTC()
	var id int64
	if err := r.db.QueryRowContext(ctx, query, opt.IssueID, opt.Name, now, now).Scan(&id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateServiceType"), err)
		return 0, repo.ErrFailedToInsert
	}
	return id, nil
}

func (r *implRepository) GetOneServiceType(ctx context.Context, opt repo.GetOneServiceTypeOptions) (servicetype.ServiceType, error) {
	where, args := r.buildGetOneQuery(opt)
	if where == "" {
		return servicetype.ServiceType{}, nil
	}
	query := r.dialect.Rebind(selectJoined + ` WHERE ` + where)

	st, err := scanServiceType(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return servicetype.ServiceType{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneServiceType"), err)
		return servicetype.ServiceType{}, repo.ErrFailedToGet
	}
	return st, nil
}

func (r *implRepository) ListServiceTypes(ctx context.Context) ([]servicetype.ServiceType, error) {
	rows, err := r.db.QueryContext(ctx, selectJoined+` ORDER BY s.service_id`)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListServiceTypes"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	sts := make([]servicetype.ServiceType, 0)
	for rows.Next() {
		st, err := scanServiceType(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListServiceTypes"), err)
			return nil, repo.ErrFailedToList
		}
		sts = append(sts, st)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListServiceTypes"), err)
		return nil, repo.ErrFailedToList
	}
	return sts, nil
}

func (r *implRepository) UpdateServiceType(ctx context.Context, opt repo.UpdateServiceTypeOptions) (bool, error) {
	query := r.dialect.Rebind(`UPDATE ServiceTypes SET issue_id = ?, service_name = ?, updated_at = ? WHERE service_id = ?`)

	res, err := r.db.ExecContext(ctx, query, opt.IssueID, opt.Name, time.Now().UTC(), opt.ID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateServiceType"), err)
		return false, repo.ErrFailedToUpdate
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, repo.ErrFailedToUpdate
	}
	return n > 0, nil
}

func (r *implRepository) DeleteServiceType(ctx context.Context, id int64) (bool, error) {
	query := r.dialect.Rebind(`DELETE FROM ServiceTypes WHERE service_id = ?`)

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteServiceType"), err)
		return false, repo.ErrFailedToDelete
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, repo.ErrFailedToDelete
	}
	return n > 0, nil
}
