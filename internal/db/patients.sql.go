package db

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const createPatient = `-- name: CreatePatient :one
INSERT INTO patients (mrn, full_name, email, phone)
VALUES ($1, $2, $3, $4)
RETURNING id, mrn, full_name, email, phone, created_at, updated_at
`

type CreatePatientParams struct {
	Mrn      string
	FullName string
	Email    pgtype.Text
	Phone    pgtype.Text
}

func (q *Queries) CreatePatient(ctx context.Context, arg CreatePatientParams) (Patient, error) {
	row := q.db.QueryRow(ctx, createPatient,
		arg.Mrn,
		arg.FullName,
		arg.Email,
		arg.Phone,
	)
	var i Patient
	err := row.Scan(
		&i.ID,
		&i.Mrn,
		&i.FullName,
		&i.Email,
		&i.Phone,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const getPatient = `-- name: GetPatient :one
SELECT id, mrn, full_name, email, phone, created_at, updated_at
FROM patients
WHERE id = $1
`

func (q *Queries) GetPatient(ctx context.Context, id uuid.UUID) (Patient, error) {
	row := q.db.QueryRow(ctx, getPatient, id)
	var i Patient
	err := row.Scan(
		&i.ID,
		&i.Mrn,
		&i.FullName,
		&i.Email,
		&i.Phone,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const listPatients = `-- name: ListPatients :many
SELECT id, mrn, full_name, email, phone, created_at, updated_at
FROM patients
ORDER BY created_at DESC
LIMIT $1 OFFSET $2
`

type ListPatientsParams struct {
	Limit  int32
	Offset int32
}

func (q *Queries) ListPatients(ctx context.Context, arg ListPatientsParams) ([]Patient, error) {
	rows, err := q.db.Query(ctx, listPatients, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Patient
	for rows.Next() {
		var i Patient
		if err := rows.Scan(
			&i.ID,
			&i.Mrn,
			&i.FullName,
			&i.Email,
			&i.Phone,
			&i.CreatedAt,
			&i.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
