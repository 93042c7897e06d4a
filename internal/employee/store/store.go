package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/voltara/merchant-api/internal/employee"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

// Expected column order: id, store_id, name, email, role, active, created_at, updated_at
func scanEmployee(s scanner) (*employee.Employee, error) {
	var emp employee.Employee

	var roleStr string

	if err := s.Scan(
		&emp.ID, &emp.StoreID, &emp.Name, &emp.Email, &roleStr,
		&emp.Active, &emp.CreatedAt, &emp.UpdatedAt,
	); err != nil {
		return nil, err
	}

	emp.Role = employee.Role(roleStr)

	return &emp, nil
}

const selectEmployeeColumns = `
	id, store_id, name, email, role, active, created_at, updated_at
`

func (s *Store) CreateEmployee(ctx context.Context, emp *employee.Employee) error {
	query := `
		INSERT INTO employees (store_id, name, email, role, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := s.db.QueryRowContext(ctx, query,
		emp.StoreID,
		emp.Name,
		emp.Email,
		emp.Role,
		emp.Active,
	).Scan(&emp.ID, &emp.CreatedAt, &emp.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating employee: %w", err)
	}

	return nil
}

func (s *Store) GetEmployee(ctx context.Context, id, storeID uuid.UUID) (*employee.Employee, error) {
	query := `SELECT ` + selectEmployeeColumns + `
		FROM employees
		WHERE id = $1 AND store_id = $2`

	emp, err := scanEmployee(s.db.QueryRowContext(ctx, query, id, storeID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, employee.ErrNotFound
		}

		return nil, fmt.Errorf("getting employee: %w", err)
	}

	return emp, nil
}

func (s *Store) ListEmployees(ctx context.Context, storeID uuid.UUID) ([]*employee.Employee, error) {
	query := `SELECT ` + selectEmployeeColumns + `
		FROM employees
		WHERE store_id = $1
		ORDER BY name ASC`

	rows, err := s.db.QueryContext(ctx, query, storeID)
	if err != nil {
		return nil, fmt.Errorf("listing employees: %w", err)
	}
	defer rows.Close()

	var emps []*employee.Employee

	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning employee: %w", err)
		}

		emps = append(emps, emp)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating employee rows: %w", err)
	}

	return emps, nil
}

func (s *Store) UpdateEmployee(ctx context.Context, emp *employee.Employee) error {
	query := `
		UPDATE employees
		SET name = $1, email = $2, role = $3, active = $4, updated_at = NOW()
		WHERE id = $5 AND store_id = $6
	`

	_, err := s.db.ExecContext(ctx, query,
		emp.Name,
		emp.Email,
		emp.Role,
		emp.Active,
		emp.ID,
		emp.StoreID,
	)
	if err != nil {
		return fmt.Errorf("updating employee: %w", err)
	}

	return nil
}

func (s *Store) DeactivateEmployee(ctx context.Context, id, storeID uuid.UUID) error {
	query := `
		UPDATE employees
		SET active = FALSE, updated_at = NOW()
		WHERE id = $1 AND store_id = $2
	`

	_, err := s.db.ExecContext(ctx, query, id, storeID)
	if err != nil {
		return fmt.Errorf("deactivating employee: %w", err)
	}

	return nil
}
