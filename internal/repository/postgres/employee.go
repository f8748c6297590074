package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"pos-backend/internal/domain"
	"pos-backend/internal/repository"
)

type employeeRepository struct {
	db *sql.DB
}

func NewEmployeeRepository(db *sql.DB) repository.EmployeeRepository {
	return &employeeRepository{db: db}
}

const employeeColumns = `id, username, first_name, last_name, position, password_hash, created_on`

func (r *employeeRepository) Create(ctx context.Context, employee *domain.Employee) error {
	if employee.ID == uuid.Nil {
		employee.ID = uuid.New()
	}
	employee.CreatedOn = time.Now()
	query := `INSERT INTO employees (id, username, first_name, last_name, position, password_hash, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := q(ctx, r.db).ExecContext(ctx, query, employee.ID, employee.Username, employee.FirstName, employee.LastName, employee.Position, employee.PasswordHash, employee.CreatedOn)
	return err
}

func (r *employeeRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`
	return r.scanOne(q(ctx, r.db).QueryRowContext(ctx, query, id))
}

func (r *employeeRepository) GetByUsername(ctx context.Context, username string) (*domain.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE username = $1`
	return r.scanOne(q(ctx, r.db).QueryRowContext(ctx, query, username))
}

func (r *employeeRepository) List(ctx context.Context) ([]domain.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees ORDER BY username`
	rows, err := q(ctx, r.db).QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []domain.Employee
	for rows.Next() {
		var e domain.Employee
		if err := rows.Scan(&e.ID, &e.Username, &e.FirstName, &e.LastName, &e.Position, &e.PasswordHash, &e.CreatedOn); err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}
	return employees, rows.Err()
}

func (r *employeeRepository) Update(ctx context.Context, employee *domain.Employee) error {
	query := `UPDATE employees SET first_name = $1, last_name = $2, position = $3, password_hash = $4 WHERE id = $5`
	result, err := q(ctx, r.db).ExecContext(ctx, query, employee.FirstName, employee.LastName, employee.Position, employee.PasswordHash, employee.ID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("employee %s: %w", employee.ID, domain.ErrNotFound)
	}
	return nil
}

func (r *employeeRepository) scanOne(row *sql.Row) (*domain.Employee, error) {
	employee := &domain.Employee{}
	err := row.Scan(&employee.ID, &employee.Username, &employee.FirstName, &employee.LastName, &employee.Position, &employee.PasswordHash, &employee.CreatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("employee: %w", domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return employee, nil
}
