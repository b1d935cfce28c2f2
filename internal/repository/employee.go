package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/UnknownOlympus/talos/internal/models"
	"github.com/jackc/pgx/v5"
)

// CreateEmployee persists an employee and any inline skills as a single
// transaction. A constraint violation on any row rolls back the whole unit,
// so a failed create never leaves an orphaned employee or skill behind.
func (r *Repository) CreateEmployee(
	ctx context.Context,
	employee models.Employee,
	skills []models.Skill,
) (models.Employee, error) {
	startTime := time.Now()
	defer func() {
		duration := time.Since(startTime).Seconds()
		r.metrics.DBQueryDuration.WithLabelValues("create_employee").Observe(duration)
	}()

	insertEmployeeQuery := `
		INSERT INTO employees (name, position, email, department, seed, password_hash)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id;
	`
	insertSkillQuery := `
		INSERT INTO skills (skill_name, skill_level, employee_id)
		VALUES ($1, $2, $3)
		RETURNING id;
	`

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return models.Employee{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	err = tx.QueryRow(ctx, insertEmployeeQuery,
		employee.Name, employee.Position, employee.Email, employee.Department,
		employee.Seed, employee.PasswordHash,
	).Scan(&employee.ID)
	if err != nil {
		return models.Employee{}, fmt.Errorf("failed to insert employee: %w", mapConstraintError(err))
	}

	employee.Skills = make([]models.Skill, 0, len(skills))
	for _, skill := range skills {
		skill.EmployeeID = employee.ID
		err = tx.QueryRow(ctx, insertSkillQuery, skill.SkillName, skill.SkillLevel, skill.EmployeeID).
			Scan(&skill.ID)
		if err != nil {
			return models.Employee{}, fmt.Errorf("failed to insert inline skill: %w", mapConstraintError(err))
		}
		employee.Skills = append(employee.Skills, skill)
	}

	if err = tx.Commit(ctx); err != nil {
		return models.Employee{}, fmt.Errorf("failed to commit employee creation: %w", mapConstraintError(err))
	}

	return employee, nil
}

// GetAllEmployees retrieves every employee with its skills in primary-key order.
func (r *Repository) GetAllEmployees(ctx context.Context) ([]models.Employee, error) {
	startTime := time.Now()
	defer func() {
		duration := time.Since(startTime).Seconds()
		r.metrics.DBQueryDuration.WithLabelValues("get_all_employees").Observe(duration)
	}()

	employeesQuery := `SELECT id, name, position, email, department, seed FROM employees ORDER BY id`
	skillsQuery := `SELECT id, skill_name, skill_level, employee_id FROM skills ORDER BY employee_id, id`

	rows, err := r.db.Query(ctx, employeesQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to query employees: %w", err)
	}
	defer rows.Close()

	employees := []models.Employee{}
	index := make(map[int]int)
	for rows.Next() {
		var emp models.Employee
		if err = rows.Scan(&emp.ID, &emp.Name, &emp.Position, &emp.Email, &emp.Department, &emp.Seed); err != nil {
			return nil, fmt.Errorf("failed to scan employee row: %w", err)
		}
		emp.Skills = []models.Skill{}
		index[emp.ID] = len(employees)
		employees = append(employees, emp)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate employee rows: %w", err)
	}

	skillRows, err := r.db.Query(ctx, skillsQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to query skills: %w", err)
	}
	defer skillRows.Close()

	for skillRows.Next() {
		var skill models.Skill
		if err = skillRows.Scan(&skill.ID, &skill.SkillName, &skill.SkillLevel, &skill.EmployeeID); err != nil {
			return nil, fmt.Errorf("failed to scan skill row: %w", err)
		}
		if pos, ok := index[skill.EmployeeID]; ok {
			employees[pos].Skills = append(employees[pos].Skills, skill)
		}
	}
	if err = skillRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate skill rows: %w", err)
	}

	return employees, nil
}

// GetEmployeeByID retrieves an employee with its skills by primary key.
func (r *Repository) GetEmployeeByID(ctx context.Context, identifier int) (models.Employee, error) {
	startTime := time.Now()
	defer func() {
		duration := time.Since(startTime).Seconds()
		r.metrics.DBQueryDuration.WithLabelValues("get_employee_by_id").Observe(duration)
	}()

	query := `SELECT id, name, position, email, department, seed, password_hash FROM employees WHERE id = $1`

	return r.getEmployee(ctx, query, identifier)
}

// GetEmployeeByEmail retrieves an employee by exact email match, as stored.
// The returned employee carries its password hash for credential checks.
func (r *Repository) GetEmployeeByEmail(ctx context.Context, email string) (models.Employee, error) {
	startTime := time.Now()
	defer func() {
		duration := time.Since(startTime).Seconds()
		r.metrics.DBQueryDuration.WithLabelValues("get_employee_by_email").Observe(duration)
	}()

	query := `SELECT id, name, position, email, department, seed, password_hash FROM employees WHERE email = $1`

	return r.getEmployee(ctx, query, email)
}

func (r *Repository) getEmployee(ctx context.Context, query string, arg any) (models.Employee, error) {
	var result models.Employee

	err := r.db.QueryRow(ctx, query, arg).Scan(
		&result.ID, &result.Name, &result.Position, &result.Email,
		&result.Department, &result.Seed, &result.PasswordHash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Employee{}, models.ErrEmployeeNotFound
		}
		return models.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	skills, err := r.GetSkillsByEmployee(ctx, result.ID)
	if err != nil {
		return models.Employee{}, err
	}
	result.Skills = skills

	return result, nil
}

// DeleteEmployee removes an employee and all of its skills in one transaction.
func (r *Repository) DeleteEmployee(ctx context.Context, identifier int) error {
	startTime := time.Now()
	defer func() {
		duration := time.Since(startTime).Seconds()
		r.metrics.DBQueryDuration.WithLabelValues("delete_employee").Observe(duration)
	}()

	deleteSkillsQuery := `DELETE FROM skills WHERE employee_id = $1;`
	deleteEmployeeQuery := `DELETE FROM employees WHERE id = $1;`

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err = tx.Exec(ctx, deleteSkillsQuery, identifier); err != nil {
		return fmt.Errorf("failed to delete employee skills: %w", err)
	}

	tag, err := tx.Exec(ctx, deleteEmployeeQuery, identifier)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return models.ErrEmployeeNotFound
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit employee deletion: %w", err)
	}

	return nil
}
