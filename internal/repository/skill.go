package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/UnknownOlympus/talos/internal/models"
	"github.com/jackc/pgx/v5"
)

// EmployeeExists reports whether an employee row with the given id is present.
func (r *Repository) EmployeeExists(ctx context.Context, employeeID int) (bool, error) {
	var exists bool

	err := r.db.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM employees WHERE id = $1)", employeeID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check employee existence: %w", err)
	}

	return exists, nil
}

// CreateSkill persists a new skill for an employee. A duplicate name for the
// same employee surfaces as models.ErrSkillExists, a missing employee as
// models.ErrEmployeeNotFound.
func (r *Repository) CreateSkill(
	ctx context.Context,
	employeeID int,
	name string,
	level int,
) (models.Skill, error) {
	startTime := time.Now()
	defer func() {
		duration := time.Since(startTime).Seconds()
		r.metrics.DBQueryDuration.WithLabelValues("create_skill").Observe(duration)
	}()

	query := `
		INSERT INTO skills (skill_name, skill_level, employee_id)
		VALUES ($1, $2, $3)
		RETURNING id;
	`

	skill := models.Skill{SkillName: name, SkillLevel: level, EmployeeID: employeeID}

	err := r.db.QueryRow(ctx, query, name, level, employeeID).Scan(&skill.ID)
	if err != nil {
		return models.Skill{}, fmt.Errorf("failed to insert skill: %w", mapConstraintError(err))
	}

	return skill, nil
}

// GetSkillsByEmployee retrieves all skills owned by an employee in primary-key order.
func (r *Repository) GetSkillsByEmployee(ctx context.Context, employeeID int) ([]models.Skill, error) {
	startTime := time.Now()
	defer func() {
		duration := time.Since(startTime).Seconds()
		r.metrics.DBQueryDuration.WithLabelValues("get_skills_by_employee").Observe(duration)
	}()

	query := `SELECT id, skill_name, skill_level, employee_id FROM skills WHERE employee_id = $1 ORDER BY id`

	rows, err := r.db.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to query skills: %w", err)
	}
	defer rows.Close()

	skills := []models.Skill{}
	for rows.Next() {
		var skill models.Skill
		if err = rows.Scan(&skill.ID, &skill.SkillName, &skill.SkillLevel, &skill.EmployeeID); err != nil {
			return nil, fmt.Errorf("failed to scan skill row: %w", err)
		}
		skills = append(skills, skill)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate skill rows: %w", err)
	}

	return skills, nil
}

// GetSkillByID retrieves a single skill by primary key.
func (r *Repository) GetSkillByID(ctx context.Context, identifier int) (models.Skill, error) {
	startTime := time.Now()
	defer func() {
		duration := time.Since(startTime).Seconds()
		r.metrics.DBQueryDuration.WithLabelValues("get_skill_by_id").Observe(duration)
	}()

	query := `SELECT id, skill_name, skill_level, employee_id FROM skills WHERE id = $1`

	var skill models.Skill
	err := r.db.QueryRow(ctx, query, identifier).
		Scan(&skill.ID, &skill.SkillName, &skill.SkillLevel, &skill.EmployeeID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Skill{}, models.ErrSkillNotFound
		}
		return models.Skill{}, fmt.Errorf("failed to get skill by id: %w", err)
	}

	return skill, nil
}

// UpdateSkill writes the skill's name and level back to its row.
func (r *Repository) UpdateSkill(ctx context.Context, skill models.Skill) error {
	startTime := time.Now()
	defer func() {
		duration := time.Since(startTime).Seconds()
		r.metrics.DBQueryDuration.WithLabelValues("update_skill").Observe(duration)
	}()

	query := `
		UPDATE skills
		SET skill_name = $2, skill_level = $3
		WHERE id = $1;
	`

	tag, err := r.db.Exec(ctx, query, skill.ID, skill.SkillName, skill.SkillLevel)
	if err != nil {
		return fmt.Errorf("failed to update skill: %w", mapConstraintError(err))
	}
	if tag.RowsAffected() == 0 {
		return models.ErrSkillNotFound
	}

	return nil
}

// DeleteSkill removes a single skill by primary key.
func (r *Repository) DeleteSkill(ctx context.Context, identifier int) error {
	startTime := time.Now()
	defer func() {
		duration := time.Since(startTime).Seconds()
		r.metrics.DBQueryDuration.WithLabelValues("delete_skill").Observe(duration)
	}()

	query := `DELETE FROM skills WHERE id = $1;`

	tag, err := r.db.Exec(ctx, query, identifier)
	if err != nil {
		return fmt.Errorf("failed to delete skill: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return models.ErrSkillNotFound
	}

	return nil
}
