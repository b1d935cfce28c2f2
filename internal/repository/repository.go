package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/UnknownOlympus/talos/internal/metrics"
	"github.com/UnknownOlympus/talos/internal/models"
	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL error codes used to translate constraint violations into
// domain errors. The unique indexes are the concurrency safety net: a race
// between two identical creates surfaces here, never as a duplicate row.
const (
	uniqueViolationCode     = "23505"
	foreignKeyViolationCode = "23503"
)

type Repository struct {
	db      Database
	metrics *metrics.Metrics
}

// EmployeeRepoIface represents the interface for interacting with employee data in the repository.
type EmployeeRepoIface interface {
	CreateEmployee(ctx context.Context, employee models.Employee, skills []models.Skill) (models.Employee, error)
	GetAllEmployees(ctx context.Context) ([]models.Employee, error)
	GetEmployeeByID(ctx context.Context, identifier int) (models.Employee, error)
	GetEmployeeByEmail(ctx context.Context, email string) (models.Employee, error)
	DeleteEmployee(ctx context.Context, identifier int) error
}

func NewEmployeeRepository(db Database, mtr *metrics.Metrics) EmployeeRepoIface {
	return &Repository{db: db, metrics: mtr}
}

// SkillRepoIface represents the interface for interacting with skill data in the repository.
type SkillRepoIface interface {
	CreateSkill(ctx context.Context, employeeID int, name string, level int) (models.Skill, error)
	GetSkillsByEmployee(ctx context.Context, employeeID int) ([]models.Skill, error)
	GetSkillByID(ctx context.Context, identifier int) (models.Skill, error)
	UpdateSkill(ctx context.Context, skill models.Skill) error
	DeleteSkill(ctx context.Context, identifier int) error
	EmployeeExists(ctx context.Context, employeeID int) (bool, error)
}

func NewSkillRepository(db Database, mtr *metrics.Metrics) SkillRepoIface {
	return &Repository{db: db, metrics: mtr}
}

// mapConstraintError translates PostgreSQL constraint violations into domain
// errors. Any other error is returned unchanged.
func mapConstraintError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case uniqueViolationCode:
		if strings.Contains(pgErr.ConstraintName, "email") {
			return models.ErrEmailExists
		}
		return models.ErrSkillExists
	case foreignKeyViolationCode:
		return models.ErrEmployeeNotFound
	default:
		return err
	}
}
