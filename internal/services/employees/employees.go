package employees

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/UnknownOlympus/talos/internal/hasher"
	"github.com/UnknownOlympus/talos/internal/lib/logger/sl"
	"github.com/UnknownOlympus/talos/internal/metrics"
	"github.com/UnknownOlympus/talos/internal/models"
	"github.com/UnknownOlympus/talos/internal/repository"
	"github.com/UnknownOlympus/talos/internal/validation"
)

// Staff implements the employee operations: validation, password hashing and
// conflict-aware persistence through the employee repository.
type Staff struct {
	log     *slog.Logger
	repo    repository.EmployeeRepoIface
	hasher  hasher.PasswordHasher
	metrics *metrics.Metrics
}

func NewStaff(
	log *slog.Logger,
	repo repository.EmployeeRepoIface,
	hsh hasher.PasswordHasher,
	mtr *metrics.Metrics,
) *Staff {
	return &Staff{log: log, repo: repo, hasher: hsh, metrics: mtr}
}

func (s *Staff) initLogger(opn string) *slog.Logger {
	return s.log.With(
		slog.String("op", opn),
		slog.String("division", "employee"),
	)
}

// CreateInput carries a decoded employee-create payload.
type CreateInput struct {
	Name       string
	Position   string
	Email      string
	Department string
	Seed       string
	Password   string
	Skills     []SkillInput
}

// SkillInput carries one inline skill of a create payload.
type SkillInput struct {
	Name  string
	Level int
}

// Create validates the payload, hashes the password and persists the employee
// together with any inline skills as one atomic unit. Validation failures are
// returned before storage is touched.
func (s *Staff) Create(ctx context.Context, input CreateInput) (models.Employee, error) {
	const opn = "Employee.Create"
	log := s.initLogger(opn)

	if verr := validateCreateInput(input); verr != nil {
		return models.Employee{}, verr
	}

	passwordHash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return models.Employee{}, fmt.Errorf("failed to hash password: %w", err)
	}

	employee := models.Employee{
		Name:         input.Name,
		Position:     input.Position,
		Email:        input.Email,
		Department:   input.Department,
		Seed:         input.Seed,
		PasswordHash: passwordHash,
	}

	skills := make([]models.Skill, 0, len(input.Skills))
	for _, skill := range input.Skills {
		skills = append(skills, models.Skill{SkillName: skill.Name, SkillLevel: skill.Level})
	}

	created, err := s.repo.CreateEmployee(ctx, employee, skills)
	if err != nil {
		log.ErrorContext(ctx, "Failed to create employee", sl.Err(err))
		return models.Employee{}, err
	}

	s.metrics.EmployeesCreated.Inc()
	log.InfoContext(ctx, "Employee created", "id", created.ID, "email", created.Email)

	created.PasswordHash = ""

	return created, nil
}

func validateCreateInput(input CreateInput) error {
	required := []struct {
		name  string
		value string
	}{
		{"name", input.Name},
		{"position", input.Position},
		{"email", input.Email},
		{"department", input.Department},
		{"seed", input.Seed},
		{"password", input.Password},
	}
	for _, field := range required {
		if field.value == "" {
			return models.NewValidationError("Missing required field: " + field.name)
		}
	}

	if !validation.IsValidEmail(input.Email) {
		return models.NewValidationError("Invalid email format")
	}
	if !validation.IsValidSeed(input.Seed) {
		return models.NewValidationError("Seed must be exactly 7 characters")
	}
	if !validation.IsValidPassword(input.Password) {
		return models.NewValidationError("Password must be at least 6 characters")
	}

	seen := make(map[string]struct{}, len(input.Skills))
	for _, skill := range input.Skills {
		if !validation.IsValidSkillLevel(skill.Level) {
			return models.NewValidationError("Skill level must be an integer between 0 and 100")
		}
		if _, dup := seen[skill.Name]; dup {
			return models.NewValidationError("Duplicate skill name: " + skill.Name)
		}
		seen[skill.Name] = struct{}{}
	}

	return nil
}

// GetAll returns every employee with its skills in stable primary-key order.
func (s *Staff) GetAll(ctx context.Context) ([]models.Employee, error) {
	const opn = "Employee.GetAll"
	log := s.initLogger(opn)

	result, err := s.repo.GetAllEmployees(ctx)
	if err != nil {
		log.ErrorContext(ctx, "Failed to list employees", sl.Err(err))
		return nil, err
	}

	return result, nil
}

// GetByID returns one employee with skills, or models.ErrEmployeeNotFound.
func (s *Staff) GetByID(ctx context.Context, identifier int) (models.Employee, error) {
	const opn = "Employee.GetByID"
	log := s.initLogger(opn)

	result, err := s.repo.GetEmployeeByID(ctx, identifier)
	if err != nil {
		if !errors.Is(err, models.ErrEmployeeNotFound) {
			log.ErrorContext(ctx, "Failed to get employee", sl.Err(err), "id", identifier)
		}
		return models.Employee{}, err
	}

	result.PasswordHash = ""

	return result, nil
}

// GetByEmail returns one employee by exact email match, or models.ErrEmployeeNotFound.
func (s *Staff) GetByEmail(ctx context.Context, email string) (models.Employee, error) {
	const opn = "Employee.GetByEmail"
	log := s.initLogger(opn)

	result, err := s.repo.GetEmployeeByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, models.ErrEmployeeNotFound) {
			log.ErrorContext(ctx, "Failed to get employee by email", sl.Err(err))
		}
		return models.Employee{}, err
	}

	result.PasswordHash = ""

	return result, nil
}

// Authenticate checks the credentials against the stored hash. An unknown
// email and a wrong password are deliberately indistinguishable: both return
// models.ErrInvalidCredentials.
func (s *Staff) Authenticate(ctx context.Context, email, password string) (models.Employee, error) {
	const opn = "Employee.Authenticate"
	log := s.initLogger(opn)

	if email == "" || password == "" {
		missing := []string{}
		if email == "" {
			missing = append(missing, "email")
		}
		if password == "" {
			missing = append(missing, "password")
		}
		return models.Employee{}, models.NewValidationError("Missing required fields: " + strings.Join(missing, ", "))
	}

	employee, err := s.repo.GetEmployeeByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, models.ErrEmployeeNotFound) {
			return models.Employee{}, models.ErrInvalidCredentials
		}
		log.ErrorContext(ctx, "Failed to look up employee for login", sl.Err(err))
		return models.Employee{}, err
	}

	if !s.hasher.Verify(password, employee.PasswordHash) {
		return models.Employee{}, models.ErrInvalidCredentials
	}

	log.InfoContext(ctx, "Employee authenticated", "id", employee.ID)

	employee.PasswordHash = ""

	return employee, nil
}

// Delete removes the employee and, atomically, all owned skills.
func (s *Staff) Delete(ctx context.Context, identifier int) error {
	const opn = "Employee.Delete"
	log := s.initLogger(opn)

	if err := s.repo.DeleteEmployee(ctx, identifier); err != nil {
		if !errors.Is(err, models.ErrEmployeeNotFound) {
			log.ErrorContext(ctx, "Failed to delete employee", sl.Err(err), "id", identifier)
		}
		return err
	}

	log.InfoContext(ctx, "Employee deleted", "id", identifier)

	return nil
}
