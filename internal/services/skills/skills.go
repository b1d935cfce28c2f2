package skills

import (
	"context"
	"errors"
	"log/slog"

	"github.com/UnknownOlympus/talos/internal/lib/logger/sl"
	"github.com/UnknownOlympus/talos/internal/metrics"
	"github.com/UnknownOlympus/talos/internal/models"
	"github.com/UnknownOlympus/talos/internal/repository"
	"github.com/UnknownOlympus/talos/internal/validation"
)

// SkillService implements the skill operations: per-employee uniqueness,
// level range enforcement and partial updates.
type SkillService struct {
	log     *slog.Logger
	repo    repository.SkillRepoIface
	metrics *metrics.Metrics
}

func NewSkillService(log *slog.Logger, repo repository.SkillRepoIface, mtr *metrics.Metrics) *SkillService {
	return &SkillService{log: log, repo: repo, metrics: mtr}
}

func (s *SkillService) initLogger(opn string) *slog.Logger {
	return s.log.With(
		slog.String("op", opn),
		slog.String("division", "skill"),
	)
}

// Create persists a new skill for an employee. The employee is resolved
// first, so a missing owner is reported before any field validation.
func (s *SkillService) Create(ctx context.Context, employeeID int, name *string, level *int) (models.Skill, error) {
	const opn = "Skill.Create"
	log := s.initLogger(opn)

	exists, err := s.repo.EmployeeExists(ctx, employeeID)
	if err != nil {
		log.ErrorContext(ctx, "Failed to check employee existence", sl.Err(err))
		return models.Skill{}, err
	}
	if !exists {
		return models.Skill{}, models.ErrEmployeeNotFound
	}

	if name == nil || *name == "" || level == nil {
		return models.Skill{}, models.NewValidationError("Missing required fields: skill_name and skill_level")
	}
	if !validation.IsValidSkillLevel(*level) {
		return models.Skill{}, models.NewValidationError("Skill level must be an integer between 0 and 100")
	}

	skill, err := s.repo.CreateSkill(ctx, employeeID, *name, *level)
	if err != nil {
		if !errors.Is(err, models.ErrSkillExists) && !errors.Is(err, models.ErrEmployeeNotFound) {
			log.ErrorContext(ctx, "Failed to create skill", sl.Err(err))
		}
		return models.Skill{}, err
	}

	s.metrics.SkillsCreated.Inc()
	log.InfoContext(ctx, "Skill created", "id", skill.ID, "employee_id", employeeID)

	return skill, nil
}

// ListForEmployee returns all skills owned by the employee, or
// models.ErrEmployeeNotFound if the owner does not exist. A live employee
// with no skills yields an empty list, never an error.
func (s *SkillService) ListForEmployee(ctx context.Context, employeeID int) ([]models.Skill, error) {
	const opn = "Skill.ListForEmployee"
	log := s.initLogger(opn)

	exists, err := s.repo.EmployeeExists(ctx, employeeID)
	if err != nil {
		log.ErrorContext(ctx, "Failed to check employee existence", sl.Err(err))
		return nil, err
	}
	if !exists {
		return nil, models.ErrEmployeeNotFound
	}

	skills, err := s.repo.GetSkillsByEmployee(ctx, employeeID)
	if err != nil {
		log.ErrorContext(ctx, "Failed to list skills", sl.Err(err))
		return nil, err
	}

	return skills, nil
}

// Update applies only the supplied fields to an existing skill. A supplied
// level is validated before any mutation.
func (s *SkillService) Update(ctx context.Context, identifier int, name *string, level *int) (models.Skill, error) {
	const opn = "Skill.Update"
	log := s.initLogger(opn)

	skill, err := s.repo.GetSkillByID(ctx, identifier)
	if err != nil {
		if !errors.Is(err, models.ErrSkillNotFound) {
			log.ErrorContext(ctx, "Failed to get skill", sl.Err(err), "id", identifier)
		}
		return models.Skill{}, err
	}

	if name != nil {
		skill.SkillName = *name
	}
	if level != nil {
		if !validation.IsValidSkillLevel(*level) {
			return models.Skill{}, models.NewValidationError("Skill level must be an integer between 0 and 100")
		}
		skill.SkillLevel = *level
	}

	if err = s.repo.UpdateSkill(ctx, skill); err != nil {
		if !errors.Is(err, models.ErrSkillNotFound) && !errors.Is(err, models.ErrSkillExists) {
			log.ErrorContext(ctx, "Failed to update skill", sl.Err(err), "id", identifier)
		}
		return models.Skill{}, err
	}

	log.InfoContext(ctx, "Skill updated", "id", skill.ID)

	return skill, nil
}

// Delete removes a single skill.
func (s *SkillService) Delete(ctx context.Context, identifier int) error {
	const opn = "Skill.Delete"
	log := s.initLogger(opn)

	if err := s.repo.DeleteSkill(ctx, identifier); err != nil {
		if !errors.Is(err, models.ErrSkillNotFound) {
			log.ErrorContext(ctx, "Failed to delete skill", sl.Err(err), "id", identifier)
		}
		return err
	}

	log.InfoContext(ctx, "Skill deleted", "id", identifier)

	return nil
}
