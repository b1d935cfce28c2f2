package skills_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/UnknownOlympus/talos/internal/metrics"
	"github.com/UnknownOlympus/talos/internal/models"
	"github.com/UnknownOlympus/talos/internal/services/skills"
	mocks "github.com/UnknownOlympus/talos/mock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T) (*skills.SkillService, *mocks.SkillRepoIface) {
	t.Helper()

	logger := slog.Default()
	mockRepo := new(mocks.SkillRepoIface)
	mtr := metrics.NewMetrics(prometheus.NewRegistry())

	return skills.NewSkillService(logger, mockRepo, mtr), mockRepo
}

func strPtr(s string) *string { return &s }
func intPtr(v int) *int       { return &v }

func TestCreate_Success(t *testing.T) {
	t.Parallel()

	svc, mockRepo := newService(t)

	mockRepo.On("EmployeeExists", mock.Anything, 1).Return(true, nil)
	mockRepo.On("CreateSkill", mock.Anything, 1, "Go", 85).
		Return(models.Skill{ID: 10, SkillName: "Go", SkillLevel: 85, EmployeeID: 1}, nil)

	skill, err := svc.Create(context.Background(), 1, strPtr("Go"), intPtr(85))

	require.NoError(t, err)
	assert.Equal(t, 10, skill.ID)
	mockRepo.AssertExpectations(t)
}

func TestCreate_EmployeeMissing(t *testing.T) {
	t.Parallel()

	svc, mockRepo := newService(t)

	mockRepo.On("EmployeeExists", mock.Anything, 404).Return(false, nil)

	_, err := svc.Create(context.Background(), 404, strPtr("Go"), intPtr(85))

	require.ErrorIs(t, err, models.ErrEmployeeNotFound)
	mockRepo.AssertNotCalled(t, "CreateSkill", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCreate_MissingFields(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		skill *string
		level *int
	}{
		{"nil name", nil, intPtr(85)},
		{"empty name", strPtr(""), intPtr(85)},
		{"nil level", strPtr("Go"), nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			svc, mockRepo := newService(t)
			mockRepo.On("EmployeeExists", mock.Anything, 1).Return(true, nil)

			_, err := svc.Create(context.Background(), 1, tc.skill, tc.level)

			require.Error(t, err)
			assert.True(t, models.IsValidation(err))
			assert.EqualError(t, err, "Missing required fields: skill_name and skill_level")
		})
	}
}

func TestCreate_LevelOutOfRange(t *testing.T) {
	t.Parallel()

	for _, level := range []int{-1, 101, 1000} {
		svc, mockRepo := newService(t)
		mockRepo.On("EmployeeExists", mock.Anything, 1).Return(true, nil)

		_, err := svc.Create(context.Background(), 1, strPtr("Go"), intPtr(level))

		require.Error(t, err)
		assert.True(t, models.IsValidation(err))
		mockRepo.AssertNotCalled(t, "CreateSkill", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	}
}

func TestCreate_BoundaryLevels(t *testing.T) {
	t.Parallel()

	for _, level := range []int{0, 100} {
		svc, mockRepo := newService(t)
		mockRepo.On("EmployeeExists", mock.Anything, 1).Return(true, nil)
		mockRepo.On("CreateSkill", mock.Anything, 1, "Go", level).
			Return(models.Skill{ID: 10, SkillName: "Go", SkillLevel: level, EmployeeID: 1}, nil)

		skill, err := svc.Create(context.Background(), 1, strPtr("Go"), intPtr(level))

		require.NoError(t, err)
		assert.Equal(t, level, skill.SkillLevel)
	}
}

func TestCreate_Duplicate(t *testing.T) {
	t.Parallel()

	svc, mockRepo := newService(t)

	mockRepo.On("EmployeeExists", mock.Anything, 1).Return(true, nil)
	mockRepo.On("CreateSkill", mock.Anything, 1, "Go", 85).
		Return(models.Skill{}, models.ErrSkillExists)

	_, err := svc.Create(context.Background(), 1, strPtr("Go"), intPtr(85))

	require.ErrorIs(t, err, models.ErrSkillExists)
}

func TestListForEmployee_Success(t *testing.T) {
	t.Parallel()

	svc, mockRepo := newService(t)

	expected := []models.Skill{{ID: 10, SkillName: "Go", SkillLevel: 85, EmployeeID: 1}}
	mockRepo.On("EmployeeExists", mock.Anything, 1).Return(true, nil)
	mockRepo.On("GetSkillsByEmployee", mock.Anything, 1).Return(expected, nil)

	skills, err := svc.ListForEmployee(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, expected, skills)
}

func TestListForEmployee_EmployeeMissing(t *testing.T) {
	t.Parallel()

	svc, mockRepo := newService(t)

	mockRepo.On("EmployeeExists", mock.Anything, 404).Return(false, nil)

	_, err := svc.ListForEmployee(context.Background(), 404)

	require.ErrorIs(t, err, models.ErrEmployeeNotFound)
	mockRepo.AssertNotCalled(t, "GetSkillsByEmployee", mock.Anything, mock.Anything)
}

func TestUpdate_PartialName(t *testing.T) {
	t.Parallel()

	svc, mockRepo := newService(t)

	mockRepo.On("GetSkillByID", mock.Anything, 10).
		Return(models.Skill{ID: 10, SkillName: "Go", SkillLevel: 85, EmployeeID: 1}, nil)
	mockRepo.On("UpdateSkill", mock.Anything,
		models.Skill{ID: 10, SkillName: "Golang", SkillLevel: 85, EmployeeID: 1}).Return(nil)

	skill, err := svc.Update(context.Background(), 10, strPtr("Golang"), nil)

	require.NoError(t, err)
	assert.Equal(t, "Golang", skill.SkillName)
	assert.Equal(t, 85, skill.SkillLevel)
	mockRepo.AssertExpectations(t)
}

func TestUpdate_PartialLevel(t *testing.T) {
	t.Parallel()

	svc, mockRepo := newService(t)

	mockRepo.On("GetSkillByID", mock.Anything, 10).
		Return(models.Skill{ID: 10, SkillName: "Go", SkillLevel: 85, EmployeeID: 1}, nil)
	mockRepo.On("UpdateSkill", mock.Anything,
		models.Skill{ID: 10, SkillName: "Go", SkillLevel: 90, EmployeeID: 1}).Return(nil)

	skill, err := svc.Update(context.Background(), 10, nil, intPtr(90))

	require.NoError(t, err)
	assert.Equal(t, 90, skill.SkillLevel)
}

func TestUpdate_InvalidLevel(t *testing.T) {
	t.Parallel()

	svc, mockRepo := newService(t)

	mockRepo.On("GetSkillByID", mock.Anything, 10).
		Return(models.Skill{ID: 10, SkillName: "Go", SkillLevel: 85, EmployeeID: 1}, nil)

	_, err := svc.Update(context.Background(), 10, nil, intPtr(101))

	require.Error(t, err)
	assert.True(t, models.IsValidation(err))
	mockRepo.AssertNotCalled(t, "UpdateSkill", mock.Anything, mock.Anything)
}

func TestUpdate_NotFound(t *testing.T) {
	t.Parallel()

	svc, mockRepo := newService(t)

	mockRepo.On("GetSkillByID", mock.Anything, 404).
		Return(models.Skill{}, models.ErrSkillNotFound)

	_, err := svc.Update(context.Background(), 404, strPtr("Go"), nil)

	require.ErrorIs(t, err, models.ErrSkillNotFound)
}

func TestDelete_Success(t *testing.T) {
	t.Parallel()

	svc, mockRepo := newService(t)

	mockRepo.On("DeleteSkill", mock.Anything, 10).Return(nil)

	require.NoError(t, svc.Delete(context.Background(), 10))
}

func TestDelete_NotFound(t *testing.T) {
	t.Parallel()

	svc, mockRepo := newService(t)

	mockRepo.On("DeleteSkill", mock.Anything, 404).Return(models.ErrSkillNotFound)

	require.ErrorIs(t, svc.Delete(context.Background(), 404), models.ErrSkillNotFound)
}
