package employees_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/UnknownOlympus/talos/internal/metrics"
	"github.com/UnknownOlympus/talos/internal/models"
	"github.com/UnknownOlympus/talos/internal/services/employees"
	mocks "github.com/UnknownOlympus/talos/mock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newStaff(t *testing.T) (*employees.Staff, *mocks.EmployeeRepoIface, *mocks.PasswordHasher) {
	t.Helper()

	logger := slog.Default()
	mockRepo := new(mocks.EmployeeRepoIface)
	mockHasher := new(mocks.PasswordHasher)
	mtr := metrics.NewMetrics(prometheus.NewRegistry())

	return employees.NewStaff(logger, mockRepo, mockHasher, mtr), mockRepo, mockHasher
}

func validInput() employees.CreateInput {
	return employees.CreateInput{
		Name:       "John Doe",
		Position:   "Engineer",
		Email:      "john@co.com",
		Department: "Eng",
		Seed:       "AB123CD",
		Password:   "secret1",
		Skills:     []employees.SkillInput{{Name: "Go", Level: 85}},
	}
}

func TestCreate_Success(t *testing.T) {
	t.Parallel()

	staff, mockRepo, mockHasher := newStaff(t)

	created := models.Employee{
		ID:           1,
		Name:         "John Doe",
		Position:     "Engineer",
		Email:        "john@co.com",
		Department:   "Eng",
		Seed:         "AB123CD",
		PasswordHash: "hashed",
		Skills:       []models.Skill{{ID: 10, SkillName: "Go", SkillLevel: 85, EmployeeID: 1}},
	}

	mockHasher.On("Hash", "secret1").Return("hashed", nil)
	mockRepo.On("CreateEmployee", mock.Anything,
		mock.MatchedBy(func(emp models.Employee) bool {
			return emp.Email == "john@co.com" && emp.PasswordHash == "hashed"
		}),
		[]models.Skill{{SkillName: "Go", SkillLevel: 85}},
	).Return(created, nil)

	result, err := staff.Create(context.Background(), validInput())

	require.NoError(t, err)
	assert.Equal(t, 1, result.ID)
	assert.Empty(t, result.PasswordHash, "password hash must not leak out of the service")
	require.Len(t, result.Skills, 1)
	assert.Equal(t, 85, result.Skills[0].SkillLevel)
	mockRepo.AssertExpectations(t)
}

func TestCreate_ValidationFailures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*employees.CreateInput)
		message string
	}{
		{
			"missing name",
			func(in *employees.CreateInput) { in.Name = "" },
			"Missing required field: name",
		},
		{
			"missing position",
			func(in *employees.CreateInput) { in.Position = "" },
			"Missing required field: position",
		},
		{
			"missing password",
			func(in *employees.CreateInput) { in.Password = "" },
			"Missing required field: password",
		},
		{
			"invalid email",
			func(in *employees.CreateInput) { in.Email = "john-at-co.com" },
			"Invalid email format",
		},
		{
			"seed too short",
			func(in *employees.CreateInput) { in.Seed = "AB123C" },
			"Seed must be exactly 7 characters",
		},
		{
			"seed too long",
			func(in *employees.CreateInput) { in.Seed = "AB123CDE" },
			"Seed must be exactly 7 characters",
		},
		{
			"short password",
			func(in *employees.CreateInput) { in.Password = "abc12" },
			"Password must be at least 6 characters",
		},
		{
			"skill level above range",
			func(in *employees.CreateInput) { in.Skills[0].Level = 101 },
			"Skill level must be an integer between 0 and 100",
		},
		{
			"skill level below range",
			func(in *employees.CreateInput) { in.Skills[0].Level = -1 },
			"Skill level must be an integer between 0 and 100",
		},
		{
			"duplicate inline skill names",
			func(in *employees.CreateInput) {
				in.Skills = append(in.Skills, employees.SkillInput{Name: "Go", Level: 50})
			},
			"Duplicate skill name: Go",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			staff, mockRepo, _ := newStaff(t)

			input := validInput()
			tc.mutate(&input)

			_, err := staff.Create(context.Background(), input)

			require.Error(t, err)
			assert.True(t, models.IsValidation(err), "expected a validation error")
			assert.EqualError(t, err, tc.message)
			mockRepo.AssertNotCalled(t, "CreateEmployee", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestCreate_DuplicateEmail(t *testing.T) {
	t.Parallel()

	staff, mockRepo, mockHasher := newStaff(t)

	mockHasher.On("Hash", "secret1").Return("hashed", nil)
	mockRepo.On("CreateEmployee", mock.Anything, mock.Anything, mock.Anything).
		Return(models.Employee{}, models.ErrEmailExists)

	_, err := staff.Create(context.Background(), validInput())

	require.ErrorIs(t, err, models.ErrEmailExists)
}

func TestCreate_BoundaryLevels(t *testing.T) {
	t.Parallel()

	staff, mockRepo, mockHasher := newStaff(t)

	input := validInput()
	input.Skills = []employees.SkillInput{{Name: "Go", Level: 0}, {Name: "SQL", Level: 100}}

	mockHasher.On("Hash", "secret1").Return("hashed", nil)
	mockRepo.On("CreateEmployee", mock.Anything, mock.Anything,
		[]models.Skill{{SkillName: "Go", SkillLevel: 0}, {SkillName: "SQL", SkillLevel: 100}},
	).Return(models.Employee{ID: 1}, nil)

	_, err := staff.Create(context.Background(), input)

	require.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestGetByID_NotFound(t *testing.T) {
	t.Parallel()

	staff, mockRepo, _ := newStaff(t)

	mockRepo.On("GetEmployeeByID", mock.Anything, 404).
		Return(models.Employee{}, models.ErrEmployeeNotFound)

	_, err := staff.GetByID(context.Background(), 404)

	require.ErrorIs(t, err, models.ErrEmployeeNotFound)
}

func TestGetByID_StripsPasswordHash(t *testing.T) {
	t.Parallel()

	staff, mockRepo, _ := newStaff(t)

	mockRepo.On("GetEmployeeByID", mock.Anything, 1).
		Return(models.Employee{ID: 1, PasswordHash: "$2a$10$hash"}, nil)

	result, err := staff.GetByID(context.Background(), 1)

	require.NoError(t, err)
	assert.Empty(t, result.PasswordHash)
}

func TestAuthenticate_Success(t *testing.T) {
	t.Parallel()

	staff, mockRepo, mockHasher := newStaff(t)

	mockRepo.On("GetEmployeeByEmail", mock.Anything, "john@co.com").
		Return(models.Employee{ID: 1, Email: "john@co.com", PasswordHash: "$2a$10$hash"}, nil)
	mockHasher.On("Verify", "secret1", "$2a$10$hash").Return(true)

	result, err := staff.Authenticate(context.Background(), "john@co.com", "secret1")

	require.NoError(t, err)
	assert.Equal(t, 1, result.ID)
	assert.Empty(t, result.PasswordHash)
}

func TestAuthenticate_UnknownEmail(t *testing.T) {
	t.Parallel()

	staff, mockRepo, _ := newStaff(t)

	mockRepo.On("GetEmployeeByEmail", mock.Anything, "ghost@co.com").
		Return(models.Employee{}, models.ErrEmployeeNotFound)

	_, err := staff.Authenticate(context.Background(), "ghost@co.com", "secret1")

	require.ErrorIs(t, err, models.ErrInvalidCredentials)
}

func TestAuthenticate_WrongPassword(t *testing.T) {
	t.Parallel()

	staff, mockRepo, mockHasher := newStaff(t)

	mockRepo.On("GetEmployeeByEmail", mock.Anything, "john@co.com").
		Return(models.Employee{ID: 1, PasswordHash: "$2a$10$hash"}, nil)
	mockHasher.On("Verify", "wrong1", "$2a$10$hash").Return(false)

	_, err := staff.Authenticate(context.Background(), "john@co.com", "wrong1")

	require.ErrorIs(t, err, models.ErrInvalidCredentials)
}

func TestAuthenticate_ErrorsAreIndistinguishable(t *testing.T) {
	t.Parallel()

	staff, mockRepo, mockHasher := newStaff(t)

	mockRepo.On("GetEmployeeByEmail", mock.Anything, "ghost@co.com").
		Return(models.Employee{}, models.ErrEmployeeNotFound)
	mockRepo.On("GetEmployeeByEmail", mock.Anything, "john@co.com").
		Return(models.Employee{ID: 1, PasswordHash: "$2a$10$hash"}, nil)
	mockHasher.On("Verify", "wrong1", "$2a$10$hash").Return(false)

	_, unknownErr := staff.Authenticate(context.Background(), "ghost@co.com", "secret1")
	_, wrongErr := staff.Authenticate(context.Background(), "john@co.com", "wrong1")

	assert.Equal(t, unknownErr, wrongErr)
}

func TestAuthenticate_MissingFields(t *testing.T) {
	t.Parallel()

	staff, mockRepo, _ := newStaff(t)

	_, err := staff.Authenticate(context.Background(), "", "")

	require.Error(t, err)
	assert.True(t, models.IsValidation(err))
	assert.EqualError(t, err, "Missing required fields: email, password")
	mockRepo.AssertNotCalled(t, "GetEmployeeByEmail", mock.Anything, mock.Anything)
}

func TestDelete_NotFound(t *testing.T) {
	t.Parallel()

	staff, mockRepo, _ := newStaff(t)

	mockRepo.On("DeleteEmployee", mock.Anything, 404).Return(models.ErrEmployeeNotFound)

	err := staff.Delete(context.Background(), 404)

	require.ErrorIs(t, err, models.ErrEmployeeNotFound)
}

func TestDelete_Success(t *testing.T) {
	t.Parallel()

	staff, mockRepo, _ := newStaff(t)

	mockRepo.On("DeleteEmployee", mock.Anything, 1).Return(nil)

	err := staff.Delete(context.Background(), 1)

	require.NoError(t, err)
	mockRepo.AssertExpectations(t)
}
