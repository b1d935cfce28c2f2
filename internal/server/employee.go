package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/UnknownOlympus/talos/internal/models"
	"github.com/UnknownOlympus/talos/internal/services/employees"
	"github.com/gorilla/mux"
)

// EmployeeService is the contract the employee handlers consume.
type EmployeeService interface {
	Create(ctx context.Context, input employees.CreateInput) (models.Employee, error)
	GetAll(ctx context.Context) ([]models.Employee, error)
	GetByID(ctx context.Context, identifier int) (models.Employee, error)
	GetByEmail(ctx context.Context, email string) (models.Employee, error)
	Authenticate(ctx context.Context, email, password string) (models.Employee, error)
	Delete(ctx context.Context, identifier int) error
}

// EmployeeHandler translates HTTP requests into employee store operations.
type EmployeeHandler struct {
	svc EmployeeService
	log *slog.Logger
}

func NewEmployeeHandler(svc EmployeeService, log *slog.Logger) *EmployeeHandler {
	return &EmployeeHandler{svc: svc, log: log}
}

type inlineSkillRequest struct {
	SkillName  *string `json:"skill_name"`
	SkillLevel *int    `json:"skill_level"`
}

type createEmployeeRequest struct {
	Name       string               `json:"name"`
	Position   string               `json:"position"`
	Email      string               `json:"email"`
	Department string               `json:"department"`
	Seed       string               `json:"seed"`
	Password   string               `json:"password"`
	Skills     []inlineSkillRequest `json:"skills"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// decodeBody decodes a JSON request body, translating a wrongly-typed
// skill_level into the canonical validation message.
func decodeBody(req *http.Request, dst any) error {
	if err := json.NewDecoder(req.Body).Decode(dst); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && strings.Contains(typeErr.Field, "skill_level") {
			return models.NewValidationError("Skill level must be an integer between 0 and 100")
		}
		return models.NewValidationError("Invalid request body")
	}
	return nil
}

func (h *EmployeeHandler) Create(writer http.ResponseWriter, req *http.Request) {
	var body createEmployeeRequest
	if err := decodeBody(req, &body); err != nil {
		writeError(h.log, writer, req, err)
		return
	}

	input := employees.CreateInput{
		Name:       body.Name,
		Position:   body.Position,
		Email:      body.Email,
		Department: body.Department,
		Seed:       body.Seed,
		Password:   body.Password,
	}
	for _, skill := range body.Skills {
		// incomplete inline skill entries are ignored
		if skill.SkillName == nil || skill.SkillLevel == nil {
			continue
		}
		input.Skills = append(input.Skills, employees.SkillInput{Name: *skill.SkillName, Level: *skill.SkillLevel})
	}

	employee, err := h.svc.Create(req.Context(), input)
	if err != nil {
		writeError(h.log, writer, req, err)
		return
	}

	writeJSON(h.log, writer, req, http.StatusCreated, map[string]any{
		"message":  "Employee created successfully",
		"employee": employee,
	})
}

func (h *EmployeeHandler) GetAll(writer http.ResponseWriter, req *http.Request) {
	result, err := h.svc.GetAll(req.Context())
	if err != nil {
		writeError(h.log, writer, req, err)
		return
	}

	writeJSON(h.log, writer, req, http.StatusOK, map[string]any{"employees": result})
}

func (h *EmployeeHandler) GetByID(writer http.ResponseWriter, req *http.Request) {
	identifier, err := strconv.Atoi(mux.Vars(req)["id"])
	if err != nil {
		writeError(h.log, writer, req, models.ErrEmployeeNotFound)
		return
	}

	employee, err := h.svc.GetByID(req.Context(), identifier)
	if err != nil {
		writeError(h.log, writer, req, err)
		return
	}

	writeJSON(h.log, writer, req, http.StatusOK, map[string]any{"employee": employee})
}

func (h *EmployeeHandler) GetByEmail(writer http.ResponseWriter, req *http.Request) {
	employee, err := h.svc.GetByEmail(req.Context(), mux.Vars(req)["email"])
	if err != nil {
		writeError(h.log, writer, req, err)
		return
	}

	writeJSON(h.log, writer, req, http.StatusOK, map[string]any{"employee": employee})
}

func (h *EmployeeHandler) Login(writer http.ResponseWriter, req *http.Request) {
	var body loginRequest
	if err := decodeBody(req, &body); err != nil {
		writeError(h.log, writer, req, err)
		return
	}

	employee, err := h.svc.Authenticate(req.Context(), body.Email, body.Password)
	if err != nil {
		writeError(h.log, writer, req, err)
		return
	}

	writeJSON(h.log, writer, req, http.StatusOK, map[string]any{
		"message":  "Login successful",
		"employee": employee,
	})
}

func (h *EmployeeHandler) Delete(writer http.ResponseWriter, req *http.Request) {
	identifier, err := strconv.Atoi(mux.Vars(req)["id"])
	if err != nil {
		writeError(h.log, writer, req, models.ErrEmployeeNotFound)
		return
	}

	if err = h.svc.Delete(req.Context(), identifier); err != nil {
		writeError(h.log, writer, req, err)
		return
	}

	writeJSON(h.log, writer, req, http.StatusOK, map[string]any{"message": "Employee deleted successfully"})
}
