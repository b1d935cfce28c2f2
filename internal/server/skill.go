package server

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/UnknownOlympus/talos/internal/models"
	"github.com/gorilla/mux"
)

// SkillService is the contract the skill handlers consume.
type SkillService interface {
	Create(ctx context.Context, employeeID int, name *string, level *int) (models.Skill, error)
	ListForEmployee(ctx context.Context, employeeID int) ([]models.Skill, error)
	Update(ctx context.Context, identifier int, name *string, level *int) (models.Skill, error)
	Delete(ctx context.Context, identifier int) error
}

// SkillHandler translates HTTP requests into skill store operations.
type SkillHandler struct {
	svc SkillService
	log *slog.Logger
}

func NewSkillHandler(svc SkillService, log *slog.Logger) *SkillHandler {
	return &SkillHandler{svc: svc, log: log}
}

type skillRequest struct {
	SkillName  *string `json:"skill_name"`
	SkillLevel *int    `json:"skill_level"`
}

func (h *SkillHandler) Create(writer http.ResponseWriter, req *http.Request) {
	employeeID, err := strconv.Atoi(mux.Vars(req)["id"])
	if err != nil {
		writeError(h.log, writer, req, models.ErrEmployeeNotFound)
		return
	}

	var body skillRequest
	if err = decodeBody(req, &body); err != nil {
		writeError(h.log, writer, req, err)
		return
	}

	skill, err := h.svc.Create(req.Context(), employeeID, body.SkillName, body.SkillLevel)
	if err != nil {
		writeError(h.log, writer, req, err)
		return
	}

	writeJSON(h.log, writer, req, http.StatusCreated, map[string]any{
		"message": "Skill created successfully",
		"skill":   skill,
	})
}

func (h *SkillHandler) ListForEmployee(writer http.ResponseWriter, req *http.Request) {
	employeeID, err := strconv.Atoi(mux.Vars(req)["id"])
	if err != nil {
		writeError(h.log, writer, req, models.ErrEmployeeNotFound)
		return
	}

	skills, err := h.svc.ListForEmployee(req.Context(), employeeID)
	if err != nil {
		writeError(h.log, writer, req, err)
		return
	}

	writeJSON(h.log, writer, req, http.StatusOK, map[string]any{"skills": skills})
}

func (h *SkillHandler) Update(writer http.ResponseWriter, req *http.Request) {
	identifier, err := strconv.Atoi(mux.Vars(req)["id"])
	if err != nil {
		writeError(h.log, writer, req, models.ErrSkillNotFound)
		return
	}

	var body skillRequest
	if err = decodeBody(req, &body); err != nil {
		writeError(h.log, writer, req, err)
		return
	}

	skill, err := h.svc.Update(req.Context(), identifier, body.SkillName, body.SkillLevel)
	if err != nil {
		writeError(h.log, writer, req, err)
		return
	}

	writeJSON(h.log, writer, req, http.StatusOK, map[string]any{
		"message": "Skill updated successfully",
		"skill":   skill,
	})
}

func (h *SkillHandler) Delete(writer http.ResponseWriter, req *http.Request) {
	identifier, err := strconv.Atoi(mux.Vars(req)["id"])
	if err != nil {
		writeError(h.log, writer, req, models.ErrSkillNotFound)
		return
	}

	if err = h.svc.Delete(req.Context(), identifier); err != nil {
		writeError(h.log, writer, req, err)
		return
	}

	writeJSON(h.log, writer, req, http.StatusOK, map[string]any{"message": "Skill deleted successfully"})
}
