package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"simlab/internal/delivery/dto"
	"simlab/internal/usecase"
	"simlab/pkg/pagination"
	"simlab/pkg/response"
	"simlab/pkg/validator"
)

// examSortFields whitelists the sort keys accepted by GET /exams.
var examSortFields = map[string]string{
	"id":          "id",
	"name":        "name",
	"description": "description",
	"price":       "price",
}

type ExamHandler struct {
	examUsecase usecase.ExamUsecase
	validator   *validator.CustomValidator
}

func NewExamHandler(examUsecase usecase.ExamUsecase, validator *validator.CustomValidator) *ExamHandler {
	return &ExamHandler{
		examUsecase: examUsecase,
		validator:   validator,
	}
}

func (h *ExamHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.ExamCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationFailed(w, h.validator.FormatValidationErrors(err))
		return
	}

	exam, err := h.examUsecase.Create(r.Context(), &req)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, exam)
}

func (h *ExamHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	p := pagination.FromQuery(q, examSortFields, "id ASC")

	page, err := h.examUsecase.List(r.Context(), q.Get("name"), q.Get("description"), p)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, page)
}

func (h *ExamHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		response.BadRequest(w, "Invalid exam id")
		return
	}

	exam, err := h.examUsecase.GetByID(r.Context(), id)
	if err != nil {
		response.FromError(w, err)
		return
	}
	if exam == nil {
		response.NotFound(w, fmt.Sprintf("exam with id %d not found", id))
		return
	}

	response.JSON(w, http.StatusOK, exam)
}

func (h *ExamHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		response.BadRequest(w, "Invalid exam id")
		return
	}

	var req dto.ExamUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationFailed(w, h.validator.FormatValidationErrors(err))
		return
	}

	exam, err := h.examUsecase.Update(r.Context(), id, &req)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, exam)
}

func (h *ExamHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		response.BadRequest(w, "Invalid exam id")
		return
	}

	deleted, err := h.examUsecase.Delete(r.Context(), id)
	if err != nil {
		response.FromError(w, err)
		return
	}
	if !deleted {
		response.NotFound(w, fmt.Sprintf("exam with id %d not found", id))
		return
	}

	response.NoContent(w)
}
