package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"simlab/internal/delivery/dto"
	"simlab/internal/usecase"
	"simlab/pkg/pagination"
	"simlab/pkg/response"
	"simlab/pkg/validator"
)

// patientSortFields whitelists the sort keys accepted by GET /patients.
var patientSortFields = map[string]string{
	"id":        "id",
	"name":      "name",
	"birthDate": "birth_date",
	"civilId":   "civil_id",
}

type PatientHandler struct {
	patientUsecase usecase.PatientUsecase
	validator      *validator.CustomValidator
}

func NewPatientHandler(patientUsecase usecase.PatientUsecase, validator *validator.CustomValidator) *PatientHandler {
	return &PatientHandler{
		patientUsecase: patientUsecase,
		validator:      validator,
	}
}

func (h *PatientHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.PatientCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationFailed(w, h.validator.FormatValidationErrors(err))
		return
	}

	patient, err := h.patientUsecase.Create(r.Context(), &req)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, patient)
}

func (h *PatientHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	p := pagination.FromQuery(q, patientSortFields, "id ASC")

	var birthDate *time.Time
	if v := q.Get("birthDate"); v != "" {
		parsed, err := time.Parse("2006-01-02", v)
		if err != nil {
			response.BadRequest(w, "birthDate must be a valid date in YYYY-MM-DD format")
			return
		}
		birthDate = &parsed
	}

	page, err := h.patientUsecase.List(r.Context(), q.Get("name"), q.Get("civilId"), birthDate, p)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, page)
}

func (h *PatientHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		response.BadRequest(w, "Invalid patient id")
		return
	}

	patient, err := h.patientUsecase.GetByID(r.Context(), id)
	if err != nil {
		response.FromError(w, err)
		return
	}
	if patient == nil {
		response.NotFound(w, fmt.Sprintf("patient with id %d not found", id))
		return
	}

	response.JSON(w, http.StatusOK, patient)
}

func (h *PatientHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		response.BadRequest(w, "Invalid patient id")
		return
	}

	var req dto.PatientUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationFailed(w, h.validator.FormatValidationErrors(err))
		return
	}

	patient, err := h.patientUsecase.Update(r.Context(), id, &req)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, patient)
}

func (h *PatientHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		response.BadRequest(w, "Invalid patient id")
		return
	}

	deleted, err := h.patientUsecase.Delete(r.Context(), id)
	if err != nil {
		response.FromError(w, err)
		return
	}
	if !deleted {
		response.NotFound(w, fmt.Sprintf("patient with id %d not found", id))
		return
	}

	response.NoContent(w)
}
