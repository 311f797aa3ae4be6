package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"medibill-api/internal/services"
)

// PatientHandler handles patient registry operations.
type PatientHandler struct {
	patientService *services.PatientService
}

// NewPatientHandler creates a new patient handler.
func NewPatientHandler(patientService *services.PatientService) *PatientHandler {
	return &PatientHandler{patientService: patientService}
}

// CreatePatientRequest is the registration payload.
type CreatePatientRequest struct {
	MRN      string `json:"mrn" binding:"required"`
	FullName string `json:"full_name" binding:"required"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

// CreatePatient godoc
// @Summary Register a patient
// @Description Registers a patient in the billing registry
// @Tags patients
// @Accept json
// @Produce json
// @Param request body CreatePatientRequest true "Patient details"
// @Success 201 {object} PatientResponse
// @Failure 400 {object} ErrorResponse
// @Router /patients [post]
func (h *PatientHandler) CreatePatient(c *gin.Context) {
	var req CreatePatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendBadRequest(c, "", "invalid request body: "+err.Error())
		return
	}

	patient, err := h.patientService.CreatePatient(c.Request.Context(), services.CreatePatientParams{
		MRN:      req.MRN,
		FullName: req.FullName,
		Email:    req.Email,
		Phone:    req.Phone,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}

	sendSuccess(c, http.StatusCreated, toPatientResponse(*patient))
}

// GetPatient godoc
// @Summary Get patient by ID
// @Tags patients
// @Produce json
// @Param patient_id path string true "Patient ID"
// @Success 200 {object} PatientResponse
// @Failure 404 {object} ErrorResponse
// @Router /patients/{patient_id} [get]
func (h *PatientHandler) GetPatient(c *gin.Context) {
	patientID, err := uuid.Parse(c.Param("patient_id"))
	if err != nil {
		sendBadRequest(c, "patient_id", "invalid patient ID format")
		return
	}

	patient, err := h.patientService.GetPatient(c.Request.Context(), patientID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	sendSuccess(c, http.StatusOK, toPatientResponse(*patient))
}

// ListPatients godoc
// @Summary List patients
// @Tags patients
// @Produce json
// @Param limit query int false "Page size (default 20, max 100)"
// @Param offset query int false "Number of patients to skip"
// @Success 200 {object} map[string]interface{}
// @Router /patients [get]
func (h *PatientHandler) ListPatients(c *gin.Context) {
	limit, offset, err := parsePageParams(c)
	if err != nil {
		sendBadRequest(c, "", err.Error())
		return
	}

	patients, err := h.patientService.ListPatients(c.Request.Context(), limit, offset)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	out := make([]PatientResponse, 0, len(patients))
	for _, p := range patients {
		out = append(out, toPatientResponse(p))
	}
	sendList(c, out)
}

func parsePageParams(c *gin.Context) (limit, offset int32, err error) {
	l, err := strconv.ParseInt(c.DefaultQuery("limit", "0"), 10, 32)
	if err != nil || l < 0 {
		return 0, 0, errInvalidPagination
	}
	o, err := strconv.ParseInt(c.DefaultQuery("offset", "0"), 10, 32)
	if err != nil || o < 0 {
		return 0, 0, errInvalidPagination
	}
	return int32(l), int32(o), nil
}
