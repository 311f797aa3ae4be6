package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"medibill-api/internal/db"
	"medibill-api/internal/logger"
)

// PatientService manages the patient registry invoices bill against.
type PatientService struct {
	store  db.Store
	logger *zap.Logger
}

// NewPatientService creates a new patient service.
func NewPatientService(store db.Store) *PatientService {
	return &PatientService{
		store:  store,
		logger: logger.Log,
	}
}

// CreatePatientParams contains the registration fields for a patient.
type CreatePatientParams struct {
	MRN      string
	FullName string
	Email    string
	Phone    string
}

// CreatePatient registers a patient. The MRN is the hospital's medical
// record number and must be unique.
func (s *PatientService) CreatePatient(ctx context.Context, params CreatePatientParams) (*db.Patient, error) {
	if params.MRN == "" {
		return nil, &ValidationError{Field: "mrn", Message: "medical record number is required"}
	}
	if params.FullName == "" {
		return nil, &ValidationError{Field: "full_name", Message: "full name is required"}
	}

	patient, err := s.store.CreatePatient(ctx, db.CreatePatientParams{
		Mrn:      params.MRN,
		FullName: params.FullName,
		Email:    textOrNull(params.Email),
		Phone:    textOrNull(params.Phone),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create patient: %w", err)
	}

	s.logger.Info("Patient registered",
		zap.String("patient_id", patient.ID.String()),
		zap.String("mrn", patient.Mrn))

	return &patient, nil
}

// GetPatient retrieves a patient by id.
func (s *PatientService) GetPatient(ctx context.Context, id uuid.UUID) (*db.Patient, error) {
	patient, err := s.store.GetPatient(ctx, id)
	if err != nil {
		return nil, asNotFound(err, "patient", id.String())
	}
	return &patient, nil
}

// ListPatients returns a page of patients, newest first.
func (s *PatientService) ListPatients(ctx context.Context, limit, offset int32) ([]db.Patient, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}

	patients, err := s.store.ListPatients(ctx, db.ListPatientsParams{Limit: limit, Offset: offset})
	if err != nil {
		return nil, fmt.Errorf("failed to list patients: %w", err)
	}
	return patients, nil
}
