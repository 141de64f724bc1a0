package handler

import (
	"context"
	"time"

	"simlab/internal/delivery/dto"
	"simlab/internal/usecase"
	"simlab/pkg/pagination"
)

var _ usecase.PatientUsecase = (*mockPatientUsecase)(nil)

type mockPatientUsecase struct {
	CreateFunc  func(ctx context.Context, req *dto.PatientCreateRequest) (*dto.PatientDetail, error)
	ListFunc    func(ctx context.Context, name, civilID string, birthDate *time.Time, p pagination.Pageable) (*dto.Page[dto.PatientSummary], error)
	GetByIDFunc func(ctx context.Context, id uint) (*dto.PatientDetail, error)
	UpdateFunc  func(ctx context.Context, id uint, req *dto.PatientUpdateRequest) (*dto.PatientDetail, error)
	DeleteFunc  func(ctx context.Context, id uint) (bool, error)
}

func (m *mockPatientUsecase) Create(ctx context.Context, req *dto.PatientCreateRequest) (*dto.PatientDetail, error) {
	return m.CreateFunc(ctx, req)
}

func (m *mockPatientUsecase) List(ctx context.Context, name, civilID string, birthDate *time.Time, p pagination.Pageable) (*dto.Page[dto.PatientSummary], error) {
	return m.ListFunc(ctx, name, civilID, birthDate, p)
}

func (m *mockPatientUsecase) GetByID(ctx context.Context, id uint) (*dto.PatientDetail, error) {
	return m.GetByIDFunc(ctx, id)
}

func (m *mockPatientUsecase) Update(ctx context.Context, id uint, req *dto.PatientUpdateRequest) (*dto.PatientDetail, error) {
	return m.UpdateFunc(ctx, id, req)
}

func (m *mockPatientUsecase) Delete(ctx context.Context, id uint) (bool, error) {
	return m.DeleteFunc(ctx, id)
}

var _ usecase.ExamUsecase = (*mockExamUsecase)(nil)

type mockExamUsecase struct {
	CreateFunc  func(ctx context.Context, req *dto.ExamCreateRequest) (*dto.ExamDetail, error)
	ListFunc    func(ctx context.Context, name, description string, p pagination.Pageable) (*dto.Page[dto.ExamSummary], error)
	GetByIDFunc func(ctx context.Context, id uint) (*dto.ExamDetail, error)
	UpdateFunc  func(ctx context.Context, id uint, req *dto.ExamUpdateRequest) (*dto.ExamDetail, error)
	DeleteFunc  func(ctx context.Context, id uint) (bool, error)
}

func (m *mockExamUsecase) Create(ctx context.Context, req *dto.ExamCreateRequest) (*dto.ExamDetail, error) {
	return m.CreateFunc(ctx, req)
}

func (m *mockExamUsecase) List(ctx context.Context, name, description string, p pagination.Pageable) (*dto.Page[dto.ExamSummary], error) {
	return m.ListFunc(ctx, name, description, p)
}

func (m *mockExamUsecase) GetByID(ctx context.Context, id uint) (*dto.ExamDetail, error) {
	return m.GetByIDFunc(ctx, id)
}

func (m *mockExamUsecase) Update(ctx context.Context, id uint, req *dto.ExamUpdateRequest) (*dto.ExamDetail, error) {
	return m.UpdateFunc(ctx, id, req)
}

func (m *mockExamUsecase) Delete(ctx context.Context, id uint) (bool, error) {
	return m.DeleteFunc(ctx, id)
}
