package validator

import (
	"testing"

	"simlab/internal/delivery/dto"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validPatient() dto.PatientCreateRequest {
	return dto.PatientCreateRequest{
		Name:      "Maria Silva",
		BirthDate: "1990-01-15",
		CivilID:   "12345678",
		Phone:     "912345678",
		Email:     "maria@email.com",
	}
}

func TestPatientCreateRequestValid(t *testing.T) {
	v := NewValidator()
	assert.NoError(t, v.Validate(validPatient()))
}

func TestPatientCreateRequestEmailUnconstrained(t *testing.T) {
	v := NewValidator()

	req := validPatient()
	req.Email = "not-an-email"
	assert.NoError(t, v.Validate(req), "email format is not enforced server-side")

	req.Email = ""
	assert.NoError(t, v.Validate(req))
}

func TestPatientCreateRequestFieldReasons(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name   string
		mutate func(*dto.PatientCreateRequest)
		field  string
	}{
		{"missing name", func(r *dto.PatientCreateRequest) { r.Name = "" }, "nome"},
		{"blank name", func(r *dto.PatientCreateRequest) { r.Name = "   " }, "nome"},
		{"missing birth date", func(r *dto.PatientCreateRequest) { r.BirthDate = "" }, "dataDeNascimento"},
		{"malformed birth date", func(r *dto.PatientCreateRequest) { r.BirthDate = "15-01-1990" }, "dataDeNascimento"},
		{"short civil id", func(r *dto.PatientCreateRequest) { r.CivilID = "123" }, "cartaoCidadao"},
		{"non-numeric civil id", func(r *dto.PatientCreateRequest) { r.CivilID = "abcdefgh" }, "cartaoCidadao"},
		{"phone without leading 9", func(r *dto.PatientCreateRequest) { r.Phone = "812345678" }, "telefone"},
		{"short phone", func(r *dto.PatientCreateRequest) { r.Phone = "9123" }, "telefone"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validPatient()
			tt.mutate(&req)

			err := v.Validate(req)
			require.Error(t, err)

			fields := v.FormatValidationErrors(err)
			assert.Contains(t, fields, tt.field)
			assert.NotEmpty(t, fields[tt.field])
		})
	}
}

func TestExamCreateRequestFieldReasons(t *testing.T) {
	v := NewValidator()

	price := decimal.NewFromInt(35)
	valid := dto.ExamCreateRequest{
		Name:        "Hemograma Completo",
		Description: "Análise completa do sangue",
		Price:       &price,
		PatientID:   1,
	}
	require.NoError(t, v.Validate(valid))

	// Zero price is legal; only a missing price fails.
	zero := decimal.Zero
	free := valid
	free.Price = &zero
	assert.NoError(t, v.Validate(free))

	missing := dto.ExamCreateRequest{}
	err := v.Validate(missing)
	require.Error(t, err)

	fields := v.FormatValidationErrors(err)
	assert.Equal(t, "nome is required", fields["nome"])
	assert.Equal(t, "descricao is required", fields["descricao"])
	assert.Equal(t, "preco is required", fields["preco"])
	assert.Equal(t, "pacienteId is required", fields["pacienteId"])
}

func TestFormatValidationErrorsUsesJSONNames(t *testing.T) {
	v := NewValidator()

	err := v.Validate(dto.PatientCreateRequest{})
	require.Error(t, err)

	fields := v.FormatValidationErrors(err)
	for _, field := range []string{"nome", "dataDeNascimento", "cartaoCidadao", "telefone"} {
		assert.Contains(t, fields, field)
	}
	assert.NotContains(t, fields, "Name")
	assert.NotContains(t, fields, "CivilID")
}
