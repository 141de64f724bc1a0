package dto

// PatientCreateRequest is the POST /patients body. Field names follow the
// original clinical-records wire format; email has no server-side format
// constraint.
type PatientCreateRequest struct {
	Name      string `json:"nome" validate:"required,notblank"`
	BirthDate string `json:"dataDeNascimento" validate:"required,datetime=2006-01-02"`
	CivilID   string `json:"cartaoCidadao" validate:"required,len=8,numeric"`
	Phone     string `json:"telefone" validate:"required,len=9,numeric,startswith=9"`
	Email     string `json:"email" validate:"omitempty"`
}

// PatientUpdateRequest is the PUT /patients/{id} body. Every mutable field is
// overwritten in place, so the rules match the create request.
type PatientUpdateRequest struct {
	Name      string `json:"nome" validate:"required,notblank"`
	BirthDate string `json:"dataDeNascimento" validate:"required,datetime=2006-01-02"`
	CivilID   string `json:"cartaoCidadao" validate:"required,len=8,numeric"`
	Phone     string `json:"telefone" validate:"required,len=9,numeric,startswith=9"`
	Email     string `json:"email" validate:"omitempty"`
}

// PatientDetail is the detail projection returned by create, update and
// get-by-id. It carries the generated id.
type PatientDetail struct {
	ID        uint   `json:"id"`
	Name      string `json:"nome"`
	BirthDate string `json:"dataDeNascimento"`
	CivilID   string `json:"cartaoCidadao"`
	Phone     string `json:"telefone"`
	Email     string `json:"email,omitempty"`
}

// PatientSummary is the list projection. It omits the patient id.
type PatientSummary struct {
	Name      string `json:"nome"`
	BirthDate string `json:"dataDeNascimento"`
	CivilID   string `json:"cartaoCidadao"`
	Phone     string `json:"telefone"`
	Email     string `json:"email,omitempty"`
}
