package dto

// CreatePacienteRequest carries the wire shape of a patient create. The
// centro_medico field is accepted for compatibility with older clients but
// never trusted: the routing sede determines the stored discriminant.
type CreatePacienteRequest struct {
	IDPaciente      int    `json:"id_paciente" validate:"omitempty,gte=0"`
	Cedula          string `json:"cedula" validate:"required,max=50"`
	Nombre          string `json:"nombre" validate:"required,max=100"`
	Apellido        string `json:"apellido" validate:"required,max=100"`
	FechaNacimiento string `json:"fecha_nacimiento" validate:"required"`
	Genero          string `json:"genero" validate:"omitempty,oneof=M F"`
	CentroMedico    *int   `json:"centro_medico"`
}

type UpdatePacienteRequest struct {
	Nombre          string `json:"nombre" validate:"required,max=100"`
	Apellido        string `json:"apellido" validate:"required,max=100"`
	FechaNacimiento string `json:"fecha_nacimiento" validate:"required"`
	Genero          string `json:"genero" validate:"omitempty,oneof=M F"`
	CentroMedico    *int   `json:"centro_medico"`
}
