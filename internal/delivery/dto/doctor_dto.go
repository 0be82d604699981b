package dto

type CreateDoctorRequest struct {
	IDDoctor       int    `json:"id_doctor" validate:"omitempty,gte=0"`
	Nombre         string `json:"nombre" validate:"required,max=100"`
	Apellido       string `json:"apellido" validate:"required,max=100"`
	IDEspecialidad *int   `json:"id_especialidad"`
	CentroMedico   *int   `json:"centro_medico"`
}

type UpdateDoctorRequest struct {
	Nombre         string `json:"nombre" validate:"required,max=100"`
	Apellido       string `json:"apellido" validate:"required,max=100"`
	IDEspecialidad *int   `json:"id_especialidad"`
	CentroMedico   *int   `json:"centro_medico"`
}
