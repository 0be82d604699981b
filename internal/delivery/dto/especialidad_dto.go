package dto

type CreateEspecialidadRequest struct {
	IDEspecialidad int    `json:"id_especialidad" validate:"omitempty,gte=0"`
	Nombre         string `json:"nombre" validate:"required,max=100"`
}

type UpdateEspecialidadRequest struct {
	Nombre string `json:"nombre" validate:"required,max=100"`
}
