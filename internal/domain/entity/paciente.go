package entity

import "time"

// Paciente is the logical patient record: the join of the shared identity
// row (paciente_info) and the sede's detail row (paciente_detalle_<SUFIJO>).
type Paciente struct {
	IDPaciente      int       `json:"id_paciente" gorm:"column:id_paciente"`
	Cedula          string    `json:"cedula" gorm:"column:cedula"`
	Nombre          string    `json:"nombre" gorm:"column:nombre"`
	Apellido        string    `json:"apellido" gorm:"column:apellido"`
	FechaNacimiento time.Time `json:"fecha_nacimiento" gorm:"column:fecha_nacimiento"`
	Genero          string    `json:"genero" gorm:"column:genero"`
	CentroMedico    int       `json:"centro_medico" gorm:"column:centro_medico"`

	// Sede tags the origin branch on fan-out reads. Not stored.
	Sede string `json:"sede,omitempty" gorm:"-"`
}
