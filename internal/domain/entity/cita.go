package entity

import "time"

// Cita references its consultorio and paciente within the same sede only;
// there are no cross-sede foreign keys.
type Cita struct {
	IDCita        int       `json:"id_cita" gorm:"column:id_cita"`
	IDConsultorio int       `json:"id_consultorio" gorm:"column:id_consultorio"`
	IDPaciente    int       `json:"id_paciente" gorm:"column:id_paciente"`
	Fecha         time.Time `json:"fecha" gorm:"column:fecha"`
	Motivo        string    `json:"motivo" gorm:"column:motivo"`
	CentroMedico  int       `json:"centro_medico" gorm:"column:centro_medico"`

	Sede string `json:"sede,omitempty" gorm:"-"`
}
