package entity

import "time"

type Historial struct {
	IDHistorial   int       `json:"id_historial" gorm:"column:id_historial"`
	IDCita        int       `json:"id_cita" gorm:"column:id_cita"`
	Observaciones string    `json:"observaciones" gorm:"column:observaciones"`
	Diagnostico   string    `json:"diagnostico" gorm:"column:diagnostico"`
	Tratamiento   string    `json:"tratamiento" gorm:"column:tratamiento"`
	FechaRegistro time.Time `json:"fecha_registro" gorm:"column:fecha_registro"`
	CentroMedico  int       `json:"centro_medico" gorm:"column:centro_medico"`

	Sede string `json:"sede,omitempty" gorm:"-"`
}
