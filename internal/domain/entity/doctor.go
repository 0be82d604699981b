package entity

type Doctor struct {
	IDDoctor       int  `json:"id_doctor" gorm:"column:id_doctor"`
	Nombre         string `json:"nombre" gorm:"column:nombre"`
	Apellido       string `json:"apellido" gorm:"column:apellido"`
	IDEspecialidad *int `json:"id_especialidad" gorm:"column:id_especialidad"`
	CentroMedico   int  `json:"centro_medico" gorm:"column:centro_medico"`

	Sede string `json:"sede,omitempty" gorm:"-"`
}
