package entity

type Consultorio struct {
	IDConsultorio int    `json:"id_consultorio" gorm:"column:id_consultorio"`
	Numero        string `json:"numero" gorm:"column:numero"`
	Ubicacion     string `json:"ubicacion" gorm:"column:ubicacion"`
	CentroMedico  int    `json:"centro_medico" gorm:"column:centro_medico"`

	Sede string `json:"sede,omitempty" gorm:"-"`
}
