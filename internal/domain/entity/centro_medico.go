package entity

// CentroMedico is shared reference data describing the physical medical
// centers; SedeLabel is a human label, not a routing key.
type CentroMedico struct {
	IDCentroMedico int    `json:"id_centro_medico" gorm:"column:id_centro_medico"`
	Nombre         string `json:"nombre" gorm:"column:nombre"`
	Direccion      string `json:"direccion" gorm:"column:direccion"`
	Telefono       string `json:"telefono" gorm:"column:telefono"`
	Email          string `json:"email" gorm:"column:email"`
	SedeLabel      string `json:"sede" gorm:"column:sede"`
}
