package entity

// Especialidad lives in a shared, non-partitioned table replicated to every
// sede's datastore; its id space is global.
type Especialidad struct {
	IDEspecialidad int    `json:"id_especialidad" gorm:"column:id_especialidad"`
	Nombre         string `json:"nombre" gorm:"column:nombre"`
}
