// Package catalog generates the per-sede SQL statement set. Partitioned
// entities live in tables named <base>_<SUFFIX>; shared entities live in a
// single unsuffixed table visible from every sede. All statements are
// parameterized; the branch discriminant is always a bind parameter, never a
// literal baked into the text.
package catalog

import (
	"fmt"

	"hospital-sedes-backend/internal/branch"
)

// Physical table bases. Partitioned bases get the sede suffix appended;
// the rest are shared across sedes.
const (
	BasePacienteDetalle = "paciente_detalle"
	BaseDoctor          = "doctor"
	BaseConsultorio     = "consultorio"
	BaseCita            = "cita"
	BaseHistorial       = "historialmedico"

	TablePacienteInfo = "paciente_info"
	TableEspecialidad = "especialidad"
	TableCentros      = "centros_medicos"

	// TablePaciente is the branch-spanning merged table some deployments
	// carry; the fallback resolver reads it when the suffixed detail table
	// is absent.
	TablePaciente = "paciente"
)

// PartitionedBases lists every suffixed base, in the order the status probe
// reports them.
var PartitionedBases = []string{
	BasePacienteDetalle, BaseDoctor, BaseConsultorio, BaseCita, BaseHistorial,
}

const (
	doctorCols      = "id_doctor, nombre, apellido, id_especialidad, centro_medico"
	consultorioCols = "id_consultorio, numero, ubicacion, centro_medico"
	citaCols        = "id_cita, id_consultorio, id_paciente, fecha, motivo, centro_medico"
	historialCols   = "id_historial, id_cita, observaciones, diagnostico, tratamiento, fecha_registro, centro_medico"
	pacienteCols    = "id_paciente, cedula, nombre, apellido, fecha_nacimiento, genero, centro_medico"
)

// Table returns the physical name of a partitioned base on one sede.
func Table(base string, b branch.Branch) string {
	return base + "_" + b.Suffix
}

// Statements is the full statement set for one sede. Placeholders are
// positional; argument order is documented per field group.
type Statements struct {
	// Paciente: logical record is the join of the shared identity table
	// (paciente_info) and the sede's detail table.
	SelectPacientes       string // args: discriminant
	SelectPacienteByID    string // args: id, discriminant
	InsertPacienteInfo    string // args: id, cedula, discriminant
	InsertPacienteDetalle string // args: id, nombre, apellido, fecha_nacimiento, genero, discriminant
	UpdatePaciente        string // args: nombre, apellido, fecha_nacimiento, genero, id, discriminant
	DeletePacienteDetalle string // args: id, discriminant
	DeletePacienteInfo    string // args: id, discriminant
	MaxPacienteID         string // args: floor

	SelectDoctores   string // args: discriminant
	SelectDoctorByID string // args: id, discriminant
	InsertDoctor     string // args: id, nombre, apellido, id_especialidad, discriminant
	UpdateDoctor     string // args: nombre, apellido, id_especialidad, id, discriminant
	DeleteDoctor     string // args: id, discriminant
	MaxDoctorID      string // args: floor

	SelectConsultorios   string // args: discriminant
	SelectConsultorioByID string // args: id, discriminant
	InsertConsultorio    string // args: id, numero, ubicacion, discriminant
	UpdateConsultorio    string // args: numero, ubicacion, id, discriminant
	DeleteConsultorio    string // args: id, discriminant
	MaxConsultorioID     string // args: floor

	SelectCitas    string // args: discriminant
	SelectCitaByID string // args: id, discriminant
	InsertCita     string // args: id, id_consultorio, id_paciente, fecha, motivo, discriminant
	UpdateCita     string // args: id_consultorio, id_paciente, fecha, motivo, id, discriminant
	DeleteCita     string // args: id, discriminant
	MaxCitaID      string // args: floor

	SelectHistoriales   string // args: discriminant
	SelectHistorialByID string // args: id, discriminant
	InsertHistorial     string // args: id, id_cita, observaciones, diagnostico, tratamiento, fecha_registro, discriminant
	UpdateHistorial     string // args: observaciones, diagnostico, tratamiento, id, discriminant
	DeleteHistorial     string // args: id, discriminant
	MaxHistorialID      string // args: floor

	// Shared tables: identical text on every sede, no discriminant.
	SelectEspecialidades string
	SelectEspecialidadByID string // args: id
	InsertEspecialidad   string // args: id, nombre
	UpdateEspecialidad   string // args: nombre, id
	DeleteEspecialidad   string // args: id
	MaxEspecialidadID    string // args: floor

	SelectCentros   string
	SelectCentroByID string // args: id
	InsertCentro    string // args: id, nombre, direccion, telefono, email, sede
	UpdateCentro    string // args: nombre, direccion, telefono, email, sede, id
	DeleteCentro    string // args: id
	MaxCentroID     string // args: floor
}

var bySede = func() map[string]Statements {
	m := make(map[string]Statements, 3)
	for _, b := range branch.All() {
		m[b.Key] = build(b)
	}
	return m
}()

// For returns the statement set for one sede.
func For(b branch.Branch) Statements {
	return bySede[b.Key]
}

func build(b branch.Branch) Statements {
	detalle := Table(BasePacienteDetalle, b)
	doctor := Table(BaseDoctor, b)
	consultorio := Table(BaseConsultorio, b)
	cita := Table(BaseCita, b)
	historial := Table(BaseHistorial, b)

	return Statements{
		SelectPacientes: fmt.Sprintf(
			"SELECT pi.id_paciente, pi.cedula, pd.nombre, pd.apellido, pd.fecha_nacimiento, pd.genero, pd.centro_medico"+
				" FROM %s pd JOIN %s pi ON pd.id_paciente = pi.id_paciente WHERE pd.centro_medico = ?",
			detalle, TablePacienteInfo),
		SelectPacienteByID: fmt.Sprintf(
			"SELECT pi.id_paciente, pi.cedula, pd.nombre, pd.apellido, pd.fecha_nacimiento, pd.genero, pd.centro_medico"+
				" FROM %s pd JOIN %s pi ON pd.id_paciente = pi.id_paciente WHERE pd.id_paciente = ? AND pd.centro_medico = ?",
			detalle, TablePacienteInfo),
		InsertPacienteInfo: fmt.Sprintf(
			"INSERT INTO %s (id_paciente, cedula, centro_medico) VALUES (?, ?, ?)", TablePacienteInfo),
		InsertPacienteDetalle: fmt.Sprintf(
			"INSERT INTO %s (id_paciente, nombre, apellido, fecha_nacimiento, genero, centro_medico) VALUES (?, ?, ?, ?, ?, ?)", detalle),
		UpdatePaciente: fmt.Sprintf(
			"UPDATE %s SET nombre = ?, apellido = ?, fecha_nacimiento = ?, genero = ? WHERE id_paciente = ? AND centro_medico = ?", detalle),
		DeletePacienteDetalle: fmt.Sprintf(
			"DELETE FROM %s WHERE id_paciente = ? AND centro_medico = ?", detalle),
		DeletePacienteInfo: fmt.Sprintf(
			"DELETE FROM %s WHERE id_paciente = ? AND centro_medico = ?", TablePacienteInfo),
		MaxPacienteID: fmt.Sprintf(
			"SELECT COALESCE(MAX(id_paciente), ?) FROM %s", TablePacienteInfo),

		SelectDoctores: fmt.Sprintf(
			"SELECT %s FROM %s WHERE centro_medico = ?", doctorCols, doctor),
		SelectDoctorByID: fmt.Sprintf(
			"SELECT %s FROM %s WHERE id_doctor = ? AND centro_medico = ?", doctorCols, doctor),
		InsertDoctor: fmt.Sprintf(
			"INSERT INTO %s (id_doctor, nombre, apellido, id_especialidad, centro_medico) VALUES (?, ?, ?, ?, ?)", doctor),
		UpdateDoctor: fmt.Sprintf(
			"UPDATE %s SET nombre = ?, apellido = ?, id_especialidad = ? WHERE id_doctor = ? AND centro_medico = ?", doctor),
		DeleteDoctor: fmt.Sprintf(
			"DELETE FROM %s WHERE id_doctor = ? AND centro_medico = ?", doctor),
		MaxDoctorID: fmt.Sprintf(
			"SELECT COALESCE(MAX(id_doctor), ?) FROM %s", doctor),

		SelectConsultorios: fmt.Sprintf(
			"SELECT %s FROM %s WHERE centro_medico = ?", consultorioCols, consultorio),
		SelectConsultorioByID: fmt.Sprintf(
			"SELECT %s FROM %s WHERE id_consultorio = ? AND centro_medico = ?", consultorioCols, consultorio),
		InsertConsultorio: fmt.Sprintf(
			"INSERT INTO %s (id_consultorio, numero, ubicacion, centro_medico) VALUES (?, ?, ?, ?)", consultorio),
		UpdateConsultorio: fmt.Sprintf(
			"UPDATE %s SET numero = ?, ubicacion = ? WHERE id_consultorio = ? AND centro_medico = ?", consultorio),
		DeleteConsultorio: fmt.Sprintf(
			"DELETE FROM %s WHERE id_consultorio = ? AND centro_medico = ?", consultorio),
		MaxConsultorioID: fmt.Sprintf(
			"SELECT COALESCE(MAX(id_consultorio), ?) FROM %s", consultorio),

		SelectCitas: fmt.Sprintf(
			"SELECT %s FROM %s WHERE centro_medico = ?", citaCols, cita),
		SelectCitaByID: fmt.Sprintf(
			"SELECT %s FROM %s WHERE id_cita = ? AND centro_medico = ?", citaCols, cita),
		InsertCita: fmt.Sprintf(
			"INSERT INTO %s (id_cita, id_consultorio, id_paciente, fecha, motivo, centro_medico) VALUES (?, ?, ?, ?, ?, ?)", cita),
		UpdateCita: fmt.Sprintf(
			"UPDATE %s SET id_consultorio = ?, id_paciente = ?, fecha = ?, motivo = ? WHERE id_cita = ? AND centro_medico = ?", cita),
		DeleteCita: fmt.Sprintf(
			"DELETE FROM %s WHERE id_cita = ? AND centro_medico = ?", cita),
		MaxCitaID: fmt.Sprintf(
			"SELECT COALESCE(MAX(id_cita), ?) FROM %s", cita),

		SelectHistoriales: fmt.Sprintf(
			"SELECT %s FROM %s WHERE centro_medico = ?", historialCols, historial),
		SelectHistorialByID: fmt.Sprintf(
			"SELECT %s FROM %s WHERE id_historial = ? AND centro_medico = ?", historialCols, historial),
		InsertHistorial: fmt.Sprintf(
			"INSERT INTO %s (id_historial, id_cita, observaciones, diagnostico, tratamiento, fecha_registro, centro_medico) VALUES (?, ?, ?, ?, ?, ?, ?)", historial),
		UpdateHistorial: fmt.Sprintf(
			"UPDATE %s SET observaciones = ?, diagnostico = ?, tratamiento = ? WHERE id_historial = ? AND centro_medico = ?", historial),
		DeleteHistorial: fmt.Sprintf(
			"DELETE FROM %s WHERE id_historial = ? AND centro_medico = ?", historial),
		MaxHistorialID: fmt.Sprintf(
			"SELECT COALESCE(MAX(id_historial), ?) FROM %s", historial),

		SelectEspecialidades: fmt.Sprintf(
			"SELECT id_especialidad, nombre FROM %s ORDER BY id_especialidad", TableEspecialidad),
		SelectEspecialidadByID: fmt.Sprintf(
			"SELECT id_especialidad, nombre FROM %s WHERE id_especialidad = ?", TableEspecialidad),
		InsertEspecialidad: fmt.Sprintf(
			"INSERT INTO %s (id_especialidad, nombre) VALUES (?, ?)", TableEspecialidad),
		UpdateEspecialidad: fmt.Sprintf(
			"UPDATE %s SET nombre = ? WHERE id_especialidad = ?", TableEspecialidad),
		DeleteEspecialidad: fmt.Sprintf(
			"DELETE FROM %s WHERE id_especialidad = ?", TableEspecialidad),
		MaxEspecialidadID: fmt.Sprintf(
			"SELECT COALESCE(MAX(id_especialidad), ?) FROM %s", TableEspecialidad),

		SelectCentros: fmt.Sprintf(
			"SELECT id_centro_medico, nombre, direccion, telefono, email, sede FROM %s ORDER BY id_centro_medico", TableCentros),
		SelectCentroByID: fmt.Sprintf(
			"SELECT id_centro_medico, nombre, direccion, telefono, email, sede FROM %s WHERE id_centro_medico = ?", TableCentros),
		InsertCentro: fmt.Sprintf(
			"INSERT INTO %s (id_centro_medico, nombre, direccion, telefono, email, sede) VALUES (?, ?, ?, ?, ?, ?)", TableCentros),
		UpdateCentro: fmt.Sprintf(
			"UPDATE %s SET nombre = ?, direccion = ?, telefono = ?, email = ?, sede = ? WHERE id_centro_medico = ?", TableCentros),
		DeleteCentro: fmt.Sprintf(
			"DELETE FROM %s WHERE id_centro_medico = ?", TableCentros),
		MaxCentroID: fmt.Sprintf(
			"SELECT COALESCE(MAX(id_centro_medico), ?) FROM %s", TableCentros),
	}
}
