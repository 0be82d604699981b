package catalog

import (
	"strings"
	"testing"

	"hospital-sedes-backend/internal/branch"

	"github.com/stretchr/testify/assert"
)

func TestTableSuffix(t *testing.T) {
	assert.Equal(t, "doctor_CENTRO", Table(BaseDoctor, branch.Centro))
	assert.Equal(t, "doctor_NORTE", Table(BaseDoctor, branch.Norte))
	assert.Equal(t, "historialmedico_SUR", Table(BaseHistorial, branch.Sur))
}

func TestPartitionedStatementsUseSuffixedTables(t *testing.T) {
	for _, b := range branch.All() {
		s := For(b)
		assert.Contains(t, s.SelectDoctores, "doctor_"+b.Suffix)
		assert.Contains(t, s.SelectPacientes, "paciente_detalle_"+b.Suffix)
		assert.Contains(t, s.InsertCita, "cita_"+b.Suffix)
		assert.Contains(t, s.DeleteHistorial, "historialmedico_"+b.Suffix)

		// No other sede's suffix may leak into this sede's statements.
		for _, other := range branch.All() {
			if other.Key == b.Key {
				continue
			}
			assert.NotContains(t, s.SelectDoctores, "_"+other.Suffix)
		}
	}
}

func TestPartitionedStatementsFilterByDiscriminant(t *testing.T) {
	s := For(branch.Norte)
	for name, q := range map[string]string{
		"SelectDoctores":  s.SelectDoctores,
		"SelectCitas":     s.SelectCitas,
		"UpdateDoctor":    s.UpdateDoctor,
		"DeleteCita":      s.DeleteCita,
		"SelectPacientes": s.SelectPacientes,
	} {
		assert.Contains(t, q, "centro_medico = ?", name)
	}
}

func TestDiscriminantNeverInlined(t *testing.T) {
	for _, b := range branch.All() {
		s := For(b)
		for _, q := range []string{s.SelectDoctores, s.InsertDoctor, s.UpdateCita, s.DeletePacienteDetalle} {
			assert.NotContains(t, q, "centro_medico = 0")
			assert.NotContains(t, q, "centro_medico = 1")
			assert.NotContains(t, q, "centro_medico = 2")
		}
	}
}

func TestSharedStatementsIdenticalAcrossSedes(t *testing.T) {
	centro := For(branch.Centro)
	for _, b := range []branch.Branch{branch.Norte, branch.Sur} {
		s := For(b)
		assert.Equal(t, centro.SelectEspecialidades, s.SelectEspecialidades)
		assert.Equal(t, centro.InsertEspecialidad, s.InsertEspecialidad)
		assert.Equal(t, centro.SelectCentros, s.SelectCentros)
		assert.Equal(t, centro.UpdateCentro, s.UpdateCentro)
	}
}

func TestInsertPacienteSplitsInfoAndDetalle(t *testing.T) {
	s := For(branch.Sur)
	assert.Contains(t, s.InsertPacienteInfo, TablePacienteInfo)
	assert.NotContains(t, s.InsertPacienteInfo, "_SUR")
	assert.Contains(t, s.InsertPacienteDetalle, "paciente_detalle_SUR")
}

func TestFallbackCandidateOrder(t *testing.T) {
	cands := FallbackCandidates(branch.Norte, BaseDoctor)
	assert.Len(t, cands, 2)

	// Suffixed and unfiltered first: the table name already scopes the sede.
	assert.Equal(t, "doctor_NORTE", cands[0].Table)
	assert.False(t, cands[0].Filtered)
	assert.NotContains(t, cands[0].Query, "centro_medico = ?")

	// Generic and filtered second.
	assert.Equal(t, "doctor", cands[1].Table)
	assert.True(t, cands[1].Filtered)
	assert.Contains(t, cands[1].Query, "centro_medico = ?")
}

func TestFallbackCandidatesPaciente(t *testing.T) {
	cands := FallbackCandidates(branch.Centro, BasePacienteDetalle)
	assert.Len(t, cands, 2)

	assert.Equal(t, "paciente_detalle_CENTRO", cands[0].Table)
	assert.False(t, cands[0].Filtered)
	assert.Contains(t, cands[0].Query, "JOIN "+TablePacienteInfo)

	assert.Equal(t, TablePaciente, cands[1].Table)
	assert.True(t, cands[1].Filtered)
	assert.False(t, strings.Contains(cands[1].Query, "JOIN"))
}

func TestInspectCandidates(t *testing.T) {
	assert.Equal(t, []string{"consultorio_SUR", "consultorio"}, InspectCandidates(branch.Sur, BaseConsultorio))
}
