package catalog

import (
	"fmt"

	"hospital-sedes-backend/internal/branch"
)

// Candidate is one alternative statement the fallback resolver may try when
// the primary catalog statement fails. Filtered marks whether the statement
// expects the branch discriminant as its argument; an unfiltered candidate
// reads a suffixed table whose name already scopes it to the sede.
type Candidate struct {
	Table    string
	Query    string
	Filtered bool
}

// FallbackCandidates returns the escalation list for a partitioned entity's
// list read, in the order they must be tried: the suffixed physical table
// without a discriminant filter first, then the generic branch-spanning
// table filtered by discriminant.
func FallbackCandidates(b branch.Branch, base string) []Candidate {
	if base == BasePacienteDetalle {
		suffixed := Table(BasePacienteDetalle, b)
		return []Candidate{
			{
				Table: suffixed,
				Query: fmt.Sprintf(
					"SELECT pi.id_paciente, pi.cedula, pd.nombre, pd.apellido, pd.fecha_nacimiento, pd.genero, pd.centro_medico"+
						" FROM %s pd JOIN %s pi ON pd.id_paciente = pi.id_paciente",
					suffixed, TablePacienteInfo),
			},
			{
				Table:    TablePaciente,
				Query:    fmt.Sprintf("SELECT %s FROM %s WHERE centro_medico = ?", pacienteCols, TablePaciente),
				Filtered: true,
			},
		}
	}

	cols := colsFor(base)
	suffixed := Table(base, b)
	return []Candidate{
		{
			Table: suffixed,
			Query: fmt.Sprintf("SELECT %s FROM %s", cols, suffixed),
		},
		{
			Table:    base,
			Query:    fmt.Sprintf("SELECT %s FROM %s WHERE centro_medico = ?", cols, base),
			Filtered: true,
		},
	}
}

// InspectCandidates returns the table-name probe order for one base on one
// sede: suffixed first, then generic. Used by the inspection endpoint.
func InspectCandidates(b branch.Branch, base string) []string {
	return []string{Table(base, b), base}
}

func colsFor(base string) string {
	switch base {
	case BaseDoctor:
		return doctorCols
	case BaseConsultorio:
		return consultorioCols
	case BaseCita:
		return citaCols
	case BaseHistorial:
		return historialCols
	default:
		return "*"
	}
}
