package repository

import (
	"testing"

	"hospital-sedes-backend/internal/branch"
	domainRepo "hospital-sedes-backend/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newMockDB builds a gorm handle over sqlmock with regexp query matching so
// expectations key on table-name fragments instead of full statement text.
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

var pacienteColumns = []string{"id_paciente", "cedula", "nombre", "apellido", "fecha_nacimiento", "genero", "centro_medico"}

func TestPacienteFindAllPrimaryStatement(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPacienteRepository()

	mock.ExpectQuery(`paciente_detalle_CENTRO pd JOIN paciente_info`).
		WithArgs(branch.Centro.Discriminant).
		WillReturnRows(sqlmock.NewRows(pacienteColumns).
			AddRow(1, "V-1", "Ana", "Rojas", nil, "F", 1).
			AddRow(2, "V-2", "Luis", "Mora", nil, "M", 1))

	rows, err := repo.FindAll(db, branch.Centro)
	assert.NoError(t, err)
	assert.Len(t, rows, 2)
	assert.Equal(t, "Ana", rows[0].Nombre)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPacienteFindAllFallsBackToGenericTable(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPacienteRepository()

	// Primary join fails, the suffixed unfiltered candidate fails too, the
	// generic merged table filtered by discriminant serves the read.
	mock.ExpectQuery(`paciente_detalle_SUR pd JOIN paciente_info`).
		WithArgs(branch.Sur.Discriminant).
		WillReturnError(assert.AnError)
	mock.ExpectQuery(`paciente_detalle_SUR pd JOIN paciente_info`).
		WillReturnError(assert.AnError)
	mock.ExpectQuery(`FROM paciente WHERE centro_medico`).
		WithArgs(branch.Sur.Discriminant).
		WillReturnRows(sqlmock.NewRows(pacienteColumns).
			AddRow(9, "V-9", "Rosa", "Paz", nil, "F", 2))

	rows, err := repo.FindAll(db, branch.Sur)
	assert.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.Equal(t, 9, rows[0].IDPaciente)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPacienteFindAllExhaustionReportsNoSource(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPacienteRepository()

	mock.ExpectQuery(`paciente_detalle_NORTE`).WithArgs(branch.Norte.Discriminant).WillReturnError(assert.AnError)
	mock.ExpectQuery(`paciente_detalle_NORTE`).WillReturnError(assert.AnError)
	mock.ExpectQuery(`FROM paciente WHERE centro_medico`).WithArgs(branch.Norte.Discriminant).WillReturnError(assert.AnError)

	_, err := repo.FindAll(db, branch.Norte)
	var srcErr *domainRepo.NoSuitableSourceError
	assert.ErrorAs(t, err, &srcErr)
	assert.Equal(t, "norte", srcErr.Sede)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPacienteDeleteOtherSedeLeavesInfoRow(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPacienteRepository()

	// A delete scoped to centro cannot reach a row stamped for another sede:
	// zero rows affected and the identity row untouched.
	mock.ExpectExec(`DELETE FROM paciente_detalle_CENTRO`).
		WithArgs(5, branch.Centro.Discriminant).
		WillReturnResult(sqlmock.NewResult(0, 0))

	deleted, err := repo.Delete(db, branch.Centro, 5)
	assert.NoError(t, err)
	assert.Zero(t, deleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPacienteDeleteRemovesDetalleThenInfo(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPacienteRepository()

	mock.ExpectExec(`DELETE FROM paciente_detalle_CENTRO`).
		WithArgs(5, branch.Centro.Discriminant).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM paciente_info`).
		WithArgs(5, branch.Centro.Discriminant).
		WillReturnResult(sqlmock.NewResult(0, 1))

	deleted, err := repo.Delete(db, branch.Centro, 5)
	assert.NoError(t, err)
	assert.EqualValues(t, 1, deleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPacienteNextIDAppliesFloor(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPacienteRepository()

	// Empty scope: COALESCE yields the floor, next id starts above it.
	mock.ExpectQuery(`COALESCE\(MAX\(id_paciente\)`).
		WithArgs(partitionedIDFloor).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(partitionedIDFloor))

	id, err := repo.NextID(db, branch.Norte)
	assert.NoError(t, err)
	assert.Equal(t, partitionedIDFloor+1, id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPacienteInsertDetalleBindsRoutingDiscriminant(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPacienteRepository()

	p := pacienteFixture()
	p.CentroMedico = 99 // anything the client smuggled in is ignored

	mock.ExpectExec(`INSERT INTO paciente_detalle_NORTE`).
		WithArgs(p.IDPaciente, p.Nombre, p.Apellido, p.FechaNacimiento, p.Genero, branch.Norte.Discriminant).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.InsertDetalle(db, branch.Norte, p))
	assert.NoError(t, mock.ExpectationsWereMet())
}
