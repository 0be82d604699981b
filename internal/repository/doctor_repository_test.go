package repository

import (
	"testing"
	"time"

	"hospital-sedes-backend/internal/branch"
	"hospital-sedes-backend/internal/domain/entity"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func pacienteFixture() *entity.Paciente {
	return &entity.Paciente{
		IDPaciente:      1001,
		Cedula:          "V-1001",
		Nombre:          "Ana",
		Apellido:        "Rojas",
		FechaNacimiento: time.Date(1988, 11, 2, 0, 0, 0, 0, time.UTC),
		Genero:          "F",
	}
}

func TestDoctorFindAllScansSuffixedTable(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDoctorRepository()

	mock.ExpectQuery(`FROM doctor_SUR WHERE centro_medico`).
		WithArgs(branch.Sur.Discriminant).
		WillReturnRows(sqlmock.NewRows([]string{"id_doctor", "nombre", "apellido", "id_especialidad", "centro_medico"}).
			AddRow(1001, "Pedro", "Lara", 3, 2))

	rows, err := repo.FindAll(db, branch.Sur)
	assert.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.Equal(t, 2, rows[0].CentroMedico)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDoctorFindAllFallsBackToSuffixedUnfiltered(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDoctorRepository()

	// Filtered read fails (legacy schema without the discriminant column);
	// the same suffixed table without the filter still serves the sede.
	mock.ExpectQuery(`FROM doctor_NORTE WHERE centro_medico`).
		WithArgs(branch.Norte.Discriminant).
		WillReturnError(assert.AnError)
	mock.ExpectQuery(`FROM doctor_NORTE$`).
		WillReturnRows(sqlmock.NewRows([]string{"id_doctor", "nombre", "apellido", "id_especialidad", "centro_medico"}).
			AddRow(1002, "Eva", "Mena", nil, 0))

	rows, err := repo.FindAll(db, branch.Norte)
	assert.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.Nil(t, rows[0].IDEspecialidad)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDoctorUpdateScopesToSede(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDoctorRepository()

	esp := 4
	mock.ExpectExec(`UPDATE doctor_CENTRO SET`).
		WithArgs("Pedro", "Lara", esp, 1001, branch.Centro.Discriminant).
		WillReturnResult(sqlmock.NewResult(0, 1))

	rows, err := repo.Update(db, branch.Centro, 1001, &entity.Doctor{Nombre: "Pedro", Apellido: "Lara", IDEspecialidad: &esp})
	assert.NoError(t, err)
	assert.EqualValues(t, 1, rows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDoctorFindByIDMissing(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDoctorRepository()

	mock.ExpectQuery(`FROM doctor_CENTRO WHERE id_doctor`).
		WithArgs(42, branch.Centro.Discriminant).
		WillReturnRows(sqlmock.NewRows([]string{"id_doctor", "nombre", "apellido", "id_especialidad", "centro_medico"}))

	d, err := repo.FindByID(db, branch.Centro, 42)
	assert.NoError(t, err)
	assert.Nil(t, d)
	assert.NoError(t, mock.ExpectationsWereMet())
}
