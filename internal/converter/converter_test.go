package converter

import (
	"testing"
	"time"

	"hospital-sedes-backend/internal/delivery/dto"

	"github.com/stretchr/testify/assert"
)

func TestParseFecha(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{name: "iso date", input: "1990-05-12", want: time.Date(1990, 5, 12, 0, 0, 0, 0, time.UTC)},
		{name: "rfc3339", input: "2024-03-01T10:30:00Z", want: time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC)},
		{name: "space separated", input: "2024-03-01 10:30:00", want: time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC)},
		{name: "t separated no zone", input: "2024-03-01T10:30:00", want: time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC)},
		{name: "garbage", input: "12/05/1990", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseFecha(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidFecha)
				return
			}
			assert.NoError(t, err)
			assert.True(t, got.Equal(tt.want), "got %v want %v", got, tt.want)
		})
	}
}

func TestCreatePacienteToEntity(t *testing.T) {
	p, err := CreatePacienteToEntity(&dto.CreatePacienteRequest{
		Cedula:          "V-1234567",
		Nombre:          "Ana",
		Apellido:        "Rojas",
		FechaNacimiento: "1988-11-02",
		Genero:          "F",
	})
	assert.NoError(t, err)
	assert.Equal(t, "Ana", p.Nombre)
	assert.Equal(t, 1988, p.FechaNacimiento.Year())
	// The discriminant is stamped by the write coordinator, never here.
	assert.Equal(t, 0, p.CentroMedico)
}

func TestCreatePacienteToEntityBadDate(t *testing.T) {
	_, err := CreatePacienteToEntity(&dto.CreatePacienteRequest{
		Cedula:          "V-1234567",
		Nombre:          "Ana",
		Apellido:        "Rojas",
		FechaNacimiento: "not-a-date",
	})
	assert.ErrorIs(t, err, ErrInvalidFecha)
}

func TestCreateHistorialDefaultsFechaRegistro(t *testing.T) {
	before := time.Now().UTC()
	h, err := CreateHistorialToEntity(&dto.CreateHistorialRequest{
		IDCita:        7,
		Observaciones: "obs",
		Diagnostico:   "dx",
		Tratamiento:   "tx",
	})
	assert.NoError(t, err)
	assert.False(t, h.FechaRegistro.Before(before))
}

func TestCreateHistorialKeepsExplicitFecha(t *testing.T) {
	h, err := CreateHistorialToEntity(&dto.CreateHistorialRequest{
		IDCita:        7,
		Observaciones: "obs",
		Diagnostico:   "dx",
		Tratamiento:   "tx",
		FechaRegistro: "2023-06-15",
	})
	assert.NoError(t, err)
	assert.Equal(t, 2023, h.FechaRegistro.Year())
}
