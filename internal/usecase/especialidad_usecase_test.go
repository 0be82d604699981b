package usecase

import (
	"context"
	"testing"

	"hospital-sedes-backend/internal/branch"
	"hospital-sedes-backend/internal/delivery/dto"
	"hospital-sedes-backend/internal/domain/entity"
	"hospital-sedes-backend/internal/domain/repository"
	"hospital-sedes-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

var _ repository.EspecialidadRepository = (*mockEspecialidadRepository)(nil)

type mockEspecialidadRepository struct {
	FindAllFunc  func(db *gorm.DB) ([]entity.Especialidad, error)
	FindByIDFunc func(db *gorm.DB, id int) (*entity.Especialidad, error)
	NextIDFunc   func(db *gorm.DB) (int, error)
	InsertFunc   func(db *gorm.DB, e *entity.Especialidad) error
	UpdateFunc   func(db *gorm.DB, id int, e *entity.Especialidad) (int64, error)
	DeleteFunc   func(db *gorm.DB, id int) (int64, error)
}

func (m *mockEspecialidadRepository) FindAll(db *gorm.DB) ([]entity.Especialidad, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(db)
	}
	return nil, nil
}

func (m *mockEspecialidadRepository) FindByID(db *gorm.DB, id int) (*entity.Especialidad, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(db, id)
	}
	return nil, nil
}

func (m *mockEspecialidadRepository) NextID(db *gorm.DB) (int, error) {
	if m.NextIDFunc != nil {
		return m.NextIDFunc(db)
	}
	return 101, nil
}

func (m *mockEspecialidadRepository) Insert(db *gorm.DB, e *entity.Especialidad) error {
	if m.InsertFunc != nil {
		return m.InsertFunc(db, e)
	}
	return nil
}

func (m *mockEspecialidadRepository) Update(db *gorm.DB, id int, e *entity.Especialidad) (int64, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(db, id, e)
	}
	return 1, nil
}

func (m *mockEspecialidadRepository) Delete(db *gorm.DB, id int) (int64, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(db, id)
	}
	return 1, nil
}

// With no Redis client the cache is a pass-through and every read hits the
// repository.
func noCache() *service.RefdataCache {
	return service.NewRefdataCache(nil, testLogger())
}

func TestEspecialidadListReadsRepoWithoutCache(t *testing.T) {
	db, _ := newGormMock(t)
	resolver := &stubResolver{dbs: map[string]*gorm.DB{"norte": db}}

	calls := 0
	repo := &mockEspecialidadRepository{
		FindAllFunc: func(db *gorm.DB) ([]entity.Especialidad, error) {
			calls++
			return []entity.Especialidad{{IDEspecialidad: 1, Nombre: "Cardiología"}}, nil
		},
	}
	u := NewEspecialidadUsecase(resolver, testLogger(), noCache(), repo)

	rows, err := u.List(context.Background(), branch.Norte)
	assert.NoError(t, err)
	assert.Len(t, rows, 1)

	_, err = u.List(context.Background(), branch.Norte)
	assert.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestEspecialidadCreateMintsSharedID(t *testing.T) {
	db, mock := newGormMock(t)
	resolver := &stubResolver{dbs: map[string]*gorm.DB{"centro": db}}

	var inserted *entity.Especialidad
	repo := &mockEspecialidadRepository{
		NextIDFunc: func(db *gorm.DB) (int, error) { return 101, nil },
		InsertFunc: func(db *gorm.DB, e *entity.Especialidad) error {
			inserted = e
			return nil
		},
	}
	u := NewEspecialidadUsecase(resolver, testLogger(), noCache(), repo)

	mock.ExpectBegin()
	mock.ExpectCommit()

	e, err := u.Create(context.Background(), branch.Centro, &dto.CreateEspecialidadRequest{Nombre: "Pediatría"})
	assert.NoError(t, err)
	assert.Equal(t, 101, e.IDEspecialidad)
	assert.Equal(t, "Pediatría", inserted.Nombre)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEspecialidadUpdateZeroRowsIsNotFound(t *testing.T) {
	db, _ := newGormMock(t)
	resolver := &stubResolver{dbs: map[string]*gorm.DB{"centro": db}}
	repo := &mockEspecialidadRepository{
		UpdateFunc: func(db *gorm.DB, id int, e *entity.Especialidad) (int64, error) { return 0, nil },
	}
	u := NewEspecialidadUsecase(resolver, testLogger(), noCache(), repo)

	_, err := u.Update(context.Background(), branch.Centro, 7, &dto.UpdateEspecialidadRequest{Nombre: "X"})
	assert.ErrorIs(t, err, ErrEspecialidadNotFound)
}
