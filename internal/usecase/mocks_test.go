package usecase

import (
	"errors"
	"testing"

	"hospital-sedes-backend/internal/branch"
	"hospital-sedes-backend/internal/domain/entity"
	"hospital-sedes-backend/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

// newGormMock returns a gorm handle whose Begin/Commit/Rollback run against
// sqlmock; repository calls are mocked separately so only the transaction
// boundary reaches the driver.
func newGormMock(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

// stubResolver hands out per-sede gorm handles; sedes listed in errs are
// unreachable.
type stubResolver struct {
	dbs  map[string]*gorm.DB
	errs map[string]error
}

func (s *stubResolver) Resolve(b branch.Branch) (*gorm.DB, error) {
	if err, ok := s.errs[b.Key]; ok {
		return nil, err
	}
	db, ok := s.dbs[b.Key]
	if !ok {
		return nil, errors.New("no stub for sede " + b.Key)
	}
	return db, nil
}

var _ repository.PacienteRepository = (*mockPacienteRepository)(nil)

type mockPacienteRepository struct {
	FindAllFunc       func(db *gorm.DB, b branch.Branch) ([]entity.Paciente, error)
	FindByIDFunc      func(db *gorm.DB, b branch.Branch, id int) (*entity.Paciente, error)
	NextIDFunc        func(db *gorm.DB, b branch.Branch) (int, error)
	InsertInfoFunc    func(db *gorm.DB, b branch.Branch, p *entity.Paciente) error
	InsertDetalleFunc func(db *gorm.DB, b branch.Branch, p *entity.Paciente) error
	UpdateFunc        func(db *gorm.DB, b branch.Branch, id int, p *entity.Paciente) (int64, error)
	DeleteFunc        func(db *gorm.DB, b branch.Branch, id int) (int64, error)
}

func (m *mockPacienteRepository) FindAll(db *gorm.DB, b branch.Branch) ([]entity.Paciente, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(db, b)
	}
	return nil, nil
}

func (m *mockPacienteRepository) FindByID(db *gorm.DB, b branch.Branch, id int) (*entity.Paciente, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(db, b, id)
	}
	return nil, nil
}

func (m *mockPacienteRepository) NextID(db *gorm.DB, b branch.Branch) (int, error) {
	if m.NextIDFunc != nil {
		return m.NextIDFunc(db, b)
	}
	return 0, errors.New("NextIDFunc not set")
}

func (m *mockPacienteRepository) InsertInfo(db *gorm.DB, b branch.Branch, p *entity.Paciente) error {
	if m.InsertInfoFunc != nil {
		return m.InsertInfoFunc(db, b, p)
	}
	return nil
}

func (m *mockPacienteRepository) InsertDetalle(db *gorm.DB, b branch.Branch, p *entity.Paciente) error {
	if m.InsertDetalleFunc != nil {
		return m.InsertDetalleFunc(db, b, p)
	}
	return nil
}

func (m *mockPacienteRepository) Update(db *gorm.DB, b branch.Branch, id int, p *entity.Paciente) (int64, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(db, b, id, p)
	}
	return 0, nil
}

func (m *mockPacienteRepository) Delete(db *gorm.DB, b branch.Branch, id int) (int64, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(db, b, id)
	}
	return 0, nil
}
