package usecase

import (
	"context"
	"fmt"
	"sync"

	"hospital-sedes-backend/internal/branch"
	"hospital-sedes-backend/internal/catalog"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// TableCheck reports whether a base name exists as the generic table and as
// the sede-suffixed table on one datastore.
type TableCheck struct {
	Base     bool `json:"base"`
	Suffixed bool `json:"suffixed"`
}

// SedeStatus is the probe result for one sede. Error is set only when the
// connection itself failed; per-table probe failures just read as absent.
type SedeStatus struct {
	OK                bool                  `json:"ok"`
	Checks            map[string]TableCheck `json:"checks,omitempty"`
	PacienteInfoCount *int                  `json:"paciente_info_count"`
	Error             string                `json:"error,omitempty"`
}

// InspectEntry describes one candidate physical table on a sede.
type InspectEntry struct {
	Name    string                   `json:"name"`
	Exists  bool                     `json:"exists"`
	Columns []ColumnInfo             `json:"columns,omitempty"`
	Sample  []map[string]interface{} `json:"sample,omitempty"`
}

type ColumnInfo struct {
	ColumnName string `json:"column_name" gorm:"column:column_name"`
	DataType   string `json:"data_type" gorm:"column:data_type"`
}

// InspectReport is the response of the table inspection endpoint.
type InspectReport struct {
	Sede      string         `json:"sede"`
	TableBase string         `json:"tableBase"`
	Results   []InspectEntry `json:"results"`
}

type StatusUsecase interface {
	ProbeAll(ctx context.Context) map[string]SedeStatus
	Inspect(ctx context.Context, b branch.Branch, tableBase string) (*InspectReport, error)
}

type statusUsecase struct {
	resolver DBResolver
	log      *logrus.Logger
}

func NewStatusUsecase(resolver DBResolver, log *logrus.Logger) StatusUsecase {
	return &statusUsecase{resolver: resolver, log: log}
}

// Identifier comparisons go through lower() because unquoted Postgres
// identifiers fold to lowercase while the suffixed names are written
// uppercase in DDL.
const (
	probeTableExists = "SELECT COUNT(*) AS c FROM information_schema.tables WHERE lower(table_name) = lower(?)"
	probeColumns     = "SELECT column_name, data_type FROM information_schema.columns WHERE lower(table_name) = lower(?) ORDER BY ordinal_position"
)

var probeBases = append([]string{catalog.TablePacienteInfo}, catalog.PartitionedBases...)

// ProbeAll checks every sede concurrently and never fails as a whole; an
// unreachable sede reports ok=false with the connection error text.
func (u *statusUsecase) ProbeAll(ctx context.Context) map[string]SedeStatus {
	sedes := branch.All()
	results := make([]SedeStatus, len(sedes))

	var wg sync.WaitGroup
	for i, b := range sedes {
		wg.Add(1)
		go func(i int, b branch.Branch) {
			defer wg.Done()
			results[i] = u.probeSede(ctx, b)
		}(i, b)
	}
	wg.Wait()

	out := make(map[string]SedeStatus, len(sedes))
	for i, b := range sedes {
		out[b.Key] = results[i]
	}
	return out
}

func (u *statusUsecase) probeSede(ctx context.Context, b branch.Branch) SedeStatus {
	db, err := u.resolver.Resolve(b)
	if err != nil {
		u.log.Warnf("Status probe: sede %s unreachable: %+v", b.Key, err)
		return SedeStatus{OK: false, Error: err.Error()}
	}
	db = db.WithContext(ctx)

	checks := make(map[string]TableCheck, len(probeBases))
	for _, t := range probeBases {
		checks[t] = TableCheck{
			Base:     u.tableExists(db, t),
			Suffixed: u.tableExists(db, catalog.Table(t, b)),
		}
	}

	var infoCount *int
	if checks[catalog.TablePacienteInfo].Base {
		var c int
		q := fmt.Sprintf("SELECT COUNT(*) AS c FROM %s", catalog.TablePacienteInfo)
		if err := db.Raw(q).Scan(&c).Error; err == nil {
			infoCount = &c
		}
	}

	return SedeStatus{OK: true, Checks: checks, PacienteInfoCount: infoCount}
}

func (u *statusUsecase) tableExists(db *gorm.DB, name string) bool {
	var c int
	if err := db.Raw(probeTableExists, name).Scan(&c).Error; err != nil {
		return false
	}
	return c > 0
}

// Inspect probes the suffixed and generic candidates for one base on one
// sede, returning columns and a small row sample for whichever exist.
func (u *statusUsecase) Inspect(ctx context.Context, b branch.Branch, tableBase string) (*InspectReport, error) {
	db, err := u.resolver.Resolve(b)
	if err != nil {
		return nil, err
	}
	db = db.WithContext(ctx)

	report := &InspectReport{Sede: b.Key, TableBase: tableBase, Results: []InspectEntry{}}
	for _, name := range catalog.InspectCandidates(b, tableBase) {
		entry := InspectEntry{Name: name}

		var c int
		if err := db.Raw(probeTableExists, name).Scan(&c).Error; err != nil {
			u.log.Warnf("Inspect %s: existence probe failed on sede %s: %+v", name, b.Key, err)
			report.Results = append(report.Results, entry)
			continue
		}
		entry.Exists = c > 0
		if !entry.Exists {
			report.Results = append(report.Results, entry)
			continue
		}

		var cols []ColumnInfo
		if err := db.Raw(probeColumns, name).Scan(&cols).Error; err != nil {
			u.log.Warnf("Inspect %s: column probe failed on sede %s: %+v", name, b.Key, err)
		} else {
			entry.Columns = cols
		}

		var sample []map[string]interface{}
		q := fmt.Sprintf("SELECT * FROM %s LIMIT 15", name)
		if err := db.Raw(q).Scan(&sample).Error; err != nil {
			u.log.Warnf("Inspect %s: sample read failed on sede %s: %+v", name, b.Key, err)
		} else {
			entry.Sample = sample
		}

		report.Results = append(report.Results, entry)
	}
	return report, nil
}
