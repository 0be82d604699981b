package usecase

import (
	"context"
	"errors"
	"testing"

	"hospital-sedes-backend/internal/branch"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestCollectAllSedesMergesInCanonicalOrder(t *testing.T) {
	db, _ := newGormMock(t)
	resolver := &stubResolver{dbs: map[string]*gorm.DB{"centro": db, "norte": db, "sur": db}}

	got := collectAllSedes(context.Background(), testLogger(), resolver, "things",
		func(db *gorm.DB, b branch.Branch) ([]string, error) {
			return []string{b.Key + "-1", b.Key + "-2"}, nil
		})

	assert.Equal(t, []string{"centro-1", "centro-2", "norte-1", "norte-2", "sur-1", "sur-2"}, got)
}

func TestCollectAllSedesSkipsUnreachableSede(t *testing.T) {
	db, _ := newGormMock(t)
	resolver := &stubResolver{
		dbs:  map[string]*gorm.DB{"centro": db, "sur": db},
		errs: map[string]error{"norte": errors.New("connection refused")},
	}

	got := collectAllSedes(context.Background(), testLogger(), resolver, "things",
		func(db *gorm.DB, b branch.Branch) ([]string, error) {
			return []string{b.Key}, nil
		})

	assert.Equal(t, []string{"centro", "sur"}, got)
}

func TestCollectAllSedesSkipsFailedQuery(t *testing.T) {
	db, _ := newGormMock(t)
	resolver := &stubResolver{dbs: map[string]*gorm.DB{"centro": db, "norte": db, "sur": db}}

	got := collectAllSedes(context.Background(), testLogger(), resolver, "things",
		func(db *gorm.DB, b branch.Branch) ([]string, error) {
			if b.Key == "sur" {
				return nil, errors.New("table missing")
			}
			return []string{b.Key}, nil
		})

	assert.Equal(t, []string{"centro", "norte"}, got)
}

func TestCollectAllSedesAllDownReturnsEmpty(t *testing.T) {
	resolver := &stubResolver{errs: map[string]error{
		"centro": errors.New("down"),
		"norte":  errors.New("down"),
		"sur":    errors.New("down"),
	}}

	got := collectAllSedes(context.Background(), testLogger(), resolver, "things",
		func(db *gorm.DB, b branch.Branch) ([]string, error) {
			return []string{b.Key}, nil
		})

	assert.NotNil(t, got)
	assert.Empty(t, got)
}
