package repository

import (
	"hospital-sedes-backend/internal/branch"
	"hospital-sedes-backend/internal/catalog"
	domainRepo "hospital-sedes-backend/internal/domain/repository"

	"gorm.io/gorm"
)

// Identifier floors guard freshly provisioned scopes against colliding with
// seed/reserved ids. max+1 starts above them on first-ever inserts.
const (
	partitionedIDFloor = 1000
	sharedIDFloor      = 100
)

// listWithFallback is the schema fallback resolver for list reads: when the
// primary catalog statement failed, each candidate is tried in escalation
// order and the first one that executes wins. Exhaustion surfaces a
// NoSuitableSourceError carrying the primary failure.
func listWithFallback[T any](db *gorm.DB, b branch.Branch, base string, primaryErr error) ([]T, error) {
	for _, c := range catalog.FallbackCandidates(b, base) {
		var args []interface{}
		if c.Filtered {
			args = append(args, b.Discriminant)
		}
		var rows []T
		if err := db.Raw(c.Query, args...).Scan(&rows).Error; err == nil {
			return rows, nil
		}
	}
	return nil, &domainRepo.NoSuitableSourceError{Entity: base, Sede: b.Key, Cause: primaryErr}
}

// nextID computes max+1 over the target scope. Callers must run it inside
// the same transaction as the insert that consumes the id.
func nextID(db *gorm.DB, query string, floor int) (int, error) {
	var maxID int
	if err := db.Raw(query, floor).Scan(&maxID).Error; err != nil {
		return 0, err
	}
	return maxID + 1, nil
}
