package usecase

import (
	"context"
	"sync"

	"hospital-sedes-backend/internal/branch"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// collectAllSedes runs one fetch per registered sede concurrently and
// concatenates the results in canonical registry order. A sede that cannot
// be resolved or whose query fails contributes an empty set; the failure is
// logged with sede context and never aborts the other sedes or the request.
func collectAllSedes[T any](
	ctx context.Context,
	log *logrus.Logger,
	resolver DBResolver,
	entityName string,
	fetch func(db *gorm.DB, b branch.Branch) ([]T, error),
) []T {
	sedes := branch.All()
	perSede := make([][]T, len(sedes))

	var wg sync.WaitGroup
	for i, b := range sedes {
		wg.Add(1)
		go func(i int, b branch.Branch) {
			defer wg.Done()
			db, err := resolver.Resolve(b)
			if err != nil {
				log.Warnf("Fan-out %s: sede %s unavailable: %+v", entityName, b.Key, err)
				return
			}
			rows, err := fetch(db.WithContext(ctx), b)
			if err != nil {
				log.Warnf("Fan-out %s: sede %s query failed: %+v", entityName, b.Key, err)
				return
			}
			perSede[i] = rows
		}(i, b)
	}
	wg.Wait()

	merged := make([]T, 0)
	for _, rows := range perSede {
		merged = append(merged, rows...)
	}
	return merged
}
