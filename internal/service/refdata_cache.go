package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	KeyEspecialidades = "refdata:especialidades"
	KeyCentros        = "refdata:centros"

	refdataTTL = 5 * time.Minute
)

// RefdataCache fronts the shared reference tables (especialidad,
// centros_medicos) with Redis. These tables are replicated to every sede,
// so a single global key is correct; the TTL bounds the read-after-write
// window the replication design already implies. A nil client disables
// caching entirely.
type RefdataCache struct {
	client *redis.Client
	log    *logrus.Logger
}

func NewRefdataCache(client *redis.Client, log *logrus.Logger) *RefdataCache {
	return &RefdataCache{client: client, log: log}
}

// GetList loads a cached list into dest. Returns false on miss or any
// cache-side failure; the caller falls through to the database.
func (s *RefdataCache) GetList(ctx context.Context, key string, dest interface{}) bool {
	if s.client == nil {
		return false
	}
	raw, err := s.client.Get(ctx, key).Result()
	if err != nil {
		if err != redis.Nil {
			s.log.Warnf("Refdata cache get %s failed: %+v", key, err)
		}
		return false
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		s.log.Warnf("Refdata cache decode %s failed: %+v", key, err)
		return false
	}
	return true
}

// SetList stores a list under key. Cache failures are logged, never fatal.
func (s *RefdataCache) SetList(ctx context.Context, key string, v interface{}) {
	if s.client == nil {
		return
	}
	raw, err := json.Marshal(v)
	if err != nil {
		s.log.Warnf("Refdata cache encode %s failed: %+v", key, err)
		return
	}
	if err := s.client.Set(ctx, key, raw, refdataTTL).Err(); err != nil {
		s.log.Warnf("Refdata cache set %s failed: %+v", key, err)
	}
}

// Invalidate drops a key after a write-through.
func (s *RefdataCache) Invalidate(ctx context.Context, key string) {
	if s.client == nil {
		return
	}
	if err := s.client.Del(ctx, key).Err(); err != nil {
		s.log.Warnf("Refdata cache invalidate %s failed: %+v", key, err)
	}
}
