package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// IdempotencyStore guarda, por empresa, chave de idempotência ->
// referência da reserva criada. Repetir a chave dentro do TTL devolve
// a reserva original em vez de criar duplicata.
type IdempotencyStore struct {
	rdb *redis.Client
	ttl time.Duration
}

const defaultTTL = 24 * time.Hour

func NewIdempotencyStore(rdb *redis.Client) *IdempotencyStore {
	return &IdempotencyStore{rdb: rdb, ttl: defaultTTL}
}

func key(businessID uint, idemKey string) string {
	return fmt.Sprintf("booking:idem:%d:%s", businessID, idemKey)
}

func (s *IdempotencyStore) Lookup(
	ctx context.Context,
	businessID uint,
	idemKey string,
) (string, error) {

	ref, err := s.rdb.Get(ctx, key(businessID, idemKey)).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return ref, nil
}

func (s *IdempotencyStore) Remember(
	ctx context.Context,
	businessID uint,
	idemKey string,
	reference string,
) error {
	// SetNX: a primeira gravação da chave vence
	return s.rdb.SetNX(ctx, key(businessID, idemKey), reference, s.ttl).Err()
}
