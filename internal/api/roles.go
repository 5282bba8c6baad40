package api

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/clientinfo/client-registry/internal/core/ports"
	redisdb "github.com/clientinfo/client-registry/internal/infrastructure/db/redis"
)

// roleDirectory backs the admin gate: cached email→role lookups with the user
// collection as the source of truth. Cache failures degrade to direct lookups
// rather than failing the request.
type roleDirectory struct {
	repo  ports.UserRepository
	cache *redisdb.RoleCache
	log   zerolog.Logger
}

func newRoleDirectory(repo ports.UserRepository, cache *redisdb.RoleCache, log zerolog.Logger) *roleDirectory {
	return &roleDirectory{repo: repo, cache: cache, log: log}
}

func (d *roleDirectory) RoleFor(ctx context.Context, email string) (string, error) {
	if d.cache != nil {
		role, ok, err := d.cache.Get(ctx, email)
		if err != nil {
			d.log.Warn().Err(err).Msg("role cache read failed, falling back to store")
		} else if ok {
			return role, nil
		}
	}

	user, err := d.repo.FindByEmail(ctx, email)
	if err != nil {
		return "", err
	}

	if d.cache != nil {
		if err := d.cache.Set(ctx, email, user.Role); err != nil {
			d.log.Warn().Err(err).Msg("role cache write failed")
		}
	}
	return user.Role, nil
}
