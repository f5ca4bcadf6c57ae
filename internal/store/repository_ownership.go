package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/models"
)

type ownershipRepository struct {
	*DB
	logger *logger.Logger
}

// NewOwnershipRepository constructs an [OwnershipRepository] backed by db.
func NewOwnershipRepository(db *DB, logger *logger.Logger) OwnershipRepository {
	logger.Debug().Msg("creating ownership repository")
	return &ownershipRepository{
		DB:     db,
		logger: logger,
	}
}

// ResourceOwner returns the id of the user owning the resource, or
// [ErrResourceNotFound].
func (r *ownershipRepository) ResourceOwner(ctx context.Context, kind models.ResourceKind, resourceID int64) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildResourceOwnerQuery(r.builder, kind, resourceID)
	if err != nil {
		return 0, err
	}

	var ownerID int64
	err = r.QueryRowContext(ctx, query, args...).Scan(&ownerID)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrResourceNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "*ownershipRepository.ResourceOwner").
			Str("kind", string(kind)).
			Int64("resource_id", resourceID).
			Msg("error looking up resource owner")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return ownerID, nil
}
