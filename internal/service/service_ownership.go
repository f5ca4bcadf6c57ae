// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/store"
	"github.com/MKhiriev/go-blog/models"
)

type ownershipGuard struct {
	ownershipRepository store.OwnershipRepository
	logger              *logger.Logger
}

// NewOwnershipGuard constructs an [OwnershipGuard] that resolves owners with
// a single repository lookup per call.
func NewOwnershipGuard(ownershipRepository store.OwnershipRepository, logger *logger.Logger) OwnershipGuard {
	return &ownershipGuard{
		ownershipRepository: ownershipRepository,
		logger:              logger,
	}
}

func (g *ownershipGuard) Authorize(ctx context.Context, kind models.ResourceKind, resourceID, subjectID int64) error {
	log := logger.FromContext(ctx)

	ownerID, err := g.ownershipRepository.ResourceOwner(ctx, kind, resourceID)
	if errors.Is(err, store.ErrResourceNotFound) {
		return ErrResourceNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "*ownershipGuard.Authorize").
			Str("kind", string(kind)).
			Int64("resource_id", resourceID).
			Msg("owner lookup failed")
		return fmt.Errorf("owner lookup failed: %w", err)
	}

	if ownerID != subjectID {
		log.Info().
			Str("func", "*ownershipGuard.Authorize").
			Str("kind", string(kind)).
			Int64("resource_id", resourceID).
			Int64("subject_id", subjectID).
			Msg("subject does not own resource")
		return ErrForbidden
	}

	return nil
}
