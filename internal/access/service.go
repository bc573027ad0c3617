// Copyright (c) 2026 Consumo. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package access

import (
	"context"
	"log/slog"
)

// DefaultListLimit caps the audit trail listing when the caller does not ask
// for a specific window.
const DefaultListLimit = 100

// MaxListLimit is the hard ceiling for one listing call.
const MaxListLimit = 1000

type Service struct {
	repository Repository
	logger     *slog.Logger
}

func NewService(repository Repository, logger *slog.Logger) *Service {
	return &Service{
		repository: repository,
		logger:     logger,
	}
}

// ListAccesses returns audit rows, newest first.
func (service *Service) ListAccesses(context context.Context, filter Filter, limit int) ([]*ResourceAccess, error) {
	if limit <= 0 || limit > MaxListLimit {
		limit = DefaultListLimit
	}
	return service.repository.List(context, filter, limit)
}
