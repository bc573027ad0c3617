// Copyright (c) 2026 Consumo. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package access

import (
	"net/http"

	"github.com/taibuivan/consumo/internal/platform/respond"
	"github.com/taibuivan/consumo/pkg/convert"
	"github.com/taibuivan/consumo/pkg/query"
)

// Handler serves the audit trail read endpoint. Role gating happens at the
// router, where the route is wrapped in the employee-only gate.
type Handler struct {
	accessService *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{accessService: service}
}

/*
List returns the resource-access audit trail, newest first.

GET /api/v1/users/accesses?types=USER,PRODUCT&limit=50

Response:
  - 200: []ResourceAccess: Audit rows
  - 401: ErrUnauthorized: Authentication required
  - 403: ErrForbidden: Caller is not an employee
*/
func (handler *Handler) List(writer http.ResponseWriter, request *http.Request) {
	filter := Filter{
		ResourceTypes: query.StringSlice(request.URL.Query().Get("types")),
	}
	limit := convert.ToIntD(request.URL.Query().Get("limit"), DefaultListLimit)

	records, err := handler.accessService.ListAccesses(request.Context(), filter, limit)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, records)
}
