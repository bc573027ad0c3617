// Copyright (c) 2026 Consumo. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package product

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/consumo/internal/platform/constants"
	"github.com/taibuivan/consumo/internal/platform/gate"
	requestutil "github.com/taibuivan/consumo/internal/platform/request"
	"github.com/taibuivan/consumo/internal/platform/respond"
	"github.com/taibuivan/consumo/internal/platform/sec"
	"github.com/taibuivan/consumo/internal/platform/validate"
)

// Handler implements the HTTP layer for the product catalogue.
type Handler struct {
	productService *Service
	gate           *gate.Gate
}

func NewHandler(service *Service, gate *gate.Gate) *Handler {
	return &Handler{productService: service, gate: gate}
}

// RegisterRoutes mounts the product endpoints.
//
// # Endpoints
//   - GET  /                      : Search the catalogue (public).
//   - GET  /{id}                  : One product, hydrated (public).
//   - POST /                      : Create a product (employee only).
//   - POST /{id}/product-content  : Add or replace a language content entry.
//   - DELETE /{id}                : Remove a product (employee only).
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.search)
	router.Get("/{id}", handler.get)

	router.Group(func(r chi.Router) {
		r.Use(handler.gate.RequireUser)
		r.Post("/{id}/product-content", handler.addContent)
	})

	router.Group(func(r chi.Router) {
		r.Use(handler.gate.Require(sec.ActionManageCatalog))
		r.Post("/", handler.create)
		r.Delete("/{id}", handler.delete)
	})
}

// # Request Payloads

type contentPayload struct {
	Language    string `json:"language"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type createRequest struct {
	Image    *string          `json:"image"`
	Regions  []string         `json:"regions"`
	Contents []contentPayload `json:"contents"`
}

// validateContent applies the shared per-entry content rules.
func validateContent(validator *validate.Validator, content contentPayload) {
	validator.Required("language", content.Language).
		LanguageTag("language", content.Language).
		Required("name", content.Name).
		MaxLen("name", content.Name, 120).
		MaxLen("description", content.Description, 2000)
}

/*
Create adds a product to the catalogue.

POST /api/v1/products

Description: Employee-only. The payload must carry at least one region tag
and must include the primary-locale ("es-ES") content entry — a product
nobody can read in the platform's primary language is malformed input.

Response:
  - 201: Product: Created aggregate
  - 400: Validation failure (regions empty, primary content missing)
  - 403: ErrForbidden: Caller is not an employee
*/
func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	var input createRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	validator := &validate.Validator{}
	validator.Custom("regions", len(input.Regions) == 0, "At least one region is required")
	for _, region := range input.Regions {
		validator.Region("regions", region)
	}

	hasPrimary := false
	for _, content := range input.Contents {
		validateContent(validator, content)
		if content.Language == constants.PrimaryLanguage {
			hasPrimary = true
		}
	}
	validator.Custom("contents", !hasPrimary, "Content for the primary language ("+constants.PrimaryLanguage+") is required")

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	created, err := handler.productService.Create(request.Context(), CreateInput{
		Image:    input.Image,
		Regions:  input.Regions,
		Contents: contentsFromPayload(input.Contents),
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, created)
}

/*
Search filters the catalogue.

GET /api/v1/products?name=&region=

Description: name is a case-insensitive substring over content names in any
language; region is an exact code match. Both together intersect the two
independent result sets.

Response:
  - 200: []Product: Matching products
*/
func (handler *Handler) search(writer http.ResponseWriter, request *http.Request) {
	name := request.URL.Query().Get("name")
	region := request.URL.Query().Get("region")

	if region != "" {
		validator := &validate.Validator{}
		if err := validator.Region("region", region).Err(); err != nil {
			respond.Error(writer, request, err)
			return
		}
	}

	products, err := handler.productService.Search(request.Context(), name, region)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, products)
}

/*
Get returns one product with its regions and contents.

GET /api/v1/products/{id}

Response:
  - 200: Product: Hydrated aggregate
  - 404: ErrNotFound: No such product
*/
func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	productID := requestutil.ID(request, "id")

	validator := &validate.Validator{}
	if err := validator.UUID("id", productID).Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	product, err := handler.productService.Get(request.Context(), productID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, product)
}

/*
AddContent inserts or replaces a language content entry on a product.

POST /api/v1/products/{id}/product-content

Response:
  - 201: Content: The stored entry
  - 400: Validation failure
  - 404: ErrNotFound: No such product
*/
func (handler *Handler) addContent(writer http.ResponseWriter, request *http.Request) {
	productID := requestutil.ID(request, "id")

	var input contentPayload
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	validator := &validate.Validator{}
	validator.UUID("id", productID)
	validateContent(validator, input)

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	content, err := handler.productService.AddContent(request.Context(), productID, ContentInput{
		Language:    input.Language,
		Name:        input.Name,
		Description: input.Description,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, content)
}

/*
Delete removes a product from the catalogue.

DELETE /api/v1/products/{id}

Description: Employee-only. Regions, contents, and dependent blogs cascade.

Response:
  - 204: No Content
  - 404: ErrNotFound: No such product
*/
func (handler *Handler) delete(writer http.ResponseWriter, request *http.Request) {
	productID := requestutil.ID(request, "id")

	validator := &validate.Validator{}
	if err := validator.UUID("id", productID).Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.productService.Delete(request.Context(), productID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

func contentsFromPayload(payload []contentPayload) []ContentInput {
	contents := make([]ContentInput, 0, len(payload))
	for _, content := range payload {
		contents = append(contents, ContentInput(content))
	}
	return contents
}
