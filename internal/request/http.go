// Copyright (c) 2026 Consumo. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package request

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/consumo/internal/platform/gate"
	requestutil "github.com/taibuivan/consumo/internal/platform/request"
	"github.com/taibuivan/consumo/internal/platform/respond"
	"github.com/taibuivan/consumo/internal/platform/sec"
	"github.com/taibuivan/consumo/internal/platform/validate"
)

// Handler implements the HTTP layer for content requests.
type Handler struct {
	requestService *Service
	gate           *gate.Gate
}

func NewHandler(service *Service, gate *gate.Gate) *Handler {
	return &Handler{requestService: service, gate: gate}
}

// RegisterRoutes mounts the request-queue endpoints. Everything requires
// authentication; clearing the queues is staff work.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Group(func(r chi.Router) {
		r.Use(handler.gate.RequireUser)
		r.Post("/products", handler.submitProductRequest)
		r.Get("/products", handler.listProductRequests)
		r.Post("/blogs", handler.submitBlogRequest)
		r.Get("/blogs", handler.listBlogRequests)
	})

	router.Group(func(r chi.Router) {
		r.Use(handler.gate.Require(sec.ActionManageCatalog))
		r.Delete("/products/{id}", handler.deleteProductRequest)
		r.Delete("/blogs/{id}", handler.deleteBlogRequest)
	})
}

// # Request Payloads

type productRequestPayload struct {
	UserID      string  `json:"user_id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Image       *string `json:"image"`
}

type blogRequestPayload struct {
	UserID      string  `json:"user_id"`
	ProductID   string  `json:"product_id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Image       *string `json:"image"`
}

/*
SubmitProductRequest queues a product suggestion as the authenticated user.

POST /api/v1/requests/products

Response:
  - 201: ProductRequest: Created suggestion
  - 401: ErrUnauthorized: Payload user differs from the caller
*/
func (handler *Handler) submitProductRequest(writer http.ResponseWriter, request *http.Request) {
	var input productRequestPayload
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	validator := &validate.Validator{}
	validator.Required("user_id", input.UserID).
		UUID("user_id", input.UserID).
		Required("name", input.Name).
		MaxLen("name", input.Name, 120).
		MaxLen("description", input.Description, 2000)

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := gate.OwnUser(request.Context(), input.UserID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	created, err := handler.requestService.SubmitProductRequest(request.Context(), ProductRequestInput{
		UserID:      input.UserID,
		Name:        input.Name,
		Description: input.Description,
		Image:       input.Image,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, created)
}

/*
SubmitBlogRequest queues a blog suggestion for an existing product.

POST /api/v1/requests/blogs

Response:
  - 201: BlogRequest: Created suggestion
  - 400: Validation failure (unknown product)
  - 401: ErrUnauthorized: Payload user differs from the caller
*/
func (handler *Handler) submitBlogRequest(writer http.ResponseWriter, request *http.Request) {
	var input blogRequestPayload
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	validator := &validate.Validator{}
	validator.Required("user_id", input.UserID).
		UUID("user_id", input.UserID).
		Required("product_id", input.ProductID).
		UUID("product_id", input.ProductID).
		Required("title", input.Title).
		MaxLen("title", input.Title, 200).
		MaxLen("description", input.Description, 2000)

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := gate.OwnUser(request.Context(), input.UserID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	created, err := handler.requestService.SubmitBlogRequest(request.Context(), BlogRequestInput{
		UserID:      input.UserID,
		ProductID:   input.ProductID,
		Title:       input.Title,
		Description: input.Description,
		Image:       input.Image,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, created)
}

// GET /api/v1/requests/products
func (handler *Handler) listProductRequests(writer http.ResponseWriter, request *http.Request) {
	requests, err := handler.requestService.ListProductRequests(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, requests)
}

// GET /api/v1/requests/blogs
func (handler *Handler) listBlogRequests(writer http.ResponseWriter, request *http.Request) {
	requests, err := handler.requestService.ListBlogRequests(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, requests)
}

// DELETE /api/v1/requests/products/{id}
func (handler *Handler) deleteProductRequest(writer http.ResponseWriter, request *http.Request) {
	requestID := requestutil.ID(request, "id")

	validator := &validate.Validator{}
	if err := validator.UUID("id", requestID).Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.requestService.DeleteProductRequest(request.Context(), requestID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

// DELETE /api/v1/requests/blogs/{id}
func (handler *Handler) deleteBlogRequest(writer http.ResponseWriter, request *http.Request) {
	requestID := requestutil.ID(request, "id")

	validator := &validate.Validator{}
	if err := validator.UUID("id", requestID).Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.requestService.DeleteBlogRequest(request.Context(), requestID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
