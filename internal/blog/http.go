// Copyright (c) 2026 Consumo. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package blog

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

// Handler implements the HTTP layer for blogs.
type Handler struct {
	blogService *Service
	gate        *gate.Gate
}

func NewHandler(service *Service, gate *gate.Gate) *Handler {
	return &Handler{blogService: service, gate: gate}
}

// RegisterRoutes mounts the blog endpoints.
//
// # Endpoints
//   - GET  /                    : List blogs, optionally filtered (public).
//   - GET  /{id}                : One blog, hydrated (public).
//   - POST /                    : Create a blog (employee only).
//   - POST /{id}/comments       : Comment as the authenticated user.
//   - POST /comments/{id}/like  : Bump a comment's like counter.
//   - DELETE /{id}              : Remove a blog (employee only).
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.list)
	router.Get("/{id}", handler.get)

	router.Group(func(r chi.Router) {
		r.Use(handler.gate.RequireUser)
		r.Post("/{id}/comments", handler.addComment)
		r.Post("/comments/{id}/like", handler.likeComment)
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
	Title       string `json:"title"`
	Description string `json:"description"`
}

type createRequest struct {
	ProductID string           `json:"product_id"`
	Image     *string          `json:"image"`
	Contents  []contentPayload `json:"contents"`
}

type commentRequest struct {
	UserID string  `json:"user_id"`
	Text   string  `json:"text"`
	Image  *string `json:"image"`
}

/*
Create publishes a blog about a product.

POST /api/v1/blogs

Description: Employee-only. The payload must include the primary-locale
("es-ES") content entry and reference an existing product.

Response:
  - 201: Blog: Created aggregate
  - 400: Validation failure (primary content missing, unknown product)
  - 403: ErrForbidden: Caller is not an employee
*/
func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	var input createRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	validator := &validate.Validator{}
	validator.Required("product_id", input.ProductID).
		UUID("product_id", input.ProductID)

	hasPrimary := false
	for _, content := range input.Contents {
		validator.Required("language", content.Language).
			LanguageTag("language", content.Language).
			Required("title", content.Title).
			MaxLen("title", content.Title, 200)
		if content.Language == constants.PrimaryLanguage {
			hasPrimary = true
		}
	}
	validator.Custom("contents", !hasPrimary, "Content for the primary language ("+constants.PrimaryLanguage+") is required")

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	contents := make([]ContentInput, 0, len(input.Contents))
	for _, content := range input.Contents {
		contents = append(contents, ContentInput(content))
	}

	created, err := handler.blogService.Create(request.Context(), CreateInput{
		ProductID: input.ProductID,
		Image:     input.Image,
		Contents:  contents,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, created)
}

/*
List returns blogs with contents and comments included.

GET /api/v1/blogs?title=&product=

Description: title is a case-insensitive substring over content titles in
any language; product narrows to one product's blogs.

Response:
  - 200: []Blog: Matching blogs
*/
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	filter := Filter{
		Title:     request.URL.Query().Get("title"),
		ProductID: request.URL.Query().Get("product"),
	}

	if filter.ProductID != "" {
		validator := &validate.Validator{}
		if err := validator.UUID("product", filter.ProductID).Err(); err != nil {
			respond.Error(writer, request, err)
			return
		}
	}

	blogs, err := handler.blogService.List(request.Context(), filter)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, blogs)
}

/*
Get returns one blog with its contents and comments.

GET /api/v1/blogs/{id}

Response:
  - 200: Blog: Hydrated aggregate
  - 404: ErrNotFound: No such blog
*/
func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	blogID := requestutil.ID(request, "id")

	validator := &validate.Validator{}
	if err := validator.UUID("id", blogID).Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	blog, err := handler.blogService.Get(request.Context(), blogID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, blog)
}

/*
AddComment posts a comment on a blog as the authenticated user.

POST /api/v1/blogs/{id}/comments

Description: The payload declares the commenting user; it must match the
authenticated identity or the call fails with 401.

Response:
  - 201: Comment: Created comment
  - 401: ErrUnauthorized: Payload user differs from the caller
  - 404: ErrNotFound: No such blog
*/
func (handler *Handler) addComment(writer http.ResponseWriter, request *http.Request) {
	blogID := requestutil.ID(request, "id")

	var input commentRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	validator := &validate.Validator{}
	validator.UUID("id", blogID).
		Required("user_id", input.UserID).
		UUID("user_id", input.UserID).
		Required("text", input.Text).
		MaxLen("text", input.Text, 2000)

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := gate.OwnUser(request.Context(), input.UserID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	comment, err := handler.blogService.AddComment(request.Context(), blogID, CommentInput{
		UserID: input.UserID,
		Text:   input.Text,
		Image:  input.Image,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, comment)
}

/*
LikeComment bumps a comment's like counter.

POST /api/v1/blogs/comments/{id}/like

Description: At-least-once increment, no per-user dedup.

Response:
  - 201: {like_count}: The new counter value
  - 404: ErrNotFound: No such comment
*/
func (handler *Handler) likeComment(writer http.ResponseWriter, request *http.Request) {
	commentID := requestutil.ID(request, "id")

	validator := &validate.Validator{}
	if err := validator.UUID("id", commentID).Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	likeCount, err := handler.blogService.LikeComment(request.Context(), commentID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, map[string]int{"like_count": likeCount})
}

/*
Delete removes a blog with its contents and comments.

DELETE /api/v1/blogs/{id}

Response:
  - 204: No Content
  - 404: ErrNotFound: No such blog
*/
func (handler *Handler) delete(writer http.ResponseWriter, request *http.Request) {
	blogID := requestutil.ID(request, "id")

	validator := &validate.Validator{}
	if err := validator.UUID("id", blogID).Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.blogService.Delete(request.Context(), blogID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
