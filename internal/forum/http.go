// Copyright (c) 2026 Consumo. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package forum

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/consumo/internal/platform/gate"
	requestutil "github.com/taibuivan/consumo/internal/platform/request"
	"github.com/taibuivan/consumo/internal/platform/respond"
	"github.com/taibuivan/consumo/internal/platform/sec"
	"github.com/taibuivan/consumo/internal/platform/validate"
)

// Handler implements the HTTP layer for regional forums and threads.
type Handler struct {
	forumService *Service
	gate         *gate.Gate
}

func NewHandler(service *Service, gate *gate.Gate) *Handler {
	return &Handler{forumService: service, gate: gate}
}

// RegisterForumRoutes mounts the board endpoints.
func (handler *Handler) RegisterForumRoutes(router chi.Router) {
	router.Get("/", handler.listForums)

	router.Group(func(r chi.Router) {
		r.Use(handler.gate.Require(sec.ActionManageCatalog))
		r.Post("/", handler.createForum)
	})
}

// RegisterThreadRoutes mounts the discussion endpoints. Both wildcard
// routes share the {id} name; chi rejects differing wildcard names at the
// same position.
func (handler *Handler) RegisterThreadRoutes(router chi.Router) {
	router.Get("/{id}", handler.threadsByRegion)

	router.Group(func(r chi.Router) {
		r.Use(handler.gate.RequireUser)
		r.Post("/", handler.createThread)
		r.Post("/comments", handler.addComment)
	})

	router.Group(func(r chi.Router) {
		r.Use(handler.gate.Require(sec.ActionManageCatalog))
		r.Delete("/{id}", handler.deleteThread)
	})
}

// # Request Payloads

type createForumRequest struct {
	Region string `json:"region"`
	Name   string `json:"name"`
}

type createThreadRequest struct {
	Region      string `json:"region"`
	Language    string `json:"language"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type commentRequest struct {
	ThreadID string `json:"thread_id"`
	UserID   string `json:"user_id"`
	Content  string `json:"content"`
}

// GET /api/v1/forums
func (handler *Handler) listForums(writer http.ResponseWriter, request *http.Request) {
	forums, err := handler.forumService.ListForums(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, forums)
}

/*
CreateForum opens a board for a region.

POST /api/v1/forums

Response:
  - 201: Forum: Created board
  - 403: ErrForbidden: Caller is not an employee
  - 409: ErrConflict: Region already has a board
*/
func (handler *Handler) createForum(writer http.ResponseWriter, request *http.Request) {
	var input createForumRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	validator := &validate.Validator{}
	validator.Required("region", input.Region).
		Region("region", input.Region).
		Required("name", input.Name).
		MaxLen("name", input.Name, 120)

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	forum, err := handler.forumService.CreateForum(request.Context(), input.Region, input.Name)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, forum)
}

/*
ThreadsByRegion returns a board's threads with their comments.

GET /api/v1/threads/{regionId}

Response:
  - 200: []Thread: The board's threads, oldest first
  - 404: ErrNotFound: No board for that region
*/
func (handler *Handler) threadsByRegion(writer http.ResponseWriter, request *http.Request) {
	region := requestutil.Param(request, "id")

	validator := &validate.Validator{}
	if err := validator.Region("region", region).Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	threads, err := handler.forumService.ThreadsByRegion(request.Context(), region)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, threads)
}

/*
CreateThread opens a discussion on a regional board.

POST /api/v1/threads

Response:
  - 201: Thread: Created thread
  - 400: Validation failure (unknown region)
*/
func (handler *Handler) createThread(writer http.ResponseWriter, request *http.Request) {
	var input createThreadRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	validator := &validate.Validator{}
	validator.Required("region", input.Region).
		Region("region", input.Region).
		Required("language", input.Language).
		LanguageTag("language", input.Language).
		Required("title", input.Title).
		MaxLen("title", input.Title, 200).
		MaxLen("description", input.Description, 2000)

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	thread, err := handler.forumService.CreateThread(request.Context(), ThreadInput{
		Region:      input.Region,
		Language:    input.Language,
		Title:       input.Title,
		Description: input.Description,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, thread)
}

/*
AddComment replies to a thread as the authenticated user.

POST /api/v1/threads/comments

Response:
  - 201: ThreadComment: Created reply
  - 401: ErrUnauthorized: Payload user differs from the caller
  - 404: ErrNotFound: No such thread
*/
func (handler *Handler) addComment(writer http.ResponseWriter, request *http.Request) {
	var input commentRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	validator := &validate.Validator{}
	validator.Required("thread_id", input.ThreadID).
		UUID("thread_id", input.ThreadID).
		Required("user_id", input.UserID).
		UUID("user_id", input.UserID).
		Required("content", input.Content).
		MaxLen("content", input.Content, 2000)

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := gate.OwnUser(request.Context(), input.UserID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	comment, err := handler.forumService.AddComment(request.Context(), CommentInput{
		ThreadID: input.ThreadID,
		UserID:   input.UserID,
		Content:  input.Content,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, comment)
}

/*
DeleteThread removes a thread with its comments.

DELETE /api/v1/threads/{id}

Response:
  - 204: No Content
  - 404: ErrNotFound: No such thread
*/
func (handler *Handler) deleteThread(writer http.ResponseWriter, request *http.Request) {
	threadID := requestutil.ID(request, "id")

	validator := &validate.Validator{}
	if err := validator.UUID("id", threadID).Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.forumService.DeleteThread(request.Context(), threadID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
