// Copyright (c) 2026 Consumo. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package user — HTTP delivery layer.

The handler is a thin translator: it decodes and validates the payload
shape, applies the authorization gate, calls exactly one service operation,
and maps the result to the response envelope and status taxonomy.
*/
package user

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/consumo/internal/platform/gate"
	requestutil "github.com/taibuivan/consumo/internal/platform/request"
	"github.com/taibuivan/consumo/internal/platform/respond"
	"github.com/taibuivan/consumo/internal/platform/sec"
	"github.com/taibuivan/consumo/internal/platform/validate"
	"github.com/taibuivan/consumo/pkg/pagination"
)

// Handler implements the HTTP layer for user accounts.
type Handler struct {
	userService *Service
	gate        *gate.Gate
}

func NewHandler(service *Service, gate *gate.Gate) *Handler {
	return &Handler{userService: service, gate: gate}
}

// RegisterRoutes mounts the user domain's endpoints on the given router.
//
// # Endpoints
//   - POST /auth/register      : Create a new account (public).
//   - POST /auth/login         : Authenticate, returns a bearer token (public).
//   - GET  /me                 : Authenticated user's own profile.
//   - PUT  /{id}/block|unblock : Flip an account's blocked flag.
//   - GET  /                   : List accounts (employee only).
//   - DELETE /{id}             : Remove an account (employee only).
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Post("/auth/register", handler.register)
	router.Post("/auth/login", handler.login)

	router.Group(func(r chi.Router) {
		r.Use(handler.gate.RequireUser)
		r.Get("/me", handler.me)
		r.Put("/{id}/block", handler.block)
		r.Put("/{id}/unblock", handler.unblock)
	})

	router.Group(func(r chi.Router) {
		r.Use(handler.gate.Require(sec.ActionViewUsers))
		r.Get("/", handler.list)
		r.Delete("/{id}", handler.delete)
	})
}

// # Request Payloads

type registerRequest struct {
	Email    string  `json:"email"`
	Nickname string  `json:"nickname"`
	Password string  `json:"password"`
	Image    *string `json:"image"`
	Role     string  `json:"role"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

/*
Register creates a new user account.

POST /api/v1/users/auth/register

Request:
  - Body: registerRequest (Email, Nickname, Password, optional Image/Role)

Response:
  - 201: User: Created account (password hash excluded)
  - 400: Validation failure or duplicate email/nickname
  - 401: ErrUnauthorized: Attempted self-registration as EMPLOYEE
*/
func (handler *Handler) register(writer http.ResponseWriter, request *http.Request) {
	var input registerRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	validator := &validate.Validator{}
	validator.Required("email", input.Email).
		Email("email", input.Email).
		Required("nickname", input.Nickname).
		MinLen("nickname", input.Nickname, 3).
		MaxLen("nickname", input.Nickname, 30).
		Required("password", input.Password).
		MinLen("password", input.Password, 8)
	if input.Role != "" {
		validator.OneOf("role", input.Role, string(sec.RoleUser), string(sec.RoleEmployee))
	}

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	created, err := handler.userService.Register(request.Context(), RegisterInput{
		Email:    input.Email,
		Nickname: input.Nickname,
		Password: input.Password,
		Image:    input.Image,
		Role:     sec.Role(input.Role),
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, created)
}

/*
Login authenticates an account and issues a bearer token.

POST /api/v1/users/auth/login

Response:
  - 200: {bearer}: Signed access token
  - 401: ErrUnauthorized: Wrong credentials or blocked account
*/
func (handler *Handler) login(writer http.ResponseWriter, request *http.Request) {
	var input loginRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	validator := &validate.Validator{}
	validator.Required("email", input.Email).
		Required("password", input.Password)

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	token, err := handler.userService.Login(request.Context(), input.Email, input.Password)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]string{"bearer": token})
}

/*
Me returns the authenticated user's own profile.

GET /api/v1/users/me

Response:
  - 200: User: Full profile
  - 401: ErrUnauthorized: Authentication required
*/
func (handler *Handler) me(writer http.ResponseWriter, request *http.Request) {
	identity := gate.CurrentIdentity(request.Context())

	profile, err := handler.userService.Profile(request.Context(), identity.ID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, profile)
}

/*
Block marks an account as blocked.

PUT /api/v1/users/{id}/block

Response:
  - 200: {message}: Account blocked
  - 404: ErrNotFound: Target account does not exist
*/
func (handler *Handler) block(writer http.ResponseWriter, request *http.Request) {
	handler.setBlocked(writer, request, true, "User blocked")
}

/*
Unblock lifts an account's blocked flag.

PUT /api/v1/users/{id}/unblock

Response:
  - 200: {message}: Account unblocked
  - 404: ErrNotFound: Target account does not exist
*/
func (handler *Handler) unblock(writer http.ResponseWriter, request *http.Request) {
	handler.setBlocked(writer, request, false, "User unblocked")
}

func (handler *Handler) setBlocked(writer http.ResponseWriter, request *http.Request, blocked bool, message string) {
	userID := requestutil.ID(request, "id")

	validator := &validate.Validator{}
	if err := validator.UUID("id", userID).Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.userService.SetBlocked(request.Context(), userID, blocked); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]string{"message": message})
}

/*
List returns a page of accounts.

GET /api/v1/users?q=&page=&limit=

Description: Employee-only. The q parameter is a case-insensitive substring
match over email and nickname.

Response:
  - 200: []User + pagination meta
  - 403: ErrForbidden: Caller is not an employee
*/
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)
	search := request.URL.Query().Get("q")

	users, total, err := handler.userService.ListUsers(request.Context(), search, params.Limit, params.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, users, pagination.NewMeta(params.Page, params.Limit, total))
}

/*
Delete removes an account.

DELETE /api/v1/users/{id}

Description: Employee-only. Cascades the account's comments and requests;
historical audit rows are kept with a nulled user reference.

Response:
  - 204: No Content
  - 404: ErrNotFound: Target account does not exist
*/
func (handler *Handler) delete(writer http.ResponseWriter, request *http.Request) {
	userID := requestutil.ID(request, "id")

	validator := &validate.Validator{}
	if err := validator.UUID("id", userID).Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.userService.DeleteUser(request.Context(), userID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
