// Copyright (c) 2026 Consumo. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package forum

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/taibuivan/consumo/internal/platform/apperr"
	"github.com/taibuivan/consumo/internal/platform/dberr"
	"github.com/taibuivan/consumo/pkg/uuidv7"
)

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

// ListForums returns all boards ordered by region code.
func (service *Service) ListForums(context context.Context) ([]*Forum, error) {
	forums, err := service.repository.ListForums(context)
	if err != nil {
		return nil, fmt.Errorf("forum_service_list_failed: %w", err)
	}
	return forums, nil
}

/*
CreateForum opens a board for a region.

Description: The seventeen autonomous-community boards are seeded by
migration; this is the staff path for anything beyond them. Region codes
are unique.

Returns:
  - *Forum: Created board
  - err: Conflict when the region already has a board
*/
func (service *Service) CreateForum(context context.Context, region, name string) (*Forum, error) {
	forum := &Forum{Region: region, Name: name}

	if err := service.repository.CreateForum(context, forum); err != nil {
		if errors.Is(err, dberr.ErrDuplicate) {
			return nil, apperr.Conflict("Forum already exists for this region")
		}
		return nil, fmt.Errorf("forum_service_create_failed: %w", err)
	}
	return forum, nil
}

/*
ThreadsByRegion returns a board's threads with their comments.

Description: An unknown region is a missing target (404), not malformed
input — region codes are well-formed, the board just isn't there.
*/
func (service *Service) ThreadsByRegion(context context.Context, region string) ([]*Thread, error) {
	exists, err := service.repository.ForumExists(context, region)
	if err != nil {
		return nil, fmt.Errorf("forum_service_exists_failed: %w", err)
	}
	if !exists {
		return nil, apperr.NotFound("Forum")
	}

	threads, err := service.repository.ThreadsByRegion(context, region)
	if err != nil {
		return nil, fmt.Errorf("forum_service_threads_failed: %w", err)
	}
	return threads, nil
}

// ThreadInput holds the data for a new discussion thread.
type ThreadInput struct {
	Region      string
	Language    string
	Title       string
	Description string
}

/*
CreateThread opens a discussion on a regional board.

Description: The region arrives on the input side of the contract, so a
board that does not exist rejects the thread as malformed input (400).

Returns:
  - *Thread: Created thread with no comments
  - err: ValidationError when the board does not exist
*/
func (service *Service) CreateThread(context context.Context, input ThreadInput) (*Thread, error) {
	exists, err := service.repository.ForumExists(context, input.Region)
	if err != nil {
		return nil, fmt.Errorf("forum_service_exists_failed: %w", err)
	}
	if !exists {
		return nil, apperr.ValidationError("Referenced forum does not exist")
	}

	thread := &Thread{
		ID:          uuidv7.New(),
		Region:      input.Region,
		Language:    input.Language,
		Title:       input.Title,
		Description: input.Description,
		CreatedAt:   time.Now().UTC(),
		Comments:    make([]ThreadComment, 0),
	}

	if err := service.repository.CreateThread(context, thread); err != nil {
		return nil, fmt.Errorf("forum_service_create_thread_failed: %w", err)
	}
	return thread, nil
}

// CommentInput holds the data for a new thread reply. Ownership of UserID
// is checked at the handler before the service runs.
type CommentInput struct {
	ThreadID string
	UserID   string
	Content  string
}

/*
AddComment appends a reply to a thread.

Returns:
  - *ThreadComment: Created reply
  - err: NotFound when the thread does not exist
*/
func (service *Service) AddComment(context context.Context, input CommentInput) (*ThreadComment, error) {
	comment := &ThreadComment{
		ID:        uuidv7.New(),
		UserID:    input.UserID,
		Content:   input.Content,
		CreatedAt: time.Now().UTC(),
	}

	if err := service.repository.AddComment(context, input.ThreadID, comment); err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return nil, apperr.NotFound("Thread")
		}
		return nil, fmt.Errorf("forum_service_add_comment_failed: %w", err)
	}
	return comment, nil
}

// DeleteThread removes a thread; comments cascade.
func (service *Service) DeleteThread(context context.Context, threadID string) error {
	if err := service.repository.DeleteThread(context, threadID); err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return apperr.NotFound("Thread")
		}
		return fmt.Errorf("forum_service_delete_thread_failed: %w", err)
	}
	return nil
}
