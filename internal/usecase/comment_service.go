package usecase

import (
	"fmt"

	"flightboard-service/internal/domain/entity"
	"flightboard-service/pkg/logger"

	"github.com/google/uuid"
)

// CommentService owns the per-flight discussion threads. Submission is
// currently write-only: the intended mutation is logged, never applied,
// so threads stay immutable at runtime.
type CommentService struct {
	threads map[string]*entity.Thread
	logger  logger.Logger
}

// NewCommentService creates the service seeded with the sample thread.
func NewCommentService(log logger.Logger) *CommentService {
	seed := entity.SampleThread()
	return &CommentService{
		threads: map[string]*entity.Thread{seed.FlightID: seed},
		logger:  log,
	}
}

// Thread returns the discussion for a flight, creating an empty one for
// flights nobody has commented on yet.
func (s *CommentService) Thread(flightID string) *entity.Thread {
	t, ok := s.threads[flightID]
	if !ok {
		t = entity.NewThread(flightID)
		s.threads[flightID] = t
	}
	return t
}

// Render walks a flight's thread in display order.
func (s *CommentService) Render(flightID string) []entity.RenderedComment {
	return s.Thread(flightID).Walk()
}

// SubmitComment records the intended comment and returns the id it would
// get. The thread itself is not mutated here.
func (s *CommentService) SubmitComment(flightID, parentID, user, text string) (string, error) {
	if text == "" {
		return "", fmt.Errorf("empty comment")
	}
	if parentID != "" && s.Thread(flightID).Get(parentID) == nil {
		return "", fmt.Errorf("unknown parent comment %s", parentID)
	}

	id := uuid.NewString()
	s.logger.Info("New comment",
		"flightId", flightID,
		"commentId", id,
		"parentId", parentID,
		"user", user,
		"text", text)
	return id, nil
}
