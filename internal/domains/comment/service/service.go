package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"bookstore-storefront/internal/domains/comment/model"
	"bookstore-storefront/internal/domains/comment/repository"
	"bookstore-storefront/internal/shared/optimistic"
	"bookstore-storefront/pkg/apiclient"
	"bookstore-storefront/pkg/logger"
)

type ServiceInterface interface {
	// Thread loads a book's comments as a reply tree
	Thread(ctx context.Context, bookID uuid.UUID) (*model.Thread, error)
	Create(ctx context.Context, req model.CreateCommentRequest) (*model.Comment, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// ToggleLike flips the like from the state the page shows. On failure
	// the result carries the original state with Reverted set.
	ToggleLike(ctx context.Context, id uuid.UUID, shown model.LikeToggleRequest) (*model.LikeToggleResult, error)
}

type commentService struct {
	repo repository.RepositoryInterface
}

func NewCommentService(repo repository.RepositoryInterface) ServiceInterface {
	return &commentService{repo: repo}
}

func (s *commentService) Thread(ctx context.Context, bookID uuid.UUID) (*model.Thread, error) {
	flat, err := s.repo.ListByBook(ctx, bookID)
	if err != nil {
		return nil, err
	}

	roots := model.BuildTree(flat)
	return &model.Thread{
		BookID:   bookID,
		Total:    model.Count(roots),
		Comments: roots,
	}, nil
}

func (s *commentService) Create(ctx context.Context, req model.CreateCommentRequest) (*model.Comment, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	comment, err := s.repo.Create(ctx, req)
	if err != nil {
		return nil, err
	}
	comment.Replies = []*model.Comment{}
	return comment, nil
}

func (s *commentService) Delete(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return model.ErrInvalidComment
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		if apiclient.IsNotFound(err) {
			return fmt.Errorf("%w: %s", model.ErrCommentNotFound, id)
		}
		return err
	}
	return nil
}

func (s *commentService) ToggleLike(ctx context.Context, id uuid.UUID, shown model.LikeToggleRequest) (*model.LikeToggleResult, error) {
	if id == uuid.Nil {
		return nil, model.ErrInvalidComment
	}

	snapshot := model.LikeState{CommentID: id, Liked: shown.Liked, LikeCount: shown.LikeCount}
	tentative := snapshot.Toggled()

	state, err := optimistic.Run(ctx, optimistic.Update[model.LikeState]{
		Snapshot:  snapshot,
		Tentative: tentative,
		Commit: func(ctx context.Context) (model.LikeState, error) {
			var (
				confirmed *model.LikeState
				err       error
			)
			if tentative.Liked {
				confirmed, err = s.repo.Like(ctx, id)
			} else {
				confirmed, err = s.repo.Unlike(ctx, id)
			}
			if err != nil {
				return model.LikeState{}, err
			}
			// older backends answer without a body
			if confirmed == nil || confirmed.CommentID == uuid.Nil {
				return tentative, nil
			}
			return *confirmed, nil
		},
	})
	if err != nil {
		logger.ErrorWithFields("Comment like toggle reverted", err, map[string]interface{}{
			"comment_id": id.String(),
		})
		return &model.LikeToggleResult{
			LikeState: state,
			Reverted:  true,
			Message:   apiclient.Message(err),
		}, err
	}
	return &model.LikeToggleResult{LikeState: state}, nil
}
