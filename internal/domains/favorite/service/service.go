package service

import (
	"context"

	"github.com/google/uuid"

	"bookstore-storefront/internal/domains/favorite/model"
	"bookstore-storefront/internal/domains/favorite/repository"
	"bookstore-storefront/internal/events"
	"bookstore-storefront/internal/session"
	"bookstore-storefront/internal/shared/optimistic"
	"bookstore-storefront/pkg/apiclient"
	"bookstore-storefront/pkg/cache"
	"bookstore-storefront/pkg/logger"
)

type ServiceInterface interface {
	// IDs reloads the favorite set from the backend and mirrors it in the session
	IDs(ctx context.Context) (model.IDs, error)

	// Toggle flips one book optimistically: subscribers see the tentative
	// set at once and the original set again if the backend refuses.
	Toggle(ctx context.Context, bookID uuid.UUID) (*model.ToggleResult, error)
}

type favoriteService struct {
	repo      repository.RepositoryInterface
	sessions  *session.Opener
	publisher events.Publisher
}

func NewFavoriteService(repo repository.RepositoryInterface, sessions *session.Opener, publisher events.Publisher) ServiceInterface {
	return &favoriteService{
		repo:      repo,
		sessions:  sessions,
		publisher: publisher,
	}
}

func (s *favoriteService) IDs(ctx context.Context) (model.IDs, error) {
	if apiclient.TokenFromContext(ctx) == "" {
		return model.IDs{}, nil
	}
	store, sessionID, err := s.sessions.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	fresh, err := s.repo.IDs(ctx)
	if err != nil {
		var cached model.IDs
		if found, _ := store.Get(ctx, session.KeyFavoriteIDs, &cached); found {
			logger.Warn("Favorite ids served from session", map[string]interface{}{
				"session_id": sessionID,
				"error":      err.Error(),
			})
			return cached, nil
		}
		return nil, err
	}

	ids := model.NewIDs(fresh)
	if err := s.show(ctx, store, sessionID, ids); err != nil {
		logger.Error("Failed to store favorite ids", err)
	}
	return ids, nil
}

func (s *favoriteService) Toggle(ctx context.Context, bookID uuid.UUID) (*model.ToggleResult, error) {
	if apiclient.TokenFromContext(ctx) == "" {
		return nil, model.ErrLoginRequired
	}
	store, sessionID, err := s.sessions.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	// Step 1: snapshot
	snapshot, err := s.current(ctx, store)
	if err != nil {
		return nil, err
	}
	favorite := !snapshot.Contains(bookID)

	// Step 2-4: tentative → request → reconcile or revert
	ids, err := optimistic.Run(ctx, optimistic.Update[model.IDs]{
		Snapshot:  snapshot,
		Tentative: snapshot.Toggled(bookID),
		Apply: func(ctx context.Context, ids model.IDs) error {
			return s.show(ctx, store, sessionID, ids)
		},
		Commit: func(ctx context.Context) (model.IDs, error) {
			var err error
			if favorite {
				err = s.repo.Add(ctx, bookID)
			} else {
				err = s.repo.Remove(ctx, bookID)
			}
			return snapshot.Toggled(bookID), err
		},
	})

	result := &model.ToggleResult{
		BookID:    bookID,
		Favorited: ids.Contains(bookID),
		IDs:       ids,
		Reverted:  err != nil,
	}
	if err != nil {
		result.Message = apiclient.Message(err)
	}

	s.publish(events.FavoriteChanged{SessionID: sessionID, BookID: bookID, Favorited: result.Favorited})
	return result, err
}

// current returns the session mirror, loading it from the backend on a miss
func (s *favoriteService) current(ctx context.Context, store *cache.Scoped) (model.IDs, error) {
	var ids model.IDs
	found, err := store.Get(ctx, session.KeyFavoriteIDs, &ids)
	if err != nil {
		logger.Error("Failed to read favorite ids", err)
	}
	if found {
		return model.NewIDs(ids), nil
	}

	fresh, err := s.repo.IDs(ctx)
	if err != nil {
		return nil, err
	}
	return model.NewIDs(fresh), nil
}

func (s *favoriteService) show(ctx context.Context, store *cache.Scoped, sessionID string, ids model.IDs) error {
	if err := store.Set(ctx, session.KeyFavoriteIDs, ids, 0); err != nil {
		return err
	}
	s.publish(events.FavoriteIDsUpdated{SessionID: sessionID, IDs: ids})
	return nil
}

func (s *favoriteService) publish(evt events.Event) {
	if s.publisher != nil {
		s.publisher.Publish(evt)
	}
}
