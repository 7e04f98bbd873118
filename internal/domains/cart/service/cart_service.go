package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"bookstore-storefront/internal/domains/cart/model"
	repo "bookstore-storefront/internal/domains/cart/repository"
	"bookstore-storefront/internal/events"
	"bookstore-storefront/internal/session"
	"bookstore-storefront/pkg/logger"
)

type CartService struct {
	repository repo.RepositoryInterface
	sessions   *session.Opener
	publisher  events.Publisher
	now        func() time.Time
}

func NewCartService(
	r repo.RepositoryInterface,
	sessions *session.Opener,
	publisher events.Publisher,
) ServiceInterface {
	return &CartService{
		repository: r,
		sessions:   sessions,
		publisher:  publisher,
		now:        time.Now,
	}
}

func (s *CartService) GetCart(ctx context.Context) (*model.CartView, error) {
	summary, err := s.repository.Get(ctx)
	if err != nil {
		return nil, model.TranslateError(err)
	}

	// A plain fetch does not count as a local mutation: the badge is
	// refreshed unless a mutation wrote it moments ago.
	counts := s.counts(summary)
	if _, err := s.refreshBadge(ctx, counts.UniqueItems); err != nil {
		logger.Error("Failed to refresh cart badge", err)
	}
	return &model.CartView{Cart: summary, Counts: counts}, nil
}

func (s *CartService) AddItem(ctx context.Context, req model.AddItemRequest) (*model.CartView, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return s.mutate(ctx, "add_item", func() (*model.CartSummary, error) {
		return s.repository.AddItem(ctx, req)
	})
}

func (s *CartService) UpdateItem(ctx context.Context, bookID uuid.UUID, req model.UpdateItemRequest) (*model.CartView, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return s.mutate(ctx, "update_item", func() (*model.CartSummary, error) {
		return s.repository.UpdateItem(ctx, bookID, req)
	})
}

func (s *CartService) RemoveItem(ctx context.Context, bookID uuid.UUID) (*model.CartView, error) {
	return s.mutate(ctx, "remove_item", func() (*model.CartSummary, error) {
		return s.repository.RemoveItem(ctx, bookID)
	})
}

func (s *CartService) Clear(ctx context.Context) (*model.CartView, error) {
	return s.mutate(ctx, "clear", func() (*model.CartSummary, error) {
		return s.repository.Clear(ctx)
	})
}

func (s *CartService) SelectAll(ctx context.Context, selected bool) (*model.CartView, error) {
	return s.mutate(ctx, "select_all", func() (*model.CartSummary, error) {
		return s.repository.SelectAll(ctx, selected)
	})
}

// BuyNow
// Step 1: add the item
// Step 2: mark the line selected
// Step 3: answer with whichever summary is non-empty (select preferred)
func (s *CartService) BuyNow(ctx context.Context, req model.AddItemRequest) (*model.CartView, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	added, err := s.repository.AddItem(ctx, req)
	if err != nil {
		return nil, model.TranslateError(err)
	}

	selected := true
	marked, err := s.repository.UpdateItem(ctx, req.BookID, model.UpdateItemRequest{Selected: &selected})
	if err != nil {
		// item đã vào giỏ: badge + cart:changed vẫn phải phát
		s.afterMutation(ctx, "add_item", added)
		return nil, model.TranslateError(err)
	}

	summary := marked
	if summary.IsEmpty() {
		summary = added
	}
	return s.afterMutation(ctx, "buy_now", summary), nil
}

func (s *CartService) Badge(ctx context.Context) (int, error) {
	store, _, err := s.sessions.FromContext(ctx)
	if err != nil {
		return 0, err
	}

	var badge model.Badge
	found, err := store.Get(ctx, session.KeyCartBadge, &badge)
	if err != nil {
		logger.Error("Failed to read cart badge", err)
	}
	if found && badge.RecentlySet(s.now(), model.BadgeFreshWindow) {
		return badge.Count, nil
	}

	summary, err := s.repository.Get(ctx)
	if err != nil {
		if found {
			// stale but better than an empty badge
			return badge.Count, nil
		}
		return 0, model.TranslateError(err)
	}
	return s.refreshBadge(ctx, s.counts(summary).UniqueItems)
}

// =====================================================
// HELPERS
// =====================================================

func (s *CartService) mutate(ctx context.Context, op string, call func() (*model.CartSummary, error)) (*model.CartView, error) {
	summary, err := call()
	if err != nil {
		return nil, model.TranslateError(err)
	}
	return s.afterMutation(ctx, op, summary), nil
}

// afterMutation derives counts, writes the badge and notifies listeners
func (s *CartService) afterMutation(ctx context.Context, op string, summary *model.CartSummary) *model.CartView {
	counts := s.counts(summary)

	store, sessionID, err := s.sessions.FromContext(ctx)
	if err == nil {
		badge := model.Badge{Count: counts.UniqueItems, SetAt: s.now()}
		if err := store.Set(ctx, session.KeyCartBadge, badge, 0); err != nil {
			logger.Error("Failed to write cart badge", err)
		}
	}

	s.publisher.Publish(events.CartChanged{
		SessionID:   sessionID,
		UniqueItems: counts.UniqueItems,
		TotalItems:  counts.TotalItems,
	})

	logger.Info("Cart mutated", map[string]interface{}{
		"op":           op,
		"session_id":   sessionID,
		"unique_items": counts.UniqueItems,
		"total_items":  counts.TotalItems,
	})
	return &model.CartView{Cart: summary, Counts: counts}
}

// refreshBadge stores count unless a local mutation wrote the badge
// within BadgeFreshWindow, in which case the cached value is kept.
func (s *CartService) refreshBadge(ctx context.Context, count int) (int, error) {
	store, _, err := s.sessions.FromContext(ctx)
	if err != nil {
		return count, nil
	}

	var cached model.Badge
	found, err := store.Get(ctx, session.KeyCartBadge, &cached)
	if err != nil {
		logger.Error("Failed to read cart badge", err)
	}
	if found && cached.RecentlySet(s.now(), model.BadgeFreshWindow) {
		return cached.Count, nil
	}

	if err := store.Set(ctx, session.KeyCartBadge, model.Badge{Count: count, SetAt: time.Time{}}, 0); err != nil {
		return count, fmt.Errorf("write badge: %w", err)
	}
	return count, nil
}

func (s *CartService) counts(summary *model.CartSummary) model.Counts {
	counts, uniqueSrc, totalSrc := summary.Counts()
	if uniqueSrc == model.SourceDeprecated || totalSrc == model.SourceDeprecated {
		logger.Debug("Cart summary uses deprecated count fields", map[string]interface{}{
			"unique_source": string(uniqueSrc),
			"total_source":  string(totalSrc),
		})
	}
	return counts
}
