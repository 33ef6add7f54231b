package cart

import (
	"context"
	"errors"
	"log/slog"

	"catering-api/models"
	"catering-api/store"
)

// ErrUnauthenticated is returned when a cart mutation arrives without a
// signed-in user. The HTTP layer surfaces it as a notice, not a crash.
var ErrUnauthenticated = errors.New("cart: sign in required")

// Service persists each user's cart lines under their own key, so carts
// are never shared across users and reload naturally when the user changes.
type Service struct {
	store *store.Store
	log   *slog.Logger
}

func NewService(s *store.Store, log *slog.Logger) *Service {
	return &Service{store: s, log: log}
}

func (s *Service) collection(userID string) *store.Collection[*models.CartLine] {
	return store.NewCollection[*models.CartLine](s.store, store.CartKey(userID))
}

// Add puts quantity of product into the user's cart. An existing line for
// the product is bumped, keeping at most one line per (user, product).
func (s *Service) Add(ctx context.Context, userID string, product *models.Product, quantity int) (*models.CartLine, error) {
	if userID == "" {
		return nil, ErrUnauthenticated
	}
	if quantity < 1 {
		quantity = 1
	}

	var line *models.CartLine
	err := s.collection(userID).Replace(ctx, func(lines []*models.CartLine) []*models.CartLine {
		for _, l := range lines {
			if l.ProductID == product.ID {
				l.Quantity += quantity
				line = l
				return lines
			}
		}
		line = &models.CartLine{
			ProductID: product.ID,
			Product:   *product,
			Quantity:  quantity,
			UserID:    userID,
		}
		return append(lines, line)
	})
	if err != nil {
		return nil, err
	}
	s.log.Debug("cart updated", "userId", userID, "productId", product.ID, "quantity", line.Quantity)
	return line, nil
}

// Remove drops the line for productID; removing an absent line is a no-op.
func (s *Service) Remove(ctx context.Context, userID, productID string) error {
	if userID == "" {
		return ErrUnauthenticated
	}
	return s.collection(userID).Replace(ctx, func(lines []*models.CartLine) []*models.CartLine {
		kept := lines[:0]
		for _, l := range lines {
			if l.ProductID != productID {
				kept = append(kept, l)
			}
		}
		return kept
	})
}

// SetQuantity overwrites the line's quantity; zero or less removes it.
func (s *Service) SetQuantity(ctx context.Context, userID, productID string, quantity int) error {
	if userID == "" {
		return ErrUnauthenticated
	}
	if quantity <= 0 {
		return s.Remove(ctx, userID, productID)
	}
	return s.collection(userID).Replace(ctx, func(lines []*models.CartLine) []*models.CartLine {
		for _, l := range lines {
			if l.ProductID == productID {
				l.Quantity = quantity
			}
		}
		return lines
	})
}

// Clear empties the user's cart.
func (s *Service) Clear(ctx context.Context, userID string) error {
	if userID == "" {
		return ErrUnauthenticated
	}
	return s.collection(userID).Clear(ctx)
}

// Lines returns the user's current cart lines.
func (s *Service) Lines(ctx context.Context, userID string) ([]*models.CartLine, error) {
	if userID == "" {
		return nil, ErrUnauthenticated
	}
	return s.collection(userID).Get(ctx)
}

// TotalItems sums quantities over a line set.
func TotalItems(lines []*models.CartLine) int {
	total := 0
	for _, l := range lines {
		total += l.Quantity
	}
	return total
}

// TotalPrice sums price times quantity over a line set.
func TotalPrice(lines []*models.CartLine) int64 {
	var total int64
	for _, l := range lines {
		total += l.LineTotal()
	}
	return total
}
