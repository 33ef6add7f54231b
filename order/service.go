package order

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"catering-api/cart"
	"catering-api/models"
	"catering-api/statemachine"
	"catering-api/store"
)

// DeliveryFee is the flat surcharge added to every order total.
const DeliveryFee int64 = 50

// Service builds orders out of cart contents and drives the status
// lifecycle on behalf of admins.
type Service struct {
	orders *store.Collection[*models.Order]
	carts  *cart.Service
	log    *slog.Logger
}

func NewService(s *store.Store, carts *cart.Service, log *slog.Logger) *Service {
	return &Service{
		orders: store.NewCollection[*models.Order](s, store.KeyOrders),
		carts:  carts,
		log:    log,
	}
}

// PlaceInput carries the delivery details collected at checkout.
type PlaceInput struct {
	DeliveryAddress     string
	ContactNumber       string
	SpecialInstructions string
}

// Place snapshots the user's cart into a pending order, writes it and
// clears the cart. The two writes are independent, not one transaction.
func (s *Service) Place(ctx context.Context, user *models.User, in PlaceInput) (*models.Order, error) {
	if strings.TrimSpace(in.DeliveryAddress) == "" {
		return nil, models.Missing("deliveryAddress")
	}
	if strings.TrimSpace(in.ContactNumber) == "" {
		return nil, models.Missing("contactNumber")
	}

	lines, err := s.carts.Lines(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, &models.ValidationError{Field: "cart", Reason: "is empty"}
	}

	items := make([]models.OrderItem, 0, len(lines))
	var total int64
	for _, l := range lines {
		items = append(items, models.OrderItem{
			ProductID: l.ProductID,
			Product:   l.Product,
			Quantity:  l.Quantity,
			Price:     l.Product.Price,
		})
		total += l.LineTotal()
	}

	o := &models.Order{
		UserID:              user.ID,
		Items:               items,
		TotalAmount:         total + DeliveryFee,
		Status:              models.StatusPending,
		DeliveryAddress:     in.DeliveryAddress,
		ContactNumber:       in.ContactNumber,
		SpecialInstructions: in.SpecialInstructions,
	}
	if _, err := s.orders.Add(ctx, o); err != nil {
		return nil, err
	}
	if err := s.carts.Clear(ctx, user.ID); err != nil {
		return nil, err
	}
	s.log.Info("order placed", "orderId", o.ID, "userId", user.ID, "total", o.TotalAmount)
	return o, nil
}

// ForUser returns the user's orders, newest first.
func (s *Service) ForUser(ctx context.Context, userID string) ([]*models.Order, error) {
	orders, err := s.orders.Where(ctx, "userId", store.OpEq, userID)
	if err != nil {
		return nil, err
	}
	sortNewestFirst(orders)
	return orders, nil
}

// All returns every order, newest first.
func (s *Service) All(ctx context.Context) ([]*models.Order, error) {
	orders, err := s.orders.Get(ctx)
	if err != nil {
		return nil, err
	}
	sortNewestFirst(orders)
	return orders, nil
}

// Find returns one order by id.
func (s *Service) Find(ctx context.Context, orderID string) (*models.Order, error) {
	o, ok, err := s.orders.Find(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: order %s", store.ErrNotFound, orderID)
	}
	return o, nil
}

// UpdateStatus moves an order along the lifecycle after validating the
// transition.
func (s *Service) UpdateStatus(ctx context.Context, orderID string, next models.OrderStatus) (*models.Order, error) {
	o, err := s.Find(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if err := statemachine.CanTransition(o.Status, next); err != nil {
		return nil, err
	}
	if err := s.orders.Update(ctx, orderID, func(o *models.Order) { o.Status = next }); err != nil {
		return nil, err
	}
	s.log.Info("order status updated", "orderId", orderID, "from", o.Status, "to", next)
	o.Status = next
	return o, nil
}

// Stats aggregates order counts and revenue for the admin dashboard.
// Cancelled orders are excluded from revenue.
type Stats struct {
	TotalOrders  int                        `json:"totalOrders"`
	TotalRevenue int64                      `json:"totalRevenue"`
	ByStatus     map[models.OrderStatus]int `json:"byStatus"`
}

func (s *Service) Stats(ctx context.Context) (*Stats, error) {
	orders, err := s.orders.Get(ctx)
	if err != nil {
		return nil, err
	}
	st := &Stats{ByStatus: make(map[models.OrderStatus]int)}
	for _, o := range orders {
		st.TotalOrders++
		st.ByStatus[o.Status]++
		if o.Status != models.StatusCancelled {
			st.TotalRevenue += o.TotalAmount
		}
	}
	return st, nil
}

func sortNewestFirst(orders []*models.Order) {
	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
}
