package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"handyman-orders/models"

	"github.com/google/uuid"
)

const maxTitleLength = 200

// OrderStore is the slice of the repository the workflow needs.
type OrderStore interface {
	Insert(ctx context.Context, order *models.Order) error
	ListAll(ctx context.Context) ([]models.Order, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Order, error)
	UpdateStatusFrom(ctx context.Context, id uuid.UUID, next models.OrderStatus, updatedAt time.Time, allowed ...models.OrderStatus) (*models.Order, error)
}

// Publisher fans an order snapshot out to connected subscribers.
type Publisher interface {
	Publish(order models.Order)
}

type OrderService struct {
	repo OrderStore
	hub  Publisher
}

func NewOrderService(repo OrderStore, hub Publisher) *OrderService {
	return &OrderService{repo: repo, hub: hub}
}

func (s *OrderService) ListOrders(ctx context.Context) ([]models.Order, error) {
	return s.repo.ListAll(ctx)
}

func (s *OrderService) Create(ctx context.Context, req models.CreateOrderRequest) (*models.Order, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, &models.ValidationError{Message: "Title is required."}
	}
	if len(title) > maxTitleLength {
		return nil, &models.ValidationError{Message: "Title must be at most 200 characters."}
	}
	if req.Price.Sign() <= 0 {
		return nil, &models.ValidationError{Message: "Price must be > 0."}
	}

	now := time.Now().UTC()
	order := &models.Order{
		ID:           uuid.New(),
		Title:        title,
		Price:        req.Price.Round(2),
		Status:       models.StatusNew,
		CreatedAtUtc: now,
		UpdatedAtUtc: now,
	}

	if err := s.repo.Insert(ctx, order); err != nil {
		return nil, err
	}

	s.hub.Publish(*order)
	return order, nil
}

// MoveToInProgress is strict: it only succeeds while the order is still New.
// A caller that loses the race observes ConflictError naming the status that won.
func (s *OrderService) MoveToInProgress(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	order, err := s.repo.UpdateStatusFrom(ctx, id, models.StatusInProgress, time.Now().UTC(), models.StatusNew)
	if errors.Is(err, models.ErrStatusNotAllowed) {
		current, ferr := s.repo.FindByID(ctx, id)
		if ferr != nil {
			return nil, ferr
		}
		return nil, &models.ConflictError{Current: current.Status}
	}
	if err != nil {
		return nil, err
	}

	s.hub.Publish(*order)
	return order, nil
}

// MarkPaid is idempotent: a webhook retried against an already-paid order
// succeeds without touching the row, and the snapshot is still re-broadcast.
func (s *OrderService) MarkPaid(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	order, err := s.repo.UpdateStatusFrom(ctx, id, models.StatusPaid, time.Now().UTC(), models.StatusNew, models.StatusInProgress)
	if errors.Is(err, models.ErrStatusNotAllowed) {
		current, ferr := s.repo.FindByID(ctx, id)
		if ferr != nil {
			return nil, ferr
		}
		s.hub.Publish(*current)
		return current, nil
	}
	if err != nil {
		return nil, err
	}

	s.hub.Publish(*order)
	return order, nil
}
