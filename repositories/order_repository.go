package repositories

import (
	"context"
	"errors"
	"time"

	"handyman-orders/config"
	"handyman-orders/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type OrderRepository struct{}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{}
}

func (r *OrderRepository) Insert(ctx context.Context, order *models.Order) error {
	query := `
		INSERT INTO orders (id, title, price, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := config.DB.Exec(ctx, query,
		order.ID, order.Title, order.Price, order.Status, order.CreatedAtUtc, order.UpdatedAtUtc,
	)
	return err
}

// ListAll returns every order newest-first. The seq column breaks ties between
// equal created_at values so repeated reads never flap.
func (r *OrderRepository) ListAll(ctx context.Context) ([]models.Order, error) {
	query := `SELECT id, title, price, status, created_at, updated_at
	          FROM orders ORDER BY created_at DESC, seq DESC`

	rows, err := config.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []models.Order{}
	for rows.Next() {
		var o models.Order
		if err := rows.Scan(&o.ID, &o.Title, &o.Price, &o.Status, &o.CreatedAtUtc, &o.UpdatedAtUtc); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

func (r *OrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	query := `SELECT id, title, price, status, created_at, updated_at
	          FROM orders WHERE id = $1`

	var o models.Order
	err := config.DB.QueryRow(ctx, query, id).Scan(
		&o.ID, &o.Title, &o.Price, &o.Status, &o.CreatedAtUtc, &o.UpdatedAtUtc,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, models.ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// UpdateStatusFrom moves the order to next only while its current status is one
// of allowed. The guard runs inside a single UPDATE so two racing transitions
// against the same id cannot both win.
func (r *OrderRepository) UpdateStatusFrom(ctx context.Context, id uuid.UUID, next models.OrderStatus, updatedAt time.Time, allowed ...models.OrderStatus) (*models.Order, error) {
	states := make([]string, len(allowed))
	for i, s := range allowed {
		states[i] = string(s)
	}

	query := `
		UPDATE orders SET status = $2, updated_at = $3
		WHERE id = $1 AND status = ANY($4)
		RETURNING id, title, price, status, created_at, updated_at
	`
	var o models.Order
	err := config.DB.QueryRow(ctx, query, id, next, updatedAt, states).Scan(
		&o.ID, &o.Title, &o.Price, &o.Status, &o.CreatedAtUtc, &o.UpdatedAtUtc,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, models.ErrStatusNotAllowed
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}
