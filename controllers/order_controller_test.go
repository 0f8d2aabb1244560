package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"handyman-orders/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type stubWorkflow struct {
	listFn   func(ctx context.Context) ([]models.Order, error)
	createFn func(ctx context.Context, req models.CreateOrderRequest) (*models.Order, error)
	moveFn   func(ctx context.Context, id uuid.UUID) (*models.Order, error)
	paidFn   func(ctx context.Context, id uuid.UUID) (*models.Order, error)
}

func (s *stubWorkflow) ListOrders(ctx context.Context) ([]models.Order, error) {
	return s.listFn(ctx)
}

func (s *stubWorkflow) Create(ctx context.Context, req models.CreateOrderRequest) (*models.Order, error) {
	return s.createFn(ctx, req)
}

func (s *stubWorkflow) MoveToInProgress(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	return s.moveFn(ctx, id)
}

func (s *stubWorkflow) MarkPaid(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	return s.paidFn(ctx, id)
}

func newStubRouter(svc OrderWorkflow) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	orderCtrl := NewOrderController(svc)
	webhookCtrl := NewWebhookController(svc)
	router.GET("/orders", orderCtrl.GetOrders)
	router.POST("/orders", orderCtrl.CreateOrder)
	router.POST("/orders/:id/in-progress", orderCtrl.MoveToInProgress)
	router.POST("/webhooks/payment", webhookCtrl.PaymentWebhook)
	return router
}

func sampleOrder(title string, status models.OrderStatus) models.Order {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	return models.Order{
		ID:           uuid.New(),
		Title:        title,
		Price:        decimal.RequireFromString("150.00"),
		Status:       status,
		CreatedAtUtc: now,
		UpdatedAtUtc: now,
	}
}

func TestGetOrders(t *testing.T) {
	newest := sampleOrder("newest", models.StatusNew)
	oldest := sampleOrder("oldest", models.StatusPaid)
	router := newStubRouter(&stubWorkflow{
		listFn: func(ctx context.Context) ([]models.Order, error) {
			return []models.Order{newest, oldest}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/orders", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, `"newest"`) || !strings.Contains(body, `"oldest"`) {
		t.Errorf("body is missing orders: %s", body)
	}
	if strings.Index(body, "newest") > strings.Index(body, "oldest") {
		t.Errorf("expected service ordering to be preserved: %s", body)
	}
}

func TestCreateOrder(t *testing.T) {
	created := sampleOrder("Fix sink", models.StatusNew)
	router := newStubRouter(&stubWorkflow{
		createFn: func(ctx context.Context, req models.CreateOrderRequest) (*models.Order, error) {
			return &created, nil
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(`{"title":"Fix sink","price":150.00}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d (body %s)", rec.Code, rec.Body.String())
	}
	if loc := rec.Header().Get("Location"); loc != "/orders/"+created.ID.String() {
		t.Errorf("unexpected Location header %q", loc)
	}
	if !strings.Contains(rec.Body.String(), `"status":"New"`) {
		t.Errorf("expected created order in body, got %s", rec.Body.String())
	}
}

func TestCreateOrderInvalidBody(t *testing.T) {
	router := newStubRouter(&stubWorkflow{
		createFn: func(ctx context.Context, req models.CreateOrderRequest) (*models.Order, error) {
			t.Fatal("service must not be called for a malformed body")
			return nil, nil
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(`{not json`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestCreateOrderValidationError(t *testing.T) {
	router := newStubRouter(&stubWorkflow{
		createFn: func(ctx context.Context, req models.CreateOrderRequest) (*models.Order, error) {
			return nil, &models.ValidationError{Message: "Price must be > 0."}
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(`{"title":"Fix sink","price":-1}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Price must be > 0.") {
		t.Errorf("expected validation message in body, got %s", rec.Body.String())
	}
}

func TestMoveToInProgressEndpoint(t *testing.T) {
	updated := sampleOrder("Fix sink", models.StatusInProgress)
	router := newStubRouter(&stubWorkflow{
		moveFn: func(ctx context.Context, id uuid.UUID) (*models.Order, error) {
			return &updated, nil
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/orders/"+updated.ID.String()+"/in-progress", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"status":"InProgress"`) {
		t.Errorf("expected InProgress in body, got %s", rec.Body.String())
	}
}

func TestMoveToInProgressInvalidID(t *testing.T) {
	router := newStubRouter(&stubWorkflow{
		moveFn: func(ctx context.Context, id uuid.UUID) (*models.Order, error) {
			t.Fatal("service must not be called for a malformed id")
			return nil, nil
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/orders/not-a-uuid/in-progress", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestMoveToInProgressNotFound(t *testing.T) {
	router := newStubRouter(&stubWorkflow{
		moveFn: func(ctx context.Context, id uuid.UUID) (*models.Order, error) {
			return nil, models.ErrOrderNotFound
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/orders/"+uuid.NewString()+"/in-progress", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestMoveToInProgressConflict(t *testing.T) {
	router := newStubRouter(&stubWorkflow{
		moveFn: func(ctx context.Context, id uuid.UUID) (*models.Order, error) {
			return nil, &models.ConflictError{Current: models.StatusInProgress}
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/orders/"+uuid.NewString()+"/in-progress", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "InProgress") {
		t.Errorf("expected conflict message naming current status, got %s", rec.Body.String())
	}
}

func TestPaymentWebhookEndpoint(t *testing.T) {
	paid := sampleOrder("Fix sink", models.StatusPaid)
	router := newStubRouter(&stubWorkflow{
		paidFn: func(ctx context.Context, id uuid.UUID) (*models.Order, error) {
			if id != paid.ID {
				t.Errorf("service called with id %s, want %s", id, paid.ID)
			}
			return &paid, nil
		},
	})

	body := `{"orderId":"` + paid.ID.String() + `"}`
	req := httptest.NewRequest(http.MethodPost, "/webhooks/payment", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"status":"Paid"`) {
		t.Errorf("expected Paid in body, got %s", rec.Body.String())
	}
}

func TestPaymentWebhookUnknownOrder(t *testing.T) {
	router := newStubRouter(&stubWorkflow{
		paidFn: func(ctx context.Context, id uuid.UUID) (*models.Order, error) {
			return nil, models.ErrOrderNotFound
		},
	})

	body := `{"orderId":"` + uuid.NewString() + `"}`
	req := httptest.NewRequest(http.MethodPost, "/webhooks/payment", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
