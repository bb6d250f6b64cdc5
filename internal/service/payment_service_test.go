package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"app/internal/model"
	"app/internal/repository"

	"github.com/rs/zerolog"
)

type fakeSessions struct {
	sessions map[string]*CheckoutSessionInfo
}

func (f *fakeSessions) RetrieveSession(_ context.Context, id string) (*CheckoutSessionInfo, error) {
	if s, ok := f.sessions[id]; ok {
		return s, nil
	}
	return &CheckoutSessionInfo{ID: id, PaymentStatus: "unpaid"}, nil
}

type fakeOrderStore struct {
	orders   map[string]*model.Order // keyed by stripe session ID
	readings map[string]*model.Reading
}

func newFakeOrderStore() *fakeOrderStore {
	return &fakeOrderStore{
		orders:   make(map[string]*model.Order),
		readings: make(map[string]*model.Reading),
	}
}

func (f *fakeOrderStore) Create(_ context.Context, o *model.Order) error {
	f.orders[o.StripeSessionID] = o
	return nil
}

func (f *fakeOrderStore) GetByStripeSessionID(_ context.Context, sessionID string) (*model.Order, error) {
	return f.orders[sessionID], nil
}

func (f *fakeOrderStore) MarkPaidWithReading(_ context.Context, orderID string, reading *model.Reading) error {
	if _, exists := f.readings[orderID]; exists {
		return repository.ErrDuplicateReading
	}
	for _, o := range f.orders {
		if o.ID == orderID {
			o.Status = model.OrderStatusPaid
		}
	}
	f.readings[orderID] = reading
	return nil
}

func (f *fakeOrderStore) GetByOrderID(_ context.Context, orderID string) (*model.Reading, error) {
	return f.readings[orderID], nil
}

func (f *fakeOrderStore) GetByID(_ context.Context, id, userID string) (*model.Reading, error) {
	for _, r := range f.readings {
		if r.ID == id && r.UserID == userID {
			return r, nil
		}
	}
	return nil, nil
}

func (f *fakeOrderStore) ListByUser(_ context.Context, userID string) ([]model.Reading, error) {
	var out []model.Reading
	for _, r := range f.readings {
		if r.UserID == userID {
			out = append(out, *r)
		}
	}
	return out, nil
}

type fakeServiceRepo struct {
	services map[string]*model.Service
}

func (f *fakeServiceRepo) ListActive(_ context.Context, _, _ string) ([]model.Service, error) {
	var out []model.Service
	for _, s := range f.services {
		out = append(out, *s)
	}
	return out, nil
}

func (f *fakeServiceRepo) GetByID(_ context.Context, id string) (*model.Service, error) {
	return f.services[id], nil
}

func newTestPaymentService(sessions SessionRetriever, store *fakeOrderStore, services *fakeServiceRepo) *paymentService {
	svc := NewPaymentService(sessions, store, store, services, nil, nil, "", zerolog.Nop()).(*paymentService)
	svc.now = func() time.Time { return time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC) }
	return svc
}

func TestCompletePaymentDeliversReading(t *testing.T) {
	store := newFakeOrderStore()
	services := &fakeServiceRepo{services: map[string]*model.Service{
		"svc-1": {ID: "svc-1", Name: "Love Compatibility Reading", Category: model.CategoryCompatibility, IsPremium: true, IsActive: true, PriceCredits: 499},
	}}
	store.orders["sess_123"] = &model.Order{
		ID: "ord-1", UserID: "user-1", ServiceID: "svc-1",
		StripeSessionID: "sess_123", AmountCredits: 499,
		Status: model.OrderStatusPending,
	}
	sessions := &fakeSessions{sessions: map[string]*CheckoutSessionInfo{
		"sess_123": {ID: "sess_123", PaymentStatus: "paid", CustomerEmail: "star@example.com"},
	}}
	svc := newTestPaymentService(sessions, store, services)

	msg, err := svc.CompletePayment(context.Background(), "sess_123")
	if err != nil {
		t.Fatalf("CompletePayment returned error: %v", err)
	}
	if msg != "Payment processed and reading delivered" {
		t.Errorf("unexpected message: %q", msg)
	}

	order := store.orders["sess_123"]
	if order.Status != model.OrderStatusPaid {
		t.Errorf("order status = %q, want paid", order.Status)
	}
	reading := store.readings["ord-1"]
	if reading == nil {
		t.Fatal("no reading delivered for order")
	}
	if reading.Metadata.SessionID != "sess_123" {
		t.Errorf("reading metadata session = %q, want sess_123", reading.Metadata.SessionID)
	}
	if reading.UserID != "user-1" || reading.ServiceID != "svc-1" {
		t.Errorf("reading ownership = (%q, %q), want (user-1, svc-1)", reading.UserID, reading.ServiceID)
	}
	if reading.ReadingType != model.CategoryCompatibility {
		t.Errorf("reading type = %q, want %q", reading.ReadingType, model.CategoryCompatibility)
	}
}

func TestCompletePaymentIsIdempotent(t *testing.T) {
	store := newFakeOrderStore()
	services := &fakeServiceRepo{services: map[string]*model.Service{
		"svc-1": {ID: "svc-1", Name: "Love Compatibility Reading", Category: model.CategoryCompatibility, IsPremium: true, IsActive: true, PriceCredits: 499},
	}}
	store.orders["sess_123"] = &model.Order{
		ID: "ord-1", UserID: "user-1", ServiceID: "svc-1",
		StripeSessionID: "sess_123", Status: model.OrderStatusPending,
	}
	sessions := &fakeSessions{sessions: map[string]*CheckoutSessionInfo{
		"sess_123": {ID: "sess_123", PaymentStatus: "paid", CustomerEmail: "star@example.com"},
	}}
	svc := newTestPaymentService(sessions, store, services)

	if _, err := svc.CompletePayment(context.Background(), "sess_123"); err != nil {
		t.Fatalf("first completion failed: %v", err)
	}
	first := store.readings["ord-1"]

	msg, err := svc.CompletePayment(context.Background(), "sess_123")
	if err != nil {
		t.Fatalf("second completion failed: %v", err)
	}
	if msg != "Payment already processed" {
		t.Errorf("replay message = %q, want %q", msg, "Payment already processed")
	}
	if len(store.readings) != 1 {
		t.Fatalf("replay created a second reading, have %d", len(store.readings))
	}
	if store.readings["ord-1"].ID != first.ID {
		t.Error("replay replaced the original reading")
	}
}

func TestCompletePaymentUnknownSession(t *testing.T) {
	store := newFakeOrderStore()
	services := &fakeServiceRepo{services: map[string]*model.Service{}}
	sessions := &fakeSessions{sessions: map[string]*CheckoutSessionInfo{
		"sess_unknown": {ID: "sess_unknown", PaymentStatus: "paid"},
	}}
	svc := newTestPaymentService(sessions, store, services)

	_, err := svc.CompletePayment(context.Background(), "sess_unknown")
	if !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("error = %v, want ErrOrderNotFound", err)
	}
	if len(store.readings) != 0 {
		t.Error("reading created for unknown session")
	}
}

func TestCompletePaymentUnpaidSession(t *testing.T) {
	store := newFakeOrderStore()
	store.orders["sess_123"] = &model.Order{
		ID: "ord-1", UserID: "user-1", ServiceID: "svc-1",
		StripeSessionID: "sess_123", Status: model.OrderStatusPending,
	}
	services := &fakeServiceRepo{services: map[string]*model.Service{}}
	sessions := &fakeSessions{sessions: map[string]*CheckoutSessionInfo{
		"sess_123": {ID: "sess_123", PaymentStatus: "unpaid"},
	}}
	svc := newTestPaymentService(sessions, store, services)

	_, err := svc.CompletePayment(context.Background(), "sess_123")
	if !errors.Is(err, ErrPaymentNotCompleted) {
		t.Fatalf("error = %v, want ErrPaymentNotCompleted", err)
	}
	if store.orders["sess_123"].Status != model.OrderStatusPending {
		t.Error("order transitioned despite unpaid session")
	}
	if len(store.readings) != 0 {
		t.Error("reading created for unpaid session")
	}
}

func TestCompletePaymentMonthlyCalendarContent(t *testing.T) {
	store := newFakeOrderStore()
	services := &fakeServiceRepo{services: map[string]*model.Service{
		"svc-cal": {ID: "svc-cal", Name: "Monthly Astro Calendar", Category: model.CategoryMonthly, IsPremium: true, IsActive: true, PriceCredits: 799},
	}}
	store.orders["sess_cal"] = &model.Order{
		ID: "ord-cal", UserID: "user-1", ServiceID: "svc-cal",
		StripeSessionID: "sess_cal", Status: model.OrderStatusPending,
	}
	sessions := &fakeSessions{sessions: map[string]*CheckoutSessionInfo{
		"sess_cal": {ID: "sess_cal", PaymentStatus: "paid", CustomerEmail: "star@example.com"},
	}}
	svc := newTestPaymentService(sessions, store, services)

	if _, err := svc.CompletePayment(context.Background(), "sess_cal"); err != nil {
		t.Fatalf("CompletePayment returned error: %v", err)
	}
	reading := store.readings["ord-cal"]
	if reading == nil {
		t.Fatal("no reading delivered")
	}
	if reading.Title != "March Astro Calendar" {
		t.Errorf("title = %q, want %q", reading.Title, "March Astro Calendar")
	}
}
