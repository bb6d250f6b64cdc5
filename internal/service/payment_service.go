package service

import (
	"context"
	"errors"
	"time"

	"app/internal/model"
	"app/internal/pubsub"
	"app/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

var (
	ErrPaymentNotCompleted = errors.New("payment not completed")
	ErrOrderNotFound       = errors.New("order not found")
)

// CheckoutSessionInfo is the slice of a processor checkout session the
// completion flow needs. Keeping it behind SessionRetriever lets tests
// run without Stripe.
type CheckoutSessionInfo struct {
	ID            string
	PaymentStatus string
	CustomerEmail string
}

// SessionRetriever fetches checkout session state from the payment
// processor.
type SessionRetriever interface {
	RetrieveSession(ctx context.Context, sessionID string) (*CheckoutSessionInfo, error)
}

// ReadingArchiver persists a copy of a reading's content to object
// storage for download. Archiving is best-effort.
type ReadingArchiver interface {
	ArchiveReading(ctx context.Context, reading *model.Reading) (string, error)
}

// PaymentService verifies a returned checkout session, transitions the
// order to paid and delivers the generated reading. The paid transition
// and the reading insert commit in one transaction; a unique index on
// the order reference makes re-invocation (refresh, webhook retry)
// idempotent.
type PaymentService interface {
	CompletePayment(ctx context.Context, sessionID string) (string, error)
}

type paymentService struct {
	sessions    SessionRetriever
	orderRepo   repository.OrderRepository
	readingRepo repository.ReadingRepository
	serviceRepo repository.ServiceRepository
	publisher   pubsub.Publisher
	archiver    ReadingArchiver
	topic       string
	now         func() time.Time
	logger      zerolog.Logger
}

// NewPaymentService creates a PaymentService with a scoped logger.
// publisher and archiver may be nil; the corresponding post-commit
// steps are then skipped.
func NewPaymentService(
	sessions SessionRetriever,
	orderRepo repository.OrderRepository,
	readingRepo repository.ReadingRepository,
	serviceRepo repository.ServiceRepository,
	publisher pubsub.Publisher,
	archiver ReadingArchiver,
	topic string,
	logger zerolog.Logger,
) PaymentService {
	return &paymentService{
		sessions:    sessions,
		orderRepo:   orderRepo,
		readingRepo: readingRepo,
		serviceRepo: serviceRepo,
		publisher:   publisher,
		archiver:    archiver,
		topic:       topic,
		now:         time.Now,
		logger:      logger.With().Str("service", "PaymentService").Logger(),
	}
}

func (s *paymentService) CompletePayment(ctx context.Context, sessionID string) (string, error) {
	info, err := s.sessions.RetrieveSession(ctx, sessionID)
	if err != nil {
		s.logger.Error().Err(err).Str("session_id", sessionID).Msg("Failed to retrieve checkout session")
		return "", err
	}
	if info.PaymentStatus != "paid" {
		s.logger.Warn().Str("session_id", sessionID).Str("status", info.PaymentStatus).Msg("Completion requested for unpaid session")
		return "", ErrPaymentNotCompleted
	}

	order, err := s.orderRepo.GetByStripeSessionID(ctx, sessionID)
	if err != nil {
		s.logger.Error().Err(err).Str("session_id", sessionID).Msg("Failed to look up order")
		return "", err
	}
	if order == nil {
		return "", ErrOrderNotFound
	}

	// Re-invocation for an already-delivered order is a success, not a
	// second delivery.
	if order.Status == model.OrderStatusPaid {
		existing, err := s.readingRepo.GetByOrderID(ctx, order.ID)
		if err != nil {
			return "", err
		}
		if existing != nil {
			s.logger.Info().Str("order_id", order.ID).Msg("Completion replay, reading already delivered")
			return "Payment already processed", nil
		}
		// Paid order without a reading would violate the delivery
		// invariant; fall through and repair it.
		s.logger.Warn().Str("order_id", order.ID).Msg("Paid order missing its reading, regenerating")
	}

	svc, err := s.serviceRepo.GetByID(ctx, order.ServiceID)
	if err != nil {
		s.logger.Error().Err(err).Str("service_id", order.ServiceID).Msg("Failed to fetch service for reading generation")
		return "", err
	}
	if svc == nil {
		return "", ErrServiceNotFound
	}

	now := s.now()
	title, content := generateReading(svc.Name, info.CustomerEmail, now)
	readingType := svc.Category
	if readingType == "" {
		readingType = "general"
	}
	reading := &model.Reading{
		ID:          uuid.NewString(),
		UserID:      order.UserID,
		ServiceID:   order.ServiceID,
		OrderID:     order.ID,
		Title:       title,
		Content:     content,
		ReadingType: readingType,
		Metadata: model.ReadingMetadata{
			OrderID:     order.ID,
			SessionID:   sessionID,
			GeneratedAt: now,
		},
	}

	if err := s.orderRepo.MarkPaidWithReading(ctx, order.ID, reading); err != nil {
		if errors.Is(err, repository.ErrDuplicateReading) {
			s.logger.Info().Str("order_id", order.ID).Msg("Concurrent completion already delivered the reading")
			return "Payment already processed", nil
		}
		s.logger.Error().Err(err).Str("order_id", order.ID).Msg("Failed to complete order")
		return "", err
	}
	s.logger.Info().Str("order_id", order.ID).Str("reading_id", reading.ID).Msg("Payment processed and reading delivered")

	s.afterDelivery(ctx, reading)
	return "Payment processed and reading delivered", nil
}

// afterDelivery runs the best-effort post-commit steps: archive upload
// and the reading.created event. Failures are logged, never surfaced;
// both artifacts are re-creatable from the stored row.
func (s *paymentService) afterDelivery(ctx context.Context, reading *model.Reading) {
	if s.archiver != nil {
		if _, err := s.archiver.ArchiveReading(ctx, reading); err != nil {
			s.logger.Warn().Err(err).Str("reading_id", reading.ID).Msg("Failed to archive reading content")
		}
	}
	if s.publisher != nil {
		event := pubsub.ReadingCreatedEvent{
			ReadingID: reading.ID,
			UserID:    reading.UserID,
			ServiceID: reading.ServiceID,
			OrderID:   reading.OrderID,
			Title:     reading.Title,
		}
		if _, err := s.publisher.PublishReadingCreated(ctx, s.topic, event); err != nil {
			s.logger.Warn().Err(err).Str("reading_id", reading.ID).Msg("Failed to publish reading.created event")
		}
	}
}
