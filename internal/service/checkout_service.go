package service

import (
	"context"
	"errors"
	"strings"

	"app/internal/config"
	"app/internal/model"
	"app/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stripe/stripe-go/v82"
	checkoutsession "github.com/stripe/stripe-go/v82/checkout/session"
)

var (
	ErrServiceNotFound  = errors.New("service not found")
	ErrServiceNotActive = errors.New("service is not active")
	ErrServiceFree      = errors.New("service is free, nothing to charge")
	ErrUnknownPlan      = errors.New("invalid plan")
)

// CheckoutService dispatches a selected service to the right payment
// flow: recurring offerings go through subscription checkout, one-time
// purchases through a single payment session with a pending order row.
type CheckoutService interface {
	Checkout(ctx context.Context, userID, serviceID string) (string, error)
	SubscriptionCheckout(ctx context.Context, userID, plan string) (string, error)
}

type checkoutService struct {
	cfg         *config.Config
	serviceRepo repository.ServiceRepository
	orderRepo   repository.OrderRepository
	logger      zerolog.Logger
}

// NewCheckoutService initializes the Stripe key and returns the
// service with a scoped logger.
func NewCheckoutService(cfg *config.Config, serviceRepo repository.ServiceRepository, orderRepo repository.OrderRepository, logger zerolog.Logger) CheckoutService {
	stripe.Key = cfg.StripeSecretKey
	return &checkoutService{
		cfg:         cfg,
		serviceRepo: serviceRepo,
		orderRepo:   orderRepo,
		logger:      logger.With().Str("service", "CheckoutService").Logger(),
	}
}

// isRecurring reports whether a service bills monthly rather than as a
// one-time purchase.
func isRecurring(svc *model.Service) bool {
	return svc.Category == model.CategoryMonthly || strings.Contains(strings.ToLower(svc.Name), "monthly")
}

// planForService maps a recurring offering's name to its plan keyword.
func planForService(name string) string {
	lower := strings.ToLower(name)
	switch {
	case strings.Contains(lower, "moon"):
		return "moon_guide"
	case strings.Contains(lower, "calendar"):
		return "astro_calendar"
	case strings.Contains(lower, "couple"):
		return "couples"
	default:
		return "base"
	}
}

func (s *checkoutService) Checkout(ctx context.Context, userID, serviceID string) (string, error) {
	svc, err := s.serviceRepo.GetByID(ctx, serviceID)
	if err != nil {
		s.logger.Error().Err(err).Str("service_id", serviceID).Msg("Failed to fetch service for checkout")
		return "", err
	}
	if svc == nil {
		return "", ErrServiceNotFound
	}
	if !svc.IsActive {
		return "", ErrServiceNotActive
	}
	if !svc.IsPremium {
		return "", ErrServiceFree
	}

	if isRecurring(svc) {
		return s.SubscriptionCheckout(ctx, userID, planForService(svc.Name))
	}
	return s.oneTimeCheckout(ctx, userID, svc)
}

func (s *checkoutService) oneTimeCheckout(ctx context.Context, userID string, svc *model.Service) (string, error) {
	params := &stripe.CheckoutSessionParams{
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems: []*stripe.CheckoutSessionLineItemParams{{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:   stripe.String("usd"),
				UnitAmount: stripe.Int64(svc.PriceCredits),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String(svc.Name),
				},
			},
			Quantity: stripe.Int64(1),
		}},
		SuccessURL: stripe.String(s.cfg.SiteURL + "/payment-success?session_id={CHECKOUT_SESSION_ID}"),
		CancelURL:  stripe.String(s.cfg.SiteURL + "/services"),
		Metadata:   map[string]string{"user_id": userID, "service_id": svc.ID},
	}
	sess, err := checkoutsession.New(params)
	if err != nil {
		s.logger.Error().Err(err).Str("service_id", svc.ID).Msg("Failed to create one-time checkout session")
		return "", err
	}

	order := &model.Order{
		ID:              uuid.NewString(),
		UserID:          userID,
		ServiceID:       svc.ID,
		StripeSessionID: sess.ID,
		AmountCredits:   svc.PriceCredits,
		Status:          model.OrderStatusPending,
	}
	if err := s.orderRepo.Create(ctx, order); err != nil {
		s.logger.Error().Err(err).Str("stripe_session_id", sess.ID).Msg("Failed to record pending order")
		return "", err
	}
	s.logger.Info().Str("order_id", order.ID).Str("service_id", svc.ID).Int64("amount", svc.PriceCredits).Msg("One-time checkout session created")
	return sess.URL, nil
}

func (s *checkoutService) SubscriptionCheckout(ctx context.Context, userID, plan string) (string, error) {
	var priceID string
	switch plan {
	case "moon_guide":
		priceID = s.cfg.StripePriceMoonGuide
	case "astro_calendar":
		priceID = s.cfg.StripePriceAstroCalendar
	case "couples":
		priceID = s.cfg.StripePriceCouples
	case "base":
		priceID = s.cfg.StripePriceBase
	default:
		return "", ErrUnknownPlan
	}

	params := &stripe.CheckoutSessionParams{
		Mode:               stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems: []*stripe.CheckoutSessionLineItemParams{{
			Price:    stripe.String(priceID),
			Quantity: stripe.Int64(1),
		}},
		SuccessURL: stripe.String(s.cfg.SiteURL + "/payment-success?session_id={CHECKOUT_SESSION_ID}"),
		CancelURL:  stripe.String(s.cfg.SiteURL + "/services"),
		Metadata:   map[string]string{"user_id": userID, "plan": plan},
		// Copied onto the subscription object so later webhook events
		// can be resolved back to the user.
		SubscriptionData: &stripe.CheckoutSessionSubscriptionDataParams{
			Metadata: map[string]string{"user_id": userID, "plan": plan},
		},
	}
	sess, err := checkoutsession.New(params)
	if err != nil {
		s.logger.Error().Err(err).Str("plan", plan).Msg("Failed to create subscription checkout session")
		return "", err
	}
	s.logger.Info().Str("plan", plan).Str("user_id", userID).Msg("Subscription checkout session created")
	return sess.URL, nil
}
