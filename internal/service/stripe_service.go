package service

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"app/internal/config"

	"github.com/rs/zerolog"
	"github.com/stripe/stripe-go/v82"
	checkoutsession "github.com/stripe/stripe-go/v82/checkout/session"
	subscriptionpkg "github.com/stripe/stripe-go/v82/subscription"
	"github.com/stripe/stripe-go/v82/webhook"
)

// StripeService manages Stripe integration: session retrieval for the
// payment completion flow and webhook event processing.
type StripeService struct {
	cfg        *config.Config
	paymentSvc PaymentService
	subSvc     SubscriptionService
	logger     zerolog.Logger
}

// NewStripeService initializes the Stripe key and returns the service
// with a scoped logger. The payment service is attached afterwards with
// SetPaymentService: it consumes this service as its session retriever,
// so the two cannot be constructed in one pass.
func NewStripeService(cfg *config.Config, subSvc SubscriptionService, logger zerolog.Logger) *StripeService {
	stripe.Key = cfg.StripeSecretKey
	lg := logger.With().Str("service", "StripeService").Logger()
	return &StripeService{cfg: cfg, subSvc: subSvc, logger: lg}
}

// SetPaymentService wires the completion flow used by payment-mode
// webhook events.
func (s *StripeService) SetPaymentService(p PaymentService) {
	s.paymentSvc = p
}

// RetrieveSession fetches a checkout session from Stripe and reduces it
// to the fields the completion flow needs.
func (s *StripeService) RetrieveSession(ctx context.Context, sessionID string) (*CheckoutSessionInfo, error) {
	sess, err := checkoutsession.Get(sessionID, &stripe.CheckoutSessionParams{
		Params: stripe.Params{Context: ctx},
	})
	if err != nil {
		s.logger.Error().Err(err).Str("session_id", sessionID).Msg("Failed to retrieve checkout session from Stripe")
		return nil, err
	}
	info := &CheckoutSessionInfo{
		ID:            sess.ID,
		PaymentStatus: string(sess.PaymentStatus),
	}
	if sess.CustomerDetails != nil && sess.CustomerDetails.Email != "" {
		info.CustomerEmail = sess.CustomerDetails.Email
	} else {
		info.CustomerEmail = sess.CustomerEmail
	}
	return info, nil
}

// subscriptionPeriod extracts the plan price ID and current billing
// window from a subscription's first item.
func subscriptionPeriod(sub *stripe.Subscription) (planID string, start, end time.Time, err error) {
	if len(sub.Items.Data) == 0 {
		return "", time.Time{}, time.Time{}, errors.New("subscription has no items")
	}
	item := sub.Items.Data[0]
	if item.Price == nil || item.Price.ID == "" {
		return "", time.Time{}, time.Time{}, errors.New("subscription item has no price")
	}
	return item.Price.ID, time.Unix(item.CurrentPeriodStart, 0), time.Unix(item.CurrentPeriodEnd, 0), nil
}

// HandleWebhook processes Stripe webhook events.
func (s *StripeService) HandleWebhook(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(r.Body)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to read Stripe webhook payload")
		http.Error(w, "failed to read payload", http.StatusBadRequest)
		return
	}
	sig := r.Header.Get("Stripe-Signature")
	event, err := webhook.ConstructEvent(payload, sig, s.cfg.StripeWebhookSecret)
	if err != nil {
		s.logger.Error().Err(err).Msg("Signature verification failed for Stripe webhook")
		http.Error(w, "signature verification failed", http.StatusBadRequest)
		return
	}
	s.logger.Info().Str("event_type", string(event.Type)).Msg("Stripe webhook received")
	s.logger.Debug().Str("event_type", string(event.Type)).RawJSON("payload", event.Data.Raw).Msg("Webhook payload received")

	ctx := r.Context()
	switch event.Type {
	case "checkout.session.completed":
		var cs stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &cs); err != nil {
			s.logger.Error().Err(err).Msg("Invalid checkout.session data")
			http.Error(w, "invalid checkout.session data", http.StatusBadRequest)
			return
		}
		if cs.Mode == stripe.CheckoutSessionModePayment {
			s.handlePaymentCompleted(ctx, w, cs.ID)
			return
		}
		s.handleSubscriptionCompleted(ctx, w, &cs)
		return
	case "customer.subscription.updated":
		var ss stripe.Subscription
		if err := json.Unmarshal(event.Data.Raw, &ss); err != nil {
			s.logger.Error().Err(err).Msg("Invalid customer.subscription.updated payload")
			http.Error(w, "invalid subscription data", http.StatusBadRequest)
			return
		}
		userID := ss.Metadata["user_id"]
		if userID == "" {
			s.logger.Error().Str("subscription_id", ss.ID).Msg("Missing user_id in subscription metadata")
			http.Error(w, "missing user_id in metadata", http.StatusBadRequest)
			return
		}
		// Mark as 'cancelled' if scheduled to cancel or already canceled.
		status := string(ss.Status)
		if ss.CancelAtPeriodEnd || ss.Status == stripe.SubscriptionStatusCanceled {
			status = "cancelled"
		}
		planID, start, end, err := subscriptionPeriod(&ss)
		if err != nil {
			s.logger.Error().Err(err).Str("subscription_id", ss.ID).Msg("Could not determine plan from subscription")
			http.Error(w, "could not determine plan from subscription", http.StatusBadRequest)
			return
		}
		if plan := ss.Metadata["plan"]; plan != "" {
			planID = plan
		}
		if err := s.subSvc.UpsertStripeSubscription(ctx, userID, planID, start, end, status, ss.ID); err != nil {
			s.logger.Error().Err(err).Str("user_id", userID).Msg("Failed to update subscription on customer.subscription.updated")
			http.Error(w, "failed to update subscription", http.StatusInternalServerError)
			return
		}
	case "customer.subscription.deleted":
		var ss stripe.Subscription
		if err := json.Unmarshal(event.Data.Raw, &ss); err != nil {
			s.logger.Error().Err(err).Msg("Invalid customer.subscription.deleted payload")
			http.Error(w, "invalid subscription data", http.StatusBadRequest)
			return
		}
		userID := ss.Metadata["user_id"]
		if userID == "" {
			s.logger.Error().Str("subscription_id", ss.ID).Msg("Missing user_id in subscription metadata")
			http.Error(w, "missing user_id in metadata", http.StatusBadRequest)
			return
		}
		if err := s.subSvc.CancelSubscription(ctx, userID); err != nil {
			s.logger.Error().Err(err).Str("user_id", userID).Msg("Failed to cancel subscription on customer.subscription.deleted")
			http.Error(w, "failed to cancel subscription", http.StatusInternalServerError)
			return
		}
	default:
		s.logger.Debug().Str("event_type", string(event.Type)).Msg("Unhandled Stripe event type")
	}
	w.WriteHeader(http.StatusOK)
}

// handlePaymentCompleted runs the one-time purchase delivery for a
// payment-mode session. Replays are fine; completion is idempotent.
func (s *StripeService) handlePaymentCompleted(ctx context.Context, w http.ResponseWriter, sessionID string) {
	if _, err := s.paymentSvc.CompletePayment(ctx, sessionID); err != nil {
		switch {
		case errors.Is(err, ErrPaymentNotCompleted):
			// Session completed without a captured payment, e.g.
			// delayed payment methods. Stripe will send another event.
			s.logger.Info().Str("session_id", sessionID).Msg("Checkout completed but payment not captured yet")
			w.WriteHeader(http.StatusOK)
		case errors.Is(err, ErrOrderNotFound):
			s.logger.Error().Str("session_id", sessionID).Msg("No order recorded for completed session")
			http.Error(w, "order not found", http.StatusBadRequest)
		default:
			s.logger.Error().Err(err).Str("session_id", sessionID).Msg("Failed to complete payment from webhook")
			http.Error(w, "failed to complete payment", http.StatusInternalServerError)
		}
		return
	}
	w.WriteHeader(http.StatusOK)
}

// handleSubscriptionCompleted records the plan a subscription-mode
// checkout session created.
func (s *StripeService) handleSubscriptionCompleted(ctx context.Context, w http.ResponseWriter, cs *stripe.CheckoutSession) {
	userID := cs.Metadata["user_id"]
	if userID == "" {
		s.logger.Error().Str("session_id", cs.ID).Msg("Missing user_id in checkout session metadata")
		http.Error(w, "missing user_id in metadata", http.StatusBadRequest)
		return
	}
	if cs.Subscription == nil || cs.Subscription.ID == "" {
		s.logger.Error().Str("session_id", cs.ID).Msg("Subscription session completed without a subscription")
		http.Error(w, "missing subscription on session", http.StatusBadRequest)
		return
	}
	subID := cs.Subscription.ID

	// Fetch the full subscription object for timing and price details.
	subObj, err := subscriptionpkg.Get(subID, nil)
	if err != nil {
		s.logger.Error().Err(err).Str("subscription_id", subID).Msg("Failed to fetch subscription details")
		http.Error(w, "failed to fetch subscription details", http.StatusInternalServerError)
		return
	}
	planID, start, end, err := subscriptionPeriod(subObj)
	if err != nil {
		s.logger.Error().Err(err).Str("subscription_id", subID).Msg("Could not determine plan from subscription")
		http.Error(w, "could not determine plan from subscription", http.StatusInternalServerError)
		return
	}
	if plan := cs.Metadata["plan"]; plan != "" {
		planID = plan
	}
	s.logger.Info().Str("subscription_id", subID).Str("plan_id", planID).Str("user_id", userID).Msg("Recording subscription from checkout session")

	if err := s.subSvc.UpsertStripeSubscription(ctx, userID, planID, start, end, "active", subID); err != nil {
		s.logger.Error().Err(err).Msg("Failed to save subscription on checkout.session.completed")
		http.Error(w, "failed to save subscription", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}
