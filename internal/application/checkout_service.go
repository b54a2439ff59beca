package application

import (
	"errors"
	"math"

	"github.com/sirupsen/logrus"
	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"

	"github.com/wastewise/wastewise-api/internal/domain/entity"
	repo "github.com/wastewise/wastewise-api/internal/domain/repository"
)

var ErrNoCheckoutItems = errors.New("at least one item is required")

// toCents converts a dollar price to the integer cents Stripe expects.
// Rounded, not truncated: 49.99*100 is 4998.999... in float64.
func toCents(price float64) int64 {
	return int64(math.Round(price * 100))
}

// CheckoutService creates Stripe Checkout sessions for one-off payments and
// records the resulting orders.
type CheckoutService struct {
	Repo       repo.CheckoutRepository
	Stripe     *client.API
	SuccessURL string
	CancelURL  string
	Logger     *logrus.Logger
}

func NewCheckoutService(r repo.CheckoutRepository, stripeKey, successURL, cancelURL string, logger *logrus.Logger) *CheckoutService {
	sc := &client.API{}
	sc.Init(stripeKey, nil)
	return &CheckoutService{
		Repo:       r,
		Stripe:     sc,
		SuccessURL: successURL,
		CancelURL:  cancelURL,
		Logger:     logger,
	}
}

// CreateSession opens a card checkout session for the items and persists the
// order with the session id. Returns the hosted checkout URL.
func (s *CheckoutService) CreateSession(userID string, items []entity.CheckoutItem) (string, error) {
	if len(items) == 0 {
		return "", ErrNoCheckoutItems
	}

	lineItems := make([]*stripe.CheckoutSessionLineItemParams, 0, len(items))
	total := 0.0
	for _, item := range items {
		lineItems = append(lineItems, &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency: stripe.String(string(stripe.CurrencyUSD)),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String(item.Name),
				},
				UnitAmount: stripe.Int64(toCents(item.Price)),
			},
			Quantity: stripe.Int64(1),
		})
		total += item.Price
	}

	params := &stripe.CheckoutSessionParams{
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems:          lineItems,
		SuccessURL:         stripe.String(s.SuccessURL),
		CancelURL:          stripe.String(s.CancelURL),
	}

	sess, err := s.Stripe.CheckoutSessions.New(params)
	if err != nil {
		s.Logger.WithError(err).Error("stripe checkout session failed")
		return "", err
	}

	order := &entity.CheckoutOrder{
		UserID:        userID,
		Items:         items,
		TotalAmount:   total,
		PaymentStatus: "completed",
		SessionID:     sess.ID,
	}
	if err := s.Repo.Create(order); err != nil {
		return "", err
	}
	return sess.URL, nil
}

func (s *CheckoutService) GetAll() ([]*entity.CheckoutOrder, error) {
	return s.Repo.GetAll()
}
