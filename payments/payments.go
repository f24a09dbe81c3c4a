package payments

import (
	"os"

	stripe "github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/customer"
	"github.com/stripe/stripe-go/v82/invoice"
	"github.com/stripe/stripe-go/v82/paymentmethod"
	"github.com/stripe/stripe-go/v82/setupintent"
	"github.com/stripe/stripe-go/v82/subscription"
)

// Client covers the payment-processor calls the membership flows need.
// Handlers go through Default so tests can swap in a fake without touching
// the network.
type Client interface {
	GetSetupIntent(id string, stripeAccount string) (*stripe.SetupIntent, error)
	CreateDeferredSubscription(p DeferredSubscriptionParams) (*stripe.Subscription, error)
	GetSubscription(id string, stripeAccount string) (*stripe.Subscription, error)
	CancelSubscription(id string, stripeAccount string) error
	VoidInvoice(id string, stripeAccount string) error
	DetachPaymentMethod(id string, stripeAccount string) error
	DeleteCustomer(id string, stripeAccount string) error
}

// DeferredSubscriptionParams describes a subscription whose first invoice is
// deferred to BillingCycleAnchor (unix seconds). No charge is attempted at
// creation time.
type DeferredSubscriptionParams struct {
	Customer           string
	Price              string
	PaymentMethod      string
	BillingCycleAnchor int64
	PlatformFeePercent float64
	StripeAccount      string
}

// Default is the live Stripe-backed client.
var Default Client = &stripeClient{}

type stripeClient struct{}

func (s *stripeClient) GetSetupIntent(id string, stripeAccount string) (*stripe.SetupIntent, error) {
	stripe.Key = os.Getenv("STRIPE_SECRET_KEY")

	params := &stripe.SetupIntentParams{}
	if stripeAccount != "" {
		params.SetStripeAccount(stripeAccount)
	}
	return setupintent.Get(id, params)
}

func (s *stripeClient) CreateDeferredSubscription(p DeferredSubscriptionParams) (*stripe.Subscription, error) {
	stripe.Key = os.Getenv("STRIPE_SECRET_KEY")

	params := &stripe.SubscriptionParams{
		Customer: stripe.String(p.Customer),
		Items: []*stripe.SubscriptionItemsParams{
			{Price: stripe.String(p.Price)},
		},
		DefaultPaymentMethod: stripe.String(p.PaymentMethod),
		BillingCycleAnchor:   stripe.Int64(p.BillingCycleAnchor),
		ProrationBehavior:    stripe.String("none"),
		PaymentBehavior:      stripe.String("default_incomplete"),
	}
	if p.PlatformFeePercent > 0 {
		params.ApplicationFeePercent = stripe.Float64(p.PlatformFeePercent)
	}
	if p.StripeAccount != "" {
		params.SetStripeAccount(p.StripeAccount)
	}
	return subscription.New(params)
}

func (s *stripeClient) GetSubscription(id string, stripeAccount string) (*stripe.Subscription, error) {
	stripe.Key = os.Getenv("STRIPE_SECRET_KEY")

	params := &stripe.SubscriptionParams{}
	if stripeAccount != "" {
		params.SetStripeAccount(stripeAccount)
	}
	return subscription.Get(id, params)
}

func (s *stripeClient) CancelSubscription(id string, stripeAccount string) error {
	stripe.Key = os.Getenv("STRIPE_SECRET_KEY")

	params := &stripe.SubscriptionCancelParams{
		Prorate: stripe.Bool(false),
	}
	if stripeAccount != "" {
		params.SetStripeAccount(stripeAccount)
	}
	_, err := subscription.Cancel(id, params)
	return err
}

func (s *stripeClient) VoidInvoice(id string, stripeAccount string) error {
	stripe.Key = os.Getenv("STRIPE_SECRET_KEY")

	params := &stripe.InvoiceVoidInvoiceParams{}
	if stripeAccount != "" {
		params.SetStripeAccount(stripeAccount)
	}
	_, err := invoice.VoidInvoice(id, params)
	return err
}

func (s *stripeClient) DetachPaymentMethod(id string, stripeAccount string) error {
	stripe.Key = os.Getenv("STRIPE_SECRET_KEY")

	params := &stripe.PaymentMethodDetachParams{}
	if stripeAccount != "" {
		params.SetStripeAccount(stripeAccount)
	}
	_, err := paymentmethod.Detach(id, params)
	return err
}

func (s *stripeClient) DeleteCustomer(id string, stripeAccount string) error {
	stripe.Key = os.Getenv("STRIPE_SECRET_KEY")

	params := &stripe.CustomerParams{}
	if stripeAccount != "" {
		params.SetStripeAccount(stripeAccount)
	}
	_, err := customer.Del(id, params)
	return err
}
