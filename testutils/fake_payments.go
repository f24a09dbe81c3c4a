package testutils

import (
	"errors"

	"dancehub-backend/payments"

	stripe "github.com/stripe/stripe-go/v82"
)

// FakePayments implements payments.Client with overridable functions. Calls
// without an override return an error so a test never silently succeeds on a
// path it did not stub.
type FakePayments struct {
	GetSetupIntentFn             func(id string, stripeAccount string) (*stripe.SetupIntent, error)
	CreateDeferredSubscriptionFn func(p payments.DeferredSubscriptionParams) (*stripe.Subscription, error)
	GetSubscriptionFn            func(id string, stripeAccount string) (*stripe.Subscription, error)
	CancelSubscriptionFn         func(id string, stripeAccount string) error
	VoidInvoiceFn                func(id string, stripeAccount string) error
	DetachPaymentMethodFn        func(id string, stripeAccount string) error
	DeleteCustomerFn             func(id string, stripeAccount string) error
}

var errNotStubbed = errors.New("payments call not stubbed")

func (f *FakePayments) GetSetupIntent(id string, stripeAccount string) (*stripe.SetupIntent, error) {
	if f.GetSetupIntentFn == nil {
		return nil, errNotStubbed
	}
	return f.GetSetupIntentFn(id, stripeAccount)
}

func (f *FakePayments) CreateDeferredSubscription(p payments.DeferredSubscriptionParams) (*stripe.Subscription, error) {
	if f.CreateDeferredSubscriptionFn == nil {
		return nil, errNotStubbed
	}
	return f.CreateDeferredSubscriptionFn(p)
}

func (f *FakePayments) GetSubscription(id string, stripeAccount string) (*stripe.Subscription, error) {
	if f.GetSubscriptionFn == nil {
		return nil, errNotStubbed
	}
	return f.GetSubscriptionFn(id, stripeAccount)
}

func (f *FakePayments) CancelSubscription(id string, stripeAccount string) error {
	if f.CancelSubscriptionFn == nil {
		return errNotStubbed
	}
	return f.CancelSubscriptionFn(id, stripeAccount)
}

func (f *FakePayments) VoidInvoice(id string, stripeAccount string) error {
	if f.VoidInvoiceFn == nil {
		return errNotStubbed
	}
	return f.VoidInvoiceFn(id, stripeAccount)
}

func (f *FakePayments) DetachPaymentMethod(id string, stripeAccount string) error {
	if f.DetachPaymentMethodFn == nil {
		return errNotStubbed
	}
	return f.DetachPaymentMethodFn(id, stripeAccount)
}

func (f *FakePayments) DeleteCustomer(id string, stripeAccount string) error {
	if f.DeleteCustomerFn == nil {
		return errNotStubbed
	}
	return f.DeleteCustomerFn(id, stripeAccount)
}

// SwapPayments installs a fake client and returns a restore function.
func SwapPayments(fake payments.Client) func() {
	original := payments.Default
	payments.Default = fake
	return func() {
		payments.Default = original
	}
}
