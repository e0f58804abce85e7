package checkout_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/buynothing-checkout/internal/checkout"
	mocks "github.com/SergeyBogomolovv/buynothing-checkout/internal/checkout/mocks"
	"github.com/SergeyBogomolovv/buynothing-checkout/internal/entities"
	"github.com/SergeyBogomolovv/buynothing-checkout/internal/gateway"
	gatewayMocks "github.com/SergeyBogomolovv/buynothing-checkout/internal/gateway/mocks"
	"github.com/SergeyBogomolovv/buynothing-checkout/internal/mailbox"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	waitFor = 2 * time.Second
	tick    = 10 * time.Millisecond
)

var (
	product = entities.Product{
		ID:       "p1",
		Name:     "Pure Nothing",
		Price:    decimal.RequireFromString("9.99"),
		Category: entities.CategoryPremium,
	}
	customer     = entities.CustomerDetails{Name: "Ada", Email: "ada@x.io"}
	confirmation = entities.OrderConfirmation{
		OrderNumber:   "ON-1",
		Product:       "Pure Nothing",
		ProductID:     "p1",
		Amount:        decimal.RequireFromString("9.99"),
		Status:        entities.OrderConfirmed,
		PaymentStatus: entities.PaymentPaid,
	}
)

type fixture struct {
	svc     *checkout.Service
	adapter *gateway.Adapter
	redis   *miniredis.Miniredis

	catalog   *mocks.MockProductCatalog
	orders    *mocks.MockOrders
	journal   *mocks.MockReceiptJournal
	events    *mocks.MockEventPublisher
	loader    *gatewayMocks.MockScriptLoader
	creator   *gatewayMocks.MockOrderCreator
	validator *gatewayMocks.MockPaymentValidator
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	f := &fixture{
		redis:     mr,
		catalog:   mocks.NewMockProductCatalog(t),
		orders:    mocks.NewMockOrders(t),
		journal:   mocks.NewMockReceiptJournal(t),
		events:    mocks.NewMockEventPublisher(t),
		loader:    gatewayMocks.NewMockScriptLoader(t),
		creator:   gatewayMocks.NewMockOrderCreator(t),
		validator: gatewayMocks.NewMockPaymentValidator(t),
	}

	f.adapter = gateway.NewAdapter(logger, f.loader, f.creator, f.validator, gateway.Config{
		KeyID:           "rzp_test",
		CheckoutURL:     "https://pay.example/checkout",
		Currency:        "INR",
		MerchantName:    "Buy Nothing",
		CallbackBaseURL: "https://bff.example",
		AttemptTTL:      time.Minute,
	})

	f.svc = checkout.NewService(logger, checkout.Deps{
		Catalog:  f.catalog,
		Payments: f.adapter,
		Orders:   f.orders,
		Mailbox:  mailbox.New(logger, client, time.Hour, 20*time.Millisecond),
		Journal:  f.journal,
		Events:   f.events,
	}, checkout.Config{MailboxKey: "lastOrder", SessionTTL: time.Hour})

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	require.NoError(t, f.svc.Start(ctx))

	f.catalog.EXPECT().Get(mock.Anything, "p1").Return(product, nil).Maybe()
	f.journal.EXPECT().Record(mock.Anything, mock.Anything).Return(nil).Maybe()
	f.journal.EXPECT().RecordShare(mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()
	f.events.EXPECT().PublishConfirmed(mock.Anything, mock.Anything).Return(nil).Maybe()
	f.events.EXPECT().PublishShared(mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()

	return f
}

// atPayment opens a session and fills in valid details.
func (f *fixture) atPayment(t *testing.T) checkout.Snapshot {
	t.Helper()
	snap, err := f.svc.Open(context.Background(), "p1")
	require.NoError(t, err)
	require.Equal(t, entities.StepDetail, snap.Step)

	snap, err = f.svc.SubmitDetails(snap.ID, checkout.DetailsForm{Name: "Ada", Email: "ada@x.io"})
	require.NoError(t, err)
	require.Equal(t, entities.StepPayment, snap.Step)
	return snap
}

func (f *fixture) pay(t *testing.T, sessionID string) checkout.PayResult {
	t.Helper()
	f.loader.EXPECT().Ensure(mock.Anything).Return(nil).Once()
	f.creator.EXPECT().
		CreateOrder(mock.Anything, "p1", customer, product.Price).
		Return(entities.GatewayOrder{ID: "order_1", Amount: product.Price, Currency: "INR"}, nil).
		Once()

	res, err := f.svc.Pay(context.Background(), sessionID)
	require.NoError(t, err)
	require.NotEmpty(t, res.AttemptID)
	return res
}

func (f *fixture) eventuallyStep(t *testing.T, sessionID string, step entities.Step) checkout.Snapshot {
	t.Helper()
	var snap checkout.Snapshot
	require.Eventually(t, func() bool {
		s, err := f.svc.Session(sessionID)
		if err != nil {
			return false
		}
		snap = s
		return s.Step == step && !s.Submitting
	}, waitFor, tick)
	return snap
}

func (f *fixture) confirmed(t *testing.T) checkout.Snapshot {
	t.Helper()
	snap := f.atPayment(t)
	res := f.pay(t, snap.ID)

	f.validator.EXPECT().ValidatePayment(mock.Anything, mock.Anything).Return(true, nil).Once()
	f.orders.EXPECT().
		ConfirmOrder(mock.Anything, customer, "p1", entities.Succeeded("pay_1", "order_1", "sig")).
		Return(confirmation, nil).
		Once()

	require.NoError(t, f.adapter.HandleSuccess(context.Background(), gateway.Callback{
		AttemptID: res.AttemptID, PaymentID: "pay_1", OrderID: "order_1", Signature: "sig",
	}))
	return f.eventuallyStep(t, snap.ID, entities.StepConfirmed)
}

func TestService_Open(t *testing.T) {
	t.Run("unknown product", func(t *testing.T) {
		f := newFixture(t)
		f.catalog.EXPECT().Get(mock.Anything, "missing").Return(entities.Product{}, entities.ErrProductNotFound).Once()

		_, err := f.svc.Open(context.Background(), "missing")
		assert.ErrorIs(t, err, entities.ErrProductNotFound)
	})

	t.Run("starts at detail", func(t *testing.T) {
		f := newFixture(t)
		snap, err := f.svc.Open(context.Background(), "p1")
		require.NoError(t, err)

		assert.NotEmpty(t, snap.ID)
		assert.Equal(t, entities.StepDetail, snap.Step)
		assert.Equal(t, product, snap.Product)
		assert.True(t, snap.Customer.IsZero())
	})
}

func TestService_SubmitDetails(t *testing.T) {
	f := newFixture(t)
	snap, err := f.svc.Open(context.Background(), "p1")
	require.NoError(t, err)

	snap, err = f.svc.SubmitDetails(snap.ID, checkout.DetailsForm{Name: "", Email: "nope"})
	assert.ErrorIs(t, err, entities.ErrValidation)
	assert.Equal(t, entities.StepDetail, snap.Step)

	_, err = f.svc.SubmitDetails("missing", checkout.DetailsForm{Name: "Ada", Email: "ada@x.io"})
	assert.ErrorIs(t, err, entities.ErrSessionNotFound)
}

func TestService_PaySuccess(t *testing.T) {
	f := newFixture(t)
	snap := f.atPayment(t)
	res := f.pay(t, snap.ID)

	assert.Equal(t, int64(999), res.Options.Amount)
	assert.Equal(t, "order_1", res.Options.OrderID)
	assert.Equal(t, customer.Name, res.Options.Prefill.Name)
	assert.NotEmpty(t, res.CheckoutURL)

	f.validator.EXPECT().ValidatePayment(mock.Anything, mock.Anything).Return(true, nil).Once()
	f.orders.EXPECT().
		ConfirmOrder(mock.Anything, customer, "p1", entities.Succeeded("pay_1", "order_1", "sig")).
		Return(confirmation, nil).
		Once()

	require.NoError(t, f.adapter.HandleSuccess(context.Background(), gateway.Callback{
		AttemptID: res.AttemptID, PaymentID: "pay_1", OrderID: "order_1", Signature: "sig",
	}))

	got := f.eventuallyStep(t, snap.ID, entities.StepConfirmed)
	require.NotNil(t, got.Confirmation)
	assert.Equal(t, "ON-1", got.Confirmation.OrderNumber)
	assert.Equal(t, entities.OutcomeSuccess, got.Outcome.Kind)
}

func TestService_DuplicateSuccessConfirmsOnce(t *testing.T) {
	f := newFixture(t)
	snap := f.atPayment(t)
	res := f.pay(t, snap.ID)

	f.validator.EXPECT().ValidatePayment(mock.Anything, mock.Anything).Return(true, nil).Once()
	f.orders.EXPECT().ConfirmOrder(mock.Anything, customer, "p1", mock.Anything).Return(confirmation, nil).Once()

	cb := gateway.Callback{AttemptID: res.AttemptID, PaymentID: "pay_1", OrderID: "order_1", Signature: "sig"}
	require.NoError(t, f.adapter.HandleSuccess(context.Background(), cb))
	require.NoError(t, f.adapter.HandleSuccess(context.Background(), cb))

	f.eventuallyStep(t, snap.ID, entities.StepConfirmed)
}

func TestService_PayDismissed(t *testing.T) {
	f := newFixture(t)
	snap := f.atPayment(t)
	res := f.pay(t, snap.ID)

	require.NoError(t, f.adapter.HandleDismiss(res.AttemptID))

	got := f.eventuallyStep(t, snap.ID, entities.StepDetail)
	assert.Equal(t, customer, got.Customer)
	require.NotNil(t, got.Outcome)
	assert.Equal(t, entities.OutcomeCancelled, got.Outcome.Kind)
	require.NotEmpty(t, got.Notices)
	assert.Equal(t, checkout.NoticeError, got.Notices[len(got.Notices)-1].Level)
}

func TestService_IncompleteSuccessIsFailure(t *testing.T) {
	f := newFixture(t)
	snap := f.atPayment(t)
	res := f.pay(t, snap.ID)

	require.NoError(t, f.adapter.HandleSuccess(context.Background(), gateway.Callback{
		AttemptID: res.AttemptID, PaymentID: "pay_1", OrderID: "order_1",
	}))

	got := f.eventuallyStep(t, snap.ID, entities.StepDetail)
	require.NotNil(t, got.Outcome)
	assert.Equal(t, entities.OutcomeFailure, got.Outcome.Kind)
	assert.Equal(t, entities.ReasonIncompleteResponse, got.Outcome.Reason)
}

func TestService_PayOpenFailures(t *testing.T) {
	t.Run("script unavailable", func(t *testing.T) {
		f := newFixture(t)
		snap := f.atPayment(t)
		f.loader.EXPECT().Ensure(mock.Anything).Return(entities.ErrGatewayUnavailable).Once()

		res, err := f.svc.Pay(context.Background(), snap.ID)
		assert.ErrorIs(t, err, entities.ErrGatewayUnavailable)
		assert.Equal(t, entities.StepDetail, res.Session.Step)
		assert.Equal(t, customer, res.Session.Customer)
	})

	t.Run("order creation failed", func(t *testing.T) {
		f := newFixture(t)
		snap := f.atPayment(t)
		f.loader.EXPECT().Ensure(mock.Anything).Return(nil).Once()
		f.creator.EXPECT().
			CreateOrder(mock.Anything, "p1", customer, product.Price).
			Return(entities.GatewayOrder{}, assert.AnError).
			Once()

		res, err := f.svc.Pay(context.Background(), snap.ID)
		assert.ErrorIs(t, err, entities.ErrGatewayFailure)
		assert.Equal(t, entities.StepDetail, res.Session.Step)
	})
}

func TestService_PayTwice(t *testing.T) {
	f := newFixture(t)
	snap := f.atPayment(t)
	f.pay(t, snap.ID)

	_, err := f.svc.Pay(context.Background(), snap.ID)
	assert.ErrorIs(t, err, entities.ErrPaymentInProgress)
}

func TestService_ConfirmationFailureAndRetry(t *testing.T) {
	f := newFixture(t)
	snap := f.atPayment(t)
	res := f.pay(t, snap.ID)

	f.validator.EXPECT().ValidatePayment(mock.Anything, mock.Anything).Return(true, nil).Once()
	f.orders.EXPECT().
		ConfirmOrder(mock.Anything, customer, "p1", mock.Anything).
		Return(entities.OrderConfirmation{}, entities.ErrConfirmationRejected).
		Once()

	require.NoError(t, f.adapter.HandleSuccess(context.Background(), gateway.Callback{
		AttemptID: res.AttemptID, PaymentID: "pay_1", OrderID: "order_1", Signature: "sig",
	}))

	var got checkout.Snapshot
	require.Eventually(t, func() bool {
		s, err := f.svc.Session(snap.ID)
		got = s
		return err == nil && s.Outcome != nil && !s.Submitting
	}, waitFor, tick)
	assert.Equal(t, entities.StepPayment, got.Step)
	assert.Nil(t, got.Confirmation)

	_, err := f.svc.Pay(context.Background(), snap.ID)
	assert.ErrorIs(t, err, entities.ErrPaymentInProgress)

	f.orders.EXPECT().
		ConfirmOrder(mock.Anything, customer, "p1", entities.Succeeded("pay_1", "order_1", "sig")).
		Return(confirmation, nil).
		Once()

	got, err = f.svc.RetryConfirmation(context.Background(), snap.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.StepConfirmed, got.Step)
	assert.Equal(t, "ON-1", got.Confirmation.OrderNumber)
}

func TestService_MailboxSignal(t *testing.T) {
	f := newFixture(t)
	snap := f.atPayment(t)
	key := "lastOrder:" + snap.ID

	f.redis.Set(key, `{"orderNumber":"ON-2","amount":5.00}`)

	got := f.eventuallyStep(t, snap.ID, entities.StepConfirmed)
	require.NotNil(t, got.Confirmation)
	assert.Equal(t, "ON-2", got.Confirmation.OrderNumber)
	assert.True(t, decimal.RequireFromString("5").Equal(got.Confirmation.Amount))
	assert.False(t, f.redis.Exists(key))
}

func TestService_MalformedSignalDropped(t *testing.T) {
	f := newFixture(t)
	snap := f.atPayment(t)
	key := "lastOrder:" + snap.ID

	f.redis.Set(key, `{"amount":5.00}`)

	require.Eventually(t, func() bool { return !f.redis.Exists(key) }, waitFor, tick)
	got, err := f.svc.Session(snap.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.StepPayment, got.Step)
}

func TestService_SignalSupersedesAttempt(t *testing.T) {
	f := newFixture(t)
	snap := f.atPayment(t)
	res := f.pay(t, snap.ID)

	f.redis.Set("lastOrder:"+snap.ID, `{"orderNumber":"ON-2","amount":5.00}`)
	f.eventuallyStep(t, snap.ID, entities.StepConfirmed)

	attempt, ok := f.adapter.Lookup(res.AttemptID)
	require.True(t, ok)
	require.Eventually(t, attempt.Resolved, waitFor, tick)

	_, err := f.svc.Pay(context.Background(), snap.ID)
	assert.ErrorIs(t, err, entities.ErrInvalidTransition)
}

func TestService_CompleteRedirect(t *testing.T) {
	f := newFixture(t)
	snap := f.atPayment(t)
	res := f.pay(t, snap.ID)

	f.validator.EXPECT().ValidatePayment(mock.Anything, mock.Anything).Return(true, nil).Once()
	f.orders.EXPECT().ConfirmOrder(mock.Anything, customer, "p1", mock.Anything).Return(confirmation, nil).Once()

	cb := gateway.Callback{AttemptID: res.AttemptID, PaymentID: "pay_1", OrderID: "order_1", Signature: "sig"}
	require.NoError(t, f.svc.CompleteRedirect(context.Background(), cb))

	got := f.eventuallyStep(t, snap.ID, entities.StepConfirmed)
	assert.Equal(t, "ON-1", got.Confirmation.OrderNumber)

	// The in-page report of the same payment arrives late and is ignored.
	require.NoError(t, f.adapter.HandleSuccess(context.Background(), cb))
	got, err := f.svc.Session(snap.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.StepConfirmed, got.Step)
}

func TestService_CompleteRedirectHoldsPaymentStep(t *testing.T) {
	f := newFixture(t)
	snap := f.atPayment(t)
	res := f.pay(t, snap.ID)

	var backErr, resetErr error
	f.validator.EXPECT().ValidatePayment(mock.Anything, mock.Anything).Return(true, nil).Once()
	f.orders.EXPECT().
		ConfirmOrder(mock.Anything, customer, "p1", mock.Anything).
		RunAndReturn(func(context.Context, entities.CustomerDetails, string, entities.PaymentOutcome) (entities.OrderConfirmation, error) {
			_, backErr = f.svc.Back(snap.ID)
			_, resetErr = f.svc.Reset(snap.ID)
			return confirmation, nil
		}).
		Once()

	cb := gateway.Callback{AttemptID: res.AttemptID, PaymentID: "pay_1", OrderID: "order_1", Signature: "sig"}
	require.NoError(t, f.svc.CompleteRedirect(context.Background(), cb))

	assert.ErrorIs(t, backErr, entities.ErrPaymentInProgress)
	assert.ErrorIs(t, resetErr, entities.ErrPaymentInProgress)

	got, err := f.svc.Session(snap.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.StepConfirmed, got.Step)
	require.NotNil(t, got.Confirmation)
	assert.Equal(t, "ON-1", got.Confirmation.OrderNumber)

	_, err = f.svc.Pay(context.Background(), snap.ID)
	assert.ErrorIs(t, err, entities.ErrInvalidTransition)
}

func TestService_ConfirmationRecordedAfterClose(t *testing.T) {
	f := newFixture(t)
	f.journal.ExpectedCalls = nil
	f.events.ExpectedCalls = nil

	snap := f.atPayment(t)
	res := f.pay(t, snap.ID)

	recorded := make(chan entities.Receipt, 1)
	published := make(chan entities.Receipt, 1)
	f.journal.EXPECT().Record(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, r entities.Receipt) error {
			recorded <- r
			return nil
		}).
		Once()
	f.events.EXPECT().PublishConfirmed(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, r entities.Receipt) error {
			published <- r
			return nil
		}).
		Once()

	var resetErr, closeErr error
	f.validator.EXPECT().ValidatePayment(mock.Anything, mock.Anything).Return(true, nil).Once()
	f.orders.EXPECT().
		ConfirmOrder(mock.Anything, customer, "p1", mock.Anything).
		RunAndReturn(func(context.Context, entities.CustomerDetails, string, entities.PaymentOutcome) (entities.OrderConfirmation, error) {
			_, resetErr = f.svc.Reset(snap.ID)
			closeErr = f.svc.Close(snap.ID)
			return confirmation, nil
		}).
		Once()

	require.NoError(t, f.adapter.HandleSuccess(context.Background(), gateway.Callback{
		AttemptID: res.AttemptID, PaymentID: "pay_1", OrderID: "order_1", Signature: "sig",
	}))

	select {
	case r := <-published:
		assert.Equal(t, "ON-1", r.Confirmation.OrderNumber)
	case <-time.After(waitFor):
		t.Fatal("confirmation was not published")
	}
	r := <-recorded
	assert.Equal(t, snap.ID, r.SessionID)
	assert.Equal(t, customer, r.Customer)
	assert.Equal(t, "pay_1", r.PaymentID)

	assert.ErrorIs(t, resetErr, entities.ErrPaymentInProgress)
	assert.NoError(t, closeErr)
	_, err := f.svc.Session(snap.ID)
	assert.ErrorIs(t, err, entities.ErrSessionNotFound)
}

func TestService_CompleteRedirectUnknownAttempt(t *testing.T) {
	f := newFixture(t)
	err := f.svc.CompleteRedirect(context.Background(), gateway.Callback{AttemptID: "nope"})
	assert.ErrorIs(t, err, entities.ErrUnknownAttempt)
}

func TestService_Back(t *testing.T) {
	f := newFixture(t)
	snap := f.atPayment(t)
	res := f.pay(t, snap.ID)

	got, err := f.svc.Back(snap.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.StepDetail, got.Step)
	assert.Equal(t, customer, got.Customer)

	attempt, ok := f.adapter.Lookup(res.AttemptID)
	require.True(t, ok)
	outcome, resolved := attempt.Outcome()
	require.True(t, resolved)
	assert.Equal(t, entities.OutcomeCancelled, outcome.Kind)

	// The cancelled attempt must not bounce the session around.
	time.Sleep(50 * time.Millisecond)
	got, err = f.svc.Session(snap.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.StepDetail, got.Step)
	assert.Empty(t, got.Notices)
}

func TestService_Share(t *testing.T) {
	f := newFixture(t)
	snap := f.confirmed(t)

	_, err := f.svc.Share(context.Background(), snap.ID, entities.PlatformTwitter)
	assert.ErrorIs(t, err, entities.ErrInvalidTransition)

	snap, err = f.svc.GoToShare(snap.ID)
	require.NoError(t, err)
	require.Equal(t, entities.StepShare, snap.Step)

	f.orders.EXPECT().ShareURL(mock.Anything, "ON-1", entities.PlatformTwitter).Return("https://t.example/ON-1", nil).Once()

	res, err := f.svc.Share(context.Background(), snap.ID, entities.PlatformTwitter)
	require.NoError(t, err)
	assert.Equal(t, "https://t.example/ON-1", res.URL)
	assert.False(t, res.AlreadyShared)
	assert.Equal(t, []entities.Platform{entities.PlatformTwitter}, res.Session.Shared)
	assert.True(t, res.Session.Confirmation.SharedOnSocial)

	res, err = f.svc.Share(context.Background(), snap.ID, entities.PlatformTwitter)
	require.NoError(t, err)
	assert.True(t, res.AlreadyShared)
	assert.Equal(t, "https://t.example/ON-1", res.URL)
	assert.Len(t, res.Session.Shared, 1)

	f.orders.EXPECT().ShareURL(mock.Anything, "ON-1", entities.PlatformFacebook).Return("", entities.ErrShareUnavailable).Once()

	res, err = f.svc.Share(context.Background(), snap.ID, entities.PlatformFacebook)
	assert.ErrorIs(t, err, entities.ErrShareUnavailable)
	assert.Equal(t, []entities.Platform{entities.PlatformTwitter}, res.Session.Shared)
	assert.Equal(t, entities.StepShare, res.Session.Step)

	_, err = f.svc.Share(context.Background(), snap.ID, entities.Platform("myspace"))
	assert.ErrorIs(t, err, entities.ErrUnknownPlatform)
}

func TestService_CloseAndReopen(t *testing.T) {
	testCases := []struct {
		name  string
		setup func(t *testing.T, f *fixture) (sessionID, attemptID string)
	}{
		{
			name: "from payment",
			setup: func(t *testing.T, f *fixture) (string, string) {
				return f.atPayment(t).ID, ""
			},
		},
		{
			name: "while paying",
			setup: func(t *testing.T, f *fixture) (string, string) {
				snap := f.atPayment(t)
				res := f.pay(t, snap.ID)
				return snap.ID, res.AttemptID
			},
		},
		{
			name: "from confirmed",
			setup: func(t *testing.T, f *fixture) (string, string) {
				return f.confirmed(t).ID, ""
			},
		},
		{
			name: "from share",
			setup: func(t *testing.T, f *fixture) (string, string) {
				snap, err := f.svc.GoToShare(f.confirmed(t).ID)
				require.NoError(t, err)
				require.Equal(t, entities.StepShare, snap.Step)
				return snap.ID, ""
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			id, attemptID := tc.setup(t, f)

			require.NoError(t, f.svc.Close(id))
			_, err := f.svc.Session(id)
			assert.ErrorIs(t, err, entities.ErrSessionNotFound)
			assert.ErrorIs(t, f.svc.Close(id), entities.ErrSessionNotFound)

			if attemptID != "" {
				attempt, ok := f.adapter.Lookup(attemptID)
				require.True(t, ok)
				outcome, resolved := attempt.Outcome()
				require.True(t, resolved)
				assert.Equal(t, entities.OutcomeCancelled, outcome.Kind)
			}

			reopened, err := f.svc.Open(context.Background(), "p1")
			require.NoError(t, err)
			assert.NotEqual(t, id, reopened.ID)
			assert.Equal(t, entities.StepDetail, reopened.Step)
			assert.True(t, reopened.Customer.IsZero())
			assert.Nil(t, reopened.Outcome)
			assert.Nil(t, reopened.Confirmation)
			assert.Empty(t, reopened.Shared)
		})
	}
}

func TestService_Reset(t *testing.T) {
	f := newFixture(t)
	snap := f.confirmed(t)

	got, err := f.svc.Reset(snap.ID)
	require.NoError(t, err)
	assert.Equal(t, snap.ID, got.ID)
	assert.Equal(t, entities.StepDetail, got.Step)
	assert.True(t, got.Customer.IsZero())
	assert.Nil(t, got.Confirmation)
	assert.Equal(t, product, got.Product)
}
