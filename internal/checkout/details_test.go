package checkout_test

import (
	"testing"

	"github.com/SergeyBogomolovv/buynothing-checkout/internal/checkout"
	"github.com/SergeyBogomolovv/buynothing-checkout/internal/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCaptureDetails(t *testing.T) {
	testCases := []struct {
		name     string
		form     checkout.DetailsForm
		want     entities.CustomerDetails
		wantErrs map[string]string
	}{
		{
			name: "valid",
			form: checkout.DetailsForm{Name: "Ada", Email: "ada@x.io"},
			want: entities.CustomerDetails{Name: "Ada", Email: "ada@x.io"},
		},
		{
			name: "trims input",
			form: checkout.DetailsForm{Name: "  Ada Lovelace ", Email: " ada@x.io\t"},
			want: entities.CustomerDetails{Name: "Ada Lovelace", Email: "ada@x.io"},
		},
		{
			name:     "blank name",
			form:     checkout.DetailsForm{Name: "   ", Email: "ada@x.io"},
			wantErrs: map[string]string{"customerName": "Name is required"},
		},
		{
			name:     "malformed email",
			form:     checkout.DetailsForm{Name: "Ada", Email: "ada-at-x"},
			wantErrs: map[string]string{"customerEmail": "Valid email is required"},
		},
		{
			name: "both missing",
			form: checkout.DetailsForm{},
			wantErrs: map[string]string{
				"customerName":  "Name is required",
				"customerEmail": "Valid email is required",
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := checkout.CaptureDetails(tc.form)
			if tc.wantErrs == nil {
				require.NoError(t, err)
				assert.Equal(t, tc.want, got)
				return
			}

			var verr *entities.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.ErrorIs(t, err, entities.ErrValidation)
			assert.Equal(t, tc.wantErrs, verr.Fields)
			assert.True(t, got.IsZero())
		})
	}
}

func TestParseSignal(t *testing.T) {
	testCases := []struct {
		name    string
		payload string
		wantErr bool
		number  string
		attempt string
	}{
		{name: "minimal", payload: `{"orderNumber":"ON-2","amount":5.00}`, number: "ON-2"},
		{name: "with attempt", payload: `{"orderNumber":"ON-3","amount":"9.99","attemptId":"a1"}`, number: "ON-3", attempt: "a1"},
		{name: "not json", payload: `lastOrder`, wantErr: true},
		{name: "missing order number", payload: `{"amount":5}`, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			sig, err := checkout.ParseSignal([]byte(tc.payload))
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.number, sig.OrderNumber)
			assert.Equal(t, tc.attempt, sig.AttemptID)

			conf := sig.Confirmation()
			assert.Equal(t, entities.OrderConfirmed, conf.Status)
			assert.Equal(t, entities.PaymentPaid, conf.PaymentStatus)
		})
	}
}
