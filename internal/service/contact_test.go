package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/SergeyBogomolovv/buynothing-checkout/internal/entities"
	"github.com/SergeyBogomolovv/buynothing-checkout/internal/service"
	mocks "github.com/SergeyBogomolovv/buynothing-checkout/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestContactService_Submit(t *testing.T) {
	testCases := []struct {
		name         string
		msg          entities.ContactMessage
		mockBehavior func(sender *mocks.MockContactSender)
		want         bool
		wantFields   map[string]string
		wantErr      bool
	}{
		{
			name: "ok",
			msg:  entities.ContactMessage{Name: " Ada ", Email: "ada@x.io", Message: "hi"},
			mockBehavior: func(sender *mocks.MockContactSender) {
				sender.EXPECT().
					SubmitContact(mock.Anything, entities.ContactMessage{Name: "Ada", Email: "ada@x.io", Message: "hi"}).
					Return(true, nil).Once()
			},
			want: true,
		},
		{
			name:         "invalid form",
			msg:          entities.ContactMessage{Name: "  ", Email: "nope"},
			mockBehavior: func(_ *mocks.MockContactSender) {},
			wantFields: map[string]string{
				"customerName":  "Name is required",
				"customerEmail": "Valid email is required",
				"message":       "Message is required",
			},
		},
		{
			name: "sender fails",
			msg:  entities.ContactMessage{Name: "Ada", Email: "ada@x.io", Message: "hi"},
			mockBehavior: func(sender *mocks.MockContactSender) {
				sender.EXPECT().SubmitContact(mock.Anything, mock.Anything).
					Return(false, errors.New("down")).Once()
			},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			sender := mocks.NewMockContactSender(t)
			tc.mockBehavior(sender)
			logger := slog.New(slog.NewTextHandler(io.Discard, nil))

			svc := service.NewContactService(logger, sender)
			got, err := svc.Submit(context.Background(), tc.msg)

			if tc.wantFields != nil {
				var verr *entities.ValidationError
				require.ErrorAs(t, err, &verr)
				assert.Equal(t, tc.wantFields, verr.Fields)
				return
			}
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
