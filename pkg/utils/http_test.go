package utils_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/SergeyBogomolovv/buynothing-checkout/pkg/utils"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeBody(t *testing.T) {
	type payload struct {
		ProductID string `json:"productId"`
	}

	tests := []struct {
		name    string
		body    string
		want    string
		wantErr error
		fails   bool
	}{
		{name: "valid", body: `{"productId":"p1"}`, want: "p1"},
		{name: "empty", body: ``, wantErr: utils.ErrEmptyBody, fails: true},
		{name: "malformed", body: `{"productId":`, fails: true},
		{name: "two values", body: `{"productId":"p1"} {"productId":"p2"}`, fails: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p payload
			err := utils.DecodeBody(httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body)), &p)
			if !tt.fails {
				require.NoError(t, err)
				assert.Equal(t, tt.want, p.ProductID)
				return
			}
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestWriteValidationError(t *testing.T) {
	type form struct {
		Email string `validate:"required,email"`
	}
	err := validator.New().Struct(form{Email: "nope"})

	rec := httptest.NewRecorder()
	require.NoError(t, utils.WriteValidationError(rec, err))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))

	var res utils.ValidationErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&res))
	assert.Equal(t, "invalid request", res.Message)
	assert.Equal(t, map[string]string{"Email": "email"}, res.Fields)
}
