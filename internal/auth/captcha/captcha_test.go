package captcha

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCore_VerifyRecaptcha(t *testing.T) {
	ctx := context.Background()

	t.Run("Disabled", func(t *testing.T) {
		c := &Core{enabled: false}
		ok, err := c.VerifyRecaptcha(ctx, "", PassAuth)
		assert.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("EmptyToken", func(t *testing.T) {
		c := &Core{enabled: true}
		ok, err := c.VerifyRecaptcha(ctx, "", PassAuth)
		assert.ErrorIs(t, err, ErrVerificationFailed)
		assert.False(t, ok)
	})

	tests := []struct {
		name string
		body string
		want bool
		err  error
	}{
		{
			name: "Success",
			body: `{"success": true, "score": 0.9, "action": "pass_auth"}`,
			want: true,
		},
		{
			name: "LowScore",
			body: `{"success": true, "score": 0.05, "action": "pass_auth"}`,
		},
		{
			name: "WrongAction",
			body: `{"success": true, "score": 0.9, "action": "other"}`,
		},
		{
			name: "Garbage",
			body: `not json`,
			err:  ErrValidationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				require.NoError(t, r.ParseForm())
				assert.Equal(t, "secret", r.PostForm.Get("secret"))
				assert.Equal(t, "token", r.PostForm.Get("response"))
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			c := &Core{enabled: true, secret: "secret", url: srv.URL, http: srv.Client()}
			ok, err := c.VerifyRecaptcha(ctx, "token", PassAuth)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, ok)
		})
	}
}
