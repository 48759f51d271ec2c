package termii

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/JMURv/zedasignal/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(url string) *Client {
	conf := config.Config{}
	conf.Termii.BaseURL = url + "/"
	conf.Termii.APIKey = "key"
	conf.Termii.SenderID = "Zedasignal"
	return New(conf)
}

func TestClient_Send(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr error
	}{
		{name: "Success", status: http.StatusOK},
		{name: "Redirect", status: http.StatusFound},
		{name: "BadRequest", status: http.StatusBadRequest, wantErr: ErrGateway},
		{name: "ServerError", status: http.StatusInternalServerError, wantErr: ErrGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(
				http.HandlerFunc(
					func(w http.ResponseWriter, r *http.Request) {
						assert.Equal(t, http.MethodPost, r.Method)
						assert.Equal(t, sendPath, r.URL.Path)

						q := r.URL.Query()
						assert.Equal(t, "2348012345678", q.Get("to"))
						assert.Equal(t, "Zedasignal", q.Get("from"))
						assert.Equal(t, "New Message", q.Get("sms"))
						assert.Equal(t, "dnd", q.Get("channel"))
						assert.Equal(t, "plain", q.Get("type"))
						assert.Equal(t, "key", q.Get("api_key"))

						w.WriteHeader(tt.status)
						_, _ = w.Write([]byte(`{"message_id":"1","message":"Successfully Sent"}`))
					},
				),
			)
			defer srv.Close()

			res, err := newTestClient(srv.URL).Send(context.Background(), "+2348012345678", "New Message")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, res)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "1", res.MessageID)
		})
	}
}

func TestClient_SendStripsOnePlus(t *testing.T) {
	srv := httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "+2348012345678", r.URL.Query().Get("to"))
				w.WriteHeader(http.StatusOK)
			},
		),
	)
	defer srv.Close()

	_, err := newTestClient(srv.URL).Send(context.Background(), "++2348012345678", "New Message")
	require.NoError(t, err)
}

func TestClient_SendEmptyBody(t *testing.T) {
	srv := httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			},
		),
	)
	defer srv.Close()

	res, err := newTestClient(srv.URL).Send(context.Background(), "2348012345678", "hi")
	require.NoError(t, err)
	assert.NotNil(t, res)
}
