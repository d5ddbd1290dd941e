//go:build unit

package captcha

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/spaarke-dev/spaakre-website/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func stubSiteverify(t *testing.T, success bool, capture *map[string]string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		if capture != nil {
			*capture = map[string]string{
				"secret":   r.PostFormValue("secret"),
				"response": r.PostFormValue("response"),
			}
		}
		w.Header().Set("Content-Type", "application/json")
		if success {
			_, _ = w.Write([]byte(`{"success": true, "score": 0.9}`))
		} else {
			_, _ = w.Write([]byte(`{"success": false, "error-codes": ["invalid-input-response"]}`))
		}
	}))
}

func TestRecaptchaVerifier_Verify(t *testing.T) {
	t.Run("accepted token returns true and posts secret and response", func(t *testing.T) {
		var got map[string]string
		srv := stubSiteverify(t, true, &got)
		defer srv.Close()

		v := NewRecaptchaVerifier("secret-key", testLogger()).WithVerifyURL(srv.URL)
		ok, err := v.Verify(context.Background(), "tok-123")

		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "secret-key", got["secret"])
		assert.Equal(t, "tok-123", got["response"])
	})

	t.Run("rejected token returns false without an error", func(t *testing.T) {
		srv := stubSiteverify(t, false, nil)
		defer srv.Close()

		v := NewRecaptchaVerifier("secret-key", testLogger()).WithVerifyURL(srv.URL)
		ok, err := v.Verify(context.Background(), "tok-bad")

		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("missing secret fails open without calling the endpoint", func(t *testing.T) {
		called := false
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
		}))
		defer srv.Close()

		v := NewRecaptchaVerifier("", testLogger()).WithVerifyURL(srv.URL)
		ok, err := v.Verify(context.Background(), "tok-123")

		require.NoError(t, err)
		assert.True(t, ok)
		assert.False(t, called)
	})

	t.Run("unreachable endpoint surfaces the unavailable sentinel", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close() // connection refused from here on

		v := NewRecaptchaVerifier("secret-key", testLogger()).WithVerifyURL(srv.URL)
		_, err := v.Verify(context.Background(), "tok-123")

		require.Error(t, err)
		assert.True(t, errors.Is(err, errs.ErrCaptchaUnavailable))
	})

	t.Run("garbage response body surfaces the unavailable sentinel", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("<html>not json</html>"))
		}))
		defer srv.Close()

		v := NewRecaptchaVerifier("secret-key", testLogger()).WithVerifyURL(srv.URL)
		_, err := v.Verify(context.Background(), "tok-123")

		require.Error(t, err)
		assert.True(t, errors.Is(err, errs.ErrCaptchaUnavailable))
	})
}
