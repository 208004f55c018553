package adapter

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/json"
	"encoding/pem"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testRSAKey генерирует PEM-ключ для подписи тестовых assertions.
func testRSAKey(t *testing.T) (*rsa.PrivateKey, string) {
	t.Helper()
	privateKey, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	pemBytes := pem.EncodeToMemory(&pem.Block{
		Type:  "RSA PRIVATE KEY",
		Bytes: x509.MarshalPKCS1PrivateKey(privateKey),
	})

	return privateKey, string(pemBytes)
}

// ── LoadServiceAccountKey ────────────────────────────────────────────────────

func TestLoadServiceAccountKey_EmptyPath(t *testing.T) {
	_, err := LoadServiceAccountKey("")
	assert.ErrorIs(t, err, ErrNoCredentials)
}

func TestLoadServiceAccountKey_MissingFile(t *testing.T) {
	_, err := LoadServiceAccountKey(filepath.Join(t.TempDir(), "nope.json"))
	assert.ErrorIs(t, err, ErrNoCredentials)
}

func TestLoadServiceAccountKey_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "key.json")
	require.NoError(t, os.WriteFile(path, []byte("{broken"), 0o600))

	_, err := LoadServiceAccountKey(path)
	assert.ErrorIs(t, err, ErrNoCredentials)
}

func TestLoadServiceAccountKey_MissingFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "key.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"client_email":"svc@test.iam"}`), 0o600))

	_, err := LoadServiceAccountKey(path)
	assert.ErrorIs(t, err, ErrNoCredentials)
}

func TestLoadServiceAccountKey_DefaultsTokenURI(t *testing.T) {
	path := filepath.Join(t.TempDir(), "key.json")
	payload := map[string]string{
		"client_email": "svc@test.iam.gserviceaccount.com",
		"private_key":  "---key---",
	}
	raw, err := json.Marshal(payload)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, raw, 0o600))

	key, err := LoadServiceAccountKey(path)
	require.NoError(t, err)

	assert.Equal(t, "svc@test.iam.gserviceaccount.com", key.ClientEmail)
	assert.Equal(t, defaultTokenURI, key.TokenURI)
}

// ── Token ────────────────────────────────────────────────────────────────────

func newTokenServer(t *testing.T, hits *atomic.Int64, respond http.HandlerFunc) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		respond(w, r)
	}))
	t.Cleanup(server.Close)
	return server
}

func TestServiceAccountTokenSource_ExchangesSignedAssertion(t *testing.T) {
	privateKey, pemKey := testRSAKey(t)

	var hits atomic.Int64
	var gotGrantType, gotAssertion string
	server := newTokenServer(t, &hits, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		gotGrantType = r.PostFormValue("grant_type")
		gotAssertion = r.PostFormValue("assertion")

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"access_token": "at-123", "expires_in": 3600})
	})

	key := ServiceAccountKey{
		ClientEmail: "svc@test.iam.gserviceaccount.com",
		PrivateKey:  pemKey,
		TokenURI:    server.URL,
	}
	tokens := NewServiceAccountTokenSource(key, time.Second)

	token, err := tokens.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "at-123", token)
	assert.Equal(t, jwtBearerGrant, gotGrantType)

	// assertion подписан нашим ключом и несёт правильные claims
	parsed, err := jwt.Parse(gotAssertion, func(*jwt.Token) (any, error) {
		return &privateKey.PublicKey, nil
	}, jwt.WithValidMethods([]string{"RS256"}))
	require.NoError(t, err)

	claims, ok := parsed.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, key.ClientEmail, claims["iss"])
	assert.Equal(t, server.URL, claims["aud"])
	assert.Contains(t, claims["scope"], "auth/spreadsheets")
	assert.Contains(t, claims["scope"], "auth/drive")
}

func TestServiceAccountTokenSource_CachesUntilExpiry(t *testing.T) {
	_, pemKey := testRSAKey(t)

	var hits atomic.Int64
	server := newTokenServer(t, &hits, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"access_token": "at-123", "expires_in": 3600})
	})

	tokens := NewServiceAccountTokenSource(ServiceAccountKey{
		ClientEmail: "svc@test.iam.gserviceaccount.com",
		PrivateKey:  pemKey,
		TokenURI:    server.URL,
	}, time.Second)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		token, err := tokens.Token(ctx)
		require.NoError(t, err)
		assert.Equal(t, "at-123", token)
	}

	assert.Equal(t, int64(1), hits.Load(), "повторные вызовы берут токен из кеша")
}

func TestServiceAccountTokenSource_RefreshesExpiredToken(t *testing.T) {
	_, pemKey := testRSAKey(t)

	var hits atomic.Int64
	server := newTokenServer(t, &hits, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"access_token": "at-123", "expires_in": 3600})
	})

	source := NewServiceAccountTokenSource(ServiceAccountKey{
		ClientEmail: "svc@test.iam.gserviceaccount.com",
		PrivateKey:  pemKey,
		TokenURI:    server.URL,
	}, time.Second).(*serviceAccountTokenSource)
	ctx := context.Background()

	current := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	source.now = func() time.Time { return current }

	_, err := source.Token(ctx)
	require.NoError(t, err)

	// прыгаем за горизонт expiry — нужен новый обмен
	current = current.Add(2 * time.Hour)
	_, err = source.Token(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(2), hits.Load())
}

func TestServiceAccountTokenSource_ExchangeErrorMapped(t *testing.T) {
	_, pemKey := testRSAKey(t)

	var hits atomic.Int64
	server := newTokenServer(t, &hits, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"invalid_grant"}`))
	})

	tokens := NewServiceAccountTokenSource(ServiceAccountKey{
		ClientEmail: "svc@test.iam.gserviceaccount.com",
		PrivateKey:  pemKey,
		TokenURI:    server.URL,
	}, time.Second)

	_, err := tokens.Token(context.Background())
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestServiceAccountTokenSource_EmptyAccessToken(t *testing.T) {
	_, pemKey := testRSAKey(t)

	var hits atomic.Int64
	server := newTokenServer(t, &hits, func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"expires_in": 3600})
	})

	tokens := NewServiceAccountTokenSource(ServiceAccountKey{
		ClientEmail: "svc@test.iam.gserviceaccount.com",
		PrivateKey:  pemKey,
		TokenURI:    server.URL,
	}, time.Second)

	_, err := tokens.Token(context.Background())
	assert.ErrorIs(t, err, ErrBackend)
}

func TestServiceAccountTokenSource_BadPrivateKey(t *testing.T) {
	tokens := NewServiceAccountTokenSource(ServiceAccountKey{
		ClientEmail: "svc@test.iam.gserviceaccount.com",
		PrivateKey:  "not a pem key",
		TokenURI:    "http://127.0.0.1:0",
	}, time.Second)

	_, err := tokens.Token(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "private key")
}
