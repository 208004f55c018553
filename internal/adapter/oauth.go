// SPDX-License-Identifier: Apache-2.0

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/golang-jwt/jwt/v5"
)

const (
	defaultTokenURI = "https://oauth2.googleapis.com/token"
	jwtBearerGrant  = "urn:ietf:params:oauth:grant-type:jwt-bearer"

	// assertionLifetime is the validity window claimed in the signed JWT.
	// Google caps it at one hour.
	assertionLifetime = time.Hour

	// expirySkew is subtracted from the reported token lifetime so a token
	// is refreshed before it actually dies mid-request.
	expirySkew = 30 * time.Second
)

// scopes requested for every token: full Sheets access for row operations
// and Drive metadata access for spreadsheet discovery.
var scopes = []string{
	"https://www.googleapis.com/auth/spreadsheets",
	"https://www.googleapis.com/auth/drive",
}

// ServiceAccountKey is the subset of a Google service-account JSON key file
// the adapter needs.
type ServiceAccountKey struct {
	ClientEmail string `json:"client_email"`
	PrivateKey  string `json:"private_key"`
	TokenURI    string `json:"token_uri"`
}

// LoadServiceAccountKey reads and validates a service-account key file.
func LoadServiceAccountKey(path string) (ServiceAccountKey, error) {
	if path == "" {
		return ServiceAccountKey{}, ErrNoCredentials
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return ServiceAccountKey{}, fmt.Errorf("%w: read key file: %w", ErrNoCredentials, err)
	}

	var key ServiceAccountKey
	if err = json.Unmarshal(raw, &key); err != nil {
		return ServiceAccountKey{}, fmt.Errorf("%w: decode key file: %w", ErrNoCredentials, err)
	}
	if key.ClientEmail == "" || key.PrivateKey == "" {
		return ServiceAccountKey{}, fmt.Errorf("%w: key file missing client_email or private_key", ErrNoCredentials)
	}
	if key.TokenURI == "" {
		key.TokenURI = defaultTokenURI
	}

	return key, nil
}

type serviceAccountTokenSource struct {
	client *resty.Client
	key    ServiceAccountKey
	now    func() time.Time

	mu     sync.Mutex
	token  string
	expiry time.Time
}

// NewServiceAccountTokenSource builds a TokenSource that signs RS256 JWT
// assertions with the service-account private key and exchanges them at the
// key's token endpoint. Tokens are cached until shortly before expiry;
// concurrent callers during a refresh share the single exchange.
func NewServiceAccountTokenSource(key ServiceAccountKey, timeout time.Duration) TokenSource {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	return &serviceAccountTokenSource{
		client: resty.New().SetTimeout(timeout),
		key:    key,
		now:    time.Now,
	}
}

func (s *serviceAccountTokenSource) Token(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.token != "" && s.now().Before(s.expiry) {
		return s.token, nil
	}

	token, ttl, err := s.exchange(ctx)
	if err != nil {
		return "", err
	}

	s.token = token
	s.expiry = s.now().Add(ttl - expirySkew)

	return token, nil
}

func (s *serviceAccountTokenSource) exchange(ctx context.Context) (string, time.Duration, error) {
	assertion, err := s.signAssertion()
	if err != nil {
		return "", 0, fmt.Errorf("sign oauth assertion: %w", err)
	}

	var result struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int64  `json:"expires_in"`
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"grant_type": jwtBearerGrant,
			"assertion":  assertion,
		}).
		SetResult(&result).
		Post(s.key.TokenURI)
	if err != nil {
		return "", 0, fmt.Errorf("%w: token request: %w", ErrBackend, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", 0, fmt.Errorf("token exchange: %w", err)
	}
	if result.AccessToken == "" {
		return "", 0, fmt.Errorf("%w: token response carried no access_token", ErrBackend)
	}

	ttl := time.Duration(result.ExpiresIn) * time.Second
	if ttl <= 0 {
		ttl = assertionLifetime
	}

	return result.AccessToken, ttl, nil
}

func (s *serviceAccountTokenSource) signAssertion() (string, error) {
	privateKey, err := jwt.ParseRSAPrivateKeyFromPEM([]byte(s.key.PrivateKey))
	if err != nil {
		return "", fmt.Errorf("parse service-account private key: %w", err)
	}

	now := s.now()
	claims := jwt.MapClaims{
		"iss":   s.key.ClientEmail,
		"scope": strings.Join(scopes, " "),
		"aud":   s.key.TokenURI,
		"iat":   now.Unix(),
		"exp":   now.Add(assertionLifetime).Unix(),
	}

	return jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(privateKey)
}
