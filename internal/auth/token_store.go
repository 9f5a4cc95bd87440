package auth

import (
	"errors"
	"fmt"
	"strings"

	"github.com/zalando/go-keyring"
)

const serviceName = "mailsettings"

var ErrNoToken = errors.New("no token stored; run mailsettings login")

// TokenStore keeps the RPC bearer token in the OS keyring, one entry per
// server URL.
type TokenStore struct {
	service string
}

func NewTokenStore() *TokenStore {
	return &TokenStore{service: serviceName}
}

func accountFor(serverURL string) (string, error) {
	account := strings.TrimRight(strings.TrimSpace(serverURL), "/")
	if account == "" {
		return "", errors.New("server url is required")
	}
	return account, nil
}

func (s *TokenStore) Store(serverURL, token string) error {
	account, err := accountFor(serverURL)
	if err != nil {
		return err
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return errors.New("token is empty")
	}

	if err := keyring.Set(s.service, account, token); err != nil {
		return fmt.Errorf("failed to store token: %w", err)
	}
	return nil
}

// Token returns the stored token or ErrNoToken.
func (s *TokenStore) Token(serverURL string) (string, error) {
	account, err := accountFor(serverURL)
	if err != nil {
		return "", err
	}

	token, err := keyring.Get(s.service, account)
	if errors.Is(err, keyring.ErrNotFound) {
		return "", ErrNoToken
	}
	if err != nil {
		return "", fmt.Errorf("failed to read token: %w", err)
	}
	return token, nil
}

// Delete removes the token; deleting a missing token is not an error.
func (s *TokenStore) Delete(serverURL string) error {
	account, err := accountFor(serverURL)
	if err != nil {
		return err
	}

	err = keyring.Delete(s.service, account)
	if err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return fmt.Errorf("failed to delete token: %w", err)
	}
	return nil
}
