package coinbase

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
)

var (
	ErrMissingSignature = errors.New("webhook signature header is missing")
	ErrMissingSecret    = errors.New("webhook shared secret is not configured")
	ErrInvalidSignature = errors.New("webhook signature does not match payload")
)

// VerifySignature checks the hex encoded HMAC-SHA256 of the raw payload,
// keyed with the shared secret.
func VerifySignature(payload []byte, signature, secret string) error {

	signature = strings.TrimSpace(signature)
	if signature == "" {
		return ErrMissingSignature
	}

	if secret == "" {
		return ErrMissingSecret
	}

	received, err := hex.DecodeString(signature)
	if err != nil {
		return ErrInvalidSignature
	}

	expected, _ := hex.DecodeString(Sign(payload, secret))
	if !hmac.Equal(expected, received) {
		return ErrInvalidSignature
	}

	return nil
}

// Sign returns the signature the provider would send for payload.
func Sign(payload []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)

	return hex.EncodeToString(mac.Sum(nil))
}
