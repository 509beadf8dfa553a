// Package tokenbox seals the backend bearer token before it is handed to the
// browser, so the cookie value is opaque and tamper-evident.
package tokenbox

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"io"

	"golang.org/x/crypto/nacl/secretbox"
)

const nonceSize = 24

var (
	ErrEmptyToken = errors.New("token cannot be empty")
	ErrUnseal     = errors.New("sealed token is invalid")
)

type Box struct {
	key [32]byte
}

func New(secret string) *Box {
	return &Box{key: sha256.Sum256([]byte(secret))}
}

// Seal returns base64url(nonce || secretbox(token)).
func (b *Box) Seal(token string) (string, error) {
	if token == "" {
		return "", ErrEmptyToken
	}
	var nonce [nonceSize]byte
	if _, err := io.ReadFull(rand.Reader, nonce[:]); err != nil {
		return "", err
	}
	out := secretbox.Seal(nonce[:], []byte(token), &nonce, &b.key)
	return base64.RawURLEncoding.EncodeToString(out), nil
}

func (b *Box) Open(sealed string) (string, error) {
	raw, err := base64.RawURLEncoding.DecodeString(sealed)
	if err != nil || len(raw) < nonceSize+secretbox.Overhead {
		return "", ErrUnseal
	}
	var nonce [nonceSize]byte
	copy(nonce[:], raw[:nonceSize])
	plain, ok := secretbox.Open(nil, raw[nonceSize:], &nonce, &b.key)
	if !ok {
		return "", ErrUnseal
	}
	return string(plain), nil
}
