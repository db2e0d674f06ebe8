// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The ClipVault Authors

package crypto

import (
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"sync"

	"golang.org/x/crypto/hkdf"

	"github.com/clipvault/clipvault/internal/credstore"
	"github.com/clipvault/clipvault/internal/logger"
)

const (
	rootKeyLen = 32 // 256 bits

	// hkdfInfo domain-separates the payload AEAD key from the stored root
	// material, so the raw credstore bytes are never used as a cipher key
	// directly.
	hkdfInfo = "com.clipboardmanager.payload.aead"
)

// encryptionService is the private implementation of [EncryptionService].
// Initialize and Disable are the only mutators; they are serialized against
// each other and against in-flight Encrypt/Decrypt calls by the RWMutex
// (single-writer, many-reader discipline).
type encryptionService struct {
	creds  credstore.Store
	logger *logger.Logger

	mu   sync.RWMutex
	key  []byte      // root key while initialized, nil otherwise
	aead cipher.AEAD // derived AES-256-GCM instance, nil while uninitialized
}

// NewEncryptionService constructs an uninitialized [EncryptionService] backed
// by creds. No key material is loaded or generated here.
func NewEncryptionService(creds credstore.Store, log *logger.Logger) EncryptionService {
	return &encryptionService{creds: creds, logger: log}
}

// Initialize implements [EncryptionService].
func (e *encryptionService) Initialize(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.aead != nil {
		return nil
	}

	key, err := e.creds.Load(ctx, credstore.KeyIdentifier)
	switch {
	case err == nil:
		// Adopt the persisted key.
	case isNotFound(err):
		key = make([]byte, rootKeyLen)
		if _, err := io.ReadFull(rand.Reader, key); err != nil {
			return fmt.Errorf("generate encryption key: %w", err)
		}
		if saveErr := e.creds.Save(ctx, credstore.KeyIdentifier, key); saveErr != nil {
			// Memory-only key for this session; stored payloads written now
			// become unreadable after restart, but nothing crashes.
			e.logger.Err(saveErr).Msg("failed to persist encryption key, continuing with in-memory key")
		}
	default:
		// Unreadable store is treated like an absent key would be risky: a
		// fresh key could shadow an existing one. Surface the load error.
		return fmt.Errorf("load encryption key: %w", err)
	}

	aead, err := newAEAD(key)
	if err != nil {
		return fmt.Errorf("build payload cipher: %w", err)
	}

	e.key = key
	e.aead = aead
	return nil
}

// Disable implements [EncryptionService].
func (e *encryptionService) Disable() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.key = nil
	e.aead = nil
}

// Encrypt implements [EncryptionService].
func (e *encryptionService) Encrypt(plaintext []byte) []byte {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if e.aead == nil {
		return plaintext
	}

	nonce := make([]byte, e.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		e.logger.Err(err).Msg("nonce generation failed, storing payload unencrypted")
		return plaintext
	}

	// Prepend the nonce: blob = nonce ∥ ciphertext ∥ tag.
	return e.aead.Seal(nonce, nonce, plaintext, nil)
}

// Decrypt implements [EncryptionService].
func (e *encryptionService) Decrypt(blob []byte) []byte {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if e.aead == nil {
		return blob
	}

	nonceSize := e.aead.NonceSize()
	if len(blob) < nonceSize {
		// Too short to carry a nonce: legacy plaintext written before
		// encryption was enabled.
		return blob
	}

	nonce, ciphertext := blob[:nonceSize], blob[nonceSize:]
	plaintext, err := e.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		// Either corrupted ciphertext or legacy plaintext; the two are
		// indistinguishable here and both fall back to the original bytes.
		return blob
	}
	return plaintext
}

// EncryptString implements [EncryptionService].
func (e *encryptionService) EncryptString(plaintext string) string {
	return base64.StdEncoding.EncodeToString(e.Encrypt([]byte(plaintext)))
}

// DecryptString implements [EncryptionService].
func (e *encryptionService) DecryptString(encoded string) string {
	blob, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return encoded
	}
	return string(e.Decrypt(blob))
}

// Enabled implements [EncryptionService].
func (e *encryptionService) Enabled() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.aead != nil && len(e.key) > 0
}

// newAEAD derives the payload key from root via HKDF-SHA256 and wraps it in
// AES-256-GCM.
func newAEAD(root []byte) (cipher.AEAD, error) {
	derived := make([]byte, rootKeyLen)
	if _, err := io.ReadFull(hkdf.New(sha256.New, root, nil, []byte(hkdfInfo)), derived); err != nil {
		return nil, fmt.Errorf("derive payload key: %w", err)
	}

	block, err := aes.NewCipher(derived)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}

func isNotFound(err error) bool {
	return errors.Is(err, credstore.ErrNotFound)
}
