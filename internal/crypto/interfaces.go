// Package crypto owns the in-memory symmetric key protecting stored
// clipboard payloads and exposes total encrypt/decrypt operations.
//
// Contract summary:
//   - Construction never touches the credential store; secure storage may
//     prompt the user, and the service can be built long before the user has
//     opted into sync. Key material is only loaded on Initialize.
//   - While uninitialized, Encrypt and Decrypt return their input unchanged,
//     so content written before encryption was ever enabled round-trips
//     losslessly.
//   - While initialized, any cryptographic failure degrades to passthrough
//     instead of returning an error: losing confidentiality for one payload
//     is preferred over losing the payload.
package crypto

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// EncryptionService encrypts and decrypts clipboard payloads with the
// device's 256-bit key.
type EncryptionService interface {
	// Initialize loads the key from the credential store, generating and
	// persisting a fresh 256-bit key when none exists. It is idempotent:
	// calling it while already initialized is a no-op. A failed save
	// degrades the key to memory-only for this session and is not returned
	// as an error; only key generation failures are.
	Initialize(ctx context.Context) error

	// Disable drops the in-memory key and returns the service to the
	// uninitialized state. The persisted copy is kept so a later Initialize
	// can still decrypt history written before the toggle.
	Disable()

	// Encrypt seals plaintext into nonce ∥ ciphertext ∥ tag. Passthrough
	// when uninitialized or on any cryptographic failure.
	Encrypt(plaintext []byte) []byte

	// Decrypt opens a blob produced by Encrypt. Passthrough when
	// uninitialized, when the blob is malformed, or when authentication
	// fails; callers must not treat the result as a corruption signal.
	Decrypt(blob []byte) []byte

	// EncryptString is Encrypt with a base64 (standard encoding) output for
	// text-safe contexts.
	EncryptString(plaintext string) string

	// DecryptString reverses EncryptString; input that is not valid base64
	// is returned unchanged.
	DecryptString(encoded string) string

	// Enabled reports whether the service currently holds a non-empty key.
	Enabled() bool
}
