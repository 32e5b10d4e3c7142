package crypto

import "errors"

var (
	// ErrKeyDerivation means a key could not be derived: the requested hash
	// is unavailable in this build or the inputs are out of range. The
	// encryption guarantee cannot be honoured when this occurs.
	ErrKeyDerivation = errors.New("key derivation failed")

	// ErrAuthentication means the AEAD tag did not verify. For backups this
	// is the "incorrect PIN or corrupted backup" signal.
	ErrAuthentication = errors.New("authentication failed")

	// ErrInvalidCipherInput means the key or nonce has the wrong size.
	ErrInvalidCipherInput = errors.New("invalid cipher input")

	// ErrRandomSource means the OS CSPRNG could not be read.
	ErrRandomSource = errors.New("random source unavailable")
)
