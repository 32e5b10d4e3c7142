package envelope

import "errors"

var (
	// ErrMissingSecret is returned when encryption or decryption is requested
	// without a secret.
	ErrMissingSecret = errors.New("missing secret")

	// ErrMalformedEnvelope is returned for structurally invalid envelopes:
	// missing fields for the declared branch, undecodable base64 or JSON,
	// unsupported algorithms or parameters.
	ErrMalformedEnvelope = errors.New("malformed backup envelope")
)
