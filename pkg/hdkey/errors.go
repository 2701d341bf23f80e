package hdkey

import "errors"

var (
	// ErrInvalidFormat is returned when extended-key text is not valid
	// Base58Check or decodes to the wrong length.
	ErrInvalidFormat = errors.New("invalid extended key format")

	// ErrInvalidVersion is returned for unregistered version bytes.
	ErrInvalidVersion = errors.New("invalid extended key version")

	// ErrCurveMismatch is returned when the curve a version is registered
	// for disagrees with the caller's expected coin.
	ErrCurveMismatch = errors.New("extended key curve mismatch")

	// ErrInvalidKeyPrefix is returned when the reserved byte before a
	// private key payload is not zero.
	ErrInvalidKeyPrefix = errors.New("invalid private key prefix")

	// ErrInvalidKeyMaterial is returned when the scalar or point is not a
	// legal value on the target curve.
	ErrInvalidKeyMaterial = errors.New("invalid key material")

	// ErrHardenedFromPublicKey is returned when hardened derivation is
	// attempted from a public-only key.
	ErrHardenedFromPublicKey = errors.New("hardened derivation from public key")

	// ErrUnsupportedDerivation is returned when the curve family does not
	// define the requested derivation step.
	ErrUnsupportedDerivation = errors.New("unsupported derivation for curve")

	// ErrInvalidChildKey is returned when a derivation step lands on an
	// invalid scalar (zero, or at or beyond the curve order) or the point
	// at infinity. Per BIP-32 this occurs with negligible probability; it
	// is surfaced rather than silently retried with the next index, so the
	// derived tree never diverges from other implementations.
	ErrInvalidChildKey = errors.New("invalid child key")
)
