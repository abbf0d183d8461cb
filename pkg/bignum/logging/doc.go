// Package logging provides a minimal logging facade for the bignum package
// family.
//
// This package defines a Logger interface that wraps a subset of the
// standard library's log/slog functionality. The interface is intentionally
// small to allow applications to provide custom implementations for
// testing, redaction, or integration with existing logging systems.
//
// # Default implementation
//
//	logger := logging.New(nil) // slog.Default()
//
// # Redaction
//
// rsa.GenerateKey, paillier.Generate, and dlog.NewSafePrimeGroup each log
// the bit length and duration of their prime/safe-prime searches, tagging
// the found factors with Redacted rather than logging them:
//
//	logger.Debug(ctx, "prime factor search complete", logging.Redacted("p"), "bits", half, "duration", d)
package logging
