// Package logging provides the small logging facade used by bigrsa.
//
// Logger wraps the subset of log/slog that the key generator and prime
// search need. Every method takes a context.Context so handlers can pick up
// request-scoped attributes.
//
//	type Logger interface {
//	    Debug(ctx context.Context, msg string, args ...any)
//	    Info(ctx context.Context, msg string, args ...any)
//	    Warn(ctx context.Context, msg string, args ...any)
//	    Error(ctx context.Context, msg string, args ...any)
//	    With(args ...any) Logger
//	}
//
// # Implementations
//
//	logger := logging.New(nil)                 // slog.Default()
//	logger = logging.New(slog.New(handler))    // custom handler
//	logger = logging.Discard()                 // drop everything
//
// # Secrets
//
// No integer from a keypair is logged by value. Public values (the modulus,
// the public exponent) are logged as a bit length through Bits. Private
// values (d, p, q) are logged with Redacted, so the record still shows the
// value existed:
//
//	logger.Info(ctx, "keypair generated",
//	    logging.Bits("modulus", n),
//	    logging.Redacted("private_exponent"),
//	)
//	// modulus_bits=1024 private_exponent="[redacted]"
package logging
