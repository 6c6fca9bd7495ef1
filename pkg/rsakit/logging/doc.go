// Package logging provides a minimal logging facade over log/slog for the
// rsakit library.
//
// Key generation can take seconds to minutes depending on bit length and the
// safe-prime option, so the generator reports search progress through a
// Logger supplied in its options. The library never logs by default:
// Discard() is used when no Logger is provided.
//
//	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})
//	logger := logging.New(slog.New(handler))
//
// Private key material must never reach a log line. Use Redacted to record
// that a sensitive attribute was deliberately omitted:
//
//	logger.Debug(ctx, "prime search complete", logging.Redacted("prime"),
//	    "bits", 512)
package logging
