// Package logger builds *slog.Logger instances with functional options and
// provides attribute helpers that keep key names consistent.
//
// New selects a text or JSON handler, applies static attributes and wraps
// the handler with LogHandlerDecorator, which runs the registered
// ContextExtractor callbacks on every record. This is how request-scoped
// values such as the request id reach log lines without being passed
// around explicitly:
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Env, "numguard"),
//	    logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "number checked",
//	    logger.Input(value),
//	    logger.Verdict(ok),
//	    logger.Reason(numeric.Reason(err)),
//	)
//
// Helpers such as Error and Reason return an empty slog.Attr for nil or
// empty input, which slog drops, so callers need no extra checks.
package logger
