package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/pflag"

	"github.com/dmitrymomot/numguard/pkg/api"
	"github.com/dmitrymomot/numguard/pkg/clientip"
	"github.com/dmitrymomot/numguard/pkg/httpserver"
	"github.com/dmitrymomot/numguard/pkg/i18n"
	"github.com/dmitrymomot/numguard/pkg/logger"
	"github.com/dmitrymomot/numguard/pkg/messages"
	"github.com/dmitrymomot/numguard/pkg/metrics"
	"github.com/dmitrymomot/numguard/pkg/numeric"
	"github.com/dmitrymomot/numguard/pkg/ratelimiter"
	"github.com/dmitrymomot/numguard/pkg/requestid"
	"github.com/dmitrymomot/numguard/pkg/validator"
)

const (
	exitOK      = 0
	exitInvalid = 1
	exitUsage   = 2

	valueField = "value"
)

type options struct {
	precision    int
	scale        int
	onlyPositive bool
	lang         string
	quiet        bool
	envFile      string
	serve        bool
	addr         string
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := pflag.NewFlagSet("numguard", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: numguard [flags] [value...]")
		fs.PrintDefaults()
	}

	var opts options
	fs.IntVarP(&opts.precision, "precision", "p", 0, "maximum total number of digits (overrides NUMBER_PRECISION)")
	fs.IntVarP(&opts.scale, "scale", "s", 0, "maximum number of digits after the separator (overrides NUMBER_SCALE)")
	fs.BoolVar(&opts.onlyPositive, "only-positive", false, "reject negative numbers (overrides NUMBER_ONLY_POSITIVE)")
	fs.StringVar(&opts.lang, "lang", "", "message language (defaults to DEFAULT_LANGUAGE)")
	fs.BoolVarP(&opts.quiet, "quiet", "q", false, "print nothing, report through the exit code only")
	fs.StringVar(&opts.envFile, "env-file", "", "load environment variables from this file")
	fs.BoolVar(&opts.serve, "serve", false, "serve the HTTP API instead of checking values")
	fs.StringVar(&opts.addr, "addr", "", "listen address for --serve (overrides HTTP_ADDR)")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return exitOK
		}
		fmt.Fprintln(stderr, "numguard:", err)
		fs.Usage()
		return exitUsage
	}

	s, err := loadSettings(opts.envFile)
	if err != nil {
		fmt.Fprintln(stderr, "numguard:", err)
		return exitUsage
	}
	if fs.Changed("precision") {
		s.numeric.Precision = opts.precision
	}
	if fs.Changed("scale") {
		s.numeric.Scale = opts.scale
	}
	if fs.Changed("only-positive") {
		s.numeric.OnlyPositive = opts.onlyPositive
	}
	if opts.addr != "" {
		s.http.Addr = opts.addr
	}

	log, err := newLogger(s.app, stderr)
	if err != nil {
		fmt.Fprintln(stderr, "numguard:", err)
		return exitUsage
	}

	tr, err := messages.NewTranslator(ctx,
		i18n.WithDefaultLanguage(s.app.DefaultLanguage),
		i18n.WithLogger(log),
	)
	if err != nil {
		fmt.Fprintln(stderr, "numguard:", err)
		return exitUsage
	}

	lang := opts.lang
	if lang == "" {
		lang = s.app.DefaultLanguage
	}
	lang = i18n.MatchLanguage(lang, tr.SupportedLanguages(), tr.DefaultLanguage())

	v, err := numeric.NewFromConfig(s.numeric)
	if err != nil {
		fmt.Fprintln(stderr, "numguard:", numeric.ErrInvalidConfiguration)
		for _, msg := range messages.LocalizeAll(tr, lang, validator.ExtractValidationErrors(err)) {
			fmt.Fprintln(stderr, "  "+msg)
		}
		return exitUsage
	}

	log.DebugContext(ctx, "validator ready", logger.Rules(s.numeric.Precision, s.numeric.Scale, s.numeric.OnlyPositive))

	if opts.serve {
		return serve(ctx, s, v, tr, log)
	}

	out := stdout
	if opts.quiet {
		out = io.Discard
	}

	c := &checker{validator: v, translator: tr, lang: lang, out: out, log: log}
	if values := fs.Args(); len(values) > 0 {
		for _, value := range values {
			c.check(ctx, value)
		}
	} else if err := c.checkLines(ctx, stdin); err != nil {
		fmt.Fprintln(stderr, "numguard:", err)
		return exitUsage
	}

	log.DebugContext(ctx, "values checked", logger.Count(c.total), slog.Int("invalid", c.invalid))

	if c.invalid > 0 {
		return exitInvalid
	}
	return exitOK
}

func newLogger(app appConfig, w io.Writer) (*slog.Logger, error) {
	level, err := logger.ParseLevel(app.LogLevel)
	if err != nil {
		return nil, err
	}
	return logger.New(
		logger.WithEnvironment(app.Env, app.Name),
		logger.WithLevel(level),
		logger.WithTextFormatter(),
		logger.WithOutput(w),
		logger.WithContextExtractors(requestid.LoggerExtractor(), clientip.LoggerExtractor()),
	), nil
}

func serve(ctx context.Context, s settings, v *numeric.Validator, tr *i18n.Translator, log *slog.Logger) int {
	start := time.Now()

	opts := []api.Option{
		api.WithTranslator(tr),
		api.WithLogger(log),
		api.WithMetrics(metrics.New()),
		api.WithMaxBatch(s.app.MaxBatch),
		api.WithTrustedProxyHeaders(s.app.TrustedProxyHeaders...),
	}
	if s.rate.Capacity > 0 {
		store := ratelimiter.NewMemoryStore()
		defer store.Close()

		bucket, err := ratelimiter.NewBucket(store, s.rate)
		if err != nil {
			log.ErrorContext(ctx, "invalid rate limit configuration", logger.Error(err))
			return exitUsage
		}
		opts = append(opts, api.WithRateLimiter(bucket))
	}

	srv := httpserver.NewFromConfig(s.http, httpserver.WithLogger(log))
	if err := srv.Run(ctx, api.New(v, opts...).Router()); err != nil {
		log.ErrorContext(ctx, "server failed", logger.Error(err))
		return exitInvalid
	}

	log.InfoContext(ctx, "server exited", logger.Duration(time.Since(start)))
	return exitOK
}

type checker struct {
	validator  *numeric.Validator
	translator *i18n.Translator
	lang       string
	out        io.Writer
	log        *slog.Logger

	total   int
	invalid int
}

func (c *checker) check(ctx context.Context, value string) {
	c.total++

	err := c.validator.Check(value)
	c.log.DebugContext(ctx, "number checked",
		logger.Input(&value),
		logger.Verdict(err == nil),
		logger.Reason(numeric.Reason(err)),
	)

	if err == nil {
		fmt.Fprintf(c.out, "%s\tvalid\n", value)
		return
	}

	c.invalid++
	msg := messages.Localize(c.translator, c.lang, c.validator.ValidationError(valueField, err))
	fmt.Fprintf(c.out, "%s\tinvalid\t%s\n", value, msg)
}

// checkLines checks every line of r. Line terminators ("\n" or "\r\n") are
// not part of the value, any other whitespace is. Lines have no length
// limit.
func (c *checker) checkLines(ctx context.Context, r io.Reader) error {
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		if line == "" && err != nil {
			return nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		line = strings.TrimSuffix(line, "\n")
		line = strings.TrimSuffix(line, "\r")
		c.check(ctx, line)

		if err != nil {
			return nil
		}
	}
}
