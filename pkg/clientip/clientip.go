package clientip

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"net/netip"
	"strings"
)

// Forwarding headers understood by WithTrustedHeaders.
const (
	HeaderCFConnectingIP = "CF-Connecting-IP"
	HeaderXForwardedFor  = "X-Forwarded-For"
	HeaderXRealIP        = "X-Real-IP"
)

type resolver struct {
	headers []string
}

// Option configures address resolution.
type Option func(*resolver)

// WithTrustedHeaders consults headers, in order, before the remote
// address. Only enable headers that a proxy in front of the server sets.
func WithTrustedHeaders(headers ...string) Option {
	return func(r *resolver) {
		r.headers = append(r.headers, headers...)
	}
}

func newResolver(opts []Option) *resolver {
	r := &resolver{}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// FromRequest returns the normalised client address of req, or "" when
// none can be determined.
func FromRequest(req *http.Request, opts ...Option) string {
	return newResolver(opts).resolve(req)
}

func (rs *resolver) resolve(req *http.Request) string {
	for _, h := range rs.headers {
		value := req.Header.Get(h)
		if value == "" {
			continue
		}
		if h == HeaderXForwardedFor {
			for part := range strings.SplitSeq(value, ",") {
				if ip := normalize(part); ip != "" {
					return ip
				}
			}
			continue
		}
		if ip := normalize(value); ip != "" {
			return ip
		}
	}

	host, _, err := net.SplitHostPort(req.RemoteAddr)
	if err != nil {
		return normalize(req.RemoteAddr)
	}
	return normalize(host)
}

func normalize(s string) string {
	addr, err := netip.ParseAddr(strings.TrimSpace(s))
	if err != nil {
		return ""
	}
	return addr.Unmap().String()
}

type contextKey struct{}

func WithContext(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, contextKey{}, ip)
}

// FromContext returns the address stored by Middleware, or "".
func FromContext(ctx context.Context) string {
	ip, _ := ctx.Value(contextKey{}).(string)
	return ip
}

// Middleware resolves the client address once per request and stores it
// in the request context.
func Middleware(opts ...Option) func(http.Handler) http.Handler {
	rs := newResolver(opts)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), rs.resolve(r))))
		})
	}
}

// LoggerExtractor adds "client_ip" to log records emitted with a request
// context.
func LoggerExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		if ip := FromContext(ctx); ip != "" {
			return slog.String("client_ip", ip), true
		}
		return slog.Attr{}, false
	}
}
