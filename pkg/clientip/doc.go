// Package clientip resolves the address of the client behind an HTTP
// request.
//
// By default only the connection's remote address is used. Behind a
// reverse proxy, enable forwarded headers with WithTrustedHeaders; the
// first header holding a valid address wins, and for X-Forwarded-For the
// left-most valid entry is taken.
//
//	r.Use(clientip.Middleware(clientip.WithTrustedHeaders(clientip.HeaderXForwardedFor)))
//
//	ip := clientip.FromContext(r.Context())
package clientip
