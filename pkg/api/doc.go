// Package api exposes a numeric.Validator over HTTP.
//
// Routes (JSON in and out):
//
//	GET  /healthz               liveness probe
//	GET  /v1/rules              precision, scale and sign policy in effect
//	GET  /v1/validate?value=... check one value; no parameter means absent
//	POST /v1/validate           {"value": "1.23"}; null or missing means absent
//	POST /v1/validate/batch     {"values": ["1.23", null, "x"]}
//	GET  /metrics               Prometheus metrics, when WithMetrics is set
//
// A rejected number is a regular 200 response with "valid": false, a
// reason code and a message localised from the Accept-Language header or
// the "lang" query parameter. Only malformed or rate limited requests
// produce 4xx codes.
package api
