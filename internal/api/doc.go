// Package api exposes user agent classification over HTTP.
//
// Routes:
//
//	GET  /v1/classify?ua=...   classify one string (the caller's header when ua is absent)
//	POST /v1/classify          classify {"user_agents": [...]} in order
//	GET  /v1/whoami            classification of the caller
//	GET  /v1/stats             visitor counters from the stats recorder
//	GET  /health/live          liveness probe
//	GET  /health/ready         readiness probe, pings the stats backend
//
// Every JSON body is an Envelope holding either data or error. Classification
// goes through a memoizing useragent.Classifier shared by all routes; /v1
// routes are rate limited per client IP.
package api
