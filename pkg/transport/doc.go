/*
Package transport implements the HTTP dispatch layer shared by the SOAP and
OData clients.

The Client wraps a *http.Client configured for TLS 1.2/1.3, applies the
endpoint credentials (Basic, Bearer, or ambient) to every outgoing request
and tags each request with a client-request-id correlation header. It does
not interpret response status codes beyond reading the body; the protocol
clients decide which statuses and payloads constitute failures.

Cancellation and timeouts are the caller's concern: every call takes a
context.Context, and the underlying http.Client carries the configured
overall timeout. The transport never retries.
*/
package transport
