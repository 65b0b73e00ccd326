// Package keeper is the client SDK for the keeper coordination service.
//
// Each API operation is exposed as a method on Client that returns a fresh
// request builder. Builders accumulate field values through fluent setters
// and are sent with Send, which blocks until the service replies. A builder
// is created per invocation and must not be reused after Send.
package keeper
