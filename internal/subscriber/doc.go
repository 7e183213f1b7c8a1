// Package subscriber holds the domain types for newsletter sign-ups:
// the Subscriber record, its two-state lifecycle, and the parsed
// EmailAddress and Name value types. Construction goes through ParseEmail
// and ParseName so invalid input cannot reach the store.
package subscriber
