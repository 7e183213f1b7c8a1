// Package email provides a provider-agnostic interface for sending
// transactional emails.
//
// The package is built around the EmailSender interface so the provider can
// be swapped without touching application code:
//   - NewPostmarkClient sends through Postmark's JSON API
//   - NewDevSender saves emails to disk for local development
//
// Every implementation validates SendEmailParams before sending, and every
// delivery failure (non-2xx provider response, network error, timeout)
// surfaces as ErrFailedToSendEmail:
//
//	if errors.Is(err, email.ErrFailedToSendEmail) {
//	    // delivery failed, decide whether the caller retries
//	}
//
// Sends are bounded by Config.SendTimeout; the package never retries.
package email
