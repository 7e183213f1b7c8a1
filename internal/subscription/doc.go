// Package subscription implements the subscription lifecycle: sign-up
// persisting a pending subscriber atomically with its confirmation token,
// the post-commit confirmation email, and token redemption.
//
// The invariant the package exists to protect: a subscriber and its token
// are created in one transaction, and the confirmation email goes out only
// after that transaction commits.
package subscription
