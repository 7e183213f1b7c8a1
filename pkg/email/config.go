package email

import "time"

// Config holds email service configuration.
// The Postmark tokens are optional so development environments can run with
// the file-based sender instead of a real provider. SenderEmail is required
// as it establishes the sender identity for all outbound mail.
type Config struct {
	PostmarkServerToken  string        `env:"POSTMARK_SERVER_TOKEN"`
	PostmarkAccountToken string        `env:"POSTMARK_ACCOUNT_TOKEN"`
	SenderEmail          string        `env:"SENDER_EMAIL,required"`
	SendTimeout          time.Duration `env:"EMAIL_SEND_TIMEOUT" envDefault:"10s"`
}
