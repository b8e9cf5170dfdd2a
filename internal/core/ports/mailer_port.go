package ports

import "context"

type MailerPort interface {
	Send(ctx context.Context, subject, body string) error
}
