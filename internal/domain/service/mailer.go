package service

import "context"

// MagicLinkMailer delivers passwordless sign-in links by email.
type MagicLinkMailer interface {
	// SendMagicLink emails a sign-in link to the given address.
	SendMagicLink(ctx context.Context, email, link string) error
}
