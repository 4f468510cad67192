package ports

import "context"

// Subscriber is a create-or-update request for one mailing list contact.
type Subscriber struct {
	Email  string
	Groups []string
	Status string
}

// MailingList forwards subscriber changes to the newsletter provider.
//
// Errors are a *domain.ProviderError when the provider rejected the call,
// or wrap domain.ErrTransport when it could not be reached.
type MailingList interface {
	CreateOrUpdateSubscriber(ctx context.Context, s Subscriber) error
}
