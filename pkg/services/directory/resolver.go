package directory

import (
	"context"

	"github.com/de-tools/offer-atlas/pkg/models/domain"
	"github.com/de-tools/offer-atlas/pkg/store/graph"
)

// Resolver maps a raw owner identifier to a canonical contact.
type Resolver interface {
	ResolveOwner(ctx context.Context, id string) (domain.Contact, error)
}

type service struct {
	client *graph.Client
}

// NewResolver wraps the directory store client. The caller decides how to
// degrade on lookup failures; the engine itself never depends on resolution.
func NewResolver(client *graph.Client) Resolver {
	return &service{client: client}
}

func (s *service) ResolveOwner(ctx context.Context, id string) (domain.Contact, error) {
	user, err := s.client.GetUser(ctx, id)
	if err != nil {
		return domain.Contact{}, err
	}

	contact := domain.Contact{ID: id, Name: user.DisplayName, Mail: user.Mail}
	if contact.Mail == "" {
		contact.Mail = user.UserPrincipalName
	}
	if contact.Name == "" {
		contact.Name = id
	}
	return contact, nil
}
