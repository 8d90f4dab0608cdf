package client

import (
	"context"

	"github.com/amirhosseinghanipour/timesheet/internal/application/ports"
	domerrors "github.com/amirhosseinghanipour/timesheet/internal/domain/errors"
)

// DeleteClient removes a client that no project references.
type DeleteClient struct {
	clients ports.ClientRepository
}

func NewDeleteClient(clients ports.ClientRepository) *DeleteClient {
	return &DeleteClient{clients: clients}
}

// Execute returns ErrConflict while projects still reference the client. The
// foreign key catches a project inserted between the count and the delete.
func (uc *DeleteClient) Execute(ctx context.Context, clientID string) error {
	n, err := uc.clients.CountProjects(ctx, clientID)
	if err != nil {
		return err
	}
	if n > 0 {
		return domerrors.Conflict("client has associated projects")
	}
	return uc.clients.Delete(ctx, clientID)
}
