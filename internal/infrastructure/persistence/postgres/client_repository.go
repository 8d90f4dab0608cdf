package postgres

import (
	"context"

	"github.com/amirhosseinghanipour/timesheet/internal/application/ports"
	"github.com/amirhosseinghanipour/timesheet/internal/domain"
	domerrors "github.com/amirhosseinghanipour/timesheet/internal/domain/errors"
	"github.com/amirhosseinghanipour/timesheet/internal/infrastructure/persistence/db"
)

type ClientRepository struct {
	q *db.Queries
}

func NewClientRepository(q *db.Queries) *ClientRepository {
	return &ClientRepository{q: q}
}

func (r *ClientRepository) List(ctx context.Context) ([]*domain.Client, error) {
	rows, err := r.q.ListClients(ctx)
	if err != nil {
		return nil, domerrors.Storage(err)
	}
	clients := make([]*domain.Client, 0, len(rows))
	for _, c := range rows {
		clients = append(clients, &domain.Client{ID: c.ID, Name: c.Name})
	}
	return clients, nil
}

func (r *ClientRepository) Create(ctx context.Context, client *domain.Client) error {
	return writeErr(r.q.CreateClient(ctx, db.Client{ID: client.ID, Name: client.Name}))
}

func (r *ClientRepository) Update(ctx context.Context, client *domain.Client) error {
	n, err := r.q.UpdateClient(ctx, db.Client{ID: client.ID, Name: client.Name})
	return affected(n, writeErr(err), "client")
}

func (r *ClientRepository) Delete(ctx context.Context, clientID string) error {
	n, err := r.q.DeleteClient(ctx, clientID)
	return affected(n, deleteErr(err, "client"), "client")
}

func (r *ClientRepository) CountProjects(ctx context.Context, clientID string) (int64, error) {
	n, err := r.q.CountProjectsByClient(ctx, clientID)
	if err != nil {
		return 0, domerrors.Storage(err)
	}
	return n, nil
}

var _ ports.ClientRepository = (*ClientRepository)(nil)
