package client

import (
	"context"
	"testing"

	"github.com/amirhosseinghanipour/timesheet/internal/application/ports/portsfake"
	"github.com/amirhosseinghanipour/timesheet/internal/domain"
	domerrors "github.com/amirhosseinghanipour/timesheet/internal/domain/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteClient(t *testing.T) {
	ctx := context.Background()
	store := portsfake.New()
	require.NoError(t, store.Clients().Create(ctx, &domain.Client{ID: "c-1", Name: "Acme"}))
	require.NoError(t, store.Clients().Create(ctx, &domain.Client{ID: "c-2", Name: "Globex"}))
	clientID := "c-1"
	require.NoError(t, store.Projects().Create(ctx, &domain.Project{ID: "p-1", ClientID: &clientID, Name: "Apollo"}))

	uc := NewDeleteClient(store.Clients())

	err := uc.Execute(ctx, "c-1")
	assert.ErrorIs(t, err, domerrors.ErrConflict)
	assert.Equal(t, "client has associated projects", domerrors.Reason(err))

	require.NoError(t, uc.Execute(ctx, "c-2"))
	assert.ErrorIs(t, uc.Execute(ctx, "c-2"), domerrors.ErrNotFound)

	clients, err := store.Clients().List(ctx)
	require.NoError(t, err)
	require.Len(t, clients, 1)
	assert.Equal(t, "c-1", clients[0].ID)
}
