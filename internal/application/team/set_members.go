package team

import (
	"context"

	"github.com/amirhosseinghanipour/timesheet/internal/application/ports"
)

// SetMembers replaces a team's whole roster atomically. An empty list clears it.
type SetMembers struct {
	teams ports.TeamRepository
}

func NewSetMembers(teams ports.TeamRepository) *SetMembers {
	return &SetMembers{teams: teams}
}

func (uc *SetMembers) Execute(ctx context.Context, teamID string, memberIDs []string) error {
	return uc.teams.ReplaceMembers(ctx, teamID, dedupe(memberIDs))
}
