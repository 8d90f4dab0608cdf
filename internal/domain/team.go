package domain

// Team groups users. Members is ordered by display name and MemberIDs follows
// the same order.
type Team struct {
	ID          string
	Name        string
	Description *string
	Members     []string
	MemberIDs   []string
}

// TeamMembership links a user to a team.
type TeamMembership struct {
	TeamID string
	UserID string
}
