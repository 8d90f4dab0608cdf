package domain

// Task belongs to a project; time is logged against tasks.
type Task struct {
	ID          string
	ProjectID   string
	ProjectName string // read-only, filled by listings
	Name        string
	Description *string
}
