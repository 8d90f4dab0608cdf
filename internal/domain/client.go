package domain

// Client is a customer that projects can be billed to.
type Client struct {
	ID   string
	Name string
}
