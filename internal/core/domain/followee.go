package domain

// Followee is a directed edge: User follows Followee.
type Followee struct {
	User     string
	Followee string
}
