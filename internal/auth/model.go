package auth

// Roles recognized by the authorization middleware.
const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

// User is the account entity. Taste data (allergies, menu types) lives
// on the user's page, not here.
type User struct {
	ID       string
	Name     string
	Email    string
	Password string
	Role     string
}
