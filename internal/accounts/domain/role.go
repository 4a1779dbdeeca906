package domain

// Role gates which operations a session may perform.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// DefaultRole is assigned to every self-registered account.
const DefaultRole = RoleUser

func (r Role) String() string { return string(r) }
