package session

// Role is the access level carried in the session snapshot.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Payload is the identity snapshot stored per session, taken at login time.
// It may go stale until renewal; request gating re-reads the user row.
type Payload struct {
	UserID string `json:"id"`
	Email  string `json:"email"`
	Role   Role   `json:"role"`
}
