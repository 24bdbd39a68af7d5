package auth

// Role is the coarse permission level carried in the access token.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Actor identifies who is performing an operation. Services evaluate
// capabilities through it instead of comparing role strings inline.
type Actor struct {
	UserID int64
	Role   Role
}

// CanModerate reports whether the actor may perform admin-only operations
// (approve/reject bookings, manage rooms and master data).
func (a Actor) CanModerate() bool {
	return a.Role == RoleAdmin
}

// Owns reports whether the actor is the given user.
func (a Actor) Owns(userID int64) bool {
	return a.UserID == userID
}

// CanCancel reports whether the actor may cancel a booking owned by ownerID.
func (a Actor) CanCancel(ownerID int64) bool {
	return a.CanModerate() || a.Owns(ownerID)
}
