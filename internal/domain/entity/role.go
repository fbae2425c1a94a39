package entity

// Role is an application capability level
type Role string

// Application roles
const (
	RoleAdmin     Role = "admin"
	RoleModerator Role = "moderator"
	RoleUser      Role = "user"
)

// IsValidRole validates a role name from the API boundary
func IsValidRole(role Role) bool {
	return role == RoleAdmin || role == RoleModerator || role == RoleUser
}

// VerificationStatus values for an account's identity verification
const (
	VerificationPending  = "pending"
	VerificationVerified = "verified"
	VerificationRejected = "rejected"
)

// IsValidVerificationStatus validates a verification status name
func IsValidVerificationStatus(status string) bool {
	return status == VerificationPending ||
		status == VerificationVerified ||
		status == VerificationRejected
}
