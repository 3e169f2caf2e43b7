package model

// Role of a signed-in back-office operator. Authorization depth lives in the
// auth service; the gateway only gates on membership.
type Role string

const (
	RoleAdmin            Role = "ADMIN"
	RoleGymOwner         Role = "GYM_OWNER"
	RoleFreelanceTrainer Role = "FREELANCE_TRAINER"
)

func (r Role) IsBackoffice() bool {
	switch r {
	case RoleAdmin, RoleGymOwner, RoleFreelanceTrainer:
		return true
	default:
		return false
	}
}
