package response

import "accounts/internal/core/domain/user"

// UserProfile is the only account representation ever rendered to clients:
// no phone, no hash, no reset state.
type UserProfile struct {
	FirstName string `json:"firstName"`
	Email     string `json:"email"`
}

func NewUserProfile(u user.User) UserProfile {
	return UserProfile{
		FirstName: u.FirstName,
		Email:     string(u.Email),
	}
}
