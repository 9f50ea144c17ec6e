package user

import (
	"time"

	"github.com/eaglebank/eaglebank-api/internal/user"
)

type userResponse struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	PhoneNumber      string    `json:"phoneNumber"`
	CreatedTimestamp time.Time `json:"createdTimestamp"`
	UpdatedTimestamp time.Time `json:"updatedTimestamp"`
}

func toResponse(u *user.User) userResponse {
	return userResponse{
		ID:               u.ID,
		Name:             u.Name,
		Email:            u.Email,
		PhoneNumber:      u.PhoneNumber,
		CreatedTimestamp: u.CreatedAt.UTC(),
		UpdatedTimestamp: u.UpdatedAt.UTC(),
	}
}
