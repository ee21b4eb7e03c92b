package mapper

import (
	"taskboard-backend/internal/domain/user"
	"taskboard-backend/internal/features/user/models"
)

// ToUserSummary maps a stored user to its list representation
func ToUserSummary(u *user.User) *models.UserSummary {
	return &models.UserSummary{
		ID:            u.ID,
		Name:          u.Name,
		Email:         u.Email,
		Avatar:        u.Avatar,
		WalletAddress: u.WalletAddress,
		Role:          string(u.Role),
		CreatedAt:     u.CreatedAt,
	}
}

// ToUserResponse maps a stored user to the full profile
func ToUserResponse(u *user.User) *models.UserResponse {
	return &models.UserResponse{
		UserSummary: *ToUserSummary(u),
		UpdatedAt:   u.UpdatedAt,
	}
}

func ToUserSummaries(users []user.User) []*models.UserSummary {
	out := make([]*models.UserSummary, 0, len(users))
	for i := range users {
		out = append(out, ToUserSummary(&users[i]))
	}
	return out
}
