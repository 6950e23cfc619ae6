package dto

import (
	"petcare/internal/domains/user/model"
	"petcare/shared"
	"petcare/shared/constant"
	gDto "petcare/shared/dto"
	"petcare/shared/timezone"
)

type UserResponse struct {
	ID        string  `json:"id"`
	Email     string  `json:"email"`
	FullName  string  `json:"full_name"`
	Role      string  `json:"role"`
	Color     *string `json:"color,omitempty"`
	LastLogin *string `json:"last_login"`
	Active    bool    `json:"active"`
	gDto.Metadata
}

func (r *UserResponse) FromModel(user model.User) {
	r.ID = user.ID
	r.Email = user.Email
	r.FullName = user.FullName
	r.Role = user.Role
	r.Color = user.Color
	r.Active = user.Active
	r.Metadata.FromModel(user.Metadata)

	if user.LastLogin != nil {
		lastLogin := timezone.Format(*user.LastLogin, constant.DateFormat)
		r.LastLogin = &lastLogin
	}
}

type WalkerResponse struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Color    string `json:"color"`
}

type GetWalkersResponse struct {
	Walkers   []WalkerResponse `json:"walkers"`
	TotalPage int              `json:"total_page"`
	TotalData int              `json:"total_data"`
}

// FromModels pairs each walker with the calendar color at the same index.
func (r *GetWalkersResponse) FromModels(walkers []model.User, colors []string, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Walkers = make([]WalkerResponse, len(walkers))
	for i, walker := range walkers {
		r.Walkers[i] = WalkerResponse{
			ID:       walker.ID,
			FullName: walker.FullName,
			Email:    walker.Email,
			Color:    colors[i],
		}
	}
}
