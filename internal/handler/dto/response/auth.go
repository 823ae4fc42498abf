package response

import "ovenbook/internal/usecase/queries"

type AuthUserResponse struct {
	Success bool                        `json:"success"`
	User    *queries.AuthorizedUserView `json:"user"`
}

func AuthUser(view *queries.AuthorizedUserView) AuthUserResponse {
	return AuthUserResponse{Success: true, User: view}
}
