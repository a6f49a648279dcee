package http

import (
	"cloud-srv/internal/auth"
	"cloud-srv/internal/model"
)

// loginReq - Request body for Login
type loginReq struct {
	Login    string `json:"login" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (r loginReq) toInput() auth.LoginInput {
	return auth.LoginInput{
		Login:    r.Login,
		Password: r.Password,
	}
}

// loginResp - Response for Login. The token rides under the same key clients
// send it back in.
type loginResp struct {
	Token string `json:"auth-token"`
}

func (h *handler) newLoginResp(output auth.LoginOutput) loginResp {
	return loginResp{Token: output.Token}
}

// registerReq - Request body for Register. The public endpoint never accepts
// a role from the client; every registration gets RoleUser.
type registerReq struct {
	Login    string `json:"login" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (r registerReq) toInput() auth.RegisterInput {
	return auth.RegisterInput{
		Login:    r.Login,
		Password: r.Password,
		Role:     model.RoleUser,
	}
}
