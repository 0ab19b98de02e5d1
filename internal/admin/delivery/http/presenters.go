package http

import (
	"time"

	"uxo-chatbot/internal/admin"
)

type loginReq struct {
	Email    string `json:"email"    binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (r loginReq) toInput() admin.LoginInput {
	return admin.LoginInput{Email: r.Email, Password: r.Password}
}

type loginResp struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
}

func newLoginResp(out admin.LoginOutput) loginResp {
	return loginResp{AccessToken: out.AccessToken, TokenType: out.TokenType, ExpiresAt: out.ExpiresAt}
}
