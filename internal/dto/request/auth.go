package request

import "net/url"

type RegisterRequest struct {
	Username        string `json:"username" validate:"required,min=3,max=50"`
	Password        string `json:"password" validate:"required"`
	ConfirmPassword string `json:"confirm_password" validate:"required"`
	Email           string `json:"email"`
}

func (r *RegisterRequest) FromForm(values url.Values) {
	r.Username = values.Get("username")
	r.Password = values.Get("password")
	r.ConfirmPassword = values.Get("confirm-password")
	r.Email = values.Get("email")
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (r *LoginRequest) FromForm(values url.Values) {
	r.Username = values.Get("username")
	r.Password = values.Get("password")
}
