package user

import "net/http"

type RegisterRequest struct {
	Login    string `json:"login" minLength:"3" maxLength:"64" doc:"Login or e-mail address"`
	Name     string `json:"name,omitempty" maxLength:"255" doc:"Display name"`
	Password string `json:"password" minLength:"8" maxLength:"72"`
}

type registerInput struct {
	Body RegisterRequest
}

type registerOutput struct {
	Body RegisterResponse
}

type RegisterResponse struct {
	ID     int    `json:"user_id"`
	Status string `json:"status"`
}

type LoginRequest struct {
	Login    string `json:"login" minLength:"1"`
	Password string `json:"password" minLength:"1"`
}

type loginInput struct {
	Body LoginRequest
}

type loginOutput struct {
	SetCookie http.Cookie `header:"Set-Cookie"`
	Body      LoginResponse
}

type LoginResponse struct {
	Token  string `json:"token"`
	Name   string `json:"name,omitempty"`
	Status string `json:"status"`
}

type logoutOutput struct {
	SetCookie http.Cookie `header:"Set-Cookie"`
}
