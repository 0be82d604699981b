package dto

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	OK    bool   `json:"ok"`
	Sede  string `json:"sede"`
	Token string `json:"token"`
}
