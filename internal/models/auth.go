package models

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// RecoveryRequest carrega a URL completa que o navegador recebeu no link
// de redefinição; o servidor decide entre fragmento, code e erro.
type RecoveryRequest struct {
	LinkURL string `json:"link_url" validate:"required"`
}

type ResetPasswordRequest struct {
	Password        string `json:"password" validate:"required"`
	ConfirmPassword string `json:"confirm_password" validate:"required"`
}

type AuthResponse struct {
	Token string `json:"token"`
	Admin Admin  `json:"admin"`
}

type RecoveryResponse struct {
	State        string `json:"state"`
	SessionToken string `json:"session_token,omitempty"`
	Error        string `json:"error,omitempty"`
}
