package models

// ContactRequest é o formulário da página de contato; a mensagem é apenas
// repassada por email, nada é persistido.
type ContactRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message" validate:"required"`
}
