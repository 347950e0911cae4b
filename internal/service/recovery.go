package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// Estados do fluxo de recuperação de senha. invalidLink e updated são
// terminais: só se sai deles navegando para fora do fluxo.
type RecoveryState string

const (
	RecoveryChecking     RecoveryState = "checking"
	RecoverySessionReady RecoveryState = "sessionReady"
	RecoveryInvalidLink  RecoveryState = "invalidLink"
	RecoveryUpdated      RecoveryState = "updated"
)

// Mensagens de validação da senha nova, uma por regra, para o formulário
// apontar exatamente o que falta.
var (
	ErrPasswordTooShort   = errors.New("a senha deve ter pelo menos 8 caracteres")
	ErrPasswordNoUpper    = errors.New("a senha deve conter pelo menos uma letra maiúscula")
	ErrPasswordNoLower    = errors.New("a senha deve conter pelo menos uma letra minúscula")
	ErrPasswordNoDigit    = errors.New("a senha deve conter pelo menos um número")
	ErrPasswordsEmpty     = errors.New("preencha todos os campos")
	ErrPasswordsMismatch  = errors.New("as senhas não coincidem")
	ErrFlowNotReady       = errors.New("o link ainda não foi validado")
	ErrFlowAlreadyUpdated = errors.New("a senha já foi atualizada, faça login")
)

// TokenExchanger é o pedaço do serviço de autenticação que o fluxo enxerga.
type TokenExchanger interface {
	ExchangeRecoveryToken(ctx context.Context, token string) (string, error)
	UpdatePasswordWithSession(ctx context.Context, sessionToken, newPassword string) error
}

// ParseRecoveryLink inspeciona a URL recebida no link de redefinição, na
// ordem de prioridade: fragmento com access_token ou marcador de recovery,
// code na query e, por fim, parâmetro de erro. URL sem nenhum dos três é
// link inválido.
func ParseRecoveryLink(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", ErrInvalidLink
	}

	// 1) fragmento (#access_token=...&type=recovery), formato dos emails
	fragment := u.Fragment
	if strings.Contains(fragment, "access_token") || strings.Contains(fragment, "type=recovery") {
		values, err := url.ParseQuery(fragment)
		if err != nil {
			return "", ErrInvalidLink
		}
		token := values.Get("access_token")
		if token == "" {
			return "", ErrInvalidLink
		}
		return token, nil
	}

	query := u.Query()

	// 2) ?code=..., formato alternativo de alguns provedores
	if code := query.Get("code"); code != "" {
		return code, nil
	}

	// 3) erro explícito na URL
	if errParam := query.Get("error_description"); errParam != "" {
		return "", fmt.Errorf("%w: %s", ErrInvalidLink, strings.ReplaceAll(errParam, "+", " "))
	}
	if errParam := query.Get("error"); errParam != "" {
		return "", fmt.Errorf("%w: %s", ErrInvalidLink, strings.ReplaceAll(errParam, "+", " "))
	}

	return "", ErrInvalidLink
}

// ValidatePasswordStrength aplica a política do formulário de redefinição.
func ValidatePasswordStrength(password string) error {
	if len(password) < 8 {
		return ErrPasswordTooShort
	}
	if !strings.ContainsAny(password, "ABCDEFGHIJKLMNOPQRSTUVWXYZ") {
		return ErrPasswordNoUpper
	}
	if !strings.ContainsAny(password, "abcdefghijklmnopqrstuvwxyz") {
		return ErrPasswordNoLower
	}
	if !strings.ContainsAny(password, "0123456789") {
		return ErrPasswordNoDigit
	}
	return nil
}

// RecoveryFlow é a máquina de estados de uma visita à página de
// redefinição: checking -> sessionReady | invalidLink; de sessionReady,
// submeter a senha leva a updated. Erros do serviço de autenticação nunca
// derrubam o fluxo: viram mensagem e o formulário continua utilizável,
// exceto em invalidLink, que é irrecuperável sem um link novo.
type RecoveryFlow struct {
	auth    TokenExchanger
	state   RecoveryState
	session string
	message string
}

func NewRecoveryFlow(auth TokenExchanger) *RecoveryFlow {
	return &RecoveryFlow{
		auth:  auth,
		state: RecoveryChecking,
	}
}

// ResumeRecoveryFlow retoma um fluxo já em sessionReady a partir da
// sessão temporária emitida na troca do token; é como a requisição de
// troca de senha, que chega em outra conexão, reentra na máquina.
func ResumeRecoveryFlow(auth TokenExchanger, sessionToken string) *RecoveryFlow {
	return &RecoveryFlow{
		auth:    auth,
		state:   RecoverySessionReady,
		session: sessionToken,
	}
}

func (f *RecoveryFlow) State() RecoveryState { return f.state }

// SessionToken é a sessão temporária obtida na troca do token; vazio fora
// de sessionReady.
func (f *RecoveryFlow) SessionToken() string { return f.session }

// Message é o texto exibível do último erro; vazio quando não há erro.
func (f *RecoveryFlow) Message() string { return f.message }

// Start valida o link uma única vez; chamadas repetidas não tentam a troca
// de novo.
func (f *RecoveryFlow) Start(ctx context.Context, rawURL string) RecoveryState {
	if f.state != RecoveryChecking {
		return f.state
	}

	token, err := ParseRecoveryLink(rawURL)
	if err != nil {
		f.state = RecoveryInvalidLink
		f.message = err.Error()
		return f.state
	}

	session, err := f.auth.ExchangeRecoveryToken(ctx, token)
	if err != nil {
		f.state = RecoveryInvalidLink
		f.message = ErrInvalidLink.Error()
		return f.state
	}

	f.state = RecoverySessionReady
	f.session = session
	return f.state
}

// SubmitPassword valida os campos e troca a senha. Falha de validação ou
// do serviço mantém o estado em sessionReady para nova tentativa.
func (f *RecoveryFlow) SubmitPassword(ctx context.Context, password, confirm string) (RecoveryState, error) {
	switch f.state {
	case RecoveryInvalidLink:
		return f.state, ErrInvalidLink
	case RecoveryUpdated:
		return f.state, ErrFlowAlreadyUpdated
	case RecoveryChecking:
		return f.state, ErrFlowNotReady
	}

	if password == "" || confirm == "" {
		f.message = ErrPasswordsEmpty.Error()
		return f.state, ErrPasswordsEmpty
	}
	if password != confirm {
		f.message = ErrPasswordsMismatch.Error()
		return f.state, ErrPasswordsMismatch
	}
	if err := ValidatePasswordStrength(password); err != nil {
		f.message = err.Error()
		return f.state, err
	}

	if err := f.auth.UpdatePasswordWithSession(ctx, f.session, password); err != nil {
		f.message = err.Error()
		return f.state, err
	}

	f.state = RecoveryUpdated
	f.message = ""
	return f.state, nil
}
