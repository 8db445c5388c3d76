package collecting

import "errors"

var (
	// ErrAccountNotConfigured indica que a conta não existe na configuração
	// de credenciais do serviço
	ErrAccountNotConfigured = errors.New("conta não configurada no serviço")
)
