package domain

import "errors"

// Erros de domínio (sem dependências externas).
var (
	ErrNotFound           = errors.New("recurso não encontrado")
	ErrUserNotFound       = errors.New("usuário não encontrado")
	ErrEmailAlreadyExists = errors.New("o email já está em uso")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("não autorizado")
	ErrForbidden          = errors.New("acesso negado")
	ErrConflict           = errors.New("conflito com o estado atual")

	// Validações do orçamento. Cada uma carrega a mensagem exibida na UI;
	// nenhuma delas altera o estado do orçamento em andamento.
	ErrMissingClientID = errors.New("preencha o ID do cliente")
	ErrMissingMechanic = errors.New("preencha o nome do mecânico")
	ErrEmptySelection  = errors.New("adicione pelo menos um serviço")

	// ErrPersistence sinaliza falha de gravação no backend; o orçamento é
	// preservado para que o usuário possa tentar de novo sem redigitar.
	ErrPersistence = errors.New("erro ao gravar a nota fiscal, tente novamente")
)
