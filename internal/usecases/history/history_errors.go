package history

import "errors"

var (
	// ErrChatterNotFound indica que o chatter não existe no cadastro
	ErrChatterNotFound = errors.New("chatter não encontrado no cadastro")

	// ErrAccountNotFound indica que a conta não existe no cadastro
	ErrAccountNotFound = errors.New("conta não encontrada no cadastro")

	// ErrInvalidDays indica uma janela de histórico inválida
	ErrInvalidDays = errors.New("a quantidade de dias deve ser maior que zero")

	// ErrMissingPeriod indica que o período do resumo não foi informado
	ErrMissingPeriod = errors.New("o período inicial e final é obrigatório")
)
