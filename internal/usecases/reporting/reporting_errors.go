package reporting

import "errors"

var (
	// ErrMissingPeriod indica que o período do relatório não foi informado
	ErrMissingPeriod = errors.New("é necessário informar as datas de início e fim")

	// ErrInvalidPeriod indica que as datas vieram em ordem invertida
	ErrInvalidPeriod = errors.New("a data de início não pode ser posterior à data de fim")
)
