package retry

import (
	"time"
)

// Policy define a política de novas tentativas com backoff progressivo.
// O intervalo entre a tentativa N e a N+1 é N × BaseDelay.
type Policy struct {
	MaxAttempts int
	BaseDelay   time.Duration
	Retryable   func(error) bool
	Sleep       func(time.Duration)
}

// DefaultPolicy retorna a política padrão usada nas integrações HTTP
func DefaultPolicy() Policy {
	return Policy{
		MaxAttempts: 3,
		BaseDelay:   2 * time.Second,
	}
}

func (p Policy) withDefaults() Policy {
	if p.MaxAttempts <= 0 {
		p.MaxAttempts = 3
	}
	if p.BaseDelay <= 0 {
		p.BaseDelay = 2 * time.Second
	}
	if p.Retryable == nil {
		p.Retryable = func(error) bool { return true }
	}
	if p.Sleep == nil {
		p.Sleep = time.Sleep
	}
	return p
}

// Do executa op até obter sucesso ou esgotar MaxAttempts.
// Erros considerados não recuperáveis pelo predicado Retryable
// interrompem as tentativas imediatamente.
func Do[T any](p Policy, op func() (T, error)) (T, error) {
	p = p.withDefaults()

	var result T
	var err error

	for attempt := 1; attempt <= p.MaxAttempts; attempt++ {
		result, err = op()
		if err == nil {
			return result, nil
		}

		if !p.Retryable(err) {
			return result, err
		}

		if attempt < p.MaxAttempts {
			p.Sleep(time.Duration(attempt) * p.BaseDelay)
		}
	}

	return result, err
}
