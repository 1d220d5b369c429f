package retry

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDo_SucessoNaPrimeiraTentativa(t *testing.T) {
	sleeps := 0
	policy := Policy{
		MaxAttempts: 3,
		BaseDelay:   time.Millisecond,
		Sleep:       func(time.Duration) { sleeps++ },
	}

	result, err := Do(policy, func() (int, error) {
		return 42, nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 42, result)
	assert.Equal(t, 0, sleeps)
}

func TestDo_DoisErrosTransientesDepoisSucesso(t *testing.T) {
	var delays []time.Duration
	attempts := 0

	policy := Policy{
		MaxAttempts: 3,
		BaseDelay:   2 * time.Second,
		Sleep:       func(d time.Duration) { delays = append(delays, d) },
	}

	result, err := Do(policy, func() (string, error) {
		attempts++
		if attempts < 3 {
			return "", errors.New("falha transitória")
		}
		return "ok", nil
	})

	assert.NoError(t, err)
	assert.Equal(t, "ok", result)
	assert.Equal(t, 3, attempts)

	// O backoff é progressivo: 1×2s depois 2×2s
	assert.Equal(t, []time.Duration{2 * time.Second, 4 * time.Second}, delays)
}

func TestDo_ErroNaoRecuperavelInterrompe(t *testing.T) {
	permanent := errors.New("falha permanente")
	attempts := 0

	policy := Policy{
		MaxAttempts: 3,
		BaseDelay:   time.Millisecond,
		Retryable:   func(err error) bool { return !errors.Is(err, permanent) },
		Sleep:       func(time.Duration) {},
	}

	_, err := Do(policy, func() (int, error) {
		attempts++
		return 0, permanent
	})

	assert.ErrorIs(t, err, permanent)
	assert.Equal(t, 1, attempts)
}

func TestDo_EsgotaTentativas(t *testing.T) {
	sleeps := 0
	attempts := 0

	policy := Policy{
		MaxAttempts: 3,
		BaseDelay:   time.Millisecond,
		Sleep:       func(time.Duration) { sleeps++ },
	}

	_, err := Do(policy, func() (int, error) {
		attempts++
		return 0, errors.New("sempre falha")
	})

	assert.Error(t, err)
	assert.Equal(t, 3, attempts)
	// Não dorme depois da última tentativa
	assert.Equal(t, 2, sleeps)
}
