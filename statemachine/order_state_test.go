package statemachine

import (
	"testing"

	"delivery-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanTransitionCoversFullTable(t *testing.T) {
	allowed := []Transition{
		{models.StatusPendente, models.StatusConfirmado},
		{models.StatusPendente, models.StatusCancelado},
		{models.StatusConfirmado, models.StatusEmPreparacao},
		{models.StatusConfirmado, models.StatusCancelado},
		{models.StatusEmPreparacao, models.StatusSaiuParaEntrega},
		{models.StatusSaiuParaEntrega, models.StatusEntregue},
	}
	allowedSet := make(map[Transition]bool)
	for _, tr := range allowed {
		allowedSet[tr] = true
		assert.NoError(t, CanTransition(tr.From, tr.To), "%s -> %s", tr.From, tr.To)
	}

	all := []models.OrderStatus{
		models.StatusPendente, models.StatusConfirmado, models.StatusEmPreparacao,
		models.StatusSaiuParaEntrega, models.StatusEntregue, models.StatusCancelado,
	}
	for _, from := range all {
		for _, to := range all {
			if allowedSet[Transition{from, to}] {
				continue
			}
			assert.Error(t, CanTransition(from, to), "%s -> %s must be rejected", from, to)
		}
	}
}

func TestTerminalStates(t *testing.T) {
	assert.True(t, IsTerminal(models.StatusEntregue))
	assert.True(t, IsTerminal(models.StatusCancelado))
	assert.False(t, IsTerminal(models.StatusPendente))
	assert.False(t, IsTerminal(models.StatusConfirmado))
	assert.False(t, IsTerminal(models.StatusEmPreparacao))
	assert.False(t, IsTerminal(models.StatusSaiuParaEntrega))
}

func TestValidTransitionsFrom(t *testing.T) {
	nexts := ValidTransitionsFrom(models.StatusPendente)
	require.Len(t, nexts, 2)
	assert.Contains(t, nexts, models.StatusConfirmado)
	assert.Contains(t, nexts, models.StatusCancelado)

	assert.Empty(t, ValidTransitionsFrom(models.StatusEntregue))
}

func TestCanTransitionErrorNamesValidNextStates(t *testing.T) {
	err := CanTransition(models.StatusPendente, models.StatusEntregue)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PENDENTE")
	assert.Contains(t, err.Error(), "CONFIRMADO")
}
