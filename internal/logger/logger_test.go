package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestFromContext(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	log := zap.New(core).Sugar()

	ctx := WithContext(context.Background(), log)
	FromContext(ctx).Infow("quoted", "pair", "EUR/PLN")

	entries := logs.All()
	require.Len(t, entries, 1)
	require.Equal(t, "quoted", entries[0].Message)
	require.Equal(t, "EUR/PLN", entries[0].ContextMap()["pair"])
}

func TestFromContext_Fallback(t *testing.T) {
	t.Setenv(EnvVar, "dev")
	require.NotNil(t, FromContext(context.Background()))
}
