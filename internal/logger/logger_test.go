package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestFromContext_RoundTrip(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	l := zap.New(core).Sugar()

	ctx := WithContext(context.Background(), l)
	FromContext(ctx).Infow("hello", "k", "v")

	assert.Equal(t, 1, logs.Len())
	assert.Equal(t, "hello", logs.All()[0].Message)
}

func TestFromContext_MissingLoggerIsNop(t *testing.T) {
	l := FromContext(context.Background())

	assert.NotNil(t, l)
	assert.NotPanics(t, func() { l.Info("dropped") })
}

func TestNew(t *testing.T) {
	assert.NotNil(t, New("dev"))
	assert.NotNil(t, New("production"))
}
