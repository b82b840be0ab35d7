package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequestIDRoundTrip(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, "", RequestIDFrom(ctx))

	ctx = WithRequestID(ctx, "req-123")
	assert.Equal(t, "req-123", RequestIDFrom(ctx))
}

func TestFromCtxWithoutRequestID(t *testing.T) {
	Init("test")
	l := FromCtx(context.Background())
	assert.NotNil(t, l)
}

func TestFromCtxWithRequestID(t *testing.T) {
	Init("test")
	ctx := WithRequestID(context.Background(), "abc")
	l := FromCtx(ctx)
	assert.NotNil(t, l)
}

func TestInitProduction(t *testing.T) {
	Init("production")
	assert.NotNil(t, L())
	Sync()
}
