package telemetry_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/shopfront/internal/adapters/telemetry"
	"go.trai.ch/shopfront/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestLogBridge_ReportsCompletedSpans(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info(gomock.Cond(func(msg string) bool {
		return len(msg) > 0 && msg[:7] == "hydrate"
	})).Times(1)

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(telemetry.NewLogBridge(mockLogger)),
	)
	defer func() {
		require.NoError(t, tp.Shutdown(context.Background()))
	}()

	_, span := tp.Tracer("test").Start(context.Background(), "hydrate")
	span.End()
}

func TestLogBridge_ShutdownAndFlush(t *testing.T) {
	ctrl := gomock.NewController(t)
	bridge := telemetry.NewLogBridge(mocks.NewMockLogger(ctrl))

	require.NoError(t, bridge.Shutdown(context.Background()))
	require.NoError(t, bridge.ForceFlush(context.Background()))
}
