package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
)

func TestInitTracer(t *testing.T) {
	t.Run("should install propagators without an endpoint", func(t *testing.T) {
		req := require.New(t)
		shutdown, err := InitTracer(context.Background(), "crafty", "local", "")
		req.NoError(err)
		req.NoError(shutdown(context.Background()))

		fields := otel.GetTextMapPropagator().Fields()
		req.Contains(fields, "traceparent")
		req.Contains(fields, "baggage")
	})
}
