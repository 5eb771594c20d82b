package services

import "go.opentelemetry.io/otel"

var tracer = otel.Tracer("github.com/MaximeSarrato/crafty/internal/core/services")
