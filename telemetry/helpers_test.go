package telemetry_test

import (
	"context"
	"io"
	"strings"

	"go.opentelemetry.io/otel/trace"
)

func bytesReader(s string) io.Reader { return strings.NewReader(s) }

func traceValid(ctx context.Context) bool { return trace.SpanContextFromContext(ctx).IsValid() }
