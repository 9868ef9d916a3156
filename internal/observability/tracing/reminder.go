package tracing

import (
	"context"
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

const reminderTracerName = "github.com/KasumiMercury/primind-deadline-reminder/internal/service/reminder"

func ReminderTracer() trace.Tracer {
	return otel.Tracer(reminderTracerName)
}

func StartPollSpan(ctx context.Context, trigger string) (context.Context, trace.Span) {
	return ReminderTracer().Start(ctx, "reminder.poll",
		trace.WithAttributes(
			attribute.String("poll.trigger", trigger),
		),
	)
}

func StartDispatchSpan(ctx context.Context, taskID, tier string) (context.Context, trace.Span) {
	return ReminderTracer().Start(ctx, "reminder.dispatch",
		trace.WithAttributes(
			attribute.String("task_id", taskID),
			attribute.String("tier", tier),
		),
	)
}

func StartExternalAPISpan(ctx context.Context, operation, url string) (context.Context, trace.Span) {
	return ReminderTracer().Start(ctx, "reminder.external_api."+operation,
		trace.WithAttributes(
			attribute.String("url", url),
		),
		trace.WithSpanKind(trace.SpanKindClient),
	)
}

func RecordPollResult(span trace.Span, taskCount, dispatchedCount, suppressedCount int, err error) {
	span.SetAttributes(
		attribute.Int("poll.task_count", taskCount),
		attribute.Int("poll.dispatched_count", dispatchedCount),
		attribute.Int("poll.suppressed_count", suppressedCount),
	)
	RecordError(span, err)
}

func RecordError(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
}

// InjectToHTTPRequest propagates the span context of ctx into outgoing headers.
func InjectToHTTPRequest(ctx context.Context, req *http.Request) {
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))
}
