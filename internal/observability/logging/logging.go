package logging

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"go.opentelemetry.io/otel/trace"
)

type Environment string

const (
	EnvDev  Environment = "dev"
	EnvProd Environment = "prod"
)

// Module names the component that produced a log record.
type Module string

type ServiceInfo struct {
	Name     string
	Version  string
	Revision string
}

type Options struct {
	Service       ServiceInfo
	Environment   Environment
	Level         slog.Leveler
	DefaultModule Module
	GCPProjectID  string
	Writer        io.Writer
}

// NewLogger builds the process logger. Production and non-terminal output is
// JSON; a developer terminal gets the text handler.
func NewLogger(opts Options) *slog.Logger {
	w := opts.Writer
	if w == nil {
		w = os.Stdout
	}

	level := opts.Level
	if level == nil {
		level = slog.LevelInfo
	}

	handlerOpts := &slog.HandlerOptions{
		Level:     level,
		AddSource: opts.Environment == EnvDev,
	}

	var base slog.Handler
	if opts.Environment != EnvProd && isTerminal(w) {
		base = slog.NewTextHandler(w, handlerOpts)
	} else {
		base = slog.NewJSONHandler(w, handlerOpts)
	}

	h := &contextHandler{
		Handler:   base,
		projectID: opts.GCPProjectID,
	}

	logger := slog.New(h).With(
		slog.Group("service",
			slog.String("name", opts.Service.Name),
			slog.String("version", opts.Service.Version),
			slog.String("revision", opts.Service.Revision),
		),
		slog.String("env", string(opts.Environment)),
	)
	if opts.DefaultModule != "" {
		logger = logger.With(slog.String("module", string(opts.DefaultModule)))
	}

	return logger
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// contextHandler adds request and trace identifiers carried by the context.
type contextHandler struct {
	slog.Handler
	projectID string
}

func (h *contextHandler) Handle(ctx context.Context, r slog.Record) error {
	if requestID := RequestIDFromContext(ctx); requestID != "" {
		r.AddAttrs(slog.String("request_id", requestID))
	}

	if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
		r.AddAttrs(
			slog.String("trace_id", sc.TraceID().String()),
			slog.String("span_id", sc.SpanID().String()),
		)
		r.AddAttrs(gcpTraceAttrs(ctx, h.projectID)...)
	}

	return h.Handler.Handle(ctx, r)
}

func (h *contextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &contextHandler{Handler: h.Handler.WithAttrs(attrs), projectID: h.projectID}
}

func (h *contextHandler) WithGroup(name string) slog.Handler {
	return &contextHandler{Handler: h.Handler.WithGroup(name), projectID: h.projectID}
}
