package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlplog/otlploggrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/log/global"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	sdklog "go.opentelemetry.io/otel/sdk/log"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
)

const (
	instrumentationName = "github.com/cinebook/booking-api/internal/app"
	metricsInterval     = 15 * time.Second
)

// Checkout outcomes recorded on the cinebook.checkouts counter.
const (
	checkoutBooked       = "booked"
	checkoutSeatHeld     = "seat_held"
	checkoutSeatReserved = "seat_reserved"
	checkoutDeclined     = "declined"
	checkoutFailed       = "failed"
)

// InitTelemetry exports traces, booking metrics and logs of the service to
// the configured OTLP collector. Without a collector it is a no-op.
func (app *Application) InitTelemetry() (func(context.Context), error) {
	if app.config.OtelCollectorUrl == "" {
		app.logger.Info("OpenTelemetry collector URL not set, skipping initialization")

		return func(context.Context) {}, nil
	}

	ctx := context.Background()

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(app.config.ServiceName),
			semconv.ServiceVersion(version),
			semconv.DeploymentEnvironment(app.config.Env),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create otel resource: %w", err)
	}

	tracerProvider, err := app.newTracerProvider(ctx, res)
	if err != nil {
		return nil, err
	}

	meterProvider, err := app.newMeterProvider(ctx, res)
	if err != nil {
		return nil, errors.Join(err, tracerProvider.Shutdown(ctx))
	}

	loggerProvider, err := app.newLoggerProvider(ctx, res)
	if err != nil {
		return nil, errors.Join(err, tracerProvider.Shutdown(ctx), meterProvider.Shutdown(ctx))
	}

	otel.SetTracerProvider(tracerProvider)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))
	otel.SetMeterProvider(meterProvider)
	global.SetLoggerProvider(loggerProvider)

	shutdown := func(ctx context.Context) {
		shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()

		err := errors.Join(
			tracerProvider.Shutdown(shutdownCtx),
			meterProvider.Shutdown(shutdownCtx),
			loggerProvider.Shutdown(shutdownCtx),
		)
		if err != nil {
			app.logger.Error("failed to shutdown telemetry providers", "error", err)
		}
	}

	return shutdown, nil
}

func (app *Application) newTracerProvider(ctx context.Context, res *resource.Resource) (*sdktrace.TracerProvider, error) {
	exporter, err := otlptracegrpc.New(ctx,
		otlptracegrpc.WithInsecure(),
		otlptracegrpc.WithEndpoint(app.config.OtelCollectorUrl),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create otel trace exporter: %w", err)
	}

	return sdktrace.NewTracerProvider(
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
		sdktrace.WithResource(res),
		sdktrace.WithBatcher(exporter),
	), nil
}

// newMeterProvider backs the instruments of app.metrics. They are created
// against the global provider in NewApp and start exporting once it is set.
func (app *Application) newMeterProvider(ctx context.Context, res *resource.Resource) (*sdkmetric.MeterProvider, error) {
	exporter, err := otlpmetricgrpc.New(ctx,
		otlpmetricgrpc.WithInsecure(),
		otlpmetricgrpc.WithEndpoint(app.config.OtelCollectorUrl),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create otel metric exporter: %w", err)
	}

	return sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, sdkmetric.WithInterval(metricsInterval))),
	), nil
}

func (app *Application) newLoggerProvider(ctx context.Context, res *resource.Resource) (*sdklog.LoggerProvider, error) {
	exporter, err := otlploggrpc.New(ctx,
		otlploggrpc.WithInsecure(),
		otlploggrpc.WithEndpoint(app.config.OtelCollectorUrl),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create otel log exporter: %w", err)
	}

	return sdklog.NewLoggerProvider(
		sdklog.WithResource(res),
		sdklog.WithProcessor(sdklog.NewBatchProcessor(exporter)),
	), nil
}

// bookingMetrics counts the outcomes of the booking procedures.
type bookingMetrics struct {
	checkouts      metric.Int64Counter
	showConflicts  metric.Int64Counter
	holdRejections metric.Int64Counter
	deniedCalls    metric.Int64Counter
}

func newBookingMetrics(provider metric.MeterProvider) (*bookingMetrics, error) {
	meter := provider.Meter(instrumentationName, metric.WithInstrumentationVersion(version))

	checkouts, err := meter.Int64Counter("cinebook.checkouts",
		metric.WithDescription("booking.checkout calls by outcome"),
		metric.WithUnit("{checkout}"),
	)
	if err != nil {
		return nil, err
	}

	showConflicts, err := meter.Int64Counter("cinebook.show.conflicts",
		metric.WithDescription("Show writes rejected because the screen is taken within the conflict window"),
		metric.WithUnit("{show}"),
	)
	if err != nil {
		return nil, err
	}

	holdRejections, err := meter.Int64Counter("cinebook.seat_hold.rejections",
		metric.WithDescription("Seat holds refused because another user holds the seat"),
		metric.WithUnit("{hold}"),
	)
	if err != nil {
		return nil, err
	}

	deniedCalls, err := meter.Int64Counter("cinebook.procedure.denied",
		metric.WithDescription("Procedure calls rejected by the access policy"),
		metric.WithUnit("{call}"),
	)
	if err != nil {
		return nil, err
	}

	return &bookingMetrics{
		checkouts:      checkouts,
		showConflicts:  showConflicts,
		holdRejections: holdRejections,
		deniedCalls:    deniedCalls,
	}, nil
}

func (m *bookingMetrics) recordCheckout(ctx context.Context, outcome string) {
	m.checkouts.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
}

func (m *bookingMetrics) recordShowConflict(ctx context.Context, screenID string) {
	m.showConflicts.Add(ctx, 1, metric.WithAttributes(attribute.String("screen_id", screenID)))
}

func (m *bookingMetrics) recordHoldRejected(ctx context.Context, showID string) {
	m.holdRejections.Add(ctx, 1, metric.WithAttributes(attribute.String("show_id", showID)))
}

func (m *bookingMetrics) recordDenied(ctx context.Context, proc procedure, reason string) {
	m.deniedCalls.Add(ctx, 1, metric.WithAttributes(
		attribute.String("procedure", proc.name),
		attribute.String("reason", reason),
	))
}

// teeHandler writes every record to each of its handlers that accepts the
// record's level. It joins stdout logging with the OpenTelemetry log bridge.
type teeHandler []slog.Handler

func newTeeHandler(handlers ...slog.Handler) slog.Handler {
	return teeHandler(handlers)
}

func (t teeHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range t {
		if h.Enabled(ctx, level) {
			return true
		}
	}

	return false
}

func (t teeHandler) Handle(ctx context.Context, record slog.Record) error {
	var errs []error

	for _, h := range t {
		if !h.Enabled(ctx, record.Level) {
			continue
		}

		if err := h.Handle(ctx, record.Clone()); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

func (t teeHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return t.each(func(h slog.Handler) slog.Handler { return h.WithAttrs(attrs) })
}

func (t teeHandler) WithGroup(name string) slog.Handler {
	return t.each(func(h slog.Handler) slog.Handler { return h.WithGroup(name) })
}

func (t teeHandler) each(fn func(slog.Handler) slog.Handler) teeHandler {
	next := make(teeHandler, len(t))
	for i, h := range t {
		next[i] = fn(h)
	}

	return next
}
