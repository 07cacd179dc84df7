package events

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	watermillsql "github.com/ThreeDotsLabs/watermill-sql/v3/pkg/sql"
	"github.com/ThreeDotsLabs/watermill/message"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"

	"github.com/ghuser/shoppinglist/pkg/config"
	"github.com/ghuser/shoppinglist/pkg/logger"
)

func setupTracer() *sdktrace.TracerProvider {
	tp := sdktrace.NewTracerProvider()
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})
	return tp
}

func TestRetryWithBackoff(t *testing.T) {
	tests := []struct {
		name      string
		failFirst int
		wantErr   bool
		wantCalls int
	}{
		{"success on first attempt", 0, false, 1},
		{"success after retries", 2, false, 3},
		{"exhausts retries", maxRetries, true, maxRetries},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			handler := func(_ context.Context, _ *message.Message) error {
				calls++
				if calls <= tt.failFirst {
					return errors.New("transient error")
				}
				return nil
			}
			err := retryWithBackoff(context.Background(), message.NewMessage("id", nil), handler, maxRetries, time.Millisecond, logger.Nop())
			if (err != nil) != tt.wantErr {
				t.Fatalf("error = %v, wantErr = %v", err, tt.wantErr)
			}
			if calls != tt.wantCalls {
				t.Errorf("expected %d calls, got %d", tt.wantCalls, calls)
			}
		})
	}
}

func TestRetryWithBackoff_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	handler := func(_ context.Context, _ *message.Message) error {
		calls++
		return errors.New("error")
	}
	err := retryWithBackoff(ctx, message.NewMessage("id", nil), handler, maxRetries, time.Second, logger.Nop())
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if calls != 1 {
		t.Errorf("expected 1 call before context cancel, got %d", calls)
	}
}

func TestStartForwarder_NonForwarderMode(t *testing.T) {
	bus := &EventBus{useForwarder: false}
	if err := bus.StartForwarder(context.Background()); err == nil {
		t.Fatal("expected error for non-forwarder EventBus")
	}
}

func TestNewEventBus_RequiresPostgres(t *testing.T) {
	cfg := &config.Config{DatabaseDriver: config.DriverSQLite, DatabaseURL: ":memory:"}
	if _, err := NewEventBus(cfg, logger.Nop()); !errors.Is(err, ErrUnsupportedDriver) {
		t.Fatalf("expected ErrUnsupportedDriver, got %v", err)
	}
	if _, err := NewEventBusWithForwarder(cfg, logger.Nop()); !errors.Is(err, ErrUnsupportedDriver) {
		t.Fatalf("expected ErrUnsupportedDriver, got %v", err)
	}
}

func TestNewTxPublisher_BindsStdTx(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close() //nolint:errcheck
	mock.ExpectBegin()
	tx, err := db.Begin()
	if err != nil {
		t.Fatalf("begin: %v", err)
	}

	tests := []struct {
		name         string
		useForwarder bool
		wantSQL      bool
	}{
		{"direct", false, true},
		{"forwarder", true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bus := &EventBus{log: logger.Nop(), wlog: &slogAdapter{log: logger.Nop()}, useForwarder: tt.useForwarder}
			pub, err := bus.NewTxPublisher(tx)
			if err != nil {
				t.Fatalf("NewTxPublisher: %v", err)
			}
			if _, isSQL := pub.(*watermillsql.Publisher); isSQL != tt.wantSQL {
				t.Errorf("publisher type %T, want sql publisher = %v", pub, tt.wantSQL)
			}
		})
	}
}

type samplePayload struct {
	ListID string `json:"list_id"`
	Count  int    `json:"count"`
}

func TestNewMessage_EncodeDecode(t *testing.T) {
	msg, err := NewMessage(context.Background(), samplePayload{ListID: "abc", Count: 3}, 2)
	if err != nil {
		t.Fatalf("NewMessage: %v", err)
	}
	if msg.UUID == "" {
		t.Error("expected message UUID")
	}
	if got := msg.Metadata.Get(MetadataEventVersion); got != "2" {
		t.Errorf("event_version: got %q, want %q", got, "2")
	}

	var decoded samplePayload
	if err := Decode(msg, &decoded); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if decoded.ListID != "abc" || decoded.Count != 3 {
		t.Errorf("unexpected payload: %+v", decoded)
	}
}

func TestNewMessage_UnencodablePayload(t *testing.T) {
	if _, err := NewMessage(context.Background(), make(chan int), 1); err == nil {
		t.Fatal("expected marshal error")
	}
}

func TestDecode_InvalidPayload(t *testing.T) {
	var dst samplePayload
	if err := Decode(message.NewMessage("id", []byte("{not json")), &dst); err == nil {
		t.Fatal("expected decode error")
	}
}

// NewMessage stamps the trace of ctx; extractTrace restores it on the consumer side.
func TestTracePropagation_RoundTrip(t *testing.T) {
	tp := setupTracer()
	defer tp.Shutdown(context.Background()) //nolint:errcheck

	ctx, span := otel.Tracer("test").Start(context.Background(), "publish-span")
	defer span.End()
	wantTraceID := span.SpanContext().TraceID()

	msg, err := NewMessage(ctx, samplePayload{ListID: "abc"}, 1)
	if err != nil {
		t.Fatalf("NewMessage: %v", err)
	}

	got := trace.SpanFromContext(extractTrace(context.Background(), msg))
	if !got.SpanContext().IsValid() {
		t.Fatal("extracted span context is not valid")
	}
	if got.SpanContext().TraceID() != wantTraceID {
		t.Errorf("trace ID mismatch: want %s, got %s", wantTraceID, got.SpanContext().TraceID())
	}
}
