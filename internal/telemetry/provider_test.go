package telemetry_test

import (
	"context"
	"errors"
	"testing"

	"torus-life/internal/telemetry"
)

func TestSetup_NoopWhenEndpointEmpty(t *testing.T) {
	shutdown, err := telemetry.Setup(context.Background(), "test-service", telemetry.Options{Enabled: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}

func TestSetup_NoopWhenDisabled(t *testing.T) {
	opts := telemetry.Options{Endpoint: "http://localhost:4318", Enabled: false}
	shutdown, err := telemetry.Setup(context.Background(), "test-service", opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}

func TestSetup_CreatesProviderWhenEndpointSet(t *testing.T) {
	// Non-routable address so no export actually happens.
	opts := telemetry.Options{Endpoint: "http://192.0.2.1:4318", Enabled: true}
	shutdown, err := telemetry.Setup(context.Background(), "test-service", opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}

func TestRun_PropagatesRunError(t *testing.T) {
	want := errors.New("boom")
	err := telemetry.Run(context.Background(), "life-run", telemetry.Options{}, func(context.Context) error {
		return want
	})
	if !errors.Is(err, want) {
		t.Fatalf("Run err = %v, expected %v", err, want)
	}
}

func TestRun_RequiresServiceAndFunc(t *testing.T) {
	if err := telemetry.Run(context.Background(), " ", telemetry.Options{}, func(context.Context) error { return nil }); err == nil {
		t.Fatal("blank service name should fail")
	}
	if err := telemetry.Run(context.Background(), "life-run", telemetry.Options{}, nil); err == nil {
		t.Fatal("nil run function should fail")
	}
}
