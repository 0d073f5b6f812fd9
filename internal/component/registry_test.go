package component

import (
	"context"
	"errors"
	"testing"
)

// mockComponent implements Component for testing.
type mockComponent struct {
	name       string
	startErr   error
	stopErr    error
	health     Health
	startOrder *[]string
	stopOrder  *[]string
}

func (m *mockComponent) Name() string { return m.name }
func (m *mockComponent) Start(ctx context.Context) error {
	if m.startOrder != nil {
		*m.startOrder = append(*m.startOrder, m.name)
	}
	return m.startErr
}
func (m *mockComponent) Stop(ctx context.Context) error {
	if m.stopOrder != nil {
		*m.stopOrder = append(*m.stopOrder, m.name)
	}
	return m.stopErr
}
func (m *mockComponent) Health(ctx context.Context) Health {
	return m.health
}

func TestRegisterDuplicate(t *testing.T) {
	r := NewRegistry()
	r.Register(&mockComponent{name: "mongodb"})

	if err := r.Register(&mockComponent{name: "mongodb"}); err == nil {
		t.Error("expected error for duplicate registration")
	}
}

func TestGet(t *testing.T) {
	r := NewRegistry()
	r.Register(&mockComponent{name: "mongodb"})

	if got := r.Get("mongodb"); got == nil || got.Name() != "mongodb" {
		t.Fatalf("expected mongodb component, got %v", got)
	}
	if got := r.Get("missing"); got != nil {
		t.Error("expected nil for unregistered component")
	}
}

func TestStartAllOrder(t *testing.T) {
	r := NewRegistry()
	order := []string{}

	r.Register(&mockComponent{name: "mongodb", startOrder: &order})
	r.Register(&mockComponent{name: "http-server", startOrder: &order})

	if err := r.StartAll(context.Background()); err != nil {
		t.Fatalf("StartAll failed: %v", err)
	}
	if len(order) != 2 || order[0] != "mongodb" || order[1] != "http-server" {
		t.Fatalf("unexpected start order: %v", order)
	}
}

func TestStartAllAbortsOnFailure(t *testing.T) {
	r := NewRegistry()
	order := []string{}

	r.Register(&mockComponent{name: "mongodb", startOrder: &order, startErr: errors.New("unreachable")})
	r.Register(&mockComponent{name: "http-server", startOrder: &order})

	err := r.StartAll(context.Background())
	if err == nil {
		t.Fatal("expected StartAll to fail")
	}
	if len(order) != 1 {
		t.Fatalf("expected only the failing component to have started, got %v", order)
	}
}

func TestStopAllReverseOrder(t *testing.T) {
	r := NewRegistry()
	order := []string{}

	r.Register(&mockComponent{name: "mongodb", stopOrder: &order})
	r.Register(&mockComponent{name: "http-server", stopOrder: &order})
	r.StartAll(context.Background())

	if err := r.StopAll(context.Background()); err != nil {
		t.Fatalf("StopAll failed: %v", err)
	}
	if len(order) != 2 || order[0] != "http-server" || order[1] != "mongodb" {
		t.Fatalf("unexpected stop order: %v", order)
	}
}

func TestStopAllSkipsUnstarted(t *testing.T) {
	r := NewRegistry()
	order := []string{}

	r.Register(&mockComponent{name: "mongodb", stopOrder: &order})

	if err := r.StopAll(context.Background()); err != nil {
		t.Fatalf("StopAll failed: %v", err)
	}
	if len(order) != 0 {
		t.Fatalf("expected no stops for unstarted components, got %v", order)
	}
}

func TestStopAllCollectsErrors(t *testing.T) {
	r := NewRegistry()
	order := []string{}

	r.Register(&mockComponent{name: "mongodb", stopOrder: &order, stopErr: errors.New("close failed")})
	r.Register(&mockComponent{name: "http-server", stopOrder: &order})
	r.StartAll(context.Background())

	if err := r.StopAll(context.Background()); err == nil {
		t.Fatal("expected StopAll to report the failing component")
	}
	if len(order) != 2 {
		t.Fatalf("expected all components stopped despite error, got %v", order)
	}
}

func TestHealthAll(t *testing.T) {
	r := NewRegistry()
	r.Register(&mockComponent{name: "mongodb", health: Health{Name: "mongodb", Status: StatusHealthy}})
	r.Register(&mockComponent{name: "http-server", health: Health{Name: "http-server", Status: StatusUnhealthy, Message: "not listening"}})

	results := r.HealthAll(context.Background())
	if len(results) != 2 {
		t.Fatalf("expected 2 health results, got %d", len(results))
	}
	if results[0].Status != StatusHealthy || results[1].Status != StatusUnhealthy {
		t.Fatalf("unexpected health results: %v", results)
	}
}
