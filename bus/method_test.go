package bus

import (
	"errors"
	"testing"
)

func TestMethodBindAndCall(t *testing.T) {
	reg := NewRegistry(&recordingPoster{})

	m, err := GetMethod(reg, MethodKey[int, int]("test.double"))
	if err != nil {
		t.Fatalf("GetMethod: %v", err)
	}

	if err := m.Bind(func(v int) (int, error) { return v * 2, nil }); err != nil {
		t.Fatalf("Bind: %v", err)
	}
	if !m.Bound() {
		t.Fatal("Bound() = false after Bind")
	}

	got, err := m.Call(21)
	if err != nil {
		t.Fatalf("Call: %v", err)
	}
	if got != 42 {
		t.Fatalf("Call(21) = %d, want 42", got)
	}
}

func TestMethodSecondBindFails(t *testing.T) {
	reg := NewRegistry(&recordingPoster{})

	m, _ := GetMethod(reg, MethodKey[int, int]("test.once"))
	if err := m.Bind(func(v int) (int, error) { return v, nil }); err != nil {
		t.Fatalf("first Bind: %v", err)
	}
	err := m.Bind(func(v int) (int, error) { return v, nil })
	if !errors.Is(err, ErrAlreadyBound) {
		t.Fatalf("second Bind error = %v, want ErrAlreadyBound", err)
	}
}

func TestMethodUnboundCallFails(t *testing.T) {
	reg := NewRegistry(&recordingPoster{})

	m, _ := GetMethod(reg, MethodKey[string, string]("test.unbound"))
	if _, err := m.Call("x"); !errors.Is(err, ErrNoHandler) {
		t.Fatalf("Call on unbound method = %v, want ErrNoHandler", err)
	}
}

func TestMethodUnbindAllowsRebind(t *testing.T) {
	reg := NewRegistry(&recordingPoster{})

	m, _ := GetMethod(reg, MethodKey[int, int]("test.rebind"))
	if err := m.Bind(func(v int) (int, error) { return v, nil }); err != nil {
		t.Fatalf("Bind: %v", err)
	}
	m.Unbind()
	if m.Bound() {
		t.Fatal("Bound() = true after Unbind")
	}
	if err := m.Bind(func(v int) (int, error) { return -v, nil }); err != nil {
		t.Fatalf("rebind: %v", err)
	}
	got, err := m.Call(5)
	if err != nil {
		t.Fatalf("Call: %v", err)
	}
	if got != -5 {
		t.Fatalf("Call(5) after rebind = %d, want -5", got)
	}
}

func TestMethodHandlerErrorPropagates(t *testing.T) {
	reg := NewRegistry(&recordingPoster{})

	boom := errors.New("boom")
	m, _ := GetMethod(reg, MethodKey[int, int]("test.err"))
	if err := m.Bind(func(int) (int, error) { return 0, boom }); err != nil {
		t.Fatalf("Bind: %v", err)
	}
	if _, err := m.Call(1); !errors.Is(err, boom) {
		t.Fatalf("Call error = %v, want boom", err)
	}
}
