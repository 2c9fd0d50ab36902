package loom

import "testing"

var testKey = NewKey[int]("loom-test.int")

func TestEnvDefaultsAndOverride(t *testing.T) {
	e := testKey.Default(NewEnv(), 7)
	if got := testKey.Get(e); got != 7 {
		t.Errorf("default Get = %d", got)
	}

	child := testKey.With(e, 9)
	if got := testKey.Get(child); got != 9 {
		t.Errorf("override Get = %d", got)
	}
	// The parent env never observes the child's override.
	if got := testKey.Get(e); got != 7 {
		t.Errorf("parent Get after override = %d", got)
	}
}

func TestEnvOverrideShadowsDefault(t *testing.T) {
	e := testKey.Default(NewEnv(), 1)
	a := testKey.With(e, 2)
	b := testKey.With(a, 3)
	if got := testKey.Get(b); got != 3 {
		t.Errorf("innermost override Get = %d", got)
	}
	if got := testKey.Get(a); got != 2 {
		t.Errorf("middle override Get = %d", got)
	}
}

func TestEnvMissingKeyReturnsZero(t *testing.T) {
	missing := NewKey[string]("loom-test.missing")
	e := NewEnv()
	if got := missing.Get(e); got != "" {
		t.Errorf("missing Get = %q", got)
	}
	if got := missing.GetOr(e, "fallback"); got != "fallback" {
		t.Errorf("GetOr = %q", got)
	}
}

func TestEnvSealedRejectsDefaults(t *testing.T) {
	e := testKey.Default(NewEnv(), 5)
	e.seal()
	e = testKey.Default(e, 6)
	if got := testKey.Get(e); got != 5 {
		t.Errorf("default after seal should be ignored, Get = %d", got)
	}
	// Per-subtree overrides still work while running.
	if got := testKey.Get(testKey.With(e, 8)); got != 8 {
		t.Error("With should work after sealing")
	}
}

func TestDefaultEnvCarriesTheme(t *testing.T) {
	e := DefaultEnv()
	if KeyCharWidth.Get(e) != 8 {
		t.Error("char width default missing")
	}
	if KeyWindowBackground.Get(e) == (Color{}) {
		t.Error("window background default missing")
	}
}
