package status

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorFormatting(t *testing.T) {
	e := New(Fatal, SitePSLGAlloc, errors.New("out of memory"))
	want := "fatal at pslg-alloc: out of memory"
	if got := e.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("boom")
	e := New(Fatal, SiteSinkWrite, cause)
	if !errors.Is(e, cause) {
		t.Errorf("expected errors.Is(e, cause) to hold")
	}
}

func TestIsFatal(t *testing.T) {
	fatal := Fatalf(SiteTriangulationAlloc, "alloc failed: %d", 42)
	wrapped := fmt.Errorf("triangulate face 3: %w", fatal)
	if !IsFatal(wrapped) {
		t.Errorf("expected IsFatal to see through wrapping")
	}

	if IsFatal(errors.New("plain error")) {
		t.Errorf("plain error should not be fatal")
	}
}

func TestClassString(t *testing.T) {
	cases := map[Class]string{Success: "success", NoOp: "no-op", NonFatal: "non-fatal", Fatal: "fatal"}
	for c, want := range cases {
		if got := c.String(); got != want {
			t.Errorf("Class(%d).String() = %q, want %q", c, got, want)
		}
	}
}
