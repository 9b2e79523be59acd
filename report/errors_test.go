package report

import (
	"strings"
	"testing"
)

func TestErrorConstructors(t *testing.T) {
	cases := []struct {
		name  string
		err   *LowerError
		kind  ErrorKind
		token string
	}{
		{"unknown type", UnknownType(nil, "f32"), ErrUnknownType, "f32"},
		{"unresolved identifier", UnresolvedIdentifier(nil, "x"), ErrUnresolvedIdentifier, "x"},
		{"unsupported operator", UnsupportedOperator(nil, "%"), ErrUnsupportedOperator, "%"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if c.err.Kind != c.kind {
				t.Errorf("kind = %d, want %d", c.err.Kind, c.kind)
			}

			if c.err.Token != c.token {
				t.Errorf("token = %q, want %q", c.err.Token, c.token)
			}

			if !strings.Contains(c.err.Error(), c.token) {
				t.Errorf("message %q does not name the offending token %q", c.err.Error(), c.token)
			}
		})
	}
}

func TestICEIsDistinctFromLowerError(t *testing.T) {
	err := ICE("bad block in %s", "f")

	if _, ok := interface{}(err).(*LowerError); ok {
		t.Fatal("internal errors must not be user-facing lowering errors")
	}

	if !strings.HasPrefix(err.Error(), "internal compiler error:") {
		t.Errorf("ICE message = %q", err.Error())
	}
}

func TestReporterCountsErrors(t *testing.T) {
	rep := NewReporter(LogLevelSilent)

	if rep.AnyErrors() {
		t.Fatal("fresh reporter already has errors")
	}

	rep.ReportError(UnknownType(nil, "f32"))
	rep.ReportWarning("meaningless")

	if !rep.AnyErrors() {
		t.Error("reported error was not counted")
	}
}
