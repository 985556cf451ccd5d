package hush

import (
	"bytes"
	"fmt"
	"log/slog"
	"strings"
	"testing"
)

// loud formats itself with its content so tests can tell if it leaks.
type loud struct {
	Word string
}

func (l loud) String() string { return "LOUD:" + l.Word }

func TestFormat_AllVerbs(t *testing.T) {
	s := From(uint32(1))

	formats := []string{"%v", "%+v", "%#v", "%s", "%q", "%d", "%x", "%X", "%08d", "%-10s"}
	for _, f := range formats {
		got := fmt.Sprintf(f, s)
		if got != Placeholder {
			t.Errorf("Sprintf(%q) = %q, want %q", f, got, Placeholder)
		}
	}
}

func TestFormat_IndependentOfValue(t *testing.T) {
	values := []Secret[string]{From(""), From("hunter2"), From(strings.Repeat("x", 1024))}

	for _, s := range values {
		if got := fmt.Sprint(s); got != Placeholder {
			t.Errorf("Sprint() = %q, want %q", got, Placeholder)
		}
		if got := s.String(); got != Placeholder {
			t.Errorf("String() = %q, want %q", got, Placeholder)
		}
		if got := s.GoString(); got != Placeholder {
			t.Errorf("GoString() = %q, want %q", got, Placeholder)
		}
	}
}

func TestFormat_IgnoresInnerStringer(t *testing.T) {
	s := From(loud{Word: "hunter2"})

	for _, f := range []string{"%v", "%s", "%+v", "%#v"} {
		got := fmt.Sprintf(f, s)
		if strings.Contains(got, "hunter2") || strings.Contains(got, "LOUD") {
			t.Errorf("Sprintf(%q) = %q, leaked inner formatting", f, got)
		}
	}
}

func TestFormat_Pointer(t *testing.T) {
	s := From("hunter2")

	if got := fmt.Sprintf("%v", &s); got != Placeholder {
		t.Errorf("Sprintf(%%v, &s) = %q, want %q", got, Placeholder)
	}
}

func TestFormat_NestedExported(t *testing.T) {
	type request struct {
		User     string
		Password Secret[string]
		Tokens   []Secret[string]
		Keys     map[string]Secret[string]
	}
	r := request{
		User:     "alice",
		Password: From("hunter2"),
		Tokens:   []Secret[string]{From("tok1")},
		Keys:     map[string]Secret[string]{"k": From("tok2")},
	}

	for _, f := range []string{"%v", "%+v", "%#v"} {
		got := fmt.Sprintf(f, r)
		for _, leak := range []string{"hunter2", "tok1", "tok2"} {
			if strings.Contains(got, leak) {
				t.Errorf("Sprintf(%q) = %q, leaked %q", f, got, leak)
			}
		}
		if !strings.Contains(got, Placeholder) {
			t.Errorf("Sprintf(%q) = %q, want placeholder", f, got)
		}
	}
}

func TestLogValue(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	logger.Info("login", "password", From("hunter2"))

	out := buf.String()
	if strings.Contains(out, "hunter2") {
		t.Errorf("slog output leaked plaintext: %s", out)
	}
	if !strings.Contains(out, "password="+Placeholder) {
		t.Errorf("slog output = %q, want password=%s", out, Placeholder)
	}
}

func TestLogValue_JSONHandler(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	logger.Info("login", slog.Any("password", From("hunter2")))

	out := buf.String()
	if strings.Contains(out, "hunter2") {
		t.Errorf("slog output leaked plaintext: %s", out)
	}
	if !strings.Contains(out, `"password":"<hidden>"`) && !strings.Contains(out, `"password":"\u003chidden\u003e"`) {
		t.Errorf("slog output = %q, want placeholder", out)
	}
}
