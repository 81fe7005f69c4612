package errors

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidInput, "test message: %s", "value")

	if err.Code != ErrCodeInvalidInput {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidInput)
	}

	if err.Message != "test message: value" {
		t.Errorf("Message = %v, want %v", err.Message, "test message: value")
	}

	expected := "INVALID_INPUT: test message: value"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestAtLine(t *testing.T) {
	err := AtLine(ErrCodeParse, 3, "unknown component type %q", "slider")

	want := `PARSE_ERROR: line 3: unknown component type "slider"`
	if err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}
	if GetLine(err) != 3 {
		t.Errorf("GetLine() = %d, want 3", GetLine(err))
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeIO, cause, "read input")

	if err.Code != ErrCodeIO {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeIO)
	}

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}

	unwrapped := errors.Unwrap(err)
	if unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}

	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}

	want := "IO_ERROR: read input: underlying error"
	if err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     Code
		expected bool
	}{
		{
			name:     "matching code",
			err:      New(ErrCodeParse, "test"),
			code:     ErrCodeParse,
			expected: true,
		},
		{
			name:     "different code",
			err:      New(ErrCodeParse, "test"),
			code:     ErrCodeUnsupported,
			expected: false,
		},
		{
			name:     "joined",
			err:      joined(AtLine(ErrCodeUnsupported, 2, "arrow")),
			code:     ErrCodeUnsupported,
			expected: true,
		},
		{
			name:     "plain error",
			err:      errors.New("plain"),
			code:     ErrCodeParse,
			expected: false,
		},
		{
			name:     "nil error",
			err:      nil,
			code:     ErrCodeParse,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.expected {
				t.Errorf("Is() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeOverflow, "x")); got != ErrCodeOverflow {
		t.Errorf("GetCode() = %v, want %v", got, ErrCodeOverflow)
	}
	if got := GetCode(errors.New("plain")); got != "" {
		t.Errorf("GetCode() = %v, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"structured", New(ErrCodeParse, "bad header"), "bad header"},
		{"with line", AtLine(ErrCodeParse, 4, "missing node id"), "line 4: missing node id"},
		{"plain", errors.New("boom"), "boom"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err); got != tt.want {
				t.Errorf("UserMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWarnings(t *testing.T) {
	var w Warnings
	w.Add("text wrapped to %d rows", 2)
	w.AddAt(7, "style directive ignored")

	if w.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", w.Len())
	}
	list := w.List()
	if list[0].Code != ErrCodeLayoutWarning {
		t.Errorf("Code = %v, want %v", list[0].Code, ErrCodeLayoutWarning)
	}
	if got := list[0].String(); got != "text wrapped to 2 rows" {
		t.Errorf("String() = %q", got)
	}
	if got := list[1].String(); got != "line 7: style directive ignored" {
		t.Errorf("String() = %q", got)
	}
}

func joined(err error) error {
	return errors.Join(errors.New("context"), err)
}
