package logger

import (
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type named struct{ name string }

func (n named) String() string { return "named:" + n.name }

type panicky struct{}

func (panicky) String() string { panic("boom") }

func TestDescribe(t *testing.T) {
	var nilPtr *int
	var nilPathErr *os.PathError
	var typedNilErr error = nilPathErr
	cases := []struct {
		name string
		in   any
		want string
	}{
		{"nil", nil, EmptyPlaceholder},
		{"absent", None[int](), EmptyPlaceholder},
		{"zero optional", Optional[string]{}, EmptyPlaceholder},
		{"present", Some(42), "42"},
		{"present empty string", Some(""), ""},
		{"nested", Some(Some("deep")), "deep"},
		{"string", "plain text", "plain text"},
		{"error", errors.New("boom"), "boom"},
		{"wrapped error", fmt.Errorf("open: %w", errors.New("denied")), "open: denied"},
		{"stringer", named{"x"}, "named:x"},
		{"struct", struct{ A, B int }{1, 2}, "{A:1 B:2}"},
		{"slice", []string{"a", "b"}, "[a b]"},
		{"typed nil pointer", nilPtr, "<nil>"},
		{"typed nil error", typedNilErr, "<nil>"},
		{"nil time pointer", (*time.Time)(nil), "<nil>"},
		{"present typed nil error", Some(typedNilErr), "<nil>"},
		{"panicking stringer", panicky{}, "%!v(PANIC=String method: boom)"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, describe(tc.in))
		})
	}
}

func TestOptionalGet(t *testing.T) {
	v, ok := Some("x").Get()
	assert.True(t, ok)
	assert.Equal(t, "x", v)

	v, ok = None[string]().Get()
	assert.False(t, ok)
	assert.Empty(t, v)
}
