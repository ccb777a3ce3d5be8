package errors

import (
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

type codeError struct{ code int }

func (e *codeError) Error() string { return fmt.Sprintf("code %d", e.code) }

func TestWrap_KeepsChain(t *testing.T) {
	err := Wrap(io.EOF, "read body")

	assert.EqualError(t, err, "read body: EOF")
	assert.True(t, Is(err, io.EOF))
	assert.Nil(t, Wrap(nil, "ignored"))
}

func TestAsType(t *testing.T) {
	err := Wrapf(&codeError{code: 7}, "attempt %d", 2)

	target, ok := AsType[*codeError](err)
	assert.True(t, ok)
	assert.Equal(t, 7, target.code)

	_, ok = AsType[*codeError](WithStack(io.EOF))
	assert.False(t, ok)
}

func TestErrorf_HasStack(t *testing.T) {
	err := Errorf("unknown driver: %s", "x")

	assert.EqualError(t, err, "unknown driver: x")
	assert.Contains(t, fmt.Sprintf("%+v", err), "TestErrorf_HasStack")
}
