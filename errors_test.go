package cardmill_test

import (
	"fmt"
	"testing"

	"github.com/fwojciec/cardmill"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := cardmill.Errorf(cardmill.ENOTFOUND, "deck %q not found", "test")

	assert.Equal(t, cardmill.ENOTFOUND, cardmill.ErrorCode(err))
	assert.Equal(t, "deck \"test\" not found", cardmill.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, cardmill.ErrorCode(nil))
}

func TestErrorCode_WrappedError(t *testing.T) {
	t.Parallel()

	inner := cardmill.Errorf(cardmill.EINVALID, "bad input")
	wrapped := fmt.Errorf("extract: %w", inner)

	assert.Equal(t, cardmill.EINVALID, cardmill.ErrorCode(wrapped))
	assert.Equal(t, "bad input", cardmill.ErrorMessage(wrapped))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("plain error")

	assert.Equal(t, cardmill.EINTERNAL, cardmill.ErrorCode(err))
	assert.Equal(t, "Internal error.", cardmill.ErrorMessage(err))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, cardmill.ErrorMessage(nil))
}
