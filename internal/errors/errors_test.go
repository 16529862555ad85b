package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsMatchesByCode(t *testing.T) {
	err := Shape("expected %d, found %d", 6, 5)

	assert.True(t, stderrors.Is(err, ErrShape))
	assert.False(t, stderrors.Is(err, ErrNotFound))
	assert.Equal(t, "expected 6, found 5", err.Error())
}

func TestHeaderBuildIsShape(t *testing.T) {
	err := HeaderBuild("no header text")

	assert.True(t, stderrors.Is(err, ErrHeaderBuild))
	assert.True(t, stderrors.Is(err, ErrShape))
	assert.False(t, stderrors.Is(Shape("x"), ErrHeaderBuild))
}

func TestWrapKeepsCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code string
	}{
		{"app error", NotFound("missing"), CodeNotFound},
		{"plain error", fmt.Errorf("boom"), CodeInternalError},
		{"wrapped app error", fmt.Errorf("ctx: %w", ConfigInvalid("bad")), CodeConfigInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := Wrapf(tt.err, "loading %s", "book.xlsx")
			assert.Equal(t, tt.code, GetCode(wrapped))
			assert.ErrorIs(t, wrapped, tt.err)
		})
	}
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, Wrap(nil, "nothing"))
	assert.Equal(t, "UNKNOWN", GetCode(fmt.Errorf("plain")))
}
