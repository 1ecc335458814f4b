package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New(ErrPatternInvalid, "bad pattern")
	assert.Equal(t, ErrPatternInvalid, err.Code)
	assert.Equal(t, "[PATTERN_INVALID] bad pattern", err.Error())
}

func TestNewf(t *testing.T) {
	err := Newf(ErrRuleInvalid, "rule %d is broken", 3)
	assert.Equal(t, "[RULE_INVALID] rule 3 is broken", err.Error())
}

func TestWrap(t *testing.T) {
	t.Run("wraps_underlying_error", func(t *testing.T) {
		inner := fmt.Errorf("open failed")
		err := Wrap(inner, ErrFileAccess, "cannot read file")
		require.NotNil(t, err)
		assert.Equal(t, "[FILE_ACCESS] cannot read file: open failed", err.Error())
		assert.Equal(t, inner, errors.Unwrap(err))
	})

	t.Run("nil_error_returns_nil", func(t *testing.T) {
		assert.Nil(t, Wrap(nil, ErrFileAccess, "unused"))
	})
}

func TestWrapf(t *testing.T) {
	inner := fmt.Errorf("boom")
	err := Wrapf(inner, ErrConfigLoad, "loading %s", "hilite.toml")
	require.NotNil(t, err)
	assert.Contains(t, err.Error(), "loading hilite.toml")
	assert.Contains(t, err.Error(), "boom")
}

func TestIsErrorCode(t *testing.T) {
	err := New(ErrConfigParse, "parse failure")
	assert.True(t, IsErrorCode(err, ErrConfigParse))
	assert.False(t, IsErrorCode(err, ErrConfigLoad))
	assert.False(t, IsErrorCode(fmt.Errorf("plain"), ErrConfigParse))

	wrapped := fmt.Errorf("outer: %w", err)
	assert.True(t, IsErrorCode(wrapped, ErrConfigParse))
}

func TestGetErrorCode(t *testing.T) {
	assert.Equal(t, ErrFilterInvalid, GetErrorCode(New(ErrFilterInvalid, "x")))
	assert.Equal(t, ErrUnknown, GetErrorCode(fmt.Errorf("plain")))
}

func TestErrorsIs(t *testing.T) {
	err := New(ErrDecorationInvalid, "whatever")
	target := New(ErrDecorationInvalid, "other message")
	assert.True(t, errors.Is(err, target))
}

func TestWithDetail(t *testing.T) {
	err := New(ErrRuleInvalid, "bad rule").WithDetail("rule", "note-header")
	assert.Equal(t, "note-header", err.Details["rule"])
}
