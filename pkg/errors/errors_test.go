// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, classification and utility functions

package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/johnmorse/rhinoinsertcommand/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "empty_name_error",
			code:    errors.ErrEmptyName,
			message: "block name is required",
			wantStr: "[EMPTY_NAME] block name is required",
		},
		{
			name:    "self_insertion_error",
			code:    errors.ErrSelfInsertion,
			message: "cannot insert a model into itself",
			wantStr: "[SELF_INSERTION] cannot insert a model into itself",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, tt.message, err.Message)
			assert.NotNil(t, err.Details)
			assert.Equal(t, tt.wantStr, err.Error())
		})
	}
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrAlreadyExists, "definition %q already exists", "Chair")
	assert.Equal(t, `definition "Chair" already exists`, err.Message)
}

func TestWrap(t *testing.T) {
	baseErr := stderrors.New("base error")

	t.Run("wrap_non_nil_error", func(t *testing.T) {
		err := errors.Wrap(baseErr, errors.ErrTableLoad, "cannot read table")

		assert.Equal(t, errors.ErrTableLoad, err.Code)
		assert.Same(t, baseErr, err.Wrapped)
		assert.Equal(t, "[TABLE_LOAD] cannot read table: base error", err.Error())
	})

	t.Run("wrap_nil_error_returns_nil", func(t *testing.T) {
		assert.Nil(t, errors.Wrap(nil, errors.ErrInternal, "internal error"))
		assert.Nil(t, errors.Wrapf(nil, errors.ErrInternal, "internal %s", "error"))
	})
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrSelfInsertion, "self").
		WithDetail("path", "/models/host.3dm").
		WithDetail("insertAs", "block")

	assert.Equal(t, "/models/host.3dm", err.Details["path"])
	assert.Equal(t, "block", err.Details["insertAs"])
	assert.Equal(t, err.Details, errors.GetErrorDetails(err))
}

func TestIs(t *testing.T) {
	err1 := errors.New(errors.ErrEmptyName, "error 1")
	err2 := errors.New(errors.ErrEmptyName, "error 2")
	err3 := errors.New(errors.ErrInternal, "error 3")

	assert.True(t, err1.Is(err2))
	assert.False(t, err1.Is(err3))
	assert.True(t, stderrors.Is(err1, err2))
}

func TestIsErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     errors.ErrorCode
		expected bool
	}{
		{
			name:     "matching_code",
			err:      errors.New(errors.ErrNotFound, "not found"),
			code:     errors.ErrNotFound,
			expected: true,
		},
		{
			name:     "different_code",
			err:      errors.New(errors.ErrNotFound, "not found"),
			code:     errors.ErrInternal,
			expected: false,
		},
		{
			name:     "wrapped_error",
			err:      errors.Wrap(stderrors.New("base"), errors.ErrConfigLoad, "denied"),
			code:     errors.ErrConfigLoad,
			expected: true,
		},
		{
			name:     "standard_error",
			err:      stderrors.New("standard error"),
			code:     errors.ErrNotFound,
			expected: false,
		},
		{
			name:     "nil_error",
			err:      nil,
			code:     errors.ErrNotFound,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, errors.IsErrorCode(tt.err, tt.code))
		})
	}
}

func TestGetErrorCode(t *testing.T) {
	assert.Equal(t, errors.ErrNoTargetSelected, errors.GetErrorCode(errors.New(errors.ErrNoTargetSelected, "nothing")))
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(stderrors.New("standard error")))
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(nil))
}

func TestRecoverable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, true},
		{"empty_name", errors.New(errors.ErrEmptyName, "x"), true},
		{"no_target", errors.New(errors.ErrNoTargetSelected, "x"), true},
		{"sub_flow_cancelled", errors.New(errors.ErrCancelled, "x"), true},
		{"self_insertion", errors.New(errors.ErrSelfInsertion, "x"), false},
		{"overwrite_declined", errors.New(errors.ErrOverwriteDeclined, "x"), false},
		{"unknown", stderrors.New("boom"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, errors.Recoverable(tt.err))
		})
	}
}

func TestErrorChaining(t *testing.T) {
	rootCause := stderrors.New("root cause")
	fileErr := errors.Wrap(rootCause, errors.ErrFileNotFound, "cannot read file")
	configErr := errors.Wrap(fileErr, errors.ErrConfigLoad, "failed to load config")

	assert.True(t, errors.IsErrorCode(configErr, errors.ErrConfigLoad))

	var insertErr *errors.InsertError
	if assert.True(t, stderrors.As(configErr.Unwrap(), &insertErr)) {
		assert.Equal(t, errors.ErrFileNotFound, insertErr.Code)
	}

	assert.True(t, stderrors.Is(configErr, rootCause))
}
