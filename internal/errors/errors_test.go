package errors_test

import (
	"context"
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/hostinfo/hostwiki/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errSentinel = stderrors.New("sentinel")

func TestNewAddsStackTrace(t *testing.T) {
	t.Parallel()

	err := errors.New(errSentinel)
	require.Error(t, err)

	assert.True(t, errors.ContainsStackTrace(err))
	assert.True(t, errors.Is(err, errSentinel))
	assert.NotEmpty(t, errors.ErrorStack(err))
}

func TestNewKeepsExistingStackTrace(t *testing.T) {
	t.Parallel()

	first := errors.New("boom")
	second := errors.New(first)

	assert.Same(t, first, second)
}

func TestNewNil(t *testing.T) {
	t.Parallel()

	assert.NoError(t, errors.New(nil))
	assert.NoError(t, errors.WithStackTrace(nil))
}

func TestErrorfWrapsCause(t *testing.T) {
	t.Parallel()

	err := errors.Errorf("reading %s: %w", "hostwiki.hcl", errSentinel)

	assert.EqualError(t, err, "reading hostwiki.hcl: sentinel")
	assert.True(t, errors.Is(err, errSentinel))
	assert.True(t, errors.ContainsStackTrace(err))
}

func TestRecover(t *testing.T) {
	t.Parallel()

	var recovered error

	func() {
		defer errors.Recover(func(cause error) {
			recovered = cause
		})

		panic("something went wrong")
	}()

	require.Error(t, recovered)
	assert.Contains(t, recovered.Error(), "something went wrong")
}

func TestIsContextCanceled(t *testing.T) {
	t.Parallel()

	assert.True(t, errors.IsContextCanceled(fmt.Errorf("fetch: %w", context.Canceled)))
	assert.False(t, errors.IsContextCanceled(errSentinel))
}

func TestMultiError(t *testing.T) {
	t.Parallel()

	var errs *errors.MultiError

	require.NoError(t, errs.ErrorOrNil())

	errs = errs.Append(nil)
	require.NoError(t, errs.ErrorOrNil())

	errs = errs.Append(stderrors.New("bad timeout"), stderrors.New("bad url"))

	err := errs.ErrorOrNil()
	require.Error(t, err)
	assert.Equal(t, 2, errs.Len())
	assert.Contains(t, err.Error(), "2 errors occurred")
	assert.Contains(t, err.Error(), "* bad timeout")
	assert.Contains(t, err.Error(), "* bad url")
}

func TestUnwrapMultiErrors(t *testing.T) {
	t.Parallel()

	first := stderrors.New("first")
	second := stderrors.New("second")

	errs := new(errors.MultiError).Append(first, second)

	assert.Equal(t, []error{first, second}, errors.UnwrapMultiErrors(errs))
}
