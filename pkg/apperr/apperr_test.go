package apperr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrap(t *testing.T) {
	cause := errors.New("boom")

	err := Wrap("Navigate", CodeUnavailable, cause, map[string]any{
		MetaStage: StageNavigation,
		MetaURL:   "https://site.test/",
	})

	var appErr *Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "Navigate", appErr.Op)
	assert.Equal(t, CodeUnavailable, appErr.Code)
	assert.Equal(t, StageNavigation, appErr.Metadata[MetaStage])
	assert.Equal(t, "Navigate: boom", err.Error())
	assert.ErrorIs(t, err, cause)
}

func TestWrapNilMetadata(t *testing.T) {
	err := Wrap("Analyze", CodeInternal, errors.New("boom"), nil)

	var appErr *Error
	require.ErrorAs(t, err, &appErr)
	assert.NotNil(t, appErr.Metadata)
}

func TestWrapErrorWithReason(t *testing.T) {
	err := WrapErrorWithReason("Snapshot", CodeBrowserNotReady, "browser_not_ready")

	var appErr *Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "browser_not_ready", appErr.Metadata[MetaReason])
	assert.Equal(t, "Snapshot: browser_not_ready", err.Error())
}

func TestInvalidReqError(t *testing.T) {
	err := InvalidReqError("Inspect", "url", errors.New("url cannot be empty"))

	var appErr *Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, CodeInvalidArgument, appErr.Code)
	assert.Equal(t, "url", appErr.Metadata[MetaField])
}
