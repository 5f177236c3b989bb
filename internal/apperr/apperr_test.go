package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindSurvivesWrapping(t *testing.T) {
	base := New(KindTranscription, "transcribe", errors.New("provider down"))
	wrapped := fmt.Errorf("pipeline: %w", base)

	assert.Equal(t, KindTranscription, KindOf(wrapped))
	assert.Equal(t, "transcribe", OpOf(wrapped))
	assert.True(t, errors.Is(wrapped, base.Err))
}

func TestUntaggedErrorHasNoKind(t *testing.T) {
	assert.Equal(t, Kind(""), KindOf(errors.New("plain")))
	assert.Equal(t, "", OpOf(errors.New("plain")))
}

func TestErrorMessageCarriesOpAndCause(t *testing.T) {
	err := Newf(KindValidation, "validate upload", "file too large: %d bytes", 10_000_001)
	assert.Equal(t, "validate upload: file too large: 10000001 bytes", err.Error())
}
