package vmerr_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wechicken456/vmsim/internal/vmerr"
)

func TestWrappedErrorsMatchSentinel(t *testing.T) {
	assert.True(t, errors.Is(vmerr.MalformedToken("abc", nil), vmerr.ErrMalformedToken))
	assert.True(t, errors.Is(vmerr.FileNotFound("x.txt", errors.New("boom")), vmerr.ErrFileNotFound))
	assert.True(t, errors.Is(vmerr.BackingStoreShort(3, 10), vmerr.ErrBackingStoreShort))
}
