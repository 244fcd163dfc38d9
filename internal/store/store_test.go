package store_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wechicken456/vmsim/internal/store"
)

func backingImage(pages int) []byte {
	img := make([]byte, pages*store.PageSize)
	for p := 0; p < pages; p++ {
		for b := 0; b < store.PageSize; b++ {
			img[p*store.PageSize+b] = byte(p + b)
		}
	}
	return img
}

func TestReadPageReturnsCorrectBytes(t *testing.T) {
	img := backingImage(4)
	r := store.New(bytes.NewReader(img))

	frame, err := r.ReadPage(2)
	require.NoError(t, err)
	assert.Equal(t, byte(2+0), frame[0])
	assert.Equal(t, byte((2+255)&0xFF), frame[255])
}

func TestReadPageShortReturnsBackingStoreShort(t *testing.T) {
	img := make([]byte, 100) // shorter than one page
	r := store.New(bytes.NewReader(img))

	_, err := r.ReadPage(0)
	require.Error(t, err)
}
