package output_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wechicken456/vmsim/internal/output"
	"github.com/wechicken456/vmsim/internal/store"
	"github.com/wechicken456/vmsim/internal/translator"
)

func TestWriteRecordFormat(t *testing.T) {
	var frame store.Frame
	frame[20] = 0x7F

	rec := translator.Record{Addr: 16916, Value: 0x7F, FrameNumber: 1, Frame: frame}
	var buf bytes.Buffer
	require.NoError(t, output.WriteRecord(&buf, rec))

	line := buf.String()
	assert.True(t, strings.HasPrefix(line, "16916, 127, 1, "))
	assert.True(t, strings.HasSuffix(line, "\n"))

	hexPart := strings.TrimSuffix(strings.SplitN(line, ", ", 4)[3], "\n")
	assert.Len(t, hexPart, 512)
	assert.Equal(t, strings.ToUpper(hexPart), hexPart)
}

func TestWriteSummaryFormat(t *testing.T) {
	s := translator.Summary{Translations: 2, PageFaults: 1, TLBHits: 1, TLBMisses: 1}
	var buf bytes.Buffer
	require.NoError(t, output.WriteSummary(&buf, s))

	want := "Number of Translated Addresses = 2\n" +
		"Page Faults = 1\n" +
		"Page Fault Rate = 1.000\n" +
		"TLB Hits = 1\n" +
		"TLB Misses = 1\n" +
		"TLB Hit Rate = 0.500\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteSummaryZeroDenominators(t *testing.T) {
	var s translator.Summary
	var buf bytes.Buffer
	require.NoError(t, output.WriteSummary(&buf, s))
	assert.Contains(t, buf.String(), "Page Fault Rate = 0.000\n")
	assert.Contains(t, buf.String(), "TLB Hit Rate = 0.000\n")
}
