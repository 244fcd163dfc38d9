// Package output renders translator records and the terminal summary into
// their exact line formats. The translation engine produces Record/Summary
// values; this package is the only thing that knows their textual shape.
package output

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/wechicken456/vmsim/internal/translator"
)

// WriteRecord writes one per-reference line:
// "<addr>, <signed_value>, <frame_number>, <frame_bytes_as_uppercase_hex>\n"
func WriteRecord(w io.Writer, rec translator.Record) error {
	hexBytes := strings.ToUpper(hex.EncodeToString(rec.Frame[:]))
	_, err := fmt.Fprintf(w, "%d, %d, %d, %s\n", rec.Addr, rec.Value, rec.FrameNumber, hexBytes)
	return err
}

// WriteSummary writes the six-line terminal summary: translation count,
// page faults, page fault rate, TLB hits, TLB misses, and TLB hit rate.
func WriteSummary(w io.Writer, s translator.Summary) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "Number of Translated Addresses = %d\n", s.Translations)
	fmt.Fprintf(bw, "Page Faults = %d\n", s.PageFaults)
	fmt.Fprintf(bw, "Page Fault Rate = %s\n", formatRate(s.PageFaultRate()))
	fmt.Fprintf(bw, "TLB Hits = %d\n", s.TLBHits)
	fmt.Fprintf(bw, "TLB Misses = %d\n", s.TLBMisses)
	fmt.Fprintf(bw, "TLB Hit Rate = %s\n", formatRate(s.TLBHitRate()))
	return bw.Flush()
}

// formatRate renders rate with exactly three digits after the decimal
// point, half-away-from-zero rounded.
func formatRate(rate float64) string {
	rounded := math.Round(rate*1000) / 1000
	return fmt.Sprintf("%.3f", rounded)
}
