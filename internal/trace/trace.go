// Package trace tokenizes a reference-sequence file into logical
// addresses. The translation engine itself only ever sees a sequence of
// addresses, not raw trace text.
package trace

import (
	"bufio"
	"io"
	"strconv"

	"github.com/wechicken456/vmsim/internal/vmerr"
)

// Read tokenizes r as whitespace-separated ASCII integers, each in
// [0, 65535]. Trailing newlines and empty tokens are ignored; a
// non-integer or out-of-range token is a fatal vmerr.MalformedToken error.
func Read(r io.Reader) ([]uint16, error) {
	var addrs []uint16
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	scanner.Split(bufio.ScanWords)

	for scanner.Scan() {
		token := scanner.Text()
		if token == "" {
			continue
		}
		n, err := strconv.ParseUint(token, 10, 32)
		if err != nil || n > 65535 {
			return nil, vmerr.MalformedToken(token, err)
		}
		addrs = append(addrs, uint16(n))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return addrs, nil
}
