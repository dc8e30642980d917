package query

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

type tokenReader struct {
	sc *bufio.Scanner
}

func newTokenReader(r io.Reader) *tokenReader {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	return &tokenReader{sc: sc}
}

func (t *tokenReader) next() (int, error) {
	if !t.sc.Scan() {
		if err := t.sc.Err(); err != nil {
			return 0, fmt.Errorf("read input: %w", err)
		}
		return 0, ErrMissingInput
	}
	tok := t.sc.Text()
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedInput, tok)
	}
	return v, nil
}
