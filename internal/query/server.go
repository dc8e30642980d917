package query

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/Pam-La/fibcount/internal/callcount"
)

var (
	ErrMalformedInput = errors.New("malformed integer token")
	ErrMissingInput   = errors.New("input ended before all queries were read")
	ErrNegativeCount  = errors.New("query count must be >= 0")
)

type Config struct {
	Table  *callcount.Table
	Logger logrus.FieldLogger
}

// Server는 미리 계산된 표로 배치 질의에 답한다.
// 질의 처리 중에는 표를 읽기만 한다.
type Server struct {
	table *callcount.Table
	log   logrus.FieldLogger
}

func NewServer(cfg Config) *Server {
	table := cfg.Table
	if table == nil {
		built := callcount.Build()
		table = &built
	}
	log := cfg.Logger
	if log == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		log = discard
	}
	return &Server{table: table, log: log}
}

// Serve reads a query count T followed by T values of n from r and writes
// one "<zero> <one>" line per query to w, in input order. Lines answered
// before an error are still flushed.
func (s *Server) Serve(ctx context.Context, r io.Reader, w io.Writer) (err error) {
	in := newTokenReader(r)
	out := bufio.NewWriter(w)
	defer func() {
		if flushErr := out.Flush(); err == nil && flushErr != nil {
			err = fmt.Errorf("flush output: %w", flushErr)
		}
	}()

	total, err := in.next()
	if err != nil {
		return fmt.Errorf("read query count: %w", err)
	}
	if total < 0 {
		return fmt.Errorf("%w: got %d", ErrNegativeCount, total)
	}
	s.log.WithField("queries", total).Debug("serving batch")

	var line []byte
	for i := 1; i <= total; i++ {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("query %d: %w", i, err)
		}
		n, err := in.next()
		if err != nil {
			return fmt.Errorf("query %d: %w", i, err)
		}
		counts, err := s.table.Lookup(n)
		if err != nil {
			return fmt.Errorf("query %d: %w", i, err)
		}
		s.log.WithFields(logrus.Fields{"query": i, "n": n}).Debug("answered")

		line = appendCounts(line[:0], counts)
		if _, err := out.Write(line); err != nil {
			return fmt.Errorf("write answer %d: %w", i, err)
		}
	}
	return nil
}

func appendCounts(dst []byte, c callcount.Counts) []byte {
	dst = strconv.AppendUint(dst, c.Zero, 10)
	dst = append(dst, ' ')
	dst = strconv.AppendUint(dst, c.One, 10)
	return append(dst, '\n')
}
