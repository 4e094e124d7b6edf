package journal

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"os"
	"time"

	"cec-reporter/internal/logging"
)

const maxLineSize = 1 << 20

// ReadLog feeds journal records from r to fn. A speed >0 paces playback by
// the records' timestamps; speed <= 0 inserts no delay. Malformed lines and
// lines longer than maxLineSize are logged and skipped.
func ReadLog(ctx context.Context, r io.Reader, speed float64, fn func(Event) error) error {
	log := logging.FromContext(ctx)
	br := bufio.NewReaderSize(r, 64*1024)
	var prev time.Time
	for lineNo := 1; ; lineNo++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		raw, tooLong, rerr := readLine(br)
		if rerr != nil && rerr != io.EOF {
			return rerr
		}
		line := bytes.TrimSpace(raw)
		switch {
		case tooLong:
			log.Warn("skipping oversized journal line", "line", lineNo, "limit", maxLineSize)
		case len(line) > 0:
			ev, err := Decode(line)
			if err != nil {
				log.Warn("skipping malformed journal line", "line", lineNo, "err", err)
				break
			}
			if ts, ok := ev.Timestamp(); ok {
				if !prev.IsZero() && speed > 0 {
					wait(ctx, ts.Sub(prev), speed)
					if err := ctx.Err(); err != nil {
						return err
					}
				}
				prev = ts
			}
			if err := fn(ev); err != nil {
				return err
			}
		}
		if rerr == io.EOF {
			return nil
		}
	}
}

// readLine returns the next line without holding more than maxLineSize
// bytes of it. tooLong reports that the line was dropped.
func readLine(br *bufio.Reader) ([]byte, bool, error) {
	var line []byte
	tooLong := false
	for {
		chunk, rerr := br.ReadSlice('\n')
		if !tooLong {
			if len(line)+len(chunk) > maxLineSize {
				tooLong, line = true, nil
			} else {
				line = append(line, chunk...)
			}
		}
		if rerr == bufio.ErrBufferFull {
			continue
		}
		return line, tooLong, rerr
	}
}

// ReadLogFile opens a journal file and replays its records.
func ReadLogFile(ctx context.Context, path string, speed float64, fn func(Event) error) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return ReadLog(ctx, f, speed, fn)
}

func wait(ctx context.Context, diff time.Duration, speed float64) {
	if speed != 1 {
		diff = time.Duration(float64(diff) / speed)
	}
	if diff <= 0 {
		return
	}
	t := time.NewTimer(diff)
	defer t.Stop()
	select {
	case <-t.C:
	case <-ctx.Done():
	}
}
