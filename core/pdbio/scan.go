// core/pdbio/scan.go
package pdbio

import (
	"bufio"
	"context"
	"fmt"
	"io"
)

// ScanLinesCtx reads r line by line and calls emit for each one. Line
// terminators are preserved exactly (lines keep their trailing \n or \r\n;
// a final unterminated line is emitted as-is), so a consumer writing the
// lines verbatim reproduces the input byte for byte.
//
// It is cancelable: returning promptly when ctx is Done, between lines.
func ScanLinesCtx(ctx context.Context, r io.Reader, emit func(line string) error) error {
	br := bufio.NewReaderSize(r, 64*1024)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		line, err := br.ReadString('\n')
		if len(line) > 0 {
			if eerr := emit(line); eerr != nil {
				return eerr
			}
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("pdb scan: %w", err)
		}
	}
}

// ScanLines is the background-context convenience wrapper.
func ScanLines(r io.Reader, emit func(line string) error) error {
	return ScanLinesCtx(context.Background(), r, emit)
}
