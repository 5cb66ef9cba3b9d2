// core/reorder/stream.go
package reorder

import (
	"context"
	"io"

	"pdbreorder-core/pdbio"
)

// StreamCtx drives one Reorderer over r, emitting transformed lines to emit.
// Line terminators pass through untouched. Cancellation via ctx is honored
// between lines; when canceled mid-stream the phase-1 output already emitted
// is valid as-is and no buffered phase-2 output is produced.
func StreamCtx(ctx context.Context, r io.Reader, set ResidueSet, emit func(line string) error) error {
	eng := New(set, emit)
	if err := pdbio.ScanLinesCtx(ctx, r, eng.Push); err != nil {
		return err
	}
	return eng.Flush()
}

// Stream is the background-context convenience wrapper.
func Stream(r io.Reader, set ResidueSet, emit func(line string) error) error {
	return StreamCtx(context.Background(), r, set, emit)
}

// LinesCtxPath is the ctx-aware channel wrapper around StreamCtx.
// Semantics preserved from the house reader idiom:
//   - "-" for stdin, gzip and mmap handled by pdbio.Open (early open error
//     for non-stdin paths)
//   - channel-based API
//   - scan-time errors are not propagated through the channel
func LinesCtxPath(ctx context.Context, path string, set ResidueSet) (<-chan string, error) {
	// Preserve immediate error reporting for non-stdin paths.
	if path != "-" {
		rc, err := pdbio.Open(path)
		if err != nil {
			return nil, err
		}
		_ = rc.Close()
	}

	out := make(chan string, 64)
	go func() {
		defer close(out)
		rc, err := pdbio.Open(path)
		if err != nil {
			return
		}
		defer rc.Close()
		_ = StreamCtx(ctx, rc, set, func(line string) error {
			select {
			case out <- line:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		})
	}()
	return out, nil
}
