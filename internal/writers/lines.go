// internal/writers/lines.go
package writers

import "io"

// StartLineWriter spins up a writer goroutine draining a line channel into
// out. Lines are written verbatim (they carry their own terminators).
// Close the channel when done; the first write error is reported on the
// returned error channel after the drain finishes.
func StartLineWriter(out io.Writer, bufSize int) (chan<- string, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan string, bufSize)
	errCh := make(chan error, 1)

	go func() {
		var err error
		for line := range in {
			if err != nil {
				continue // keep draining so the producer never blocks
			}
			_, err = io.WriteString(out, line)
		}
		errCh <- err
	}()

	return in, errCh
}
