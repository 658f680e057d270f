// Package capture records what a function writes to standard output.
package capture

import (
	"bytes"
	"io"
	"os"
)

// Stdout replaces os.Stdout with a pipe while fn runs and returns everything fn wrote.
// os.Stdout is restored and the pipe closed even if fn panics.
// It is not safe to call from parallel tests.
func Stdout(fn func()) (string, error) {
	r, w, err := os.Pipe()
	if err != nil {
		return "", err
	}
	stdout := os.Stdout
	os.Stdout = w
	defer func() {
		os.Stdout = stdout
		// both are already closed unless fn panicked
		_ = w.Close()
		_ = r.Close()
	}()

	done := make(chan struct{})
	var buf bytes.Buffer
	var copyErr error
	go func() {
		defer close(done)
		_, copyErr = io.Copy(&buf, r)
	}()

	fn()

	if err := w.Close(); err != nil {
		return "", err
	}
	<-done
	if err := r.Close(); err != nil {
		return "", err
	}
	if copyErr != nil {
		return "", copyErr
	}
	return buf.String(), nil
}
