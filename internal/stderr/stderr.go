//go:build !windows

// Package stderr captures stderr output from C libraries (ALSA, oto)
// that write directly to file descriptor 2, bypassing Go's os.Stderr.
// Captured lines go to the log instead of corrupting the TUI layout.
package stderr

import (
	"bufio"
	"os"
	"strings"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sys/unix"
)

// Capture redirects fd 2 to a pipe and logs every line written to it.
type Capture struct {
	logger *zap.Logger
	orig   int
	r, w   *os.File
	wg     sync.WaitGroup
	once   sync.Once
}

// Start begins capturing stderr output.
// Must be called before any C library initialization. On error the program
// can continue without capture.
func Start(logger *zap.Logger) (*Capture, error) {
	r, w, err := os.Pipe()
	if err != nil {
		return nil, err
	}

	fd := int(os.Stderr.Fd()) //nolint:gosec // fd fits in int
	orig, err := unix.Dup(fd)
	if err != nil {
		r.Close()
		w.Close()
		return nil, err
	}

	if err := unix.Dup2(int(w.Fd()), fd); err != nil { //nolint:gosec // fd fits in int
		_ = unix.Close(orig)
		r.Close()
		w.Close()
		return nil, err
	}

	c := &Capture{
		logger: logger.Named("stderr"),
		orig:   orig,
		r:      r,
		w:      w,
	}
	c.wg.Add(1)
	go c.forward()
	return c, nil
}

func (c *Capture) forward() {
	defer c.wg.Done()
	scanner := bufio.NewScanner(c.r)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			c.logger.Warn(line)
		}
	}
}

// WriteOriginal writes directly to the original stderr, bypassing capture.
func (c *Capture) WriteOriginal(msg string) {
	_, _ = unix.Write(c.orig, []byte(msg))
}

// Stop restores the original stderr and waits for pending lines to be logged.
func (c *Capture) Stop() {
	c.once.Do(func() {
		fd := int(os.Stderr.Fd()) //nolint:gosec // fd fits in int
		_ = unix.Dup2(c.orig, fd)
		_ = unix.Close(c.orig)

		// Closing the last write end ends the scanner.
		c.w.Close()
		c.wg.Wait()
		c.r.Close()
	})
}
