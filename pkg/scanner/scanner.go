package scanner

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

// Errors returned by a Reader. Neither touches persistent state; callers
// report them directly.
var (
	ErrTimeout = errors.New("scan timed out")
	ErrDevice  = errors.New("scanner device error")
)

// Reader produces barcode strings from some capture device. The image
// decoding itself happens outside this process; a Reader only consumes
// decoded scans.
type Reader interface {
	ReadNext(ctx context.Context, timeout time.Duration) (string, error)
}

// DeviceReader reads newline-delimited barcode scans from a device file
// (a HID barcode scanner exposed as a character device, or a FIFO fed by
// the camera decoder).
type DeviceReader struct {
	path string
}

// NewDeviceReader creates a reader for the given device path.
func NewDeviceReader(path string) *DeviceReader {
	return &DeviceReader{path: path}
}

// ReadNext blocks until one scan arrives, the timeout elapses, or ctx is
// cancelled. The device is opened per call and closed on every exit path;
// closing it also unblocks the pending read.
func (r *DeviceReader) ReadNext(ctx context.Context, timeout time.Duration) (string, error) {
	f, err := os.Open(r.path)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDevice, err)
	}
	defer f.Close()

	type scanResult struct {
		code string
		err  error
	}
	results := make(chan scanResult, 1)

	go func() {
		sc := bufio.NewScanner(f)
		if sc.Scan() {
			results <- scanResult{code: strings.TrimSpace(sc.Text())}
			return
		}
		if err := sc.Err(); err != nil {
			results <- scanResult{err: fmt.Errorf("%w: %v", ErrDevice, err)}
			return
		}
		results <- scanResult{err: fmt.Errorf("%w: %v", ErrDevice, io.EOF)}
	}()

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case res := <-results:
		if res.err != nil {
			return "", res.err
		}
		if res.code == "" {
			return "", fmt.Errorf("%w: empty scan", ErrDevice)
		}
		return res.code, nil
	case <-timer.C:
		return "", ErrTimeout
	case <-ctx.Done():
		return "", ctx.Err()
	}
}
