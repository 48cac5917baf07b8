package scanner

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDeviceFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "scanner")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadNextReturnsFirstScan(t *testing.T) {
	reader := NewDeviceReader(writeDeviceFile(t, "ABC-123\nXYZ-456\n"))

	code, err := reader.ReadNext(context.Background(), time.Second)
	require.NoError(t, err)
	assert.Equal(t, "ABC-123", code)
}

func TestReadNextTrimsWhitespace(t *testing.T) {
	reader := NewDeviceReader(writeDeviceFile(t, "  ABC-123 \n"))

	code, err := reader.ReadNext(context.Background(), time.Second)
	require.NoError(t, err)
	assert.Equal(t, "ABC-123", code)
}

func TestReadNextMissingDevice(t *testing.T) {
	reader := NewDeviceReader(filepath.Join(t.TempDir(), "missing"))

	_, err := reader.ReadNext(context.Background(), time.Second)
	require.ErrorIs(t, err, ErrDevice)
}

func TestReadNextEOF(t *testing.T) {
	reader := NewDeviceReader(writeDeviceFile(t, ""))

	_, err := reader.ReadNext(context.Background(), time.Second)
	require.ErrorIs(t, err, ErrDevice)
}

func TestReadNextEmptyScan(t *testing.T) {
	reader := NewDeviceReader(writeDeviceFile(t, "   \n"))

	_, err := reader.ReadNext(context.Background(), time.Second)
	require.ErrorIs(t, err, ErrDevice)
}
