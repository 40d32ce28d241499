package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupWritesToFileWithInstanceField(t *testing.T) {
	dir := t.TempDir()

	log, err := setupAt(dir, "instancia-teste")
	require.NoError(t, err)

	log.Info("hello from the test")

	data, err := os.ReadFile(filepath.Join(dir, logFileName))
	require.NoError(t, err)

	assert.Contains(t, string(data), "hello from the test")
	assert.Contains(t, string(data), "instancia-teste")
}

func TestSetupAppendsAcrossCalls(t *testing.T) {
	dir := t.TempDir()

	first, err := setupAt(dir, "a")
	require.NoError(t, err)
	first.Info("first line")

	second, err := setupAt(dir, "a")
	require.NoError(t, err)
	second.Info("second line")

	data, err := os.ReadFile(filepath.Join(dir, logFileName))
	require.NoError(t, err)

	assert.Contains(t, string(data), "first line")
	assert.Contains(t, string(data), "second line")
}
