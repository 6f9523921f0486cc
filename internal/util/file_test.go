package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadIntFromFile(t *testing.T) {
	// GIVEN
	path := filepath.Join(t.TempDir(), "temp")
	err := os.WriteFile(path, []byte("48250\n"), 0644)
	assert.NoError(t, err)

	// WHEN
	value, err := ReadIntFromFile(path)

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, 48250, value)
}

func TestReadIntFromFileEmpty(t *testing.T) {
	// GIVEN
	path := filepath.Join(t.TempDir(), "temp")
	err := os.WriteFile(path, []byte(""), 0644)
	assert.NoError(t, err)

	// WHEN
	_, err = ReadIntFromFile(path)

	// THEN
	assert.Error(t, err)
}

func TestWriteIntToFileAtomic(t *testing.T) {
	// GIVEN
	path := filepath.Join(t.TempDir(), "duty")

	// WHEN
	err := WriteIntToFileAtomic(42, path)

	// THEN
	assert.NoError(t, err)
	value, err := ReadIntFromFile(path)
	assert.NoError(t, err)
	assert.Equal(t, 42, value)
}
