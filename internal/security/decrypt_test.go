package security

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenMissingFile(t *testing.T) {
	_, _, _, err := Open(filepath.Join(t.TempDir(), "nope.pdf"), "")
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrEncrypted), "missing file is not an encryption failure")
}

func TestOpenNotAPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "statement.pdf")
	require.NoError(t, os.WriteFile(path, []byte("this is not a pdf"), 0o644))

	_, _, _, err := Open(path, "")
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrEncrypted), "garbage input is a parse failure, not an encryption failure")
}
