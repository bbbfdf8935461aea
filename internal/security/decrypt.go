// Package security handles password-protected statement PDFs before the
// extraction pipeline runs. The pipeline itself only ever sees an already
// decrypted reader.
package security

import (
	"errors"
	"fmt"
	"os"

	"github.com/ledongthuc/pdf"
)

// ErrEncrypted is returned when a document is encrypted and neither the
// blank password nor the supplied one opens it.
var ErrEncrypted = errors.New("encrypted PDF: decryption failed")

// Result describes what the decryption pre-step did.
type Result struct {
	IsEncrypted  bool   `json:"isEncrypted"`
	WasDecrypted bool   `json:"wasDecrypted"`
	SourcePath   string `json:"sourcePath"`
	Message      string `json:"message"`
}

// Open opens a possibly-encrypted statement PDF. For encrypted files it
// tries the blank password first (some statements are marked encrypted but
// carry no user password), then the supplied password. The caller owns the
// returned file handle.
func Open(path, password string) (*os.File, *pdf.Reader, Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, Result{}, fmt.Errorf("failed to open %q: %w", path, err)
	}
	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, nil, Result{}, fmt.Errorf("failed to stat %q: %w", path, err)
	}

	// NewReader tries the blank password on encrypted files before failing.
	r, err := pdf.NewReader(f, fi.Size())
	if err == nil {
		return f, r, Result{
			IsEncrypted: false,
			SourcePath:  path,
			Message:     "PDF is not encrypted.",
		}, nil
	}
	if !errors.Is(err, pdf.ErrInvalidPassword) {
		f.Close()
		return nil, nil, Result{}, fmt.Errorf("failed to parse %q: %w", path, err)
	}

	if password == "" {
		f.Close()
		return nil, nil, Result{IsEncrypted: true, SourcePath: path},
			fmt.Errorf("%w: a password is required for %q", ErrEncrypted, path)
	}

	// Hand the user password to the library once; returning "" afterwards
	// tells it to stop retrying.
	attempts := []string{password}
	r, err = pdf.NewReaderEncrypted(f, fi.Size(), func() string {
		if len(attempts) == 0 {
			return ""
		}
		pw := attempts[0]
		attempts = attempts[1:]
		return pw
	})
	if err != nil {
		f.Close()
		if errors.Is(err, pdf.ErrInvalidPassword) {
			return nil, nil, Result{IsEncrypted: true, SourcePath: path},
				fmt.Errorf("%w: the provided password did not work for %q", ErrEncrypted, path)
		}
		return nil, nil, Result{IsEncrypted: true, SourcePath: path},
			fmt.Errorf("failed to decrypt %q: %w", path, err)
	}

	return f, r, Result{
		IsEncrypted:  true,
		WasDecrypted: true,
		SourcePath:   path,
		Message:      "Password accepted; statement opened.",
	}, nil
}
