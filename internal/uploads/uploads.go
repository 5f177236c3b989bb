package uploads

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/google/uuid"

	"github.com/chaitravc/AI-VOICE-AGENT/internal/apperr"
)

// Dir is the directory transient upload artifacts live in. Every file written
// here belongs to exactly one in-flight request and is removed before that
// request returns, so the directory is empty at steady state.
type Dir struct {
	path string
	log  *logger.ZapLogger
}

func NewDir(path string, log *logger.ZapLogger) (*Dir, error) {
	if err := os.MkdirAll(path, 0755); err != nil {
		return nil, fmt.Errorf("create uploads dir: %w", err)
	}
	return &Dir{path: path, log: log}, nil
}

// TempFile owns one uploaded artifact for the span of a request. Callers must
// defer Discard on every path once Save has succeeded.
type TempFile struct {
	Path string
	Size int64

	log  *logger.ZapLogger
	gone bool
}

// Save drains src into a uniquely named file under the directory. Collisions
// are avoided by prefixing a random token, not by content addressing; the
// same upload saved twice lands at two different paths.
func (d *Dir) Save(filename string, src io.Reader) (*TempFile, error) {
	if filename == "" {
		filename = fmt.Sprintf("recorded_%d.webm", time.Now().Unix())
	}
	token := strings.ReplaceAll(uuid.NewString(), "-", "")
	path := filepath.Join(d.path, token+"_"+filepath.Base(filename))

	out, err := os.Create(path)
	if err != nil {
		return nil, apperr.New(apperr.KindFileIO, "persist upload", err)
	}

	written, err := io.Copy(out, src)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		if rmErr := os.Remove(path); rmErr != nil && !os.IsNotExist(rmErr) {
			d.log.Log(logger.LogEntry{Level: "warn", Message: "failed to delete temp file " + path, Error: rmErr})
		}
		return nil, apperr.New(apperr.KindFileIO, "persist upload", err)
	}

	return &TempFile{Path: path, Size: written, log: d.log}, nil
}

// Discard removes the file. Deletion failures are logged at warn and never
// override the outcome of the request that owned the file. Safe to call more
// than once.
func (f *TempFile) Discard() {
	if f == nil || f.gone {
		return
	}
	f.gone = true
	if err := os.Remove(f.Path); err != nil && !os.IsNotExist(err) {
		f.log.Log(logger.LogEntry{Level: "warn", Message: "failed to delete temp file " + f.Path, Error: err})
	}
}
