package icon

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"fyne.io/fyne/v2"
	"github.com/natefinch/atomic"
	ico "github.com/sergeymakinen/go-ico"
)

// WriteError reports that the icon could not be saved to Path.
// Whatever was at Path before is still there.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// EncodePNG writes img as a PNG with its alpha channel.
func EncodePNG(w io.Writer, img image.Image) error {
	enc := png.Encoder{CompressionLevel: png.DefaultCompression}
	return enc.Encode(w, img)
}

// EncodeICO wraps img into a single-image ICO file.
// A 256x256 image is stored as PNG data inside the ICO.
func EncodeICO(w io.Writer, img image.Image) error {
	return ico.Encode(w, img)
}

// WriteFile encodes img as PNG and saves it to path.
// The file is either fully written or left as it was.
func WriteFile(path string, img image.Image) error {
	var buf bytes.Buffer
	if err := EncodePNG(&buf, img); err != nil {
		return &WriteError{Path: path, Err: fmt.Errorf("encode png: %w", err)}
	}
	return Save(path, buf.Bytes())
}

// Save atomically replaces path with data. New files are created 0644;
// an existing file keeps its mode. The data goes to a temp file next to
// path, which gets its final mode before it is renamed into place, so
// path is either the old file or the complete new one.
func Save(path string, data []byte) (err error) {
	mode := os.FileMode(0644)
	if info, statErr := os.Stat(path); statErr == nil {
		mode = info.Mode().Perm()
	} else if !os.IsNotExist(statErr) {
		return &WriteError{Path: path, Err: statErr}
	}

	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	f, err := os.CreateTemp(dir, base+".tmp*")
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}
	tmp := f.Name()
	defer func() {
		if err != nil {
			f.Close()
			os.Remove(tmp)
		}
	}()

	if err := f.Chmod(mode); err != nil {
		return &WriteError{Path: path, Err: fmt.Errorf("chmod temp file: %w", err)}
	}
	if _, err := f.Write(data); err != nil {
		return &WriteError{Path: path, Err: fmt.Errorf("write temp file: %w", err)}
	}
	if err := f.Sync(); err != nil {
		return &WriteError{Path: path, Err: fmt.Errorf("sync temp file: %w", err)}
	}
	if err := f.Close(); err != nil {
		return &WriteError{Path: path, Err: fmt.Errorf("close temp file: %w", err)}
	}
	if err := atomic.ReplaceFile(tmp, path); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	return nil
}

// Resource returns img as a bundled PNG resource named after OutputFile,
// ready for fyne.App.SetIcon.
func Resource(img image.Image) (*fyne.StaticResource, error) {
	var buf bytes.Buffer
	if err := EncodePNG(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return fyne.NewStaticResource(OutputFile, buf.Bytes()), nil
}
