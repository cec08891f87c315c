package gen

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
)

// ErrOutputUnwritable marks failures to create the output directory or to
// write one of the generated files.
var ErrOutputUnwritable = errors.New("output unwritable")

// WriteStats summarizes a write pass.
type WriteStats struct {
	Files int
	Bytes int64
}

// PrepareOutputDir creates the output directory, first removing it when
// clean is set. The working directory and the filesystem root are never
// removed.
func PrepareOutputDir(dir string, clean bool) error {
	if clean {
		if c := filepath.Clean(dir); c == "." || c == ".." || c == filepath.VolumeName(c)+string(filepath.Separator) {
			return errors.Mark(errors.Newf("refusing to clean %s", dir), ErrOutputUnwritable)
		}
		if err := os.RemoveAll(dir); err != nil {
			return errors.Mark(errors.Wrapf(err, "cleaning %s", dir), ErrOutputUnwritable)
		}
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Mark(errors.Wrapf(err, "creating output directory %s", dir), ErrOutputUnwritable)
	}
	return nil
}

// WriteFiles writes every file under dir, one at a time. Each file is
// closed before the next is opened, so a failure leaves earlier files
// complete. The first failure aborts the pass.
func WriteFiles(dir string, files []*OutputFile, dryRun bool) (WriteStats, error) {
	var stats WriteStats
	for _, f := range files {
		outPath := filepath.Join(dir, f.Path)
		if dryRun {
			slog.Info("would write", "path", outPath)
			continue
		}
		n, err := writeFile(outPath, f.Content)
		if err != nil {
			what := "index"
			if f.Module != "" {
				what = "module " + f.Module
			}
			return stats, errors.Mark(errors.Wrapf(err, "writing %s to %s", what, outPath), ErrOutputUnwritable)
		}
		stats.Files++
		stats.Bytes += n
		slog.Debug("wrote", "path", outPath, "bytes", n)
	}
	return stats, nil
}

func writeFile(path string, content []byte) (n int64, err error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	written, err := f.Write(content)
	return int64(written), err
}
