package sandbox

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/klauspost/compress/zip"
	"go.trai.ch/lambdazip/internal/core/domain"
	"go.trai.ch/zerr"
)

// Zip writes every staged file into a zip archive at output.
//
// Entries are named by their slash-separated path relative to the root and
// carry the file's modification time as their MS-DOS timestamp, in UTC. No
// extended timestamp field is written.
func (s *Sandbox) Zip(output string) error {
	files, err := s.Files()
	if err != nil {
		return err
	}

	if dir := filepath.Dir(output); dir != "" {
		if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
			return errors.Join(domain.ErrArchiveFailed, zerr.With(err, "path", output))
		}
	}

	f, err := os.Create(output) //nolint:gosec // Output path is chosen by the caller
	if err != nil {
		return errors.Join(domain.ErrArchiveFailed, zerr.With(err, "path", output))
	}

	zw := zip.NewWriter(f)
	for _, rel := range files {
		if err := s.addEntry(zw, rel); err != nil {
			_ = zw.Close()
			_ = f.Close()
			return errors.Join(domain.ErrArchiveFailed, zerr.With(err, "path", output))
		}
	}

	if err := zw.Close(); err != nil {
		_ = f.Close()
		return errors.Join(domain.ErrArchiveFailed, zerr.With(err, "path", output))
	}
	if err := f.Close(); err != nil {
		return errors.Join(domain.ErrArchiveFailed, zerr.With(err, "path", output))
	}
	return nil
}

func (s *Sandbox) addEntry(zw *zip.Writer, rel string) error {
	path := filepath.Join(s.root, filepath.FromSlash(rel))

	info, err := os.Stat(path)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to stat staged file"), "file", rel)
	}

	hdr, err := zip.FileInfoHeader(info)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to build entry header"), "file", rel)
	}
	hdr.Name = rel
	hdr.Method = zipMethod(s.opts.Compression)
	hdr.Modified = time.Time{}
	hdr.ModifiedDate, hdr.ModifiedTime = msDosTime(info.ModTime()) //nolint:staticcheck // Modified would add an extended timestamp field

	w, err := zw.CreateHeader(hdr)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create entry"), "file", rel)
	}

	in, err := os.Open(path) //nolint:gosec // Path is inside the staging root
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to open staged file"), "file", rel)
	}
	defer in.Close() //nolint:errcheck // Best effort close in defer

	if _, err := io.Copy(w, in); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write entry"), "file", rel)
	}
	return nil
}

func zipMethod(c domain.Compression) uint16 {
	if c == domain.CompressionDeflate {
		return zip.Deflate
	}
	return zip.Store
}

// msDosTime converts t to the MS-DOS date and time fields, at two second
// resolution. Times before 1980 are clamped to the format's epoch.
func msDosTime(t time.Time) (date, clock uint16) {
	t = t.UTC()
	if t.Year() < 1980 {
		t = time.Date(1980, 1, 1, 0, 0, 0, 0, time.UTC)
	}
	date = uint16(t.Day() + int(t.Month())<<5 + (t.Year()-1980)<<9) //nolint:gosec // Bounded by the calendar
	clock = uint16(t.Second()/2 + t.Minute()<<5 + t.Hour()<<11)     //nolint:gosec // Bounded by the calendar
	return date, clock
}
