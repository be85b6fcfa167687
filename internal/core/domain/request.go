package domain

import (
	"path/filepath"
	"strings"
)

// Request describes a single packaging run.
type Request struct {
	// Code is the path of the primary source file.
	Code string

	// ExtraFiles are additional paths, relative to the directory of Code,
	// imported in the given order.
	ExtraFiles []string

	output string
}

// NewRequest builds a Request from its transport form, where extraFiles is a
// comma-delimited list. Empty list segments are ignored.
func NewRequest(code, extraFiles, outputFilename string) (Request, error) {
	if code == "" {
		return Request{}, ErrCodeRequired
	}

	var extras []string
	for _, f := range strings.Split(extraFiles, ",") {
		if f != "" {
			extras = append(extras, f)
		}
	}

	return Request{
		Code:       code,
		ExtraFiles: extras,
		output:     outputFilename,
	}, nil
}

// OutputFilename returns the archive path: the explicit override when one was
// given, otherwise Code with its extension replaced by .zip.
func (r Request) OutputFilename() string {
	if r.output != "" {
		return r.output
	}
	return strings.TrimSuffix(r.Code, filepath.Ext(r.Code)) + ArchiveExt
}

// SourceDir returns the directory containing the code file.
func (r Request) SourceDir() string {
	return filepath.Dir(r.Code)
}

// ExtraImport pairs an extra file's source path with where it lands inside
// the staging root.
type ExtraImport struct {
	Source string
	Staged string
}

// ExtraImports resolves every extra file against the code file's directory.
// Paths that leave that directory are staged under their base name.
func (r Request) ExtraImports() []ExtraImport {
	imports := make([]ExtraImport, 0, len(r.ExtraFiles))
	for _, extra := range r.ExtraFiles {
		staged := filepath.Clean(extra)
		if !filepath.IsLocal(staged) {
			staged = filepath.Base(staged)
		}
		imports = append(imports, ExtraImport{
			Source: filepath.Join(r.SourceDir(), extra),
			Staged: staged,
		})
	}
	return imports
}
