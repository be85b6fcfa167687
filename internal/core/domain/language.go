package domain

import (
	"errors"
	"path/filepath"

	"go.trai.ch/zerr"
)

// Language identifies a dependency ecosystem supported by the packager.
type Language int

const (
	// LanguagePython packages .py handlers with pip-installed dependencies.
	LanguagePython Language = iota + 1
	// LanguageNode packages .js handlers with npm-installed dependencies.
	LanguageNode
)

// String returns the language name.
func (l Language) String() string {
	switch l {
	case LanguagePython:
		return "python"
	case LanguageNode:
		return "node"
	default:
		return "unknown"
	}
}

// ManifestName returns the dependency manifest file name for the language.
func (l Language) ManifestName() string {
	switch l {
	case LanguagePython:
		return "requirements.txt"
	case LanguageNode:
		return "package.json"
	default:
		return ""
	}
}

// LanguageOf selects the language variant from the code file's extension.
func LanguageOf(code string) (Language, error) {
	switch ext := filepath.Ext(code); ext {
	case ".py":
		return LanguagePython, nil
	case ".js":
		return LanguageNode, nil
	default:
		return 0, errors.Join(ErrUnsupportedLanguage, zerr.With(zerr.New("unknown file extension"), "extension", ext))
	}
}
