package collector

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/lambdazip/internal/adapters/fs"
	"go.trai.ch/lambdazip/internal/adapters/sandbox"
	"go.trai.ch/lambdazip/internal/core/domain"
	"go.trai.ch/lambdazip/internal/core/ports"
	"go.trai.ch/zerr"
)

// NodeCollector installs package.json dependencies with npm.
type NodeCollector struct {
	installer
}

// Collect copies package.json next to code into sb and installs its
// production dependencies there. Installed files take the modification time
// of package.json. Installed manifests have the staging path replaced by the
// configured placeholder.
func (c *NodeCollector) Collect(ctx context.Context, sb ports.Sandbox, code string, settings domain.Settings) error {
	pkg, info, ok, err := manifest(code, domain.LanguageNode)
	if err != nil || !ok {
		return err
	}

	if err := c.require(settings.NodeInstaller); err != nil {
		return err
	}

	if err := sb.ImportPath(pkg); err != nil {
		return err
	}

	sbm, err := sandbox.NewMtimeSandbox(sb, info.ModTime())
	if err != nil {
		return err
	}

	if err := c.run(ctx, sbm, settings.NodeInstaller+" install --production --silent", settings); err != nil {
		return err
	}

	return scrubManifests(sbm, settings.Placeholder)
}

// scrubManifests replaces the staging root in every staged package.json with
// placeholder and restores the file's modification time.
func scrubManifests(sb ports.Sandbox, placeholder string) error {
	files, err := sb.Files()
	if err != nil {
		return err
	}

	roots := stagingPaths(sb.Root())
	for _, rel := range files {
		if !strings.HasSuffix(rel, "package.json") {
			continue
		}
		if err := scrubFile(filepath.Join(sb.Root(), filepath.FromSlash(rel)), roots, placeholder); err != nil {
			return err
		}
	}
	return nil
}

// stagingPaths returns the forms of root a tool may have recorded, longest first.
func stagingPaths(root string) [][]byte {
	paths := []string{root}
	if resolved, err := filepath.EvalSymlinks(root); err == nil && resolved != root {
		paths = append(paths, resolved)
	}
	slices.SortFunc(paths, func(a, b string) int { return len(b) - len(a) })

	out := make([][]byte, 0, len(paths))
	for _, p := range paths {
		out = append(out, []byte(p))
	}
	return out
}

func scrubFile(path string, roots [][]byte, placeholder string) error {
	info, err := os.Stat(path)
	if err != nil {
		return errors.Join(domain.ErrManifestRewriteFailed, zerr.With(err, "path", path))
	}

	contents, err := os.ReadFile(path) //nolint:gosec // Path is inside the staging root
	if err != nil {
		return errors.Join(domain.ErrManifestRewriteFailed, zerr.With(err, "path", path))
	}

	scrubbed := contents
	for _, root := range roots {
		scrubbed = bytes.ReplaceAll(scrubbed, root, []byte(placeholder))
	}

	if !bytes.Equal(scrubbed, contents) {
		if err := os.WriteFile(path, scrubbed, info.Mode().Perm()); err != nil {
			return errors.Join(domain.ErrManifestRewriteFailed, zerr.With(err, "path", path))
		}
	}

	if err := fs.SetModTime(path, info.ModTime()); err != nil {
		return errors.Join(domain.ErrTimestampFailed, err)
	}
	return nil
}
