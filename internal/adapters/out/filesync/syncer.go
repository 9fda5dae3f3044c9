// Package filesync pushes a host working tree into a workspace container.
package filesync

import (
	"archive/tar"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"maps"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/bnema/zerowrap"
	"github.com/joho/godotenv"

	"github.com/nexuslab/nexus/internal/boundaries/out"
	"github.com/nexuslab/nexus/internal/domain"
)

// DefaultTargetDir is where the tree lands inside the container.
const DefaultTargetDir = "/workspace"

const envFileName = ".env"

// DefaultIgnorePatterns returns the patterns skipped when none are configured.
func DefaultIgnorePatterns() []string {
	return []string{".git", "node_modules", ".DS_Store", "*.log", ".env.local", ".env.*.local"}
}

// Options configures a Syncer.
type Options struct {
	// Ignore holds doublestar patterns. A pattern without a slash matches a
	// file or directory name at any depth; one with a slash matches the path
	// relative to the tree root. A matched directory is skipped entirely.
	Ignore    []string
	TargetDir string
}

// Syncer implements out.FileSync over the runtime's copy primitive.
type Syncer struct {
	runtime   out.ContainerRuntime
	ignore    []string
	targetDir string
}

// NewSyncer creates a Syncer. Invalid ignore patterns are rejected.
func NewSyncer(runtime out.ContainerRuntime, opts Options) (*Syncer, error) {
	ignore := opts.Ignore
	if ignore == nil {
		ignore = DefaultIgnorePatterns()
	}
	for _, p := range ignore {
		if !doublestar.ValidatePattern(p) {
			return nil, fmt.Errorf("invalid ignore pattern %q", p)
		}
	}
	target := opts.TargetDir
	if target == "" {
		target = DefaultTargetDir
	}
	return &Syncer{
		runtime:   runtime,
		ignore:    ignore,
		targetDir: path.Clean("/" + target),
	}, nil
}

// SyncToContainer archives hostPath into the target directory of the
// container, then writes the merged env files as <target>/.env. An empty or
// missing hostPath skips the tree; explicit env vars are still written.
func (s *Syncer) SyncToContainer(ctx context.Context, hostPath, containerID string, config domain.WorkspaceConfig) error {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:    "adapter",
		zerowrap.FieldAdapter:  "filesync",
		zerowrap.FieldAction:   "SyncToContainer",
		zerowrap.FieldEntityID: containerID,
		zerowrap.FieldPath:     hostPath,
	})

	hasTree, err := s.syncTree(ctx, hostPath, containerID)
	if err != nil {
		return err
	}

	envFiles := config.EnvFiles
	if !hasTree {
		envFiles = nil
	}
	return s.syncEnv(ctx, hostPath, containerID, envFiles, config.Env)
}

// syncTree copies hostPath and reports whether there was a tree to copy.
func (s *Syncer) syncTree(ctx context.Context, hostPath, containerID string) (bool, error) {
	log := zerowrap.FromCtx(ctx)

	if hostPath == "" {
		return false, nil
	}
	info, err := os.Stat(hostPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Debug().Msg("host path does not exist, nothing to sync")
			return false, nil
		}
		return false, log.WrapErr(err, "failed to stat host path")
	}
	if !info.IsDir() {
		return false, fmt.Errorf("host path %s is not a directory", hostPath)
	}

	count := 0
	err = s.copyArchive(ctx, containerID, func(tw *tar.Writer) error {
		n, err := s.writeTree(tw, hostPath)
		count = n
		return err
	})
	if err != nil {
		return false, err
	}
	log.Info().Int(zerowrap.FieldCount, count).Str("target", s.targetDir).Msg("working tree synced")
	return true, nil
}

func (s *Syncer) syncEnv(ctx context.Context, hostPath, containerID string, envFiles []string, explicit map[string]string) error {
	log := zerowrap.FromCtx(ctx)

	env, err := MergeEnv(hostPath, envFiles, explicit)
	if err != nil {
		return log.WrapErr(err, "failed to merge env files")
	}
	if len(env) == 0 {
		return nil
	}

	content, err := godotenv.Marshal(env)
	if err != nil {
		return log.WrapErr(err, "failed to encode env file")
	}
	err = s.copyArchive(ctx, containerID, func(tw *tar.Writer) error {
		return writeFile(tw, s.archiveName(envFileName), []byte(content+"\n"), 0600)
	})
	if err != nil {
		return err
	}

	log.Info().Int(zerowrap.FieldCount, len(env)).Msg("env file synced")
	return nil
}

// copyArchive streams the archive produced by fill into the container root.
// Entries are prefixed with the target directory so it is created when
// missing.
func (s *Syncer) copyArchive(ctx context.Context, containerID string, fill func(tw *tar.Writer) error) error {
	pr, pw := io.Pipe()
	writeErr := make(chan error, 1)
	go func() {
		tw := tar.NewWriter(pw)
		err := s.writeTargetDirs(tw)
		if err == nil {
			err = fill(tw)
		}
		if err == nil {
			err = tw.Close()
		}
		_ = pw.CloseWithError(err)
		writeErr <- err
	}()

	err := s.runtime.CopyToContainer(ctx, containerID, "/", pr)
	// Unblock the writer if the runtime stopped reading early.
	_ = pr.CloseWithError(io.ErrClosedPipe)
	wErr := <-writeErr
	if err != nil {
		return err
	}
	if wErr != nil && !errors.Is(wErr, io.ErrClosedPipe) {
		return fmt.Errorf("failed to archive workspace tree: %w", wErr)
	}
	return nil
}

func (s *Syncer) writeTargetDirs(tw *tar.Writer) error {
	rel := strings.TrimPrefix(s.targetDir, "/")
	if rel == "" {
		return nil
	}
	parts := strings.Split(rel, "/")
	for i := range parts {
		dir := strings.Join(parts[:i+1], "/") + "/"
		if err := tw.WriteHeader(&tar.Header{Typeflag: tar.TypeDir, Name: dir, Mode: 0755}); err != nil {
			return err
		}
	}
	return nil
}

func (s *Syncer) archiveName(rel string) string {
	return path.Join(strings.TrimPrefix(s.targetDir, "/"), filepath.ToSlash(rel))
}

func (s *Syncer) writeTree(tw *tar.Writer, root string) (int, error) {
	count := 0
	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		if rel == "." {
			return nil
		}
		rel = filepath.ToSlash(rel)

		if s.ignored(rel) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return err
		}

		link := ""
		if info.Mode()&fs.ModeSymlink != 0 {
			if link, err = os.Readlink(p); err != nil {
				return err
			}
		}

		hdr, err := tar.FileInfoHeader(info, link)
		if err != nil {
			return err
		}
		hdr.Name = s.archiveName(rel)
		if d.IsDir() {
			hdr.Name += "/"
		}
		if err := tw.WriteHeader(hdr); err != nil {
			return err
		}

		if !info.Mode().IsRegular() {
			return nil
		}
		f, err := os.Open(p) // #nosec G304 -- walking the workspace tree
		if err != nil {
			return err
		}
		_, err = io.Copy(tw, f)
		closeErr := f.Close()
		if err != nil {
			return err
		}
		if closeErr != nil {
			return closeErr
		}
		count++
		return nil
	})
	return count, err
}

func (s *Syncer) ignored(rel string) bool {
	base := path.Base(rel)
	for _, p := range s.ignore {
		if !strings.Contains(p, "/") {
			if ok, _ := doublestar.Match(p, base); ok {
				return true
			}
			continue
		}
		if ok, _ := doublestar.Match(p, rel); ok {
			return true
		}
	}
	return false
}

func writeFile(tw *tar.Writer, name string, data []byte, mode int64) error {
	if err := tw.WriteHeader(&tar.Header{
		Typeflag: tar.TypeReg,
		Name:     name,
		Mode:     mode,
		Size:     int64(len(data)),
	}); err != nil {
		return err
	}
	_, err := tw.Write(data)
	return err
}

// MergeEnv reads envFiles relative to hostPath in order, later files winning,
// then applies explicit, which wins over every file. Missing files are
// skipped.
func MergeEnv(hostPath string, envFiles []string, explicit map[string]string) (map[string]string, error) {
	merged := make(map[string]string)
	for _, name := range envFiles {
		p := filepath.Join(hostPath, name)
		if _, err := os.Stat(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, err
		}
		vars, err := godotenv.Read(p)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", name, err)
		}
		maps.Copy(merged, vars)
	}
	maps.Copy(merged, explicit)
	return merged, nil
}
