package convert

import (
	"context"
	"os"
	"path/filepath"

	"go.uber.org/multierr"
)

// WriteFile replaces the contents of an existing file at path.
//
// Without atomic the file is truncated and rewritten in place, so a failure
// partway through can leave it truncated. With atomic the content goes to a
// temporary sibling that is renamed over path once it is synced.
func WriteFile(ctx context.Context, path string, content []byte, atomic bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if atomic {
		return writeAtomic(path, content, info.Mode().Perm())
	}
	return writeOverwrite(path, content)
}

func writeOverwrite(path string, content []byte) (err error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_TRUNC, 0)
	if err != nil {
		return err
	}
	defer func() {
		err = multierr.Append(err, f.Close())
	}()

	_, err = f.Write(content)
	return err
}

func writeAtomic(path string, content []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	if err := writeAndSync(tmp, content, perm); err != nil {
		return multierr.Append(err, os.Remove(tmpPath))
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return multierr.Append(err, os.Remove(tmpPath))
	}
	// best effort, the rename already happened
	_ = syncDir(dir)
	return nil
}

func writeAndSync(f *os.File, content []byte, perm os.FileMode) error {
	_, err := f.Write(content)
	if err == nil {
		err = f.Chmod(perm)
	}
	if err == nil {
		err = f.Sync()
	}
	return multierr.Append(err, f.Close())
}

func syncDir(dir string) error {
	f, err := os.Open(dir)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.Sync()
}
