// Package diff compares rendered text against golden files in testdata.
package diff

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"oss.terrastruct.com/diff"
)

// TestdataText compares got against path.exp.txt. A missing golden file
// counts as empty. On a mismatch got is written to path.got.txt, or over
// the golden file when $TESTDATA_ACCEPT is set.
func TestdataText(path string, got []byte) error {
	expPath := path + ".exp.txt"
	gotPath := path + ".got.txt"

	exp, err := os.ReadFile(expPath)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	ds, err := diff.Strings(string(exp), string(got))
	if err != nil {
		return err
	}
	if ds == "" {
		err = os.Remove(gotPath)
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}

	err = os.MkdirAll(filepath.Dir(expPath), 0755)
	if err != nil {
		return err
	}
	if os.Getenv("TESTDATA_ACCEPT") != "" {
		return os.WriteFile(expPath, got, 0644)
	}
	err = os.WriteFile(gotPath, got, 0600)
	if err != nil {
		return err
	}
	return fmt.Errorf("diff (rerun with $TESTDATA_ACCEPT=1 to accept):\n%s", ds)
}
