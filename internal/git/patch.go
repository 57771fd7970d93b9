package git

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"regexp"
)

// MissingPatchError reports a patch file that does not exist.
type MissingPatchError struct {
	Path string
}

func (e *MissingPatchError) Error() string {
	return fmt.Sprintf("patch file does not exist: %s", e.Path)
}

// InvalidPatchError reports a patch whose first line does not carry a commit
// id in git format-patch form.
type InvalidPatchError struct {
	Path string
}

func (e *InvalidPatchError) Error() string {
	return fmt.Sprintf("invalid patch file: %s (first line must be \"From <commit-id> ...\")", e.Path)
}

var commitLineRe = regexp.MustCompile(`^From ([0-9a-f]{40})(?:\s|$)`)

// CommitID extracts the 40-hex-character commit id from the first line of a
// git format-patch file.
func CommitID(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", &MissingPatchError{Path: path}
		}
		return "", err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	if !scanner.Scan() {
		return "", &InvalidPatchError{Path: path}
	}
	match := commitLineRe.FindStringSubmatch(scanner.Text())
	if match == nil {
		return "", &InvalidPatchError{Path: path}
	}
	return match[1], nil
}

// RevisionRange derives the diff range covered by a patch file: the patch's
// commit and its first parent. A multi-commit or merge-commit patch yields an
// incomplete range.
func RevisionRange(path string) (start, end string, err error) {
	id, err := CommitID(path)
	if err != nil {
		return "", "", err
	}
	return id + "^", id, nil
}
