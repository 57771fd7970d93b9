package git

import (
	"fmt"
	"os/exec"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/sourcegraph/go-diff/diff"
)

// ResolutionError reports a revision range the version-control tooling could
// not resolve. Output carries git's combined output for the error message.
type ResolutionError struct {
	Range  string
	Output string
	Err    error
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("resolving %s: %s\n%s", e.Range, e.Err, e.Output)
}

func (e *ResolutionError) Unwrap() error {
	return e.Err
}

// DiffContext names a tree-to-tree diff: the bounding revisions, the
// repository directory, and glob patterns for paths to leave out.
type DiffContext struct {
	Start  string
	End    string
	Dir    string
	Ignore []string
}

// seam for tests
var runGitDiff = func(ctx DiffContext) ([]byte, error) {
	cmd := exec.Command("git", "diff", "-U0", ctx.Start, ctx.End)
	cmd.Dir = ctx.Dir
	return cmd.CombinedOutput()
}

// ChangedFiles returns the path of every entry changed between the two
// revisions. The old-side path is reported; entries with no old side
// (additions) fall back to the new-side path.
func ChangedFiles(ctx DiffContext) ([]string, error) {
	out, err := runGitDiff(ctx)
	if err != nil {
		return nil, &ResolutionError{
			Range:  fmt.Sprintf("%s..%s", ctx.Start, ctx.End),
			Output: string(out),
			Err:    err,
		}
	}
	return filesFromDiff(out, ctx.Ignore)
}

func filesFromDiff(raw []byte, ignore []string) ([]string, error) {
	fileDiffs, err := diff.ParseMultiFileDiff(raw)
	if err != nil {
		return nil, err
	}
	files := make([]string, 0, len(fileDiffs))
	for _, d := range fileDiffs {
		path := oldSidePath(d)
		if path == "" || ignored(path, ignore) {
			continue
		}
		files = append(files, path)
	}
	return files, nil
}

// oldSidePath keeps the historical semantics: the old-side name wins even for
// renames, and only entries with no old side at all use the new-side name.
func oldSidePath(d *diff.FileDiff) string {
	name := d.OrigName
	if name == "" || name == "/dev/null" {
		name = d.NewName
	}
	if name == "" || name == "/dev/null" {
		return ""
	}
	// Strip the a/ or b/ prefix git puts on both sides.
	if len(name) > 2 && (name[:2] == "a/" || name[:2] == "b/") {
		name = name[2:]
	}
	return name
}

func ignored(path string, patterns []string) bool {
	for _, pattern := range patterns {
		if ok, err := doublestar.Match(pattern, path); err == nil && ok {
			return true
		}
	}
	return false
}
