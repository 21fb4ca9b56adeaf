package git

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireGit(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available in PATH")
	}
}

func runGit(t *testing.T, dir string, args ...string) {
	t.Helper()
	cmd := exec.Command("git", append([]string{"-c", "commit.gpgsign=false", "-c", "tag.gpgsign=false"}, args...)...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, "git %v\n%s", args, out)
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

// createTestRepo returns a repository on branch main with one commit
// tagged v1 holding a.txt, b.txt and c.txt.
func createTestRepo(t *testing.T) string {
	t.Helper()
	requireGit(t)

	dir := t.TempDir()
	runGit(t, dir, "init")
	runGit(t, dir, "symbolic-ref", "HEAD", "refs/heads/main")
	runGit(t, dir, "config", "user.email", "test@example.com")
	runGit(t, dir, "config", "user.name", "Test User")
	runGit(t, dir, "config", "core.autocrlf", "false")
	writeFile(t, dir, "a.txt", "one\n")
	writeFile(t, dir, "b.txt", "two\n")
	writeFile(t, dir, "c.txt", "three\nfour\nfive\n")
	runGit(t, dir, "add", ".")
	runGit(t, dir, "commit", "-m", "Initial commit")
	runGit(t, dir, "tag", "v1")
	return dir
}

func openTestService(t *testing.T, dir string) *Service {
	t.Helper()
	avail := NewAvailability(NewToolLocator("git"), NewRepoHostConfig(dir))
	svc, err := Open(dir, avail)
	require.NoError(t, err)
	return svc
}

func statusByPath(t *testing.T, svc *Service) map[string]Change {
	t.Helper()
	changes, err := svc.Status()
	require.NoError(t, err)
	byPath := make(map[string]Change, len(changes))
	for _, c := range changes {
		byPath[c.Path] = c
	}
	return byPath
}

func assertChange(t *testing.T, byPath map[string]Change, path string, index, working ChangeType) {
	t.Helper()
	c, ok := byPath[path]
	require.True(t, ok, "no status entry for %q in %+v", path, byPath)
	assert.Equal(t, index, c.IndexStatus, "%s index column", path)
	assert.Equal(t, working, c.WorkingStatus, "%s working column", path)
}

func TestIntegration_StatusAndMutations(t *testing.T) {
	t.Parallel()

	dir := createTestRepo(t)
	writeFile(t, dir, "a.txt", "one\nchanged\n")
	runGit(t, dir, "add", "a.txt")
	require.NoError(t, os.Remove(filepath.Join(dir, "b.txt")))
	runGit(t, dir, "mv", "c.txt", "c_new.txt")
	writeFile(t, dir, "it's new.txt", "fresh\n")

	svc := openTestService(t, dir)
	byPath := statusByPath(t, svc)
	require.Len(t, byPath, 5)
	assertChange(t, byPath, "a.txt", Modified, Unmodified)
	assertChange(t, byPath, "b.txt", Unmodified, Deleted)
	assertChange(t, byPath, "c_new.txt", Added, Unmodified)
	assertChange(t, byPath, "c.txt", Deleted, Unmodified)
	assertChange(t, byPath, "it's new.txt", Untracked, Untracked)

	require.NoError(t, svc.StageChange(byPath["b.txt"]))
	require.NoError(t, svc.StagePath("it's new.txt"))
	require.NoError(t, svc.UnstagePath("a.txt"))

	byPath = statusByPath(t, svc)
	assertChange(t, byPath, "a.txt", Unmodified, Modified)
	assertChange(t, byPath, "b.txt", Deleted, Unmodified)
	assertChange(t, byPath, "it's new.txt", Added, Unmodified)

	diff, err := svc.Diff("a.txt", false)
	require.NoError(t, err)
	assert.Contains(t, diff, "+changed")
	words, err := svc.Diff("a.txt", true)
	require.NoError(t, err)
	assert.Contains(t, words, "changed")

	require.Error(t, svc.RemovePath("a.txt"), "rm of a file with unstaged changes must fail")
	assert.True(t, svc.Availability().IsWorking(), "unexpected latch: %v", svc.Availability().FailureCause())
}

func TestIntegration_WorktreeRename(t *testing.T) {
	t.Parallel()

	dir := createTestRepo(t)
	require.NoError(t, os.Rename(filepath.Join(dir, "c.txt"), filepath.Join(dir, "c_moved.txt")))
	runGit(t, dir, "add", "-N", "c_moved.txt")

	svc := openTestService(t, dir)
	byPath := statusByPath(t, svc)
	require.Len(t, byPath, 2)
	assertChange(t, byPath, "c_moved.txt", Unmodified, Added)
	assertChange(t, byPath, "c.txt", Unmodified, Deleted)
	assert.True(t, svc.Availability().IsWorking())
}

func TestIntegration_UnsupportedStatusCodeKeepsWorking(t *testing.T) {
	t.Parallel()
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need extra privileges on windows")
	}

	dir := createTestRepo(t)
	require.NoError(t, os.Remove(filepath.Join(dir, "a.txt")))
	require.NoError(t, os.Symlink("b.txt", filepath.Join(dir, "a.txt")))

	svc := openTestService(t, dir)
	_, err := svc.Status()
	require.ErrorIs(t, err, ErrParse, "typechange is outside the supported status codes")
	assert.True(t, svc.Availability().IsWorking())

	_, err = svc.ListRefs()
	require.NoError(t, err)
	assert.True(t, svc.Availability().IsUsable())
}

func TestIntegration_RefsAndBranch(t *testing.T) {
	t.Parallel()

	dir := createTestRepo(t)
	runGit(t, dir, "branch", "feature/x")
	svc := openTestService(t, dir)

	refs, err := svc.ListRefs()
	require.NoError(t, err)
	index, err := IndexRefsByShortName(refs)
	require.NoError(t, err)
	assert.Equal(t, RefKindBranch, index["main"].Kind())
	assert.Equal(t, RefKindBranch, index["feature/x"].Kind())
	assert.Equal(t, RefKindTag, index["v1"].Kind())
	assert.Equal(t, index["main"].ID(), index["v1"].ID())

	branch, err := svc.CurrentBranch()
	require.NoError(t, err)
	assert.Equal(t, "main", branch)

	runGit(t, dir, "checkout", "--detach")
	branch, err = svc.CurrentBranch()
	require.NoError(t, err)
	assert.Empty(t, branch)
}

func TestIntegration_VersionAndConfig(t *testing.T) {
	t.Parallel()

	dir := createTestRepo(t)
	svc := openTestService(t, dir)

	require.NoError(t, svc.CheckVersion())

	name, ok, err := svc.ConfigGet("user.name")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Test User", name)

	_, ok, err = svc.ConfigGet("gitwrap.never-set")
	require.NoError(t, err)
	assert.False(t, ok)

	line, err := svc.SignOffLine()
	require.NoError(t, err)
	assert.Equal(t, "Signed-off-by: Test User <test@example.com>", line)

	avail := svc.Availability()
	assert.True(t, avail.IsUsable(), "%+v", avail.Snapshot())
	assert.True(t, avail.IsVersioningEnabled())
}

func TestIntegration_ResolveRootFromSubdir(t *testing.T) {
	t.Parallel()

	dir := createTestRepo(t)
	sub := filepath.Join(dir, "nested", "deeper")
	require.NoError(t, os.MkdirAll(sub, 0o755))

	root, err := ResolveRoot(sub)
	require.NoError(t, err)
	want, _ := filepath.EvalSymlinks(dir)
	got, _ := filepath.EvalSymlinks(root)
	assert.Equal(t, want, got)
}

func TestIntegration_NotARepository(t *testing.T) {
	t.Parallel()
	requireGit(t)

	dir := t.TempDir()
	avail := NewAvailability(NewToolLocator("git"), NewRepoHostConfig(dir))
	svc, err := Open(dir, avail)
	require.NoError(t, err)
	assert.False(t, avail.IsVersioningEnabled(), "plain directory must not report versioning")

	_, err = svc.ListRefs()
	require.ErrorIs(t, err, ErrToolInvocation)
	assert.False(t, avail.IsWorking())

	changes, err := svc.Status()
	require.NoError(t, err)
	assert.Empty(t, changes)
}
