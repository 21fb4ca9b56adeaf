package git

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_DelegatesToBackend(t *testing.T) {
	t.Parallel()

	want := []Change{
		{IndexStatus: Added, WorkingStatus: Unmodified, Path: "new.txt"},
		{IndexStatus: Deleted, WorkingStatus: Unmodified, Path: "old.txt"},
	}
	svc := newFakeService(&fakeBackend{
		repoPath:   "repo",
		statusFunc: func() ([]Change, error) { return want, nil },
	})
	got, err := svc.Status()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestStatus_InvocationFailureIsSwallowed(t *testing.T) {
	t.Parallel()

	svc := newFakeService(&fakeBackend{
		repoPath: "repo",
		statusFunc: func() ([]Change, error) {
			return nil, fmt.Errorf("git status: %w: exit status 128", ErrToolInvocation)
		},
	})
	got, err := svc.Status()
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
	assert.True(t, svc.Availability().IsWorking(), "swallowed status failure must not trip the latch")
}

func TestStatus_ParseFailureIsReportedWithoutLatching(t *testing.T) {
	t.Parallel()

	svc := newFakeService(&fakeBackend{
		repoPath: "repo",
		statusFunc: func() ([]Change, error) {
			return nil, fmt.Errorf("git status: %w: %w", ErrToolInvocation, ErrParse)
		},
	})
	_, err := svc.Status()
	require.ErrorIs(t, err, ErrParse)
	assert.True(t, svc.Availability().IsWorking(), "status parse failure must not trip the latch")

	// Later reads still work and the wrapper stays usable.
	_, err = svc.Status()
	require.ErrorIs(t, err, ErrParse)
	assert.True(t, svc.Availability().IsWorking())
}

func TestWorkingAndIndexSets(t *testing.T) {
	t.Parallel()

	changes := []Change{
		{IndexStatus: Modified, WorkingStatus: Unmodified, Path: "staged.txt"},
		{IndexStatus: Unmodified, WorkingStatus: Modified, Path: "edited.txt"},
		{IndexStatus: Modified, WorkingStatus: Modified, Path: "both.txt"},
		{IndexStatus: Untracked, WorkingStatus: Untracked, Path: "new.txt"},
	}

	paths := func(cs []Change) []string {
		var out []string
		for _, c := range cs {
			out = append(out, c.Path)
		}
		return out
	}
	assert.Equal(t, []string{"edited.txt", "both.txt", "new.txt"}, paths(WorkingSet(changes)))
	assert.Equal(t, []string{"staged.txt", "both.txt"}, paths(IndexSet(changes)))
}
