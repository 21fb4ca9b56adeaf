package git

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMutations_Dispatch(t *testing.T) {
	t.Parallel()

	backend := &fakeBackend{repoPath: "repo"}
	svc := newFakeService(backend)

	require.NoError(t, svc.StagePath("a b.txt"))
	require.NoError(t, svc.UnstagePath("it's.txt"))
	require.NoError(t, svc.RemovePath("gone.txt"))
	require.NoError(t, svc.StageChange(Change{IndexStatus: Unmodified, WorkingStatus: Deleted, Path: "deleted.txt"}))
	require.NoError(t, svc.StageChange(Change{IndexStatus: Untracked, WorkingStatus: Untracked, Path: "new.txt"}))
	require.NoError(t, svc.UnstageChange(Change{IndexStatus: Added, WorkingStatus: Unmodified, Path: "added.txt"}))

	assert.Equal(t, []string{
		"add a b.txt",
		"reset it's.txt",
		"rm gone.txt",
		"rm deleted.txt",
		"add new.txt",
		"reset added.txt",
	}, backend.mutations)
}
