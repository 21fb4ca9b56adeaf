package git

import (
	"errors"

	gitbackend "github.com/thiagokokada/gitwrap/internal/git/backend"
)

type fakeBackend struct {
	repoPath string

	listRefsFunc     func() ([]Ref, error)
	symbolicHeadFunc func() (string, bool, error)
	shortRefNameFunc func(fullName string) (string, error)
	statusFunc       func() ([]Change, error)
	diffFunc         func(path string, wordLevel bool) (string, error)
	mutateFunc       func(op, path string) error
	versionFunc      func() (string, error)
	configGetFunc    func(key string) (string, bool, error)

	mutations []string
}

var _ gitbackend.Backend = (*fakeBackend)(nil)

func (f *fakeBackend) RepoPath() string { return f.repoPath }

func (f *fakeBackend) ListRefs() ([]Ref, error) {
	if f.listRefsFunc != nil {
		return f.listRefsFunc()
	}
	return nil, errors.New("unexpected ListRefs call")
}

func (f *fakeBackend) SymbolicHead() (string, bool, error) {
	if f.symbolicHeadFunc != nil {
		return f.symbolicHeadFunc()
	}
	return "", false, errors.New("unexpected SymbolicHead call")
}

func (f *fakeBackend) ShortRefName(fullName string) (string, error) {
	if f.shortRefNameFunc != nil {
		return f.shortRefNameFunc(fullName)
	}
	return "", errors.New("unexpected ShortRefName call")
}

func (f *fakeBackend) Status() ([]Change, error) {
	if f.statusFunc != nil {
		return f.statusFunc()
	}
	return nil, errors.New("unexpected Status call")
}

func (f *fakeBackend) Diff(path string, wordLevel bool) (string, error) {
	if f.diffFunc != nil {
		return f.diffFunc(path, wordLevel)
	}
	return "", errors.New("unexpected Diff call")
}

func (f *fakeBackend) Add(path string) error    { return f.mutate("add", path) }
func (f *fakeBackend) Remove(path string) error { return f.mutate("rm", path) }
func (f *fakeBackend) Reset(path string) error  { return f.mutate("reset", path) }

func (f *fakeBackend) mutate(op, path string) error {
	f.mutations = append(f.mutations, op+" "+path)
	if f.mutateFunc != nil {
		return f.mutateFunc(op, path)
	}
	return nil
}

func (f *fakeBackend) Version() (string, error) {
	if f.versionFunc != nil {
		return f.versionFunc()
	}
	return "", errors.New("unexpected Version call")
}

func (f *fakeBackend) ConfigGet(key string) (string, bool, error) {
	if f.configGetFunc != nil {
		return f.configGetFunc(key)
	}
	return "", false, errors.New("unexpected ConfigGet call")
}

func newFakeService(b *fakeBackend) *Service {
	return NewWithBackend(b, NewAvailability(nil, nil))
}

func newTestRef(full, short string) Ref {
	return gitbackend.NewRef(full, short, "1111111111111111111111111111111111111111", "")
}
