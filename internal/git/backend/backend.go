package backend

// Backend abstracts access to repository data and index mutations.
//
// The default implementation shells out to the git executable through a
// runner.Runner, so tests can replace either layer without touching callers.
type Backend interface {
	RepoPath() string

	ListRefs() ([]Ref, error)
	// SymbolicHead returns the full ref name HEAD points at; ok is false
	// when HEAD is detached.
	SymbolicHead() (fullName string, ok bool, err error)
	ShortRefName(fullName string) (string, error)

	Status() ([]Change, error)
	Diff(path string, wordLevel bool) (string, error)

	Add(path string) error
	Remove(path string) error
	Reset(path string) error

	Version() (string, error)
	ConfigGet(key string) (value string, ok bool, err error)
}
