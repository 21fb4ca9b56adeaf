package backend

import (
	"fmt"
	"strings"
)

// forEachRefFormat yields one record per ref: full name, unambiguous short
// name, object id and upstream short name, separated by tabs.
const forEachRefFormat = "--format=%(refname)%09%(refname:short)%09%(objectname)%09%(upstream:short)"

// Ref is a named pointer into history. The zero value is not useful; refs
// come from NewRef or a listing and are never modified afterwards.
type Ref struct {
	fullName  string
	shortName string
	id        string
	upstream  string
	kind      RefKind
}

// NewRef builds a Ref and classifies it from its full name. An empty upstream
// means the ref tracks nothing.
func NewRef(fullName, shortName, id, upstream string) Ref {
	return Ref{
		fullName:  fullName,
		shortName: shortName,
		id:        id,
		upstream:  upstream,
		kind:      ClassifyRef(fullName),
	}
}

// ClassifyRef derives the kind of a ref from its fully-qualified name.
func ClassifyRef(fullName string) RefKind {
	switch {
	case strings.HasPrefix(fullName, "refs/heads/"):
		return RefKindBranch
	case strings.HasPrefix(fullName, "refs/remotes/"):
		return RefKindTrackingBranch
	case strings.HasPrefix(fullName, "refs/tags/"):
		return RefKindTag
	default:
		return RefKindOther
	}
}

func (r Ref) FullName() string  { return r.fullName }
func (r Ref) ShortName() string { return r.shortName }
func (r Ref) ID() string        { return r.id }
func (r Ref) Kind() RefKind     { return r.kind }

// Upstream returns the short name of the tracked ref, if any.
func (r Ref) Upstream() (string, bool) {
	return r.upstream, r.upstream != ""
}

func (r Ref) String() string {
	return r.fullName
}

func parseForEachRef(out string) ([]Ref, error) {
	var refs []Ref
	for rawLine := range strings.SplitSeq(out, "\n") {
		line := strings.TrimRight(rawLine, "\r")
		if line == "" {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) != 4 {
			return nil, fmt.Errorf("%w: for-each-ref record has %d fields: %q", ErrParse, len(fields), rawLine)
		}
		if fields[0] == "" || fields[1] == "" {
			return nil, fmt.Errorf("%w: for-each-ref record without name: %q", ErrParse, rawLine)
		}
		refs = append(refs, NewRef(fields[0], fields[1], fields[2], fields[3]))
	}
	return refs, nil
}

// IndexRefsByShortName maps short names to refs. Git guarantees short names
// are unambiguous within one listing, so a duplicate is reported as a
// violation of that contract.
func IndexRefsByShortName(refs []Ref) (map[string]Ref, error) {
	index := make(map[string]Ref, len(refs))
	for _, ref := range refs {
		if prev, ok := index[ref.shortName]; ok {
			return nil, fmt.Errorf("%w: short name %q is shared by %s and %s", ErrParse, ref.shortName, prev.fullName, ref.fullName)
		}
		index[ref.shortName] = ref
	}
	return index, nil
}
