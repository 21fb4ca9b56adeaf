package backend

import "fmt"

// ChangeType is one column of a porcelain status code.
type ChangeType uint8

const (
	Unmodified ChangeType = iota
	Modified
	Added
	Deleted
	Renamed
	Copied
	UpdatedButUnmerged
	Untracked
)

var changeTypeNames = [...]string{
	Unmodified:         "unmodified",
	Modified:           "modified",
	Added:              "added",
	Deleted:            "deleted",
	Renamed:            "renamed",
	Copied:             "copied",
	UpdatedButUnmerged: "unmerged",
	Untracked:          "untracked",
}

func (c ChangeType) String() string {
	if int(c) < len(changeTypeNames) {
		return changeTypeNames[c]
	}
	return fmt.Sprintf("ChangeType(%d)", uint8(c))
}

// MarshalText renders the change type by name in JSON and YAML output.
func (c ChangeType) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// Code returns the porcelain status character for c.
func (c ChangeType) Code() byte {
	switch c {
	case Modified:
		return 'M'
	case Added:
		return 'A'
	case Deleted:
		return 'D'
	case Renamed:
		return 'R'
	case Copied:
		return 'C'
	case UpdatedButUnmerged:
		return 'U'
	case Untracked:
		return '?'
	default:
		return ' '
	}
}

// ChangeTypeFromCode maps a porcelain status character to its ChangeType.
func ChangeTypeFromCode(c byte) (ChangeType, error) {
	switch c {
	case ' ':
		return Unmodified, nil
	case 'M':
		return Modified, nil
	case 'A':
		return Added, nil
	case 'D':
		return Deleted, nil
	case 'R':
		return Renamed, nil
	case 'C':
		return Copied, nil
	case 'U':
		return UpdatedButUnmerged, nil
	case '?':
		return Untracked, nil
	default:
		return Unmodified, fmt.Errorf("%w: invalid change type %q", ErrParse, c)
	}
}

// Change is the status of one path relative to HEAD and the working tree.
type Change struct {
	IndexStatus   ChangeType `json:"index" yaml:"index"`
	WorkingStatus ChangeType `json:"working" yaml:"working"`
	Path          string     `json:"path" yaml:"path"`
}

type RefKind uint8

const (
	RefKindBranch RefKind = iota
	RefKindTrackingBranch
	RefKindTag
	RefKindOther
)

func (k RefKind) String() string {
	switch k {
	case RefKindBranch:
		return "branch"
	case RefKindTrackingBranch:
		return "tracking"
	case RefKindTag:
		return "tag"
	default:
		return "other"
	}
}

func (k RefKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}
