package git

import gitbackend "github.com/thiagokokada/gitwrap/internal/git/backend"

type (
	Change     = gitbackend.Change
	ChangeType = gitbackend.ChangeType
	Ref        = gitbackend.Ref
	RefKind    = gitbackend.RefKind
)

const (
	Unmodified         = gitbackend.Unmodified
	Modified           = gitbackend.Modified
	Added              = gitbackend.Added
	Deleted            = gitbackend.Deleted
	Renamed            = gitbackend.Renamed
	Copied             = gitbackend.Copied
	UpdatedButUnmerged = gitbackend.UpdatedButUnmerged
	Untracked          = gitbackend.Untracked
)

const (
	RefKindBranch         = gitbackend.RefKindBranch
	RefKindTrackingBranch = gitbackend.RefKindTrackingBranch
	RefKindTag            = gitbackend.RefKindTag
	RefKindOther          = gitbackend.RefKindOther
)

var (
	ErrToolNotFound     = gitbackend.ErrToolNotFound
	ErrToolInvocation   = gitbackend.ErrToolInvocation
	ErrUnsupportedInput = gitbackend.ErrUnsupportedInput
	ErrParse            = gitbackend.ErrParse
)

// IndexRefsByShortName maps short names to refs and reports duplicates.
func IndexRefsByShortName(refs []Ref) (map[string]Ref, error) {
	return gitbackend.IndexRefsByShortName(refs)
}
