package backend

import (
	"fmt"
	"strings"
)

// ParseStatus decodes the output of "git status --porcelain -z".
//
// Records are NUL-terminated and start with two status characters and a
// space; a record missing the space is still accepted. When either column
// is R or C the source path follows in the next record. A rename is reported
// as an addition of the destination plus a deletion of the source in the
// column that carried it; a copy is reported once, for its destination.
func ParseStatus(out string) ([]Change, error) {
	records := strings.Split(out, "\x00")
	changes := make([]Change, 0, len(records))
	for i := 0; i < len(records); i++ {
		record := records[i]
		if record == "" {
			// trailing terminator
			continue
		}
		if len(record) < 3 {
			return nil, fmt.Errorf("%w: malformed status record %q", ErrParse, record)
		}
		indexStatus, err := ChangeTypeFromCode(record[0])
		if err != nil {
			return nil, fmt.Errorf("status record %q: %w", record, err)
		}
		workingStatus, err := ChangeTypeFromCode(record[1])
		if err != nil {
			return nil, fmt.Errorf("status record %q: %w", record, err)
		}
		path := strings.TrimPrefix(record[2:], " ")
		if path == "" {
			return nil, fmt.Errorf("%w: status record %q has no path", ErrParse, record)
		}

		renamed := indexStatus == Renamed || workingStatus == Renamed
		copied := indexStatus == Copied || workingStatus == Copied
		if !renamed && !copied {
			changes = append(changes, Change{IndexStatus: indexStatus, WorkingStatus: workingStatus, Path: path})
			continue
		}
		if i+1 >= len(records) || records[i+1] == "" {
			return nil, fmt.Errorf("%w: status record %q has no source path", ErrParse, record)
		}
		source := records[i+1]
		i++
		if !renamed {
			changes = append(changes, Change{IndexStatus: indexStatus, WorkingStatus: workingStatus, Path: path})
			continue
		}
		added := Change{IndexStatus: indexStatus, WorkingStatus: workingStatus, Path: path}
		deleted := Change{IndexStatus: indexStatus, WorkingStatus: workingStatus, Path: source}
		if indexStatus == Renamed {
			added.IndexStatus, deleted.IndexStatus = Added, Deleted
		}
		if workingStatus == Renamed {
			added.WorkingStatus, deleted.WorkingStatus = Added, Deleted
		}
		changes = append(changes, added, deleted)
	}
	return changes, nil
}
