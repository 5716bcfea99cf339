package domain

import "fmt"

type WorkspaceStatus int

const (
	WorkspaceSwitched WorkspaceStatus = iota
	WorkspaceUnchanged
	WorkspaceFailed
)

func (s WorkspaceStatus) String() string {
	switch s {
	case WorkspaceSwitched:
		return "switched"
	case WorkspaceUnchanged:
		return "unchanged"
	case WorkspaceFailed:
		return "failed"
	default:
		return fmt.Sprintf("WorkspaceStatus(%d)", int(s))
	}
}

// WorkspaceOutcome records what a workspace switch did. A failed switch is
// recorded here instead of being returned as an error; Err is only set when
// Status is WorkspaceFailed.
type WorkspaceOutcome struct {
	Workspace int
	Status    WorkspaceStatus
	Err       error
}

// Ok reports whether the requested workspace is now active as far as we know.
func (o WorkspaceOutcome) Ok() bool {
	return o.Status != WorkspaceFailed
}
