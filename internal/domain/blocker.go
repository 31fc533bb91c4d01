package domain

import "time"

// ProjectBlocker is a condition preventing one or more phases from
// starting. Stored blockers persist until explicitly resolved;
// dependency and material blockers are also synthesized transiently by
// the resolver and never persisted.
type ProjectBlocker struct {
	ID             string
	ProjectID      string
	Type           BlockerType
	Description    string
	BlockingPhases []Phase
	Priority       BlockerPriority
	CreatedAt      time.Time
	ResolvedAt     *time.Time
	ResolvedBy     string
}

// Resolved reports whether the blocker has been cleared.
func (b *ProjectBlocker) Resolved() bool {
	return b.ResolvedAt != nil
}

// Blocks reports whether the blocker targets the given phase.
func (b *ProjectBlocker) Blocks(p Phase) bool {
	for _, bp := range b.BlockingPhases {
		if bp == p {
			return true
		}
	}
	return false
}

// BlockerKey identifies a blocker by what it blocks rather than by its
// string id. Synthetic ids such as "dep-prep" repeat across projects,
// so collections that mix projects must key on this instead.
type BlockerKey struct {
	ProjectID string
	Phase     Phase
	Kind      BlockerType
}

// KeyFor returns the blocker's composite key in the context of the
// phase being evaluated.
func (b *ProjectBlocker) KeyFor(phase Phase) BlockerKey {
	return BlockerKey{ProjectID: b.ProjectID, Phase: phase, Kind: b.Type}
}
