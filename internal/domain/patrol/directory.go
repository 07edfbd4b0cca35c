package patrol

import (
	"patrol/internal/domain/entity"
)

// directory resolves display names for ids found in the scan log.
type directory struct {
	guards      map[entity.GuardID]*entity.Guard
	checkpoints map[entity.CheckpointID]*entity.Checkpoint
}

func newDirectory(guards []*entity.Guard, checkpoints []*entity.Checkpoint) directory {
	d := directory{
		guards:      make(map[entity.GuardID]*entity.Guard, len(guards)),
		checkpoints: make(map[entity.CheckpointID]*entity.Checkpoint, len(checkpoints)),
	}
	for _, g := range guards {
		if g != nil {
			d.guards[g.ID] = g
		}
	}
	for _, c := range checkpoints {
		if c != nil {
			d.checkpoints[c.ID] = c
		}
	}

	return d
}

func (d directory) guardName(id entity.GuardID) string {
	if g, ok := d.guards[id]; ok && g.Name != "" {
		return g.Name
	}

	return "Guard " + id.String()
}

func (d directory) checkpointName(id entity.CheckpointID) string {
	if c, ok := d.checkpoints[id]; ok && c.Name != "" {
		return c.Name
	}

	return id.String()
}
