package constraint

import "fmt"

// levelBuilder clusters the constraints of a system into levels of
// independent constraints that can be solved in parallel.
type levelBuilder struct {
	system *R1CS
	known  []bool // wire assigned by the caller

	wireLevels map[int]int // level at which a computed wire is solved

	// Levels[l] lists the ids of the constraints solved at level l.
	Levels [][]int
	// outputs[cID] is the wire computed by the constraint, -1 for plain checks.
	outputs []int
}

func newLevelBuilder(system *R1CS, known []bool) *levelBuilder {
	return &levelBuilder{
		system:     system,
		known:      known,
		wireLevels: make(map[int]int),
		outputs:    make([]int, system.GetNbConstraints()),
	}
}

// build processes the constraints in order.
//
// We know that at each constraint, we will have at most one unsolved wire (a
// constraint may have no unsolved wire in which case it is a plain check that
// the constraint holds).
//
// We build a graph of dependency; we say that a wire is solved at a level l:
//
//	l = max(level_of_dependencies(wire)) + 1
func (lb *levelBuilder) build() error {
	for cID := range lb.system.Constraints {
		if err := lb.updateLevel(cID, &lb.system.Constraints[cID]); err != nil {
			return err
		}
	}
	return nil
}

func (lb *levelBuilder) updateLevel(cID int, c *R1C) error {
	iterator := c.WireIterator()
	maxLevel, output := -1, -1

	for wID := iterator(); wID != -1; wID = iterator() {
		level, solved := lb.processWire(wID)
		if solved {
			if level > maxLevel {
				maxLevel = level
			}
			continue
		}
		// it's the missing wire
		if output != -1 && output != wID {
			return fmt.Errorf("%w: constraint #%d has unknown wires %d and %d", ErrUnsolvable, cID, output, wID)
		}
		output = wID
	}

	lb.outputs[cID] = output
	if output == -1 {
		// plain check, verified once the witness is complete
		return nil
	}
	lb.wireLevels[output] = maxLevel + 1
	if len(lb.Levels) <= (maxLevel + 1) {
		lb.Levels = append(lb.Levels, nil)
	}
	lb.Levels[maxLevel+1] = append(lb.Levels[maxLevel+1], cID)
	return nil
}

// processWire returns the level at which wireID is known; inputs are known
// at level -1.
func (lb *levelBuilder) processWire(wireID int) (level int, solved bool) {
	if lb.known[wireID] {
		// ignore inputs. They are always known
		return -1, true
	}
	if level, ok := lb.wireLevels[wireID]; ok {
		return level, true
	}
	return -1, false
}
