// internal/defs/monsters.go
package defs

import "fmt"

// MonsterKind identifies a monster type from the wave config.
type MonsterKind string

const (
	Gremlin MonsterKind = "gremlin"
	Worm    MonsterKind = "worm"
	Beetle  MonsterKind = "beetle"
	Moag    MonsterKind = "moag"
)

// MonsterBehavior is the small record that replaces a per-type class.
type MonsterBehavior struct {
	Kind MonsterKind
	// Swarm monsters release SwarmChild monsters when their death animation ends.
	Swarm      bool
	SwarmChild MonsterKind
	// Faces marks monsters whose sprite follows the movement direction.
	Faces bool
}

// MonsterLibrary maps every kind to its behaviour.
var MonsterLibrary = map[MonsterKind]MonsterBehavior{
	Gremlin: {Kind: Gremlin},
	Worm:    {Kind: Worm},
	Beetle:  {Kind: Beetle, Faces: true},
	Moag:    {Kind: Moag, Swarm: true, SwarmChild: Gremlin},
}

// LookupMonster returns the behaviour for a config type name.
func LookupMonster(name string) (MonsterBehavior, error) {
	b, ok := MonsterLibrary[MonsterKind(name)]
	if !ok {
		return MonsterBehavior{}, fmt.Errorf("unknown monster type %q", name)
	}
	return b, nil
}

// MonsterSpec holds the stat block a monster is constructed from.
type MonsterSpec struct {
	Behavior    MonsterBehavior
	HP          float64
	Speed       float64
	Armor       float64
	ManaOnDeath float64
	// SwarmCount is the number of children a swarm monster releases.
	SwarmCount int
}
