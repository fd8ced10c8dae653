package combat

import "fmt"

// Side identifies one of the two groups in a battle.
type Side int8

const (
	Side1 Side = 1
	Side2 Side = 2
)

// Opponent returns the other side.
func (s Side) Opponent() Side {
	if s == Side1 {
		return Side2
	}
	return Side1
}

func (s Side) String() string {
	return fmt.Sprintf("group %d", int8(s))
}

// Handle is a stable reference to a combatant: its side and its slot in the
// group. Groups are never reordered during a battle, so a handle stays valid
// for the whole battle.
type Handle struct {
	Side  Side
	Index int
}

func (h Handle) String() string {
	return fmt.Sprintf("%d:%d", int8(h.Side), h.Index)
}

// Outcome is the state of a round.
type Outcome int8

const (
	OutcomeInProgress Outcome = iota
	OutcomeSide1Won
	OutcomeSide2Won
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSide1Won:
		return "group 1 won"
	case OutcomeSide2Won:
		return "group 2 won"
	default:
		return "in progress"
	}
}

// winOutcome returns the terminal outcome crediting side.
func winOutcome(side Side) Outcome {
	if side == Side1 {
		return OutcomeSide1Won
	}
	return OutcomeSide2Won
}

// EventKind classifies combat events.
type EventKind int8

const (
	EventFocus    EventKind = iota // attacker → intended target, emitted at round start
	EventAttack                    // basic attack landed
	EventSpell                     // spell cast landed
	EventDeath                     // defender reached 0 health
	EventRoundEnd                  // round finished, Winner set
)

func (k EventKind) String() string {
	switch k {
	case EventFocus:
		return "focus"
	case EventAttack:
		return "attack"
	case EventSpell:
		return "spell"
	case EventDeath:
		return "death"
	case EventRoundEnd:
		return "round_end"
	}
	return fmt.Sprintf("EventKind(%d)", int8(k))
}

// Event is one structured combat record. Rendering is left to observers.
type Event struct {
	Round    int
	Kind     EventKind
	Attacker Handle
	Defender Handle

	AttackerName string
	DefenderName string
	Spell        string // EventSpell only

	Raw            int32 // damage before armor
	Amount         int32 // damage actually taken
	DefenderHealth int32

	Winner Side // EventRoundEnd only
}

func (e Event) String() string {
	switch e.Kind {
	case EventFocus:
		return fmt.Sprintf("round %d: %s focuses on %s", e.Round, e.AttackerName, e.DefenderName)
	case EventAttack:
		return fmt.Sprintf("round %d: %s attacks %s for %d (%d taken), health now %d",
			e.Round, e.AttackerName, e.DefenderName, e.Raw, e.Amount, e.DefenderHealth)
	case EventSpell:
		return fmt.Sprintf("round %d: %s casts %s on %s for %d (%d taken), health now %d",
			e.Round, e.AttackerName, e.Spell, e.DefenderName, e.Raw, e.Amount, e.DefenderHealth)
	case EventDeath:
		return fmt.Sprintf("round %d: %s dies", e.Round, e.DefenderName)
	case EventRoundEnd:
		return fmt.Sprintf("round %d: %s won", e.Round, e.Winner)
	}
	return fmt.Sprintf("round %d: %s", e.Round, e.Kind)
}
