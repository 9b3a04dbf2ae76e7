// Package interaction tracks what the player can act on, what the player is
// carrying, and how many keys the player has collected.
//
// The controller is engine-agnostic: proximity events, the interact edge and
// the per-frame tick are explicit method calls, so a test harness can drive
// it frame by frame.
package interaction

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/younwookim/keeper/internal/domain/entity"
)

var (
	// ErrUnknownObject is returned when a tracked ID no longer resolves to an object
	ErrUnknownObject = errors.New("interaction: unknown object")
	// ErrMissingComponent is returned when a tagged object lacks the component its tag implies
	ErrMissingComponent = errors.New("interaction: missing component")
)

// Policy selects how overlapping interactables are tracked
type Policy int

const (
	// PolicyCandidateStack keeps every overlapping candidate in entry order.
	// The most recently entered one is active; leaving it falls back to the previous one.
	PolicyCandidateStack Policy = iota
	// PolicySingleSlot keeps one handle. A later entry replaces it, and an
	// earlier still-overlapping candidate is forgotten once the later one leaves.
	PolicySingleSlot
)

// String returns the config name of the policy
func (p Policy) String() string {
	switch p {
	case PolicyCandidateStack:
		return "stack"
	case PolicySingleSlot:
		return "single"
	default:
		return "unknown"
	}
}

// ParsePolicy converts a config name to a Policy
func ParsePolicy(name string) (Policy, error) {
	switch name {
	case "", "stack":
		return PolicyCandidateStack, nil
	case "single":
		return PolicySingleSlot, nil
	default:
		return 0, fmt.Errorf("unknown interaction policy %q", name)
	}
}

// Outcome describes what an interact press did
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomePickedUp
	OutcomeDropped
	OutcomeLeverToggled
	OutcomeHintShown
)

// String returns a readable outcome name
func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "None"
	case OutcomePickedUp:
		return "PickedUp"
	case OutcomeDropped:
		return "Dropped"
	case OutcomeLeverToggled:
		return "LeverToggled"
	case OutcomeHintShown:
		return "HintShown"
	default:
		return "Unknown"
	}
}

type candidate struct {
	id   entity.ObjectID
	kind entity.Kind
}

// Controller is the interaction/possession state machine
type Controller struct {
	holder  Holder
	objects Objects
	sounds  Sounds
	grid    Grid
	door    DoorOpener

	policy       Policy
	pickupOffset float64
	log          logrus.FieldLogger

	candidates []candidate // oldest first
	held       entity.ObjectID
	heldKind   entity.Kind
	keys       int
}

// Option configures a Controller
type Option func(*Controller)

// WithPolicy sets the candidate tracking policy
func WithPolicy(p Policy) Option {
	return func(c *Controller) { c.policy = p }
}

// WithPickupOffset sets how far above the holder a carried item floats (pixels)
func WithPickupOffset(offset float64) Option {
	return func(c *Controller) { c.pickupOffset = offset }
}

// WithLogger sets the logger used for missing-component warnings
func WithLogger(log logrus.FieldLogger) Option {
	return func(c *Controller) { c.log = log }
}

// New creates a controller wired to its collaborators
func New(holder Holder, objects Objects, sounds Sounds, grid Grid, door DoorOpener, opts ...Option) *Controller {
	c := &Controller{
		holder:  holder,
		objects: objects,
		sounds:  sounds,
		grid:    grid,
		door:    door,
		policy:  PolicyCandidateStack,
		log:     logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Interactable returns the active interactable, or 0 if none
func (c *Controller) Interactable() entity.ObjectID {
	if len(c.candidates) == 0 {
		return 0
	}
	return c.candidates[len(c.candidates)-1].id
}

// Held returns the carried object, or 0 if nothing is carried
func (c *Controller) Held() entity.ObjectID {
	return c.held
}

// Keys returns the number of keys collected so far
func (c *Controller) Keys() int {
	return c.keys
}

// Policy returns the tracking policy in use
func (c *Controller) Policy() Policy {
	return c.policy
}

// Reset clears all tracked state, including the key counter
func (c *Controller) Reset() {
	c.candidates = c.candidates[:0]
	c.held = 0
	c.heldKind = entity.KindNone
	c.keys = 0
}

// OnProximityEnter records an object whose trigger volume the player entered
func (c *Controller) OnProximityEnter(id entity.ObjectID, kind entity.Kind) {
	if id == 0 || !kind.Interactable() {
		return
	}
	if c.policy == PolicySingleSlot {
		c.candidates = append(c.candidates[:0], candidate{id, kind})
		return
	}
	c.remove(id)
	c.candidates = append(c.candidates, candidate{id, kind})
}

// OnProximityExit forgets an object whose trigger volume the player left
func (c *Controller) OnProximityExit(id entity.ObjectID, kind entity.Kind) {
	if id == 0 || !kind.Interactable() {
		return
	}
	if c.policy == PolicySingleSlot {
		if c.Interactable() == id {
			c.candidates = c.candidates[:0]
		}
		return
	}
	c.remove(id)
}

// OnInteractPressed handles one just-pressed edge of the interact key.
// With nothing carried it acts on the active interactable; while carrying it drops the item.
// Pressing with nothing nearby and nothing carried is a no-op.
func (c *Controller) OnInteractPressed() (Outcome, error) {
	if c.held != 0 {
		return c.drop()
	}
	if len(c.candidates) == 0 {
		return OutcomeNone, nil
	}
	return c.interact(c.candidates[len(c.candidates)-1])
}

// OnChestInteract opens a chest the player is overlapping and, when it yields keys,
// asks the door whether the new total is enough. Returns the keys gained.
func (c *Controller) OnChestInteract(id entity.ObjectID) (int, error) {
	chest, ok := c.objects.Chest(id)
	if !ok {
		return 0, c.missing(id, entity.KindChest, "chest")
	}
	gained := chest.OpenChest()
	if gained <= 0 {
		return 0, nil
	}
	c.keys += gained
	if c.door != nil {
		open := c.door.OpenDoor(c.keys)
		c.log.WithFields(logrus.Fields{"keys": c.keys, "open": open}).Debug("door checked")
	}
	return gained, nil
}

// Tick keeps a carried item floating above the holder. Call once per frame.
func (c *Controller) Tick() {
	if c.held == 0 {
		return
	}
	obj, ok := c.objects.Object(c.held)
	if !ok {
		c.log.WithField("object", c.held).Warn("carried object vanished")
		c.held = 0
		c.heldKind = entity.KindNone
		return
	}
	pos := c.holder.Position()
	obj.Pos = entity.Vec2{X: pos.X, Y: pos.Y - c.pickupOffset}
}

func (c *Controller) interact(cand candidate) (Outcome, error) {
	switch cand.kind {
	case entity.KindPickUp:
		obj, ok := c.objects.Object(cand.id)
		if !ok {
			c.remove(cand.id)
			return OutcomeNone, c.unknown(cand.id, cand.kind)
		}
		obj.ColliderEnabled = false
		c.held = cand.id
		c.heldKind = cand.kind
		c.remove(cand.id)
		c.sounds.PickupSound()
		return OutcomePickedUp, nil
	case entity.KindLever:
		lever, ok := c.objects.Lever(cand.id)
		if !ok {
			return OutcomeNone, c.missing(cand.id, cand.kind, "lever")
		}
		lever.Toggle()
		return OutcomeLeverToggled, nil
	case entity.KindHint:
		hint, ok := c.objects.Hint(cand.id)
		if !ok {
			return OutcomeNone, c.missing(cand.id, cand.kind, "hint")
		}
		hint.Interact()
		return OutcomeHintShown, nil
	}
	return OutcomeNone, nil
}

func (c *Controller) drop() (Outcome, error) {
	id, kind := c.held, c.heldKind
	c.held = 0
	c.heldKind = entity.KindNone

	obj, ok := c.objects.Object(id)
	if !ok {
		return OutcomeNone, c.unknown(id, kind)
	}
	if kind == entity.KindPickUp {
		c.sounds.DropSound()
	}
	obj.Pos = c.grid.SnapToGridCenter(c.holder.Position())
	obj.ColliderEnabled = true
	return OutcomeDropped, nil
}

func (c *Controller) remove(id entity.ObjectID) {
	for i, cand := range c.candidates {
		if cand.id == id {
			c.candidates = append(c.candidates[:i], c.candidates[i+1:]...)
			return
		}
	}
}

func (c *Controller) unknown(id entity.ObjectID, kind entity.Kind) error {
	c.log.WithFields(logrus.Fields{"object": id, "kind": kind}).Warn("object not found")
	return fmt.Errorf("%w: %d (%s)", ErrUnknownObject, id, kind)
}

func (c *Controller) missing(id entity.ObjectID, kind entity.Kind, component string) error {
	c.log.WithFields(logrus.Fields{"object": id, "kind": kind}).Warnf("%s component missing", component)
	return fmt.Errorf("%w: %s on object %d", ErrMissingComponent, component, id)
}
