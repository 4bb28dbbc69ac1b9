package sim

const (
	maxBufferSize     = 10
	inputExpiryFrames = 60 // 1 second at 60fps
)

// Action is a discrete input command.
type Action uint8

const (
	ActionMoveForward Action = iota
	ActionMoveBack
	ActionMoveLeft
	ActionMoveRight
	ActionLightAttack
	ActionHeavyAttack
	ActionSpecial
	ActionBlock
	ActionDash
	ActionMidKick
	ActionLowKick
	ActionAerial
)

// InputState is the per-frame held state of one player's controls.
type InputState struct {
	MoveForward bool
	MoveBack    bool
	MoveLeft    bool
	MoveRight   bool
	LightAttack bool
	HeavyAttack bool
	Special     bool
	Block       bool
	Dash        bool
	MidKick     bool
	LowKick     bool
	Aerial      bool
}

// HasMovement reports whether any movement direction is held.
func (s *InputState) HasMovement() bool {
	return s.MoveForward || s.MoveBack || s.MoveLeft || s.MoveRight
}

// Combo is a recognized input sequence.
type Combo uint8

const (
	ComboNone     Combo = iota
	ComboThreeHit       // light x3
	ComboSuper          // light, heavy, special
)

type inputEvent struct {
	action Action
	frame  uint32
}

// Buffer records recent attack inputs for combo detection. Movement and
// defensive inputs are not buffered.
type Buffer struct {
	events       []inputEvent
	currentFrame uint32
}

// NewBuffer returns an empty input buffer.
func NewBuffer() Buffer {
	return Buffer{}
}

// SetFrame tells the buffer the current game frame, used for expiry.
func (b *Buffer) SetFrame(frame uint32) {
	b.currentFrame = frame
}

// Push records an attack input. Other actions are ignored.
func (b *Buffer) Push(action Action) {
	switch action {
	case ActionLightAttack, ActionHeavyAttack, ActionSpecial:
	default:
		return
	}
	b.events = append(b.events, inputEvent{action: action, frame: b.currentFrame})
	if len(b.events) > maxBufferSize {
		b.events = b.events[1:]
	}
}

// ExpireOld drops inputs older than the expiry window.
func (b *Buffer) ExpireOld() {
	i := 0
	for i < len(b.events) && b.age(b.events[i].frame) > inputExpiryFrames {
		i++
	}
	if i > 0 {
		b.events = b.events[i:]
	}
}

func (b *Buffer) age(frame uint32) uint32 {
	if frame > b.currentFrame {
		return 0
	}
	return b.currentFrame - frame
}

// DetectCombo inspects the last three unexpired inputs and returns the
// highest-priority combo they spell, or ComboNone.
func (b *Buffer) DetectCombo() Combo {
	valid := b.events[:0:0]
	for _, e := range b.events {
		if b.age(e.frame) <= inputExpiryFrames {
			valid = append(valid, e)
		}
	}
	if len(valid) < 3 {
		return ComboNone
	}

	last3 := valid[len(valid)-3:]

	if last3[0].action == ActionLightAttack &&
		last3[1].action == ActionHeavyAttack &&
		last3[2].action == ActionSpecial {
		return ComboSuper
	}

	if last3[0].action == ActionLightAttack &&
		last3[1].action == ActionLightAttack &&
		last3[2].action == ActionLightAttack {
		return ComboThreeHit
	}

	return ComboNone
}

// Clear empties the buffer, e.g. after a combo is consumed.
func (b *Buffer) Clear() {
	b.events = b.events[:0]
}

// Len returns the number of buffered inputs.
func (b *Buffer) Len() int {
	return len(b.events)
}
