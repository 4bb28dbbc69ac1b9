package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-duel/internal/core"
	"github.com/vovakirdan/tui-duel/internal/sim"
)

// pendingInput collects key presses between simulation ticks. Movement is
// screen-relative here and translated to facing-relative on each tick.
type pendingInput struct {
	left, right, near, far bool

	light, heavy, special bool
	midKick, lowKick      bool
	aerial                bool
	block, dash           bool
}

// toState converts collected presses into a simulation input frame for a
// fighter with the given facing.
func (p *pendingInput) toState(facing core.Facing) sim.InputState {
	s := sim.InputState{
		LightAttack: p.light,
		HeavyAttack: p.heavy,
		Special:     p.special,
		MidKick:     p.midKick,
		LowKick:     p.lowKick,
		Aerial:      p.aerial,
		Block:       p.block,
		Dash:        p.dash,
	}

	// "Forward" always means toward the direction the fighter faces.
	if facing == core.FacingRight {
		s.MoveForward = p.right
		s.MoveBack = p.left
	} else {
		s.MoveForward = p.left
		s.MoveBack = p.right
	}
	s.MoveLeft = p.far
	s.MoveRight = p.near

	return s
}

func (p *pendingInput) clear() {
	*p = pendingInput{}
}

// KeyMapper translates Bubble Tea key messages to fight inputs for both
// players sharing one keyboard. This centralizes key bindings and makes
// them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKeyToFight records a fight key press into the matching player's pending
// input. Returns false if the key is not a fight binding.
func (km *KeyMapper) MapKeyToFight(msg tea.KeyMsg, p1, p2 *pendingInput) bool {
	switch msg.String() {
	// Player 1: WASD movement, JKL attacks, UIO kicks, space/tab defense.
	case "a":
		p1.left = true
	case "d":
		p1.right = true
	case "w":
		p1.far = true
	case "s":
		p1.near = true
	case "j":
		p1.light = true
	case "k":
		p1.heavy = true
	case "l":
		p1.special = true
	case "u":
		p1.midKick = true
	case "i":
		p1.lowKick = true
	case "o":
		p1.aerial = true
	case " ":
		p1.block = true
	case "tab":
		p1.dash = true

	// Player 2: arrow movement, ,./ attacks, mnb kicks, 0/9 defense.
	case "left":
		p2.left = true
	case "right":
		p2.right = true
	case "up":
		p2.far = true
	case "down":
		p2.near = true
	case ",":
		p2.light = true
	case ".":
		p2.heavy = true
	case "/":
		p2.special = true
	case "m":
		p2.midKick = true
	case "n":
		p2.lowKick = true
	case "b":
		p2.aerial = true
	case "0":
		p2.block = true
	case "9":
		p2.dash = true

	default:
		return false
	}
	return true
}

// SelectAction represents a fighter-select action derived from input.
type SelectAction int

const (
	SelectActionNone SelectAction = iota
	SelectActionPrev
	SelectActionNext
	SelectActionConfirm
)

// MapKeyToSelect translates a key during fighter select.
// Returns the player index (0 or 1) and the action.
func (km *KeyMapper) MapKeyToSelect(msg tea.KeyMsg) (player int, action SelectAction) {
	switch msg.String() {
	case "w", "a":
		return 0, SelectActionPrev
	case "s", "d":
		return 0, SelectActionNext
	case "j", "enter":
		return 0, SelectActionConfirm
	case "up", "left":
		return 1, SelectActionPrev
	case "down", "right":
		return 1, SelectActionNext
	case ",":
		return 1, SelectActionConfirm
	}
	return 0, SelectActionNone
}
