package sim

// State is the behavioral state of a fighter. Transitions are frame-counted
// so two runs with the same inputs produce identical state sequences.
type State uint8

const (
	StateIdle State = iota
	StateMoving
	StateAttacking
	StateBlocking
	StateDashing
	StateHitStun
	StateAirborne
	StateKnockdown
	StateGettingUp
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateMoving:
		return "Moving"
	case StateAttacking:
		return "Attacking"
	case StateBlocking:
		return "Blocking"
	case StateDashing:
		return "Dashing"
	case StateHitStun:
		return "HitStun"
	case StateAirborne:
		return "Airborne"
	case StateKnockdown:
		return "Knockdown"
	case StateGettingUp:
		return "Getting Up"
	default:
		return "Unknown"
	}
}

// AttackPhase subdivides StateAttacking. The hitbox only exists during
// PhaseActive.
type AttackPhase uint8

const (
	PhaseNone AttackPhase = iota
	PhaseStartup
	PhaseActive
	PhaseRecovery
)

func (p AttackPhase) String() string {
	switch p {
	case PhaseStartup:
		return "Startup"
	case PhaseActive:
		return "Active"
	case PhaseRecovery:
		return "Recovery"
	default:
		return "None"
	}
}

// AttackKind identifies which move is being performed while attacking.
type AttackKind uint8

const (
	AttackNone AttackKind = iota
	AttackLight
	AttackHeavy
	AttackSpecial
	AttackMidKick
	AttackLowKick
	AttackAerial
	AttackComboFinisher
	AttackSuper
)

const getUpFrames = 20
const airborneLandKnockdownFrames = 30

// Machine drives a single fighter's state transitions. All durations are in
// frames; Tick advances exactly one frame.
type Machine struct {
	State        State
	FrameCounter uint32
	TotalFrames  uint32
	Attack       AttackKind
	Phase        AttackPhase
	HitConnected bool // prevents multi-hit per attack

	attackStartup  uint32
	attackActive   uint32
	attackRecovery uint32
}

// NewMachine returns a machine in the idle state.
func NewMachine() Machine {
	return Machine{State: StateIdle}
}

// CanAct reports whether the fighter can accept new commands.
func (m *Machine) CanAct() bool {
	return m.State == StateIdle || m.State == StateMoving
}

// CanBlock reports whether the fighter can raise a block right now.
func (m *Machine) CanBlock() bool {
	return m.CanAct()
}

// IsVulnerable reports whether the fighter can currently be hit.
func (m *Machine) IsVulnerable() bool {
	switch m.State {
	case StateDashing, StateGettingUp, StateKnockdown:
		return false
	}
	return true
}

// IsAttackActive reports whether the fighter is in the active frames of an
// attack.
func (m *Machine) IsAttackActive() bool {
	return m.State == StateAttacking && m.Phase == PhaseActive
}

// StartAttack begins an attack. Returns false if the fighter cannot act.
func (m *Machine) StartAttack(kind AttackKind, startup, active, recovery uint32) bool {
	if !m.CanAct() {
		return false
	}
	m.State = StateAttacking
	m.Attack = kind
	m.Phase = PhaseStartup
	m.attackStartup = startup
	m.attackActive = active
	m.attackRecovery = recovery
	m.TotalFrames = startup + active + recovery
	m.FrameCounter = 0
	m.HitConnected = false
	return true
}

// StartBlock raises the guard. Blocking persists until released.
func (m *Machine) StartBlock() bool {
	if !m.CanBlock() {
		return false
	}
	m.State = StateBlocking
	m.FrameCounter = 0
	m.TotalFrames = 0
	return true
}

// StopBlock drops the guard.
func (m *Machine) StopBlock() {
	if m.State == StateBlocking {
		m.State = StateIdle
		m.FrameCounter = 0
	}
}

// StartDash begins a dash lasting dashFrames. The fighter is invulnerable
// for the duration.
func (m *Machine) StartDash(dashFrames uint32) bool {
	if !m.CanAct() {
		return false
	}
	m.State = StateDashing
	m.FrameCounter = 0
	m.TotalFrames = dashFrames
	return true
}

// EnterHitStun interrupts whatever the fighter was doing.
func (m *Machine) EnterHitStun(stunFrames uint32) {
	m.State = StateHitStun
	m.FrameCounter = 0
	m.TotalFrames = stunFrames
	m.Attack = AttackNone
	m.Phase = PhaseNone
}

// EnterAirborne puts the fighter in the launched state. It ends on landing.
func (m *Machine) EnterAirborne() {
	m.State = StateAirborne
	m.FrameCounter = 0
	m.TotalFrames = 0
	m.Attack = AttackNone
	m.Phase = PhaseNone
}

// EnterKnockdown puts the fighter on the ground for downFrames.
func (m *Machine) EnterKnockdown(downFrames uint32) {
	m.State = StateKnockdown
	m.FrameCounter = 0
	m.TotalFrames = downFrames
}

// SetMoving marks the fighter as walking, if it is free to act.
func (m *Machine) SetMoving() {
	if m.CanAct() {
		m.State = StateMoving
	}
}

// SetIdle returns a walking fighter to idle.
func (m *Machine) SetIdle() {
	if m.State == StateMoving {
		m.State = StateIdle
	}
}

// Tick advances the machine by one frame. Returns true if the state or
// attack phase changed.
func (m *Machine) Tick() bool {
	switch m.State {
	case StateIdle, StateMoving, StateBlocking:
		return false

	case StateAttacking:
		m.FrameCounter++
		switch {
		case m.FrameCounter <= m.attackStartup:
			if m.Phase != PhaseStartup {
				m.Phase = PhaseStartup
				return true
			}
		case m.FrameCounter <= m.attackStartup+m.attackActive:
			if m.Phase != PhaseActive {
				m.Phase = PhaseActive
				return true
			}
		case m.FrameCounter <= m.attackStartup+m.attackActive+m.attackRecovery:
			if m.Phase != PhaseRecovery {
				m.Phase = PhaseRecovery
				return true
			}
		}
		if m.FrameCounter >= m.TotalFrames {
			m.State = StateIdle
			m.Attack = AttackNone
			m.Phase = PhaseNone
			m.FrameCounter = 0
			return true
		}
		return false

	case StateDashing:
		m.FrameCounter++
		if m.FrameCounter >= m.TotalFrames {
			m.State = StateIdle
			m.FrameCounter = 0
			return true
		}
		return false

	case StateHitStun:
		m.FrameCounter++
		if m.FrameCounter >= m.TotalFrames {
			m.State = StateIdle
			m.FrameCounter = 0
			return true
		}
		return false

	case StateAirborne:
		m.FrameCounter++
		return false

	case StateKnockdown:
		m.FrameCounter++
		if m.FrameCounter >= m.TotalFrames {
			m.State = StateGettingUp
			m.FrameCounter = 0
			m.TotalFrames = getUpFrames
			return true
		}
		return false

	case StateGettingUp:
		m.FrameCounter++
		if m.FrameCounter >= m.TotalFrames {
			m.State = StateIdle
			m.FrameCounter = 0
			return true
		}
		return false
	}
	return false
}

// Land is called when physics detects a landing while airborne.
// Landing from a launch always knocks the fighter down.
func (m *Machine) Land() {
	if m.State == StateAirborne {
		m.EnterKnockdown(airborneLandKnockdownFrames)
	}
}
