package sim

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/vovakirdan/tui-duel/internal/core"
	"github.com/vovakirdan/tui-duel/internal/roster"
)

func testMove() *roster.Move {
	return &roster.Move{
		Name:             "Slash",
		DamageMultiplier: 1.0,
		Startup:          4,
		Active:           3,
		Recovery:         6,
		Knockback:        3.0,
		Offset:           mgl32.Vec3{1.2, 0.8, 0},
		HalfExtents:      mgl32.Vec3{0.6, 0.4, 0.3},
	}
}

func testLaunchMove() *roster.Move {
	m := testMove()
	m.Name = "Rising Dragon"
	m.Launches = true
	return m
}

func testWeapon() *roster.Weapon {
	return &roster.Weapon{
		ID:          "katana",
		Name:        "Katana",
		BaseDamage:  12,
		AttackSpeed: 1.2,
	}
}

func testHurtbox() core.AABB {
	return core.NewAABB(mgl32.Vec3{-0.4, 0, -0.3}, mgl32.Vec3{0.4, 1.8, 0.3})
}

func baseCheck() HitCheck {
	return HitCheck{
		AttackerPos:     mgl32.Vec3{0, 0, 0},
		AttackerFacing:  core.FacingRight,
		Move:            testMove(),
		Weapon:          testWeapon(),
		DefenderPos:     mgl32.Vec3{1.5, 0, 0},
		DefenderHurtbox: testHurtbox(),
		DefenderDefense: 1.0,
		StaleMultiplier: 1.0,
	}
}

func TestHitConnectsWhenClose(t *testing.T) {
	check := baseCheck()
	hit, ok := check.Evaluate()
	if !ok {
		t.Fatal("expected hit at close range")
	}
	if hit.Damage <= 0 {
		t.Errorf("Damage = %v", hit.Damage)
	}
	if hit.WasBlocked {
		t.Error("unexpected block")
	}
}

func TestHitMissesWhenFar(t *testing.T) {
	check := baseCheck()
	check.DefenderPos = mgl32.Vec3{10, 0, 0}
	if _, ok := check.Evaluate(); ok {
		t.Error("expected miss at long range")
	}
}

func TestHitMissesBehindAttacker(t *testing.T) {
	// Hitbox is mirrored by facing; a defender behind the attacker is safe.
	check := baseCheck()
	check.DefenderPos = mgl32.Vec3{-1.5, 0, 0}
	if _, ok := check.Evaluate(); ok {
		t.Error("attack facing right should not hit a defender on the left")
	}

	check.AttackerFacing = core.FacingLeft
	if _, ok := check.Evaluate(); !ok {
		t.Error("attack facing left should hit a defender on the left")
	}
}

func TestBlockingReducesDamageToOneFifth(t *testing.T) {
	check := baseCheck()
	unblocked, ok := check.Evaluate()
	if !ok {
		t.Fatal("expected hit")
	}

	check.Blocking = true
	blocked, ok := check.Evaluate()
	if !ok {
		t.Fatal("expected blocked hit to still connect")
	}

	if !blocked.WasBlocked {
		t.Error("WasBlocked not set")
	}
	ratio := blocked.Damage / unblocked.Damage
	if math.Abs(float64(ratio-blockDamageReduction)) > 0.01 {
		t.Errorf("blocked/unblocked ratio = %v, want %v", ratio, blockDamageReduction)
	}
	if blocked.HitstunFrames >= unblocked.HitstunFrames {
		t.Error("blocked hitstun should be shorter")
	}
}

func TestKnockbackDirection(t *testing.T) {
	check := baseCheck()
	hit, ok := check.Evaluate()
	if !ok {
		t.Fatal("expected hit")
	}
	if hit.Knockback.X() <= 0 {
		t.Errorf("defender on the right should be pushed right, got %v", hit.Knockback)
	}

	// Defender to the left is pushed left.
	check.AttackerFacing = core.FacingLeft
	check.DefenderPos = mgl32.Vec3{-1.5, 0, 0}
	hit, ok = check.Evaluate()
	if !ok {
		t.Fatal("expected hit")
	}
	if hit.Knockback.X() >= 0 {
		t.Errorf("defender on the left should be pushed left, got %v", hit.Knockback)
	}
}

func TestLaunchSetsUpwardKnockback(t *testing.T) {
	check := baseCheck()
	check.Move = testLaunchMove()
	hit, ok := check.Evaluate()
	if !ok {
		t.Fatal("expected hit")
	}
	if !hit.Launches {
		t.Error("Launches not set")
	}
	if hit.Knockback.Y() != launchVelocityY {
		t.Errorf("Knockback.Y = %v, want %v", hit.Knockback.Y(), launchVelocityY)
	}

	// A blocked launcher does not launch.
	check.Blocking = true
	hit, ok = check.Evaluate()
	if !ok {
		t.Fatal("expected blocked hit")
	}
	if hit.Launches || hit.Knockback.Y() != 0 {
		t.Errorf("blocked launcher should not launch: %+v", hit)
	}
}

func TestComboScaling(t *testing.T) {
	fresh := baseCheck()
	freshHit, _ := fresh.Evaluate()

	combo := baseCheck()
	combo.ComboHits = 3
	comboHit, _ := combo.Evaluate()

	if comboHit.Damage >= freshHit.Damage {
		t.Errorf("combo damage %v should be below fresh %v", comboHit.Damage, freshHit.Damage)
	}
	if comboHit.HitstunFrames >= freshHit.HitstunFrames {
		t.Errorf("combo hitstun %v should be below fresh %v", comboHit.HitstunFrames, freshHit.HitstunFrames)
	}
	if comboHit.Knockback.X() <= freshHit.Knockback.X() {
		t.Error("combo hits should push harder to separate fighters")
	}
}

func TestComboScalingFloors(t *testing.T) {
	deep := baseCheck()
	deep.ComboHits = 50
	hit, _ := deep.Evaluate()

	// Damage floors at 40% and hitstun at 30% of base.
	wantDamage := testWeapon().BaseDamage * 0.4
	if math.Abs(float64(hit.Damage-wantDamage)) > 0.01 {
		t.Errorf("Damage = %v, want floor %v", hit.Damage, wantDamage)
	}
	base := float64(hitstunBaseFrames + 3)
	wantHitstun := uint32(math.Round(base * 0.3))
	if hit.HitstunFrames != wantHitstun {
		t.Errorf("HitstunFrames = %v, want floor %v", hit.HitstunFrames, wantHitstun)
	}
}

func TestComboHitstunRounds(t *testing.T) {
	// Base 18 frames scaled by 0.75 is 13.5 and rounds up to 14.
	check := baseCheck()
	check.Move.Knockback = 6
	check.ComboHits = 1
	hit, ok := check.Evaluate()
	if !ok {
		t.Fatal("expected hit")
	}
	if hit.HitstunFrames != 14 {
		t.Errorf("HitstunFrames = %v, want 14", hit.HitstunFrames)
	}
}

func TestStaleMoveReducesDamage(t *testing.T) {
	fresh := baseCheck()
	freshHit, _ := fresh.Evaluate()

	stale := baseCheck()
	stale.StaleMultiplier = 0.6
	staleHit, _ := stale.Evaluate()

	if staleHit.Damage >= freshHit.Damage {
		t.Errorf("stale damage %v should be below fresh %v", staleHit.Damage, freshHit.Damage)
	}
}

func TestHitstunScalesWithKnockbackForce(t *testing.T) {
	check := baseCheck()
	hit, _ := check.Evaluate()
	if hit.HitstunFrames != hitstunBaseFrames+3 {
		t.Errorf("HitstunFrames = %v, want %v", hit.HitstunFrames, hitstunBaseFrames+3)
	}

	heavy := baseCheck()
	heavy.Move = testMove()
	heavy.Move.Knockback = 10
	heavyHit, _ := heavy.Evaluate()
	if heavyHit.HitstunFrames != hitstunBaseFrames+10 {
		t.Errorf("HitstunFrames = %v, want %v", heavyHit.HitstunFrames, hitstunBaseFrames+10)
	}
}

func TestDefenseScalesDamage(t *testing.T) {
	tough := baseCheck()
	tough.DefenderDefense = 0.75
	toughHit, _ := tough.Evaluate()

	normal := baseCheck()
	normalHit, _ := normal.Evaluate()

	if toughHit.Damage >= normalHit.Damage {
		t.Errorf("lower defense multiplier should mean less damage taken: %v vs %v",
			toughHit.Damage, normalHit.Damage)
	}
}
