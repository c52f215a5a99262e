package game

// AttackResult records a single exchange of dice between two territories.
type AttackResult struct {
	Attacker      string // Attacking territory name
	Defender      string // Defending territory name
	AttackerColor string
	DefenderColor string // Defender color before the attack
	AttackerDie   int
	DefenderDie   int
	Captured      bool
	Transferred   int // Troops moved from defender to attacker on a capture
	AttackerLost  int // Troops the attacker lost on a failed attack
	AttackerAfter int
	DefenderAfter int
}

// ValidateAttack checks a 1-based attacker/defender selection against the
// registry. The defender index is checked first, as it is the one read last
// from the operator.
func ValidateAttack(r *Registry, attacker, defender int, rules Rules) error {
	reject := func(err error) error {
		return &SelectionError{Attacker: attacker, Defender: defender, Err: err}
	}

	d := r.At(defender - 1)
	if d == nil {
		return reject(ErrInvalidDefender)
	}
	a := r.At(attacker - 1)
	if a == nil || attacker == defender {
		return reject(ErrInvalidSelection)
	}
	if a.Color == d.Color {
		return reject(ErrSameColor)
	}
	if a.Troops < rules.MinAttackTroops() {
		return reject(ErrInsufficientTroops)
	}
	return nil
}

// Resolve rolls one die for each side and applies the result to both
// territories in place. The caller validates the pair with ValidateAttack.
func Resolve(attacker, defender *Territory, dice Dice, rules Rules) AttackResult {
	result := AttackResult{
		Attacker:      attacker.Name,
		Defender:      defender.Name,
		AttackerColor: attacker.Color,
		DefenderColor: defender.Color,
		AttackerDie:   dice.Roll(rules.DieFaces()),
		DefenderDie:   dice.Roll(rules.DieFaces()),
	}

	if rules.DetermineAttackOutcome(result.AttackerDie, result.DefenderDie) {
		// Capture the territory and pull part of its garrison over
		defender.Color = attacker.Color
		transferred := rules.TransferredTroops(defender.Troops)
		defender.Troops -= transferred
		attacker.Troops += transferred
		result.Captured = true
		result.Transferred = transferred
	} else if attacker.Troops > 1 {
		// Never lose the last troop
		attacker.Troops--
		result.AttackerLost = 1
	}

	result.AttackerAfter = attacker.Troops
	result.DefenderAfter = defender.Troops
	return result
}
