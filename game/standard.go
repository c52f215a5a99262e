package game

import "war/meta"

type StandardRules struct {
	Faces        int
	MinAttackers int
}

func NewStandardRules() *StandardRules {
	return &StandardRules{
		Faces:        meta.DIE_FACES,
		MinAttackers: meta.MIN_ATTACK_TROOPS,
	}
}

func (sr *StandardRules) DieFaces() int {
	return sr.Faces
}

func (sr *StandardRules) MinAttackTroops() int {
	return sr.MinAttackers
}

func (sr *StandardRules) DetermineAttackOutcome(attackerDie, defenderDie int) bool {
	// Ties go to the defender
	return attackerDie > defenderDie
}

func (sr *StandardRules) TransferredTroops(defenderTroops int) int {
	return defenderTroops / 2
}
