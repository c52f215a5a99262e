package game

type Rules interface {
	DieFaces() int
	MinAttackTroops() int
	// DetermineAttackOutcome reports whether the attacker captures the defender
	DetermineAttackOutcome(attackerDie, defenderDie int) bool
	// TransferredTroops is how many defending troops switch sides on a capture
	TransferredTroops(defenderTroops int) int
}
