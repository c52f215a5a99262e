// meta/meta.go
package meta

// MIN_PLAYERS is the smallest table a game can be played with.
const MIN_PLAYERS = 2

// MAX_PLAYERS is the largest table a game can be played with.
const MAX_PLAYERS = 5

// MIN_TERRITORIES is the smallest map a game can be played on.
const MIN_TERRITORIES = 2

// DEFAULT_TROOPS replaces a missing or invalid troop count at registration.
const DEFAULT_TROOPS = 1

// MIN_ATTACK_TROOPS is the troop count a territory needs before it may attack.
const MIN_ATTACK_TROOPS = 2

// DIE_FACES is the number of faces on each combat die.
const DIE_FACES = 6

// MAX_NAME_LENGTH bounds territory names, in runes.
const MAX_NAME_LENGTH = 29

// MAX_COLOR_LENGTH bounds player and territory colors, in runes.
const MAX_COLOR_LENGTH = 9
