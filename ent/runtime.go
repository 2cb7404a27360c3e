// Code generated by ent, DO NOT EDIT.

package ent

import (
	"github.com/wordwheel/wheelbot/ent/game"
	"github.com/wordwheel/wheelbot/ent/participant"
	"github.com/wordwheel/wheelbot/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	gameFields := schema.Game{}.Fields()
	_ = gameFields
	// gameDescRevealedLetters is the schema descriptor for revealed_letters field.
	gameDescRevealedLetters := gameFields[4].Descriptor()
	// game.DefaultRevealedLetters holds the default value on creation for the revealed_letters field.
	game.DefaultRevealedLetters = gameDescRevealedLetters.Default.(string)
	// gameDescBonusPoints is the schema descriptor for bonus_points field.
	gameDescBonusPoints := gameFields[6].Descriptor()
	// game.DefaultBonusPoints holds the default value on creation for the bonus_points field.
	game.DefaultBonusPoints = gameDescBonusPoints.Default.(int)
	// game.BonusPointsValidator is a validator for the "bonus_points" field. It is called by the builders before save.
	game.BonusPointsValidator = gameDescBonusPoints.Validators[0].(func(int) error)
	participantFields := schema.Participant{}.Fields()
	_ = participantFields
	// participantDescTurnOrder is the schema descriptor for turn_order field.
	participantDescTurnOrder := participantFields[4].Descriptor()
	// participant.TurnOrderValidator is a validator for the "turn_order" field. It is called by the builders before save.
	participant.TurnOrderValidator = participantDescTurnOrder.Validators[0].(func(int) error)
	// participantDescPoints is the schema descriptor for points field.
	participantDescPoints := participantFields[5].Descriptor()
	// participant.DefaultPoints holds the default value on creation for the points field.
	participant.DefaultPoints = participantDescPoints.Default.(int)
}
