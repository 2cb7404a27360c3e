// Code generated by ent, DO NOT EDIT.

package game

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/wordwheel/wheelbot/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Game {
	return predicate.Game(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Game {
	return predicate.Game(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Game {
	return predicate.Game(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Game {
	return predicate.Game(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Game {
	return predicate.Game(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Game {
	return predicate.Game(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Game {
	return predicate.Game(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Game {
	return predicate.Game(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Game {
	return predicate.Game(sql.FieldLTE(FieldID, id))
}

// ChatID applies equality check predicate on the "chat_id" field. It's identical to ChatIDEQ.
func ChatID(v int64) predicate.Game {
	return predicate.Game(sql.FieldEQ(FieldChatID, v))
}

// QuestionID applies equality check predicate on the "question_id" field. It's identical to QuestionIDEQ.
func QuestionID(v int) predicate.Game {
	return predicate.Game(sql.FieldEQ(FieldQuestionID, v))
}

// RevealedLetters applies equality check predicate on the "revealed_letters" field. It's identical to RevealedLettersEQ.
func RevealedLetters(v string) predicate.Game {
	return predicate.Game(sql.FieldEQ(FieldRevealedLetters, v))
}

// CurrentPlayerID applies equality check predicate on the "current_player_id" field. It's identical to CurrentPlayerIDEQ.
func CurrentPlayerID(v int) predicate.Game {
	return predicate.Game(sql.FieldEQ(FieldCurrentPlayerID, v))
}

// BonusPoints applies equality check predicate on the "bonus_points" field. It's identical to BonusPointsEQ.
func BonusPoints(v int) predicate.Game {
	return predicate.Game(sql.FieldEQ(FieldBonusPoints, v))
}

// ChatIDEQ applies the EQ predicate on the "chat_id" field.
func ChatIDEQ(v int64) predicate.Game {
	return predicate.Game(sql.FieldEQ(FieldChatID, v))
}

// ChatIDNEQ applies the NEQ predicate on the "chat_id" field.
func ChatIDNEQ(v int64) predicate.Game {
	return predicate.Game(sql.FieldNEQ(FieldChatID, v))
}

// ChatIDIn applies the In predicate on the "chat_id" field.
func ChatIDIn(vs ...int64) predicate.Game {
	return predicate.Game(sql.FieldIn(FieldChatID, vs...))
}

// ChatIDNotIn applies the NotIn predicate on the "chat_id" field.
func ChatIDNotIn(vs ...int64) predicate.Game {
	return predicate.Game(sql.FieldNotIn(FieldChatID, vs...))
}

// ChatIDGT applies the GT predicate on the "chat_id" field.
func ChatIDGT(v int64) predicate.Game {
	return predicate.Game(sql.FieldGT(FieldChatID, v))
}

// ChatIDGTE applies the GTE predicate on the "chat_id" field.
func ChatIDGTE(v int64) predicate.Game {
	return predicate.Game(sql.FieldGTE(FieldChatID, v))
}

// ChatIDLT applies the LT predicate on the "chat_id" field.
func ChatIDLT(v int64) predicate.Game {
	return predicate.Game(sql.FieldLT(FieldChatID, v))
}

// ChatIDLTE applies the LTE predicate on the "chat_id" field.
func ChatIDLTE(v int64) predicate.Game {
	return predicate.Game(sql.FieldLTE(FieldChatID, v))
}

// StateEQ applies the EQ predicate on the "state" field.
func StateEQ(v State) predicate.Game {
	return predicate.Game(sql.FieldEQ(FieldState, v))
}

// StateNEQ applies the NEQ predicate on the "state" field.
func StateNEQ(v State) predicate.Game {
	return predicate.Game(sql.FieldNEQ(FieldState, v))
}

// StateIn applies the In predicate on the "state" field.
func StateIn(vs ...State) predicate.Game {
	return predicate.Game(sql.FieldIn(FieldState, vs...))
}

// StateNotIn applies the NotIn predicate on the "state" field.
func StateNotIn(vs ...State) predicate.Game {
	return predicate.Game(sql.FieldNotIn(FieldState, vs...))
}

// QuestionIDEQ applies the EQ predicate on the "question_id" field.
func QuestionIDEQ(v int) predicate.Game {
	return predicate.Game(sql.FieldEQ(FieldQuestionID, v))
}

// QuestionIDNEQ applies the NEQ predicate on the "question_id" field.
func QuestionIDNEQ(v int) predicate.Game {
	return predicate.Game(sql.FieldNEQ(FieldQuestionID, v))
}

// QuestionIDIn applies the In predicate on the "question_id" field.
func QuestionIDIn(vs ...int) predicate.Game {
	return predicate.Game(sql.FieldIn(FieldQuestionID, vs...))
}

// QuestionIDNotIn applies the NotIn predicate on the "question_id" field.
func QuestionIDNotIn(vs ...int) predicate.Game {
	return predicate.Game(sql.FieldNotIn(FieldQuestionID, vs...))
}

// RevealedLettersEQ applies the EQ predicate on the "revealed_letters" field.
func RevealedLettersEQ(v string) predicate.Game {
	return predicate.Game(sql.FieldEQ(FieldRevealedLetters, v))
}

// RevealedLettersNEQ applies the NEQ predicate on the "revealed_letters" field.
func RevealedLettersNEQ(v string) predicate.Game {
	return predicate.Game(sql.FieldNEQ(FieldRevealedLetters, v))
}

// RevealedLettersIn applies the In predicate on the "revealed_letters" field.
func RevealedLettersIn(vs ...string) predicate.Game {
	return predicate.Game(sql.FieldIn(FieldRevealedLetters, vs...))
}

// RevealedLettersNotIn applies the NotIn predicate on the "revealed_letters" field.
func RevealedLettersNotIn(vs ...string) predicate.Game {
	return predicate.Game(sql.FieldNotIn(FieldRevealedLetters, vs...))
}

// RevealedLettersGT applies the GT predicate on the "revealed_letters" field.
func RevealedLettersGT(v string) predicate.Game {
	return predicate.Game(sql.FieldGT(FieldRevealedLetters, v))
}

// RevealedLettersGTE applies the GTE predicate on the "revealed_letters" field.
func RevealedLettersGTE(v string) predicate.Game {
	return predicate.Game(sql.FieldGTE(FieldRevealedLetters, v))
}

// RevealedLettersLT applies the LT predicate on the "revealed_letters" field.
func RevealedLettersLT(v string) predicate.Game {
	return predicate.Game(sql.FieldLT(FieldRevealedLetters, v))
}

// RevealedLettersLTE applies the LTE predicate on the "revealed_letters" field.
func RevealedLettersLTE(v string) predicate.Game {
	return predicate.Game(sql.FieldLTE(FieldRevealedLetters, v))
}

// RevealedLettersContains applies the Contains predicate on the "revealed_letters" field.
func RevealedLettersContains(v string) predicate.Game {
	return predicate.Game(sql.FieldContains(FieldRevealedLetters, v))
}

// RevealedLettersHasPrefix applies the HasPrefix predicate on the "revealed_letters" field.
func RevealedLettersHasPrefix(v string) predicate.Game {
	return predicate.Game(sql.FieldHasPrefix(FieldRevealedLetters, v))
}

// RevealedLettersHasSuffix applies the HasSuffix predicate on the "revealed_letters" field.
func RevealedLettersHasSuffix(v string) predicate.Game {
	return predicate.Game(sql.FieldHasSuffix(FieldRevealedLetters, v))
}

// RevealedLettersEqualFold applies the EqualFold predicate on the "revealed_letters" field.
func RevealedLettersEqualFold(v string) predicate.Game {
	return predicate.Game(sql.FieldEqualFold(FieldRevealedLetters, v))
}

// RevealedLettersContainsFold applies the ContainsFold predicate on the "revealed_letters" field.
func RevealedLettersContainsFold(v string) predicate.Game {
	return predicate.Game(sql.FieldContainsFold(FieldRevealedLetters, v))
}

// CurrentPlayerIDEQ applies the EQ predicate on the "current_player_id" field.
func CurrentPlayerIDEQ(v int) predicate.Game {
	return predicate.Game(sql.FieldEQ(FieldCurrentPlayerID, v))
}

// CurrentPlayerIDNEQ applies the NEQ predicate on the "current_player_id" field.
func CurrentPlayerIDNEQ(v int) predicate.Game {
	return predicate.Game(sql.FieldNEQ(FieldCurrentPlayerID, v))
}

// CurrentPlayerIDIn applies the In predicate on the "current_player_id" field.
func CurrentPlayerIDIn(vs ...int) predicate.Game {
	return predicate.Game(sql.FieldIn(FieldCurrentPlayerID, vs...))
}

// CurrentPlayerIDNotIn applies the NotIn predicate on the "current_player_id" field.
func CurrentPlayerIDNotIn(vs ...int) predicate.Game {
	return predicate.Game(sql.FieldNotIn(FieldCurrentPlayerID, vs...))
}

// CurrentPlayerIDIsNil applies the IsNil predicate on the "current_player_id" field.
func CurrentPlayerIDIsNil() predicate.Game {
	return predicate.Game(sql.FieldIsNull(FieldCurrentPlayerID))
}

// CurrentPlayerIDNotNil applies the NotNil predicate on the "current_player_id" field.
func CurrentPlayerIDNotNil() predicate.Game {
	return predicate.Game(sql.FieldNotNull(FieldCurrentPlayerID))
}

// BonusPointsEQ applies the EQ predicate on the "bonus_points" field.
func BonusPointsEQ(v int) predicate.Game {
	return predicate.Game(sql.FieldEQ(FieldBonusPoints, v))
}

// BonusPointsNEQ applies the NEQ predicate on the "bonus_points" field.
func BonusPointsNEQ(v int) predicate.Game {
	return predicate.Game(sql.FieldNEQ(FieldBonusPoints, v))
}

// BonusPointsIn applies the In predicate on the "bonus_points" field.
func BonusPointsIn(vs ...int) predicate.Game {
	return predicate.Game(sql.FieldIn(FieldBonusPoints, vs...))
}

// BonusPointsNotIn applies the NotIn predicate on the "bonus_points" field.
func BonusPointsNotIn(vs ...int) predicate.Game {
	return predicate.Game(sql.FieldNotIn(FieldBonusPoints, vs...))
}

// BonusPointsGT applies the GT predicate on the "bonus_points" field.
func BonusPointsGT(v int) predicate.Game {
	return predicate.Game(sql.FieldGT(FieldBonusPoints, v))
}

// BonusPointsGTE applies the GTE predicate on the "bonus_points" field.
func BonusPointsGTE(v int) predicate.Game {
	return predicate.Game(sql.FieldGTE(FieldBonusPoints, v))
}

// BonusPointsLT applies the LT predicate on the "bonus_points" field.
func BonusPointsLT(v int) predicate.Game {
	return predicate.Game(sql.FieldLT(FieldBonusPoints, v))
}

// BonusPointsLTE applies the LTE predicate on the "bonus_points" field.
func BonusPointsLTE(v int) predicate.Game {
	return predicate.Game(sql.FieldLTE(FieldBonusPoints, v))
}

// HasQuestion applies the HasEdge predicate on the "question" edge.
func HasQuestion() predicate.Game {
	return predicate.Game(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, QuestionTable, QuestionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasQuestionWith applies the HasEdge predicate on the "question" edge with a given conditions (other predicates).
func HasQuestionWith(preds ...predicate.Question) predicate.Game {
	return predicate.Game(func(s *sql.Selector) {
		step := newQuestionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasParticipants applies the HasEdge predicate on the "participants" edge.
func HasParticipants() predicate.Game {
	return predicate.Game(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ParticipantsTable, ParticipantsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasParticipantsWith applies the HasEdge predicate on the "participants" edge with a given conditions (other predicates).
func HasParticipantsWith(preds ...predicate.Participant) predicate.Game {
	return predicate.Game(func(s *sql.Selector) {
		step := newParticipantsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasCurrentPlayer applies the HasEdge predicate on the "current_player" edge.
func HasCurrentPlayer() predicate.Game {
	return predicate.Game(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, CurrentPlayerTable, CurrentPlayerColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCurrentPlayerWith applies the HasEdge predicate on the "current_player" edge with a given conditions (other predicates).
func HasCurrentPlayerWith(preds ...predicate.Participant) predicate.Game {
	return predicate.Game(func(s *sql.Selector) {
		step := newCurrentPlayerStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Game) predicate.Game {
	return predicate.Game(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Game) predicate.Game {
	return predicate.Game(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Game) predicate.Game {
	return predicate.Game(sql.NotPredicates(p))
}
