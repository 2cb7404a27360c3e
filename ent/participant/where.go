// Code generated by ent, DO NOT EDIT.

package participant

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/wordwheel/wheelbot/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Participant {
	return predicate.Participant(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Participant {
	return predicate.Participant(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Participant {
	return predicate.Participant(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Participant {
	return predicate.Participant(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Participant {
	return predicate.Participant(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Participant {
	return predicate.Participant(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Participant {
	return predicate.Participant(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Participant {
	return predicate.Participant(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Participant {
	return predicate.Participant(sql.FieldLTE(FieldID, id))
}

// GameID applies equality check predicate on the "game_id" field. It's identical to GameIDEQ.
func GameID(v int) predicate.Participant {
	return predicate.Participant(sql.FieldEQ(FieldGameID, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v int) predicate.Participant {
	return predicate.Participant(sql.FieldEQ(FieldUserID, v))
}

// TurnOrder applies equality check predicate on the "turn_order" field. It's identical to TurnOrderEQ.
func TurnOrder(v int) predicate.Participant {
	return predicate.Participant(sql.FieldEQ(FieldTurnOrder, v))
}

// Points applies equality check predicate on the "points" field. It's identical to PointsEQ.
func Points(v int) predicate.Participant {
	return predicate.Participant(sql.FieldEQ(FieldPoints, v))
}

// GameIDEQ applies the EQ predicate on the "game_id" field.
func GameIDEQ(v int) predicate.Participant {
	return predicate.Participant(sql.FieldEQ(FieldGameID, v))
}

// GameIDNEQ applies the NEQ predicate on the "game_id" field.
func GameIDNEQ(v int) predicate.Participant {
	return predicate.Participant(sql.FieldNEQ(FieldGameID, v))
}

// GameIDIn applies the In predicate on the "game_id" field.
func GameIDIn(vs ...int) predicate.Participant {
	return predicate.Participant(sql.FieldIn(FieldGameID, vs...))
}

// GameIDNotIn applies the NotIn predicate on the "game_id" field.
func GameIDNotIn(vs ...int) predicate.Participant {
	return predicate.Participant(sql.FieldNotIn(FieldGameID, vs...))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v int) predicate.Participant {
	return predicate.Participant(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v int) predicate.Participant {
	return predicate.Participant(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...int) predicate.Participant {
	return predicate.Participant(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...int) predicate.Participant {
	return predicate.Participant(sql.FieldNotIn(FieldUserID, vs...))
}

// StateEQ applies the EQ predicate on the "state" field.
func StateEQ(v State) predicate.Participant {
	return predicate.Participant(sql.FieldEQ(FieldState, v))
}

// StateNEQ applies the NEQ predicate on the "state" field.
func StateNEQ(v State) predicate.Participant {
	return predicate.Participant(sql.FieldNEQ(FieldState, v))
}

// StateIn applies the In predicate on the "state" field.
func StateIn(vs ...State) predicate.Participant {
	return predicate.Participant(sql.FieldIn(FieldState, vs...))
}

// StateNotIn applies the NotIn predicate on the "state" field.
func StateNotIn(vs ...State) predicate.Participant {
	return predicate.Participant(sql.FieldNotIn(FieldState, vs...))
}

// TurnOrderEQ applies the EQ predicate on the "turn_order" field.
func TurnOrderEQ(v int) predicate.Participant {
	return predicate.Participant(sql.FieldEQ(FieldTurnOrder, v))
}

// TurnOrderNEQ applies the NEQ predicate on the "turn_order" field.
func TurnOrderNEQ(v int) predicate.Participant {
	return predicate.Participant(sql.FieldNEQ(FieldTurnOrder, v))
}

// TurnOrderIn applies the In predicate on the "turn_order" field.
func TurnOrderIn(vs ...int) predicate.Participant {
	return predicate.Participant(sql.FieldIn(FieldTurnOrder, vs...))
}

// TurnOrderNotIn applies the NotIn predicate on the "turn_order" field.
func TurnOrderNotIn(vs ...int) predicate.Participant {
	return predicate.Participant(sql.FieldNotIn(FieldTurnOrder, vs...))
}

// TurnOrderGT applies the GT predicate on the "turn_order" field.
func TurnOrderGT(v int) predicate.Participant {
	return predicate.Participant(sql.FieldGT(FieldTurnOrder, v))
}

// TurnOrderGTE applies the GTE predicate on the "turn_order" field.
func TurnOrderGTE(v int) predicate.Participant {
	return predicate.Participant(sql.FieldGTE(FieldTurnOrder, v))
}

// TurnOrderLT applies the LT predicate on the "turn_order" field.
func TurnOrderLT(v int) predicate.Participant {
	return predicate.Participant(sql.FieldLT(FieldTurnOrder, v))
}

// TurnOrderLTE applies the LTE predicate on the "turn_order" field.
func TurnOrderLTE(v int) predicate.Participant {
	return predicate.Participant(sql.FieldLTE(FieldTurnOrder, v))
}

// PointsEQ applies the EQ predicate on the "points" field.
func PointsEQ(v int) predicate.Participant {
	return predicate.Participant(sql.FieldEQ(FieldPoints, v))
}

// PointsNEQ applies the NEQ predicate on the "points" field.
func PointsNEQ(v int) predicate.Participant {
	return predicate.Participant(sql.FieldNEQ(FieldPoints, v))
}

// PointsIn applies the In predicate on the "points" field.
func PointsIn(vs ...int) predicate.Participant {
	return predicate.Participant(sql.FieldIn(FieldPoints, vs...))
}

// PointsNotIn applies the NotIn predicate on the "points" field.
func PointsNotIn(vs ...int) predicate.Participant {
	return predicate.Participant(sql.FieldNotIn(FieldPoints, vs...))
}

// PointsGT applies the GT predicate on the "points" field.
func PointsGT(v int) predicate.Participant {
	return predicate.Participant(sql.FieldGT(FieldPoints, v))
}

// PointsGTE applies the GTE predicate on the "points" field.
func PointsGTE(v int) predicate.Participant {
	return predicate.Participant(sql.FieldGTE(FieldPoints, v))
}

// PointsLT applies the LT predicate on the "points" field.
func PointsLT(v int) predicate.Participant {
	return predicate.Participant(sql.FieldLT(FieldPoints, v))
}

// PointsLTE applies the LTE predicate on the "points" field.
func PointsLTE(v int) predicate.Participant {
	return predicate.Participant(sql.FieldLTE(FieldPoints, v))
}

// HasGame applies the HasEdge predicate on the "game" edge.
func HasGame() predicate.Participant {
	return predicate.Participant(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, GameTable, GameColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasGameWith applies the HasEdge predicate on the "game" edge with a given conditions (other predicates).
func HasGameWith(preds ...predicate.Game) predicate.Participant {
	return predicate.Participant(func(s *sql.Selector) {
		step := newGameStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasUser applies the HasEdge predicate on the "user" edge.
func HasUser() predicate.Participant {
	return predicate.Participant(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, UserTable, UserColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasUserWith applies the HasEdge predicate on the "user" edge with a given conditions (other predicates).
func HasUserWith(preds ...predicate.User) predicate.Participant {
	return predicate.Participant(func(s *sql.Selector) {
		step := newUserStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Participant) predicate.Participant {
	return predicate.Participant(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Participant) predicate.Participant {
	return predicate.Participant(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Participant) predicate.Participant {
	return predicate.Participant(sql.NotPredicates(p))
}
