// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/wordwheel/wheelbot/ent/game"
	"github.com/wordwheel/wheelbot/ent/participant"
	"github.com/wordwheel/wheelbot/ent/predicate"
)

// GameUpdate is the builder for updating Game entities.
type GameUpdate struct {
	config
	hooks    []Hook
	mutation *GameMutation
}

// Where appends a list predicates to the GameUpdate builder.
func (_u *GameUpdate) Where(ps ...predicate.Game) *GameUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetState sets the "state" field.
func (_u *GameUpdate) SetState(v game.State) *GameUpdate {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *GameUpdate) SetNillableState(v *game.State) *GameUpdate {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetRevealedLetters sets the "revealed_letters" field.
func (_u *GameUpdate) SetRevealedLetters(v string) *GameUpdate {
	_u.mutation.SetRevealedLetters(v)
	return _u
}

// SetNillableRevealedLetters sets the "revealed_letters" field if the given value is not nil.
func (_u *GameUpdate) SetNillableRevealedLetters(v *string) *GameUpdate {
	if v != nil {
		_u.SetRevealedLetters(*v)
	}
	return _u
}

// SetCurrentPlayerID sets the "current_player_id" field.
func (_u *GameUpdate) SetCurrentPlayerID(v int) *GameUpdate {
	_u.mutation.SetCurrentPlayerID(v)
	return _u
}

// SetNillableCurrentPlayerID sets the "current_player_id" field if the given value is not nil.
func (_u *GameUpdate) SetNillableCurrentPlayerID(v *int) *GameUpdate {
	if v != nil {
		_u.SetCurrentPlayerID(*v)
	}
	return _u
}

// ClearCurrentPlayerID clears the value of the "current_player_id" field.
func (_u *GameUpdate) ClearCurrentPlayerID() *GameUpdate {
	_u.mutation.ClearCurrentPlayerID()
	return _u
}

// SetBonusPoints sets the "bonus_points" field.
func (_u *GameUpdate) SetBonusPoints(v int) *GameUpdate {
	_u.mutation.ResetBonusPoints()
	_u.mutation.SetBonusPoints(v)
	return _u
}

// SetNillableBonusPoints sets the "bonus_points" field if the given value is not nil.
func (_u *GameUpdate) SetNillableBonusPoints(v *int) *GameUpdate {
	if v != nil {
		_u.SetBonusPoints(*v)
	}
	return _u
}

// AddBonusPoints adds value to the "bonus_points" field.
func (_u *GameUpdate) AddBonusPoints(v int) *GameUpdate {
	_u.mutation.AddBonusPoints(v)
	return _u
}

// AddParticipantIDs adds the "participants" edge to the Participant entity by IDs.
func (_u *GameUpdate) AddParticipantIDs(ids ...int) *GameUpdate {
	_u.mutation.AddParticipantIDs(ids...)
	return _u
}

// AddParticipants adds the "participants" edges to the Participant entity.
func (_u *GameUpdate) AddParticipants(v ...*Participant) *GameUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddParticipantIDs(ids...)
}

// SetCurrentPlayer sets the "current_player" edge to the Participant entity.
func (_u *GameUpdate) SetCurrentPlayer(v *Participant) *GameUpdate {
	return _u.SetCurrentPlayerID(v.ID)
}

// Mutation returns the GameMutation object of the builder.
func (_u *GameUpdate) Mutation() *GameMutation {
	return _u.mutation
}

// ClearParticipants clears all "participants" edges to the Participant entity.
func (_u *GameUpdate) ClearParticipants() *GameUpdate {
	_u.mutation.ClearParticipants()
	return _u
}

// RemoveParticipantIDs removes the "participants" edge to Participant entities by IDs.
func (_u *GameUpdate) RemoveParticipantIDs(ids ...int) *GameUpdate {
	_u.mutation.RemoveParticipantIDs(ids...)
	return _u
}

// RemoveParticipants removes "participants" edges to Participant entities.
func (_u *GameUpdate) RemoveParticipants(v ...*Participant) *GameUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveParticipantIDs(ids...)
}

// ClearCurrentPlayer clears the "current_player" edge to the Participant entity.
func (_u *GameUpdate) ClearCurrentPlayer() *GameUpdate {
	_u.mutation.ClearCurrentPlayer()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *GameUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GameUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *GameUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GameUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GameUpdate) check() error {
	if v, ok := _u.mutation.State(); ok {
		if err := game.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Game.state": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BonusPoints(); ok {
		if err := game.BonusPointsValidator(v); err != nil {
			return &ValidationError{Name: "bonus_points", err: fmt.Errorf(`ent: validator failed for field "Game.bonus_points": %w`, err)}
		}
	}
	if _u.mutation.QuestionCleared() && len(_u.mutation.QuestionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Game.question"`)
	}
	return nil
}

func (_u *GameUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(game.Table, game.Columns, sqlgraph.NewFieldSpec(game.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(game.FieldState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.RevealedLetters(); ok {
		_spec.SetField(game.FieldRevealedLetters, field.TypeString, value)
	}
	if value, ok := _u.mutation.BonusPoints(); ok {
		_spec.SetField(game.FieldBonusPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBonusPoints(); ok {
		_spec.AddField(game.FieldBonusPoints, field.TypeInt, value)
	}
	if _u.mutation.ParticipantsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   game.ParticipantsTable,
			Columns: []string{game.ParticipantsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(participant.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedParticipantsIDs(); len(nodes) > 0 && !_u.mutation.ParticipantsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   game.ParticipantsTable,
			Columns: []string{game.ParticipantsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(participant.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ParticipantsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   game.ParticipantsTable,
			Columns: []string{game.ParticipantsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(participant.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CurrentPlayerCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   game.CurrentPlayerTable,
			Columns: []string{game.CurrentPlayerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(participant.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CurrentPlayerIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   game.CurrentPlayerTable,
			Columns: []string{game.CurrentPlayerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(participant.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{game.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// GameUpdateOne is the builder for updating a single Game entity.
type GameUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *GameMutation
}

// SetState sets the "state" field.
func (_u *GameUpdateOne) SetState(v game.State) *GameUpdateOne {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *GameUpdateOne) SetNillableState(v *game.State) *GameUpdateOne {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetRevealedLetters sets the "revealed_letters" field.
func (_u *GameUpdateOne) SetRevealedLetters(v string) *GameUpdateOne {
	_u.mutation.SetRevealedLetters(v)
	return _u
}

// SetNillableRevealedLetters sets the "revealed_letters" field if the given value is not nil.
func (_u *GameUpdateOne) SetNillableRevealedLetters(v *string) *GameUpdateOne {
	if v != nil {
		_u.SetRevealedLetters(*v)
	}
	return _u
}

// SetCurrentPlayerID sets the "current_player_id" field.
func (_u *GameUpdateOne) SetCurrentPlayerID(v int) *GameUpdateOne {
	_u.mutation.SetCurrentPlayerID(v)
	return _u
}

// SetNillableCurrentPlayerID sets the "current_player_id" field if the given value is not nil.
func (_u *GameUpdateOne) SetNillableCurrentPlayerID(v *int) *GameUpdateOne {
	if v != nil {
		_u.SetCurrentPlayerID(*v)
	}
	return _u
}

// ClearCurrentPlayerID clears the value of the "current_player_id" field.
func (_u *GameUpdateOne) ClearCurrentPlayerID() *GameUpdateOne {
	_u.mutation.ClearCurrentPlayerID()
	return _u
}

// SetBonusPoints sets the "bonus_points" field.
func (_u *GameUpdateOne) SetBonusPoints(v int) *GameUpdateOne {
	_u.mutation.ResetBonusPoints()
	_u.mutation.SetBonusPoints(v)
	return _u
}

// SetNillableBonusPoints sets the "bonus_points" field if the given value is not nil.
func (_u *GameUpdateOne) SetNillableBonusPoints(v *int) *GameUpdateOne {
	if v != nil {
		_u.SetBonusPoints(*v)
	}
	return _u
}

// AddBonusPoints adds value to the "bonus_points" field.
func (_u *GameUpdateOne) AddBonusPoints(v int) *GameUpdateOne {
	_u.mutation.AddBonusPoints(v)
	return _u
}

// AddParticipantIDs adds the "participants" edge to the Participant entity by IDs.
func (_u *GameUpdateOne) AddParticipantIDs(ids ...int) *GameUpdateOne {
	_u.mutation.AddParticipantIDs(ids...)
	return _u
}

// AddParticipants adds the "participants" edges to the Participant entity.
func (_u *GameUpdateOne) AddParticipants(v ...*Participant) *GameUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddParticipantIDs(ids...)
}

// SetCurrentPlayer sets the "current_player" edge to the Participant entity.
func (_u *GameUpdateOne) SetCurrentPlayer(v *Participant) *GameUpdateOne {
	return _u.SetCurrentPlayerID(v.ID)
}

// Mutation returns the GameMutation object of the builder.
func (_u *GameUpdateOne) Mutation() *GameMutation {
	return _u.mutation
}

// ClearParticipants clears all "participants" edges to the Participant entity.
func (_u *GameUpdateOne) ClearParticipants() *GameUpdateOne {
	_u.mutation.ClearParticipants()
	return _u
}

// RemoveParticipantIDs removes the "participants" edge to Participant entities by IDs.
func (_u *GameUpdateOne) RemoveParticipantIDs(ids ...int) *GameUpdateOne {
	_u.mutation.RemoveParticipantIDs(ids...)
	return _u
}

// RemoveParticipants removes "participants" edges to Participant entities.
func (_u *GameUpdateOne) RemoveParticipants(v ...*Participant) *GameUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveParticipantIDs(ids...)
}

// ClearCurrentPlayer clears the "current_player" edge to the Participant entity.
func (_u *GameUpdateOne) ClearCurrentPlayer() *GameUpdateOne {
	_u.mutation.ClearCurrentPlayer()
	return _u
}

// Where appends a list predicates to the GameUpdate builder.
func (_u *GameUpdateOne) Where(ps ...predicate.Game) *GameUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *GameUpdateOne) Select(field string, fields ...string) *GameUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Game entity.
func (_u *GameUpdateOne) Save(ctx context.Context) (*Game, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GameUpdateOne) SaveX(ctx context.Context) *Game {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *GameUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GameUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GameUpdateOne) check() error {
	if v, ok := _u.mutation.State(); ok {
		if err := game.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Game.state": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BonusPoints(); ok {
		if err := game.BonusPointsValidator(v); err != nil {
			return &ValidationError{Name: "bonus_points", err: fmt.Errorf(`ent: validator failed for field "Game.bonus_points": %w`, err)}
		}
	}
	if _u.mutation.QuestionCleared() && len(_u.mutation.QuestionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Game.question"`)
	}
	return nil
}

func (_u *GameUpdateOne) sqlSave(ctx context.Context) (_node *Game, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(game.Table, game.Columns, sqlgraph.NewFieldSpec(game.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Game.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, game.FieldID)
		for _, f := range fields {
			if !game.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != game.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(game.FieldState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.RevealedLetters(); ok {
		_spec.SetField(game.FieldRevealedLetters, field.TypeString, value)
	}
	if value, ok := _u.mutation.BonusPoints(); ok {
		_spec.SetField(game.FieldBonusPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBonusPoints(); ok {
		_spec.AddField(game.FieldBonusPoints, field.TypeInt, value)
	}
	if _u.mutation.ParticipantsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   game.ParticipantsTable,
			Columns: []string{game.ParticipantsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(participant.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedParticipantsIDs(); len(nodes) > 0 && !_u.mutation.ParticipantsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   game.ParticipantsTable,
			Columns: []string{game.ParticipantsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(participant.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ParticipantsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   game.ParticipantsTable,
			Columns: []string{game.ParticipantsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(participant.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CurrentPlayerCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   game.CurrentPlayerTable,
			Columns: []string{game.CurrentPlayerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(participant.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CurrentPlayerIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   game.CurrentPlayerTable,
			Columns: []string{game.CurrentPlayerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(participant.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Game{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{game.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
