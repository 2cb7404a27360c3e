// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/wordwheel/wheelbot/ent/game"
	"github.com/wordwheel/wheelbot/ent/participant"
	"github.com/wordwheel/wheelbot/ent/question"
)

// GameCreate is the builder for creating a Game entity.
type GameCreate struct {
	config
	mutation *GameMutation
	hooks    []Hook
}

// SetChatID sets the "chat_id" field.
func (_c *GameCreate) SetChatID(v int64) *GameCreate {
	_c.mutation.SetChatID(v)
	return _c
}

// SetState sets the "state" field.
func (_c *GameCreate) SetState(v game.State) *GameCreate {
	_c.mutation.SetState(v)
	return _c
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_c *GameCreate) SetNillableState(v *game.State) *GameCreate {
	if v != nil {
		_c.SetState(*v)
	}
	return _c
}

// SetQuestionID sets the "question_id" field.
func (_c *GameCreate) SetQuestionID(v int) *GameCreate {
	_c.mutation.SetQuestionID(v)
	return _c
}

// SetRevealedLetters sets the "revealed_letters" field.
func (_c *GameCreate) SetRevealedLetters(v string) *GameCreate {
	_c.mutation.SetRevealedLetters(v)
	return _c
}

// SetNillableRevealedLetters sets the "revealed_letters" field if the given value is not nil.
func (_c *GameCreate) SetNillableRevealedLetters(v *string) *GameCreate {
	if v != nil {
		_c.SetRevealedLetters(*v)
	}
	return _c
}

// SetCurrentPlayerID sets the "current_player_id" field.
func (_c *GameCreate) SetCurrentPlayerID(v int) *GameCreate {
	_c.mutation.SetCurrentPlayerID(v)
	return _c
}

// SetNillableCurrentPlayerID sets the "current_player_id" field if the given value is not nil.
func (_c *GameCreate) SetNillableCurrentPlayerID(v *int) *GameCreate {
	if v != nil {
		_c.SetCurrentPlayerID(*v)
	}
	return _c
}

// SetBonusPoints sets the "bonus_points" field.
func (_c *GameCreate) SetBonusPoints(v int) *GameCreate {
	_c.mutation.SetBonusPoints(v)
	return _c
}

// SetNillableBonusPoints sets the "bonus_points" field if the given value is not nil.
func (_c *GameCreate) SetNillableBonusPoints(v *int) *GameCreate {
	if v != nil {
		_c.SetBonusPoints(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *GameCreate) SetID(v int) *GameCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetQuestion sets the "question" edge to the Question entity.
func (_c *GameCreate) SetQuestion(v *Question) *GameCreate {
	return _c.SetQuestionID(v.ID)
}

// AddParticipantIDs adds the "participants" edge to the Participant entity by IDs.
func (_c *GameCreate) AddParticipantIDs(ids ...int) *GameCreate {
	_c.mutation.AddParticipantIDs(ids...)
	return _c
}

// AddParticipants adds the "participants" edges to the Participant entity.
func (_c *GameCreate) AddParticipants(v ...*Participant) *GameCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddParticipantIDs(ids...)
}

// SetCurrentPlayer sets the "current_player" edge to the Participant entity.
func (_c *GameCreate) SetCurrentPlayer(v *Participant) *GameCreate {
	return _c.SetCurrentPlayerID(v.ID)
}

// Mutation returns the GameMutation object of the builder.
func (_c *GameCreate) Mutation() *GameMutation {
	return _c.mutation
}

// Save creates the Game in the database.
func (_c *GameCreate) Save(ctx context.Context) (*Game, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *GameCreate) SaveX(ctx context.Context) *Game {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GameCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GameCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *GameCreate) defaults() {
	if _, ok := _c.mutation.State(); !ok {
		v := game.DefaultState
		_c.mutation.SetState(v)
	}
	if _, ok := _c.mutation.RevealedLetters(); !ok {
		v := game.DefaultRevealedLetters
		_c.mutation.SetRevealedLetters(v)
	}
	if _, ok := _c.mutation.BonusPoints(); !ok {
		v := game.DefaultBonusPoints
		_c.mutation.SetBonusPoints(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *GameCreate) check() error {
	if _, ok := _c.mutation.ChatID(); !ok {
		return &ValidationError{Name: "chat_id", err: errors.New(`ent: missing required field "Game.chat_id"`)}
	}
	if _, ok := _c.mutation.State(); !ok {
		return &ValidationError{Name: "state", err: errors.New(`ent: missing required field "Game.state"`)}
	}
	if v, ok := _c.mutation.State(); ok {
		if err := game.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Game.state": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QuestionID(); !ok {
		return &ValidationError{Name: "question_id", err: errors.New(`ent: missing required field "Game.question_id"`)}
	}
	if _, ok := _c.mutation.RevealedLetters(); !ok {
		return &ValidationError{Name: "revealed_letters", err: errors.New(`ent: missing required field "Game.revealed_letters"`)}
	}
	if _, ok := _c.mutation.BonusPoints(); !ok {
		return &ValidationError{Name: "bonus_points", err: errors.New(`ent: missing required field "Game.bonus_points"`)}
	}
	if v, ok := _c.mutation.BonusPoints(); ok {
		if err := game.BonusPointsValidator(v); err != nil {
			return &ValidationError{Name: "bonus_points", err: fmt.Errorf(`ent: validator failed for field "Game.bonus_points": %w`, err)}
		}
	}
	if len(_c.mutation.QuestionIDs()) == 0 {
		return &ValidationError{Name: "question", err: errors.New(`ent: missing required edge "Game.question"`)}
	}
	return nil
}

func (_c *GameCreate) sqlSave(ctx context.Context) (*Game, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != _node.ID {
		id := _spec.ID.Value.(int64)
		_node.ID = int(id)
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *GameCreate) createSpec() (*Game, *sqlgraph.CreateSpec) {
	var (
		_node = &Game{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(game.Table, sqlgraph.NewFieldSpec(game.FieldID, field.TypeInt))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ChatID(); ok {
		_spec.SetField(game.FieldChatID, field.TypeInt64, value)
		_node.ChatID = value
	}
	if value, ok := _c.mutation.State(); ok {
		_spec.SetField(game.FieldState, field.TypeEnum, value)
		_node.State = value
	}
	if value, ok := _c.mutation.RevealedLetters(); ok {
		_spec.SetField(game.FieldRevealedLetters, field.TypeString, value)
		_node.RevealedLetters = value
	}
	if value, ok := _c.mutation.BonusPoints(); ok {
		_spec.SetField(game.FieldBonusPoints, field.TypeInt, value)
		_node.BonusPoints = value
	}
	if nodes := _c.mutation.QuestionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   game.QuestionTable,
			Columns: []string{game.QuestionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(question.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.QuestionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ParticipantsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.CurrentPlayerIDs(); len(nodes) > 0 {
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
		_node.CurrentPlayerID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// GameCreateBulk is the builder for creating many Game entities in bulk.
type GameCreateBulk struct {
	config
	err      error
	builders []*GameCreate
}

// Save creates the Game entities in the database.
func (_c *GameCreateBulk) Save(ctx context.Context) ([]*Game, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Game, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*GameMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil && nodes[i].ID == 0 {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *GameCreateBulk) SaveX(ctx context.Context) []*Game {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GameCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GameCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
