package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Participant holds the schema definition for the Participant entity.
// Membership of one user in one game, with turn order and score.
type Participant struct {
	ent.Schema
}

// Annotations of the Participant.
func (Participant) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "game_participants"},
	}
}

// Fields of the Participant.
func (Participant) Fields() []ent.Field {
	return []ent.Field{
		field.Int("id").
			StorageKey("participant_id"),
		field.Int("game_id").
			Immutable(),
		field.Int("user_id").
			Immutable(),
		field.Enum("state").
			Values("waiting", "active_turn", "winner", "loser", "left").
			Default("waiting"),
		field.Int("turn_order").
			NonNegative().
			Immutable().
			Comment("0-based join order, drives round-robin"),
		field.Int("points").
			Default(0),
	}
}

// Edges of the Participant.
func (Participant) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("game", Game.Type).
			Ref("participants").
			Field("game_id").
			Unique().
			Required().
			Immutable(),
		edge.From("user", User.Type).
			Ref("participations").
			Field("user_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Participant.
func (Participant) Indexes() []ent.Index {
	return []ent.Index{
		// One membership per user per game
		index.Fields("user_id", "game_id").
			Unique(),
		// Player listing
		index.Fields("game_id"),
	}
}
