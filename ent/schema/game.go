package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Game holds the schema definition for the Game entity.
// One round of the word game in one chat. At most one game per chat may be
// in a non-terminal state; a partial unique index enforces it (see
// pkg/database/migrations).
type Game struct {
	ent.Schema
}

// Fields of the Game.
func (Game) Fields() []ent.Field {
	return []ent.Field{
		field.Int("id").
			StorageKey("game_id"),
		field.Int64("chat_id").
			Immutable(),
		field.Enum("state").
			Values(
				"waiting_for_players",
				"next_player_turn",
				"player_turn",
				"waiting_for_letter",
				"waiting_for_word",
				"check_winner",
				"game_finished",
			).
			Default("waiting_for_players"),
		field.Int("question_id").
			Immutable(),
		field.String("revealed_letters").
			Default("").
			Comment("Uppercase letters named so far, no duplicates"),
		field.Int("current_player_id").
			Optional().
			Nillable(),
		field.Int("bonus_points").
			NonNegative().
			Default(0).
			Comment("Last wheel spin, points at stake this turn"),
	}
}

// Edges of the Game.
func (Game) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("question", Question.Type).
			Ref("games").
			Field("question_id").
			Unique().
			Required().
			Immutable(),
		edge.To("participants", Participant.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("current_player", Participant.Type).
			Field("current_player_id").
			Unique().
			Annotations(entsql.OnDelete(entsql.SetNull)),
	}
}

// Indexes of the Game.
func (Game) Indexes() []ent.Index {
	return []ent.Index{
		// Running-game lookup on /start
		index.Fields("chat_id"),
	}
}
