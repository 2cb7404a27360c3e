// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AdminsColumns holds the columns for the "admins" table.
	AdminsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "email", Type: field.TypeString, Unique: true},
		{Name: "password", Type: field.TypeString},
	}
	// AdminsTable holds the schema information for the "admins" table.
	AdminsTable = &schema.Table{
		Name:       "admins",
		Columns:    AdminsColumns,
		PrimaryKey: []*schema.Column{AdminsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "admin_email",
				Unique:  true,
				Columns: []*schema.Column{AdminsColumns[1]},
			},
		},
	}
	// GamesColumns holds the columns for the "games" table.
	GamesColumns = []*schema.Column{
		{Name: "game_id", Type: field.TypeInt, Increment: true},
		{Name: "chat_id", Type: field.TypeInt64},
		{Name: "state", Type: field.TypeEnum, Enums: []string{"waiting_for_players", "next_player_turn", "player_turn", "waiting_for_letter", "waiting_for_word", "check_winner", "game_finished"}, Default: "waiting_for_players"},
		{Name: "revealed_letters", Type: field.TypeString, Default: ""},
		{Name: "bonus_points", Type: field.TypeInt, Default: 0},
		{Name: "current_player_id", Type: field.TypeInt, Nullable: true},
		{Name: "question_id", Type: field.TypeInt},
	}
	// GamesTable holds the schema information for the "games" table.
	GamesTable = &schema.Table{
		Name:       "games",
		Columns:    GamesColumns,
		PrimaryKey: []*schema.Column{GamesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "games_game_participants_current_player",
				Columns:    []*schema.Column{GamesColumns[5]},
				RefColumns: []*schema.Column{GameParticipantsColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "games_questions_games",
				Columns:    []*schema.Column{GamesColumns[6]},
				RefColumns: []*schema.Column{QuestionsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "game_chat_id",
				Unique:  false,
				Columns: []*schema.Column{GamesColumns[1]},
			},
		},
	}
	// GameParticipantsColumns holds the columns for the "game_participants" table.
	GameParticipantsColumns = []*schema.Column{
		{Name: "participant_id", Type: field.TypeInt, Increment: true},
		{Name: "state", Type: field.TypeEnum, Enums: []string{"waiting", "active_turn", "winner", "loser", "left"}, Default: "waiting"},
		{Name: "turn_order", Type: field.TypeInt},
		{Name: "points", Type: field.TypeInt, Default: 0},
		{Name: "game_id", Type: field.TypeInt},
		{Name: "user_id", Type: field.TypeInt},
	}
	// GameParticipantsTable holds the schema information for the "game_participants" table.
	GameParticipantsTable = &schema.Table{
		Name:       "game_participants",
		Columns:    GameParticipantsColumns,
		PrimaryKey: []*schema.Column{GameParticipantsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "game_participants_games_participants",
				Columns:    []*schema.Column{GameParticipantsColumns[4]},
				RefColumns: []*schema.Column{GamesColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "game_participants_users_participations",
				Columns:    []*schema.Column{GameParticipantsColumns[5]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "participant_user_id_game_id",
				Unique:  true,
				Columns: []*schema.Column{GameParticipantsColumns[5], GameParticipantsColumns[4]},
			},
			{
				Name:    "participant_game_id",
				Unique:  false,
				Columns: []*schema.Column{GameParticipantsColumns[4]},
			},
		},
	}
	// QuestionsColumns holds the columns for the "questions" table.
	QuestionsColumns = []*schema.Column{
		{Name: "question_id", Type: field.TypeInt, Increment: true},
		{Name: "question", Type: field.TypeString, Unique: true},
		{Name: "answer", Type: field.TypeString, Unique: true},
	}
	// QuestionsTable holds the schema information for the "questions" table.
	QuestionsTable = &schema.Table{
		Name:       "questions",
		Columns:    QuestionsColumns,
		PrimaryKey: []*schema.Column{QuestionsColumns[0]},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "user_id", Type: field.TypeInt, Increment: true},
		{Name: "tg_user_id", Type: field.TypeInt64, Unique: true},
		{Name: "username", Type: field.TypeString},
		{Name: "first_name", Type: field.TypeString, Nullable: true},
		{Name: "last_name", Type: field.TypeString, Nullable: true},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "user_tg_user_id",
				Unique:  true,
				Columns: []*schema.Column{UsersColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AdminsTable,
		GamesTable,
		GameParticipantsTable,
		QuestionsTable,
		UsersTable,
	}
)

func init() {
	GamesTable.ForeignKeys[0].RefTable = GameParticipantsTable
	GamesTable.ForeignKeys[1].RefTable = QuestionsTable
	GameParticipantsTable.ForeignKeys[0].RefTable = GamesTable
	GameParticipantsTable.ForeignKeys[1].RefTable = UsersTable
	GameParticipantsTable.Annotation = &entsql.Annotation{
		Table: "game_participants",
	}
}
