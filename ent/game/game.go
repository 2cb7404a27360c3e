// Code generated by ent, DO NOT EDIT.

package game

import (
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the game type in the database.
	Label = "game"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "game_id"
	// FieldChatID holds the string denoting the chat_id field in the database.
	FieldChatID = "chat_id"
	// FieldState holds the string denoting the state field in the database.
	FieldState = "state"
	// FieldQuestionID holds the string denoting the question_id field in the database.
	FieldQuestionID = "question_id"
	// FieldRevealedLetters holds the string denoting the revealed_letters field in the database.
	FieldRevealedLetters = "revealed_letters"
	// FieldCurrentPlayerID holds the string denoting the current_player_id field in the database.
	FieldCurrentPlayerID = "current_player_id"
	// FieldBonusPoints holds the string denoting the bonus_points field in the database.
	FieldBonusPoints = "bonus_points"
	// EdgeQuestion holds the string denoting the question edge name in mutations.
	EdgeQuestion = "question"
	// EdgeParticipants holds the string denoting the participants edge name in mutations.
	EdgeParticipants = "participants"
	// EdgeCurrentPlayer holds the string denoting the current_player edge name in mutations.
	EdgeCurrentPlayer = "current_player"
	// QuestionFieldID holds the string denoting the ID field of the Question.
	QuestionFieldID = "question_id"
	// ParticipantFieldID holds the string denoting the ID field of the Participant.
	ParticipantFieldID = "participant_id"
	// Table holds the table name of the game in the database.
	Table = "games"
	// QuestionTable is the table that holds the question relation/edge.
	QuestionTable = "games"
	// QuestionInverseTable is the table name for the Question entity.
	// It exists in this package in order to avoid circular dependency with the "question" package.
	QuestionInverseTable = "questions"
	// QuestionColumn is the table column denoting the question relation/edge.
	QuestionColumn = "question_id"
	// ParticipantsTable is the table that holds the participants relation/edge.
	ParticipantsTable = "game_participants"
	// ParticipantsInverseTable is the table name for the Participant entity.
	// It exists in this package in order to avoid circular dependency with the "participant" package.
	ParticipantsInverseTable = "game_participants"
	// ParticipantsColumn is the table column denoting the participants relation/edge.
	ParticipantsColumn = "game_id"
	// CurrentPlayerTable is the table that holds the current_player relation/edge.
	CurrentPlayerTable = "games"
	// CurrentPlayerInverseTable is the table name for the Participant entity.
	// It exists in this package in order to avoid circular dependency with the "participant" package.
	CurrentPlayerInverseTable = "game_participants"
	// CurrentPlayerColumn is the table column denoting the current_player relation/edge.
	CurrentPlayerColumn = "current_player_id"
)

// Columns holds all SQL columns for game fields.
var Columns = []string{
	FieldID,
	FieldChatID,
	FieldState,
	FieldQuestionID,
	FieldRevealedLetters,
	FieldCurrentPlayerID,
	FieldBonusPoints,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultRevealedLetters holds the default value on creation for the "revealed_letters" field.
	DefaultRevealedLetters string
	// DefaultBonusPoints holds the default value on creation for the "bonus_points" field.
	DefaultBonusPoints int
	// BonusPointsValidator is a validator for the "bonus_points" field. It is called by the builders before save.
	BonusPointsValidator func(int) error
)

// State defines the type for the "state" enum field.
type State string

// StateWaitingForPlayers is the default value of the State enum.
const DefaultState = StateWaitingForPlayers

// State values.
const (
	StateWaitingForPlayers State = "waiting_for_players"
	StateNextPlayerTurn    State = "next_player_turn"
	StatePlayerTurn        State = "player_turn"
	StateWaitingForLetter  State = "waiting_for_letter"
	StateWaitingForWord    State = "waiting_for_word"
	StateCheckWinner       State = "check_winner"
	StateGameFinished      State = "game_finished"
)

func (s State) String() string {
	return string(s)
}

// StateValidator is a validator for the "state" field enum values. It is called by the builders before save.
func StateValidator(s State) error {
	switch s {
	case StateWaitingForPlayers, StateNextPlayerTurn, StatePlayerTurn, StateWaitingForLetter, StateWaitingForWord, StateCheckWinner, StateGameFinished:
		return nil
	default:
		return fmt.Errorf("game: invalid enum value for state field: %q", s)
	}
}

// OrderOption defines the ordering options for the Game queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByChatID orders the results by the chat_id field.
func ByChatID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChatID, opts...).ToFunc()
}

// ByState orders the results by the state field.
func ByState(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldState, opts...).ToFunc()
}

// ByQuestionID orders the results by the question_id field.
func ByQuestionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionID, opts...).ToFunc()
}

// ByRevealedLetters orders the results by the revealed_letters field.
func ByRevealedLetters(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRevealedLetters, opts...).ToFunc()
}

// ByCurrentPlayerID orders the results by the current_player_id field.
func ByCurrentPlayerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentPlayerID, opts...).ToFunc()
}

// ByBonusPoints orders the results by the bonus_points field.
func ByBonusPoints(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBonusPoints, opts...).ToFunc()
}

// ByQuestionField orders the results by question field.
func ByQuestionField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newQuestionStep(), sql.OrderByField(field, opts...))
	}
}

// ByParticipantsCount orders the results by participants count.
func ByParticipantsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newParticipantsStep(), opts...)
	}
}

// ByParticipants orders the results by participants terms.
func ByParticipants(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newParticipantsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByCurrentPlayerField orders the results by current_player field.
func ByCurrentPlayerField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCurrentPlayerStep(), sql.OrderByField(field, opts...))
	}
}
func newQuestionStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(QuestionInverseTable, QuestionFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, QuestionTable, QuestionColumn),
	)
}
func newParticipantsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ParticipantsInverseTable, ParticipantFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ParticipantsTable, ParticipantsColumn),
	)
}
func newCurrentPlayerStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CurrentPlayerInverseTable, ParticipantFieldID),
		sqlgraph.Edge(sqlgraph.M2O, false, CurrentPlayerTable, CurrentPlayerColumn),
	)
}
