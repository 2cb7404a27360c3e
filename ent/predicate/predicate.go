// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Admin is the predicate function for admin builders.
type Admin func(*sql.Selector)

// Game is the predicate function for game builders.
type Game func(*sql.Selector)

// Participant is the predicate function for participant builders.
type Participant func(*sql.Selector)

// Question is the predicate function for question builders.
type Question func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)
