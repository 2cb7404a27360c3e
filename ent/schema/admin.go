package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Admin holds the schema definition for the Admin entity.
// Panel accounts; the base admin is bootstrapped from config at startup.
type Admin struct {
	ent.Schema
}

// Fields of the Admin.
func (Admin) Fields() []ent.Field {
	return []ent.Field{
		field.String("email").
			Unique(),
		field.String("password").
			Sensitive().
			Comment("SHA-256 hex digest"),
	}
}

// Indexes of the Admin.
func (Admin) Indexes() []ent.Index {
	return []ent.Index{
		// Login lookup
		index.Fields("email").
			Unique(),
	}
}
