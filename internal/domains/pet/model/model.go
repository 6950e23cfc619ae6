package model

import "petcare/shared/model"

const (
	TableName  = "pets"
	EntityName = "pet"

	FieldID      = "id"
	FieldOwnerID = "owner_id"
	FieldName    = "name"
	FieldSpecies = "species"
	FieldBreed   = "breed"
	FieldActive  = "active"
)

type Pet struct {
	ID      string  `db:"id"`
	OwnerID string  `db:"owner_id"`
	Name    string  `db:"name"`
	Species string  `db:"species"`
	Breed   *string `db:"breed"`
	Active  bool    `db:"active"`
	model.Metadata
}
