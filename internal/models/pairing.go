package models

// Pairing is a giver and receiver, by name
type Pairing struct {
	From string
	To   string
}
