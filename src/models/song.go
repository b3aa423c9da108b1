package models

// Song is a read-only catalog entry.
type Song struct {
	ID       int    `bson:"id" json:"id"`
	Title    string `bson:"title" json:"title"`
	Order    int    `bson:"order" json:"order"`
	IsActive bool   `bson:"isActive" json:"isActive"`
}

type MainPosition = string

type DetailedPosition = string
