package entity

import "time"

type Faq struct {
	Id        uint
	Question  string
	Answer    string
	Category  string
	Keywords  string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt *time.Time
}
