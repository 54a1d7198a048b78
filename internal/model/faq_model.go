package model

import (
	"time"
)

type Faq struct {
	Id        uint      `gorm:"primaryKey;autoIncrement"`
	Question  string    `gorm:"type:text;not null"`
	Answer    string    `gorm:"type:text;not null"`
	Category  string    `gorm:"type:varchar(100);index"`
	Keywords  string    `gorm:"type:text"` // comma-joined terms
	IsActive  bool      `gorm:"default:true;index"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Faq) TableName() string {
	return "faqs"
}
