package types

import (
  "time"

  "gorm.io/datatypes"
)

type ChatSession struct {
  ID          uint              `gorm:"primaryKey;autoIncrement" json:"id"`
  UserID      uint              `gorm:"index;not null" json:"userId"`
  User        *User             `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"user,omitempty"`

  Title       string            `gorm:"column:title" json:"title"`
  Metadata    datatypes.JSON    `gorm:"column:metadata" json:"metadata,omitempty"`

  CreatedAt   time.Time         `gorm:"not null" json:"createdAt"`
}

func (ChatSession) TableName() string {
  return "chat_session"
}
