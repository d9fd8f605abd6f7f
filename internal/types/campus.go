package types

import (
  "time"
)

type Campus struct {
  ID          uint            `gorm:"primaryKey;autoIncrement" json:"id"`
  Name        string          `gorm:"not null;column:name" json:"name"`
  Address     string          `gorm:"column:address" json:"address"`

  CreatedAt   time.Time       `gorm:"not null" json:"createdAt"`
  UpdatedAt   time.Time       `gorm:"not null" json:"updatedAt"`
}

func (Campus) TableName() string {
  return "campus"
}

// CampusUpdate carries a partial update: nil fields are left untouched.
type CampusUpdate struct {
  Name      *string     `json:"name,omitempty"`
  Address   *string     `json:"address,omitempty"`
}
