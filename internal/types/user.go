package types

import (
  "time"
)

type User struct {
  ID          uint            `gorm:"primaryKey;autoIncrement" json:"id"`
  FirstName   string          `gorm:"column:first_name" json:"firstName"`
  LastName    string          `gorm:"column:last_name" json:"lastName"`
  Email       string          `gorm:"uniqueIndex;not null;column:email" json:"email"`

  CreatedAt   time.Time       `gorm:"not null" json:"createdAt"`
  UpdatedAt   time.Time       `gorm:"not null" json:"updatedAt"`
}

func (User) TableName() string {
  return "user"
}
