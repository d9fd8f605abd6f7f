package types

import (
  "time"
)

type Event struct {
  ID                  uint            `gorm:"primaryKey;autoIncrement" json:"id"`
  CampusID            uint            `gorm:"index;not null" json:"campusId"`
  Campus              *Campus         `gorm:"constraint:OnDelete:CASCADE;foreignKey:CampusID;references:ID" json:"campus,omitempty"`

  Title               string          `gorm:"column:title" json:"title"`
  ProgramType         string          `gorm:"column:program_type" json:"programType"`
  DateTime            time.Time       `gorm:"not null;column:date_time" json:"dateTime"`
  EndDateTime         *time.Time      `gorm:"column:end_date_time" json:"endDateTime,omitempty"`
  ParticipantCount    *int            `gorm:"column:participant_count" json:"participantCount,omitempty"`
  Rating              *float64        `gorm:"column:rating" json:"rating,omitempty"`

  CreatedAt           time.Time       `gorm:"not null" json:"createdAt"`
  UpdatedAt           time.Time       `gorm:"not null" json:"updatedAt"`
}

func (Event) TableName() string {
  return "event"
}

// EventCreate is the insert payload. DateTime and EndDateTime arrive as
// strings and are coerced by the repo before the row is written.
type EventCreate struct {
  CampusID            uint        `json:"campusId"`
  Title               string      `json:"title"`
  ProgramType         string      `json:"programType"`
  DateTime            string      `json:"dateTime"`
  EndDateTime         *string     `json:"endDateTime,omitempty"`
  ParticipantCount    *int        `json:"participantCount,omitempty"`
  Rating              *float64    `json:"rating,omitempty"`
}

// EventUpdate carries a partial update: nil fields are left untouched. A
// present but empty EndDateTime clears the column to NULL.
type EventUpdate struct {
  Title               *string     `json:"title,omitempty"`
  ProgramType         *string     `json:"programType,omitempty"`
  DateTime            *string     `json:"dateTime,omitempty"`
  EndDateTime         *string     `json:"endDateTime,omitempty"`
  ParticipantCount    *int        `json:"participantCount,omitempty"`
  Rating              *float64    `json:"rating,omitempty"`
}

// EventTypeCount is one group of the per-campus program type distribution.
type EventTypeCount struct {
  ProgramType   string    `json:"programType"`
  Count         int64     `json:"count"`
}

// MonthlyParticipation is the participant total for one calendar month.
type MonthlyParticipation struct {
  Month           string    `json:"month"`
  Participants    int       `json:"participants"`
}
