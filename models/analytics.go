package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// AnalyticsEvent is one server-side marketing event (page view, add to cart,
// region selected, checkout started). Properties are free-form JSONB.
type AnalyticsEvent struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Name       string         `gorm:"size:64;not null;index" json:"name"`
	VisitorID  string         `gorm:"size:64;index" json:"visitor_id"`
	RegionID   string         `gorm:"size:32;index" json:"region_id,omitempty"`
	Properties datatypes.JSON `gorm:"type:jsonb" json:"properties,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
}

// BeforeCreate hook - auto-generate UUID v7
func (e *AnalyticsEvent) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (AnalyticsEvent) TableName() string {
	return "analytics_events"
}

// EventStat is one row of the aggregated event counts.
type EventStat struct {
	Name  string `json:"name"`
	Day   string `json:"day"`
	Count int64  `json:"count"`
}
