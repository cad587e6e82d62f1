package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// WebhookReceipt records every verified webhook delivery, recognized topic
// or not, so replays and gaps can be diagnosed later.
type WebhookReceipt struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Topic     string         `gorm:"size:64;not null;index" json:"topic"`
	Payload   datatypes.JSON `gorm:"type:jsonb" json:"payload,omitempty"`
	Handled   bool           `json:"handled"`
	CreatedAt time.Time      `json:"created_at"`
}

// BeforeCreate hook - auto-generate UUID v7
func (wr *WebhookReceipt) BeforeCreate(tx *gorm.DB) error {
	if wr.ID == uuid.Nil {
		wr.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (WebhookReceipt) TableName() string {
	return "webhook_receipts"
}

// StockAlert is a "notify me when back in stock" request. NotifiedAt stays
// nil until the inventory webhook for the variant's product fires with
// positive stock in the requested region.
type StockAlert struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Email      string     `gorm:"size:255;not null;index" json:"email"`
	Handle     string     `gorm:"size:255;not null;index" json:"handle"`
	RegionID   string     `gorm:"size:32" json:"region_id,omitempty"`
	NotifiedAt *time.Time `json:"notified_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

// BeforeCreate hook - auto-generate UUID v7
func (sa *StockAlert) BeforeCreate(tx *gorm.DB) error {
	if sa.ID == uuid.Nil {
		sa.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (StockAlert) TableName() string {
	return "stock_alerts"
}
