package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// DomainsConfigModel mirrors the 'domains_configurations' table. The aggregate
// body is stored as a JSONB payload; the version column drives optimistic locking.
type DomainsConfigModel struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key"`
	StoreID   uuid.UUID      `gorm:"type:uuid;uniqueIndex;not null"`
	Payload   datatypes.JSON `gorm:"type:jsonb;not null"`
	Version   int            `gorm:"not null;default:1"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (DomainsConfigModel) TableName() string {
	return "domains_configurations"
}

// AppsConfigModel mirrors the 'apps_channels_configurations' table.
type AppsConfigModel struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key"`
	StoreID   uuid.UUID      `gorm:"type:uuid;uniqueIndex;not null"`
	Payload   datatypes.JSON `gorm:"type:jsonb;not null"`
	Version   int            `gorm:"not null;default:1"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (AppsConfigModel) TableName() string {
	return "apps_channels_configurations"
}

// ShippingConfigModel mirrors the 'shipping_configurations' table.
type ShippingConfigModel struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key"`
	StoreID   uuid.UUID      `gorm:"type:uuid;uniqueIndex;not null"`
	Payload   datatypes.JSON `gorm:"type:jsonb;not null"`
	Version   int            `gorm:"not null;default:1"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ShippingConfigModel) TableName() string {
	return "shipping_configurations"
}

// PoliciesConfigModel mirrors the 'policies_configurations' table.
type PoliciesConfigModel struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key"`
	StoreID   uuid.UUID      `gorm:"type:uuid;uniqueIndex;not null"`
	Payload   datatypes.JSON `gorm:"type:jsonb;not null"`
	Version   int            `gorm:"not null;default:1"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (PoliciesConfigModel) TableName() string {
	return "policies_configurations"
}
