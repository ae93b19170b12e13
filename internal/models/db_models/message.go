package db_models

import "github.com/google/uuid"

type Message struct {
	BaseModel
	SenderID   uuid.UUID `gorm:"index"`
	ReceiverID uuid.UUID `gorm:"index"`

	Body string `gorm:"size:1000"`
	Read bool   `gorm:"default:false"`

	Sender   Account `gorm:"foreignKey:SenderID"`
	Receiver Account `gorm:"foreignKey:ReceiverID"`
}
