package models

import "time"

const (
	DocumentTypeSelfieWithDocument = "SELFIE_WITH_DOCUMENT"
	DocumentTypeIDDocument         = "ID_DOCUMENT"
)

const (
	DocumentStatusPending  = "PENDING"
	DocumentStatusApproved = "APPROVED"
	DocumentStatusRejected = "REJECTED"
)

// UserDocument é um documento de verificação de identidade. Um usuário
// mantém no máximo um documento por tipo; substituir a URL devolve o
// documento para a fila de revisão.
type UserDocument struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `gorm:"uniqueIndex:idx_document_user_type;not null" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Type string `gorm:"size:30;uniqueIndex:idx_document_user_type;not null" json:"type"`
	URL  string `gorm:"size:500;not null" json:"url"`

	Status          string     `gorm:"size:20;default:'PENDING'" json:"status"`
	RejectionReason string     `gorm:"size:500" json:"rejection_reason"`
	ReviewedAt      *time.Time `json:"reviewed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
