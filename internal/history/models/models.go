package models

import (
	"time"

	walletModels "blocktrust/internal/wallet/models"
	id "blocktrust/pkg/domain"
)

// SignatureRecord is one entry in a user's signing history. Duress entries
// are stored exactly like normal ones; history must look uneventful to
// anyone reading over the owner's shoulder.
type SignatureRecord struct {
	ID           id.EventID
	UserID       id.UserID
	PayloadHash  string
	Signature    string
	DocumentName string
	DocumentURL  string
	Mode         walletModels.SignatureMode
	TxRef        *string
	SignedAt     time.Time
}
