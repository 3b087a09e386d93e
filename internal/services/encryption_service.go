package services

import (
	"daisy/internal/crypto"
	"daisy/internal/models"
)

// EncryptionService wraps the crypto sealer with petal-specific methods.
// A nil *EncryptionService is valid and leaves petals untouched.
type EncryptionService struct {
	sealer *crypto.Sealer
}

// NewEncryptionService creates a new encryption service from a 32-byte key.
func NewEncryptionService(key []byte) (*EncryptionService, error) {
	sealer, err := crypto.NewSealer(key)
	if err != nil {
		return nil, err
	}
	return &EncryptionService{sealer: sealer}, nil
}

// EncryptPetal encrypts the free-text petal fields before storing in DB.
// Day and time tags stay in clear text.
func (s *EncryptionService) EncryptPetal(p *models.Petal) error {
	if s == nil {
		return nil
	}
	for _, field := range []*string{&p.Text, &p.CurrentEmotion, &p.DesiredEmotion} {
		sealed, err := s.sealer.Seal(*field)
		if err != nil {
			return err
		}
		*field = sealed
	}
	return nil
}

// DecryptPetal decrypts petal fields after retrieving from DB.
func (s *EncryptionService) DecryptPetal(p *models.Petal) error {
	if s == nil {
		return nil
	}
	for _, field := range []*string{&p.Text, &p.CurrentEmotion, &p.DesiredEmotion} {
		opened, err := s.sealer.Open(*field)
		if err != nil {
			return err
		}
		*field = opened
	}
	return nil
}

// EncryptText seals a single text value, used by text-only updates.
func (s *EncryptionService) EncryptText(text string) (string, error) {
	if s == nil {
		return text, nil
	}
	return s.sealer.Seal(text)
}
