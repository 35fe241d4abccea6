package middleware

import (
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/aretw0/canova/pkg/domain"
	"github.com/aretw0/canova/pkg/ports"
)

// EncryptedAnswerID is the question id of the single answer holding the
// ciphertext of an encrypted response.
const EncryptedAnswerID = "__encrypted__"

// EncryptionConfig holds the keys for encryption and decryption.
type EncryptionConfig struct {
	// ActiveKey is the key used for encrypting new data.
	// Must be 32 bytes for AES-256.
	ActiveKey []byte

	// FallbackKeys is a list of old keys to try when decryption fails.
	// This enables zero-downtime key rotation.
	FallbackKeys [][]byte
}

// DecodeKey parses a base64 encoded AES-256 key.
func DecodeKey(encoded string) ([]byte, error) {
	key, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("failed to decode key: %w", err)
	}
	if len(key) != 32 {
		return nil, fmt.Errorf("key must be 32 bytes (AES-256), got %d", len(key))
	}
	return key, nil
}

type encryptionMiddleware struct {
	ports.Store
	config EncryptionConfig
}

// NewEncryptionMiddleware creates a middleware that encrypts the answers of
// every response with AES-GCM. Users, projects and forms pass through.
func NewEncryptionMiddleware(config EncryptionConfig) (Middleware, error) {
	if len(config.ActiveKey) != 32 {
		return nil, errors.New("active key must be 32 bytes (AES-256)")
	}
	return func(next ports.Store) ports.Store {
		return &encryptionMiddleware{Store: next, config: config}
	}, nil
}

func (m *encryptionMiddleware) SaveResponse(ctx context.Context, response *domain.Response) error {
	plainText, err := json.Marshal(response.Answers)
	if err != nil {
		return fmt.Errorf("failed to marshal answers: %w", err)
	}

	ciphertext, err := encrypt(plainText, m.config.ActiveKey)
	if err != nil {
		return fmt.Errorf("failed to encrypt answers: %w", err)
	}

	// The envelope keeps the metadata analytics need and hides every answer.
	envelope := *response
	envelope.Answers = []domain.Answer{{
		QuestionID: EncryptedAnswerID,
		Value:      base64.StdEncoding.EncodeToString(ciphertext),
	}}
	return m.Store.SaveResponse(ctx, &envelope)
}

func (m *encryptionMiddleware) GetResponse(ctx context.Context, id string) (*domain.Response, error) {
	envelope, err := m.Store.GetResponse(ctx, id)
	if err != nil {
		return nil, err
	}
	return m.open(envelope)
}

func (m *encryptionMiddleware) ListResponses(ctx context.Context, formID string) ([]*domain.Response, error) {
	envelopes, err := m.Store.ListResponses(ctx, formID)
	if err != nil {
		return nil, err
	}
	out := make([]*domain.Response, 0, len(envelopes))
	for _, e := range envelopes {
		r, err := m.open(e)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

func (m *encryptionMiddleware) open(envelope *domain.Response) (*domain.Response, error) {
	if len(envelope.Answers) != 1 || envelope.Answers[0].QuestionID != EncryptedAnswerID {
		return nil, fmt.Errorf("response %s is missing encrypted data envelope", envelope.ID)
	}
	encoded, ok := envelope.Answers[0].Value.(string)
	if !ok {
		return nil, fmt.Errorf("response %s has a malformed envelope", envelope.ID)
	}

	ciphertext, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("failed to decode ciphertext base64: %w", err)
	}

	plainText, err := decryptWithRotation(ciphertext, m.config.ActiveKey, m.config.FallbackKeys)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt response %s: %w", envelope.ID, err)
	}

	out := *envelope
	out.Answers = nil
	if err := json.Unmarshal(plainText, &out.Answers); err != nil {
		return nil, fmt.Errorf("failed to unmarshal decrypted answers: %w", err)
	}
	return &out, nil
}

func encrypt(plaintext []byte, key []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, err
	}

	return gcm.Seal(nonce, nonce, plaintext, nil), nil
}

func decryptWithRotation(ciphertext []byte, activeKey []byte, fallbackKeys [][]byte) ([]byte, error) {
	if plain, err := decrypt(ciphertext, activeKey); err == nil {
		return plain, nil
	}
	for _, key := range fallbackKeys {
		if plain, err := decrypt(ciphertext, key); err == nil {
			return plain, nil
		}
	}
	return nil, errors.New("decryption failed with all available keys")
}

func decrypt(ciphertext []byte, key []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	if len(ciphertext) < gcm.NonceSize() {
		return nil, errors.New("ciphertext too short")
	}

	nonce := ciphertext[:gcm.NonceSize()]
	return gcm.Open(nil, nonce, ciphertext[gcm.NonceSize():], nil)
}
