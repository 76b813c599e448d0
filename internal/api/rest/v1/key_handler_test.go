//go:build unit
// +build unit

package v1

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/MGTheTrain/text-vault/internal/domain/crypto"
	"github.com/MGTheTrain/text-vault/internal/domain/keys"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestKeyHandler_GenerateKeys_Success(t *testing.T) {
	mockKeyService := new(MockKeyGenerationService)
	handler := NewKeyHandler(mockKeyService)

	set := &keys.GeneratedKeySet{
		KeyPairID: "pair-123",
		Algorithm: crypto.AlgorithmEd25519,
		Keys: []*crypto.KeyMaterial{
			{Algorithm: crypto.AlgorithmEd25519, Role: crypto.KeyRolePrivate, Bytes: bytes.Repeat([]byte("k"), 32)},
			{Algorithm: crypto.AlgorithmEd25519, Role: crypto.KeyRolePublic, Bytes: bytes.Repeat([]byte("p"), 32)},
		},
		DateTimeCreated: time.Now(),
	}

	mockKeyService.
		On("Generate", mock.Anything, crypto.AlgorithmEd25519).
		Return(set, nil)

	c, w := newJSONContext(`{"algorithm": "ed25519"}`)
	handler.GenerateKeys(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var response []KeyResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response, 2)
	assert.Equal(t, "pair-123", response[0].KeyPairID)
	assert.Equal(t, "private", response[0].Type)
	assert.Equal(t, testKey, response[0].Key)
	assert.Equal(t, "public", response[1].Type)

	// key bytes are wiped once the response is written
	assert.Equal(t, make([]byte, 32), set.Keys[0].Bytes)
	mockKeyService.AssertExpectations(t)
}

func TestKeyHandler_GenerateKeys_InvalidAlgorithm(t *testing.T) {
	mockKeyService := new(MockKeyGenerationService)
	handler := NewKeyHandler(mockKeyService)

	c, w := newJSONContext(`{"algorithm": "rsa"}`)
	handler.GenerateKeys(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockKeyService.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything)
}

func TestKeyHandler_GenerateKeys_ServiceError(t *testing.T) {
	mockKeyService := new(MockKeyGenerationService)
	handler := NewKeyHandler(mockKeyService)

	mockKeyService.
		On("Generate", mock.Anything, crypto.AlgorithmBlake3).
		Return(nil, errors.New("entropy exhausted"))

	c, w := newJSONContext(`{"algorithm": "blake3"}`)
	handler.GenerateKeys(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "entropy exhausted")
}
