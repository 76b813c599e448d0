//go:build unit
// +build unit

package app

import (
	"bytes"
	"context"
	"testing"

	"github.com/MGTheTrain/text-vault/internal/domain/crypto"
	"github.com/MGTheTrain/text-vault/internal/domain/keys"
	"github.com/MGTheTrain/text-vault/internal/pkg/testutil"

	"github.com/stretchr/testify/require"
)

func setupServices(t *testing.T) *Services {
	t.Helper()
	logger := testutil.SetupTestLogger(t)
	services, err := NewServices(logger, bytes.NewReader(nil))
	require.NoError(t, err)
	return services
}

func generateKeys(t *testing.T, services *Services, alg crypto.Algorithm) *keys.GeneratedKeySet {
	t.Helper()
	set, err := services.KeyGenerationService.Generate(context.Background(), alg)
	require.NoError(t, err)
	t.Cleanup(set.Zero)
	return set
}

func keyReader(set *keys.GeneratedKeySet, role crypto.KeyRole) *bytes.Reader {
	for _, k := range set.Keys {
		if k.Role == role {
			return bytes.NewReader(append([]byte(nil), k.Bytes...))
		}
	}
	return bytes.NewReader(nil)
}
