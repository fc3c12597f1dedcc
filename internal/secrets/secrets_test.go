package secrets

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/security/keyvault/azsecrets"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeFetcher struct {
	values map[string]string
	calls  int
}

func (f *fakeFetcher) GetSecret(_ context.Context, name string, _ string, _ *azsecrets.GetSecretOptions) (azsecrets.GetSecretResponse, error) {
	f.calls++
	value, ok := f.values[name]
	if !ok {
		return azsecrets.GetSecretResponse{}, errors.New("SecretNotFound")
	}
	return azsecrets.GetSecretResponse{Secret: azsecrets.Secret{Value: &value}}, nil
}

func TestResolveSource(t *testing.T) {
	assert.Equal(t, SourceEnvironment, ResolveSource(SourceAuto, "development"))
	assert.Equal(t, SourceEnvironment, ResolveSource(SourceAuto, ""))
	assert.Equal(t, SourceVault, ResolveSource(SourceAuto, "production"))
	assert.Equal(t, SourceEnvironment, ResolveSource(SourceEnvironment, "production"))
}

func TestProvider_Environment(t *testing.T) {
	t.Setenv("AGRI_TEST_SECRET", "s3cret")
	t.Setenv("AGRI_TEST_OVERRIDE", "override")

	p, err := NewProvider(&ProviderConfig{Source: SourceAuto, Environment: "development"}, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, SourceEnvironment, p.Source())

	v, err := p.GetSecret(context.Background(), "AGRI_TEST_SECRET")
	require.NoError(t, err)
	assert.Equal(t, "s3cret", v)

	_, err = p.GetSecret(context.Background(), "AGRI_TEST_MISSING")
	assert.Error(t, err)

	v, err = p.GetSecretOrEnv(context.Background(), "AGRI_TEST_SECRET", "AGRI_TEST_OVERRIDE")
	require.NoError(t, err)
	assert.Equal(t, "override", v)
}

func TestProvider_VaultRequiresName(t *testing.T) {
	_, err := NewProvider(&ProviderConfig{Source: SourceVault, Environment: "production"}, zap.NewNop())
	assert.Error(t, err)
}

func TestVaultClient_Cache(t *testing.T) {
	f := &fakeFetcher{values: map[string]string{"JWT-SECRET": "abc"}}
	v := newVaultClient(f, &VaultConfig{CacheEnabled: true, CacheTTL: time.Minute}, zap.NewNop())
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	v.now = func() time.Time { return now }

	for i := 0; i < 3; i++ {
		got, err := v.GetSecret(context.Background(), "JWT-SECRET")
		require.NoError(t, err)
		assert.Equal(t, "abc", got)
	}
	assert.Equal(t, 1, f.calls)

	now = now.Add(2 * time.Minute)
	_, err := v.GetSecret(context.Background(), "JWT-SECRET")
	require.NoError(t, err)
	assert.Equal(t, 2, f.calls)

	_, err = v.GetSecret(context.Background(), "MISSING")
	assert.Error(t, err)
}

func TestVaultClient_NoCache(t *testing.T) {
	f := &fakeFetcher{values: map[string]string{"K": "v"}}
	v := newVaultClient(f, &VaultConfig{}, zap.NewNop())

	_, _ = v.GetSecret(context.Background(), "K")
	_, _ = v.GetSecret(context.Background(), "K")
	assert.Equal(t, 2, f.calls)
}
