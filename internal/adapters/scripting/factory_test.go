package scripting_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/ppd/internal/adapters/scripting"
	"go.trai.ch/ppd/internal/core/domain"
)

func TestFactory_NewWorker_NotConfigured(t *testing.T) {
	f := scripting.NewFactory(nil)

	_, err := f.NewWorker(domain.Primary, "case.sav", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrAppNotConfigured.Error())

	cfg := domain.NewDefaultConfig()
	cfg.Secondary.Dir = ""
	_, err = f.NewWorker(domain.Secondary, "case.sav", cfg)
	require.Error(t, err)

	_, err = f.NewWorker(domain.Other("notepad.exe"), "case.sav", domain.NewDefaultConfig())
	require.Error(t, err)
}

func TestFactory_EmbeddedScripts(t *testing.T) {
	f := scripting.NewFactory(nil)
	cfg := domain.NewDefaultConfig()

	for _, app := range []domain.Program{domain.Primary, domain.Secondary} {
		w, err := f.NewWorker(app, "case.sav", cfg)
		require.NoError(t, err, app.String())
		assert.NotNil(t, w)
	}
}
