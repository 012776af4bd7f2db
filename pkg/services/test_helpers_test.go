package services

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/stridesec/threatmodel/ent"
	"github.com/stridesec/threatmodel/pkg/imagestore"
	"github.com/stridesec/threatmodel/test/util"
)

var pngBytes = []byte("\x89PNG\r\n\x1a\n" + "fake image data")

// setupTestAnalysisService creates an AnalysisService over an isolated
// test schema and a temp-dir image store.
func setupTestAnalysisService(t *testing.T) (*AnalysisService, *ent.Client) {
	t.Helper()
	client, _ := util.SetupTestDatabase(t)
	store, err := imagestore.New(t.TempDir(), []string{"image/png", "image/jpeg", "image/webp", "image/gif"})
	require.NoError(t, err)
	return NewAnalysisService(client, store, 10*1024*1024), client
}
