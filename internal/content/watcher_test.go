package content

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func startWatcher(t *testing.T, path string, store *Store) (*Watcher, chan error) {
	t.Helper()
	w, err := NewWatcher(store, path)
	require.NoError(t, err)
	w.SetDebounce(20 * time.Millisecond)

	reloads := make(chan error, 8)
	w.OnReload = func(err error) { reloads <- err }

	require.NoError(t, w.Start(context.Background()))
	t.Cleanup(w.Stop)
	return w, reloads
}

// writeAtomic swaps the file in with a rename so the watcher never sees a half-written file
func writeAtomic(t *testing.T, path, body string) {
	t.Helper()
	tmp := path + ".tmp"
	require.NoError(t, os.WriteFile(tmp, []byte(body), 0o600))
	require.NoError(t, os.Rename(tmp, path))
}

func waitReload(t *testing.T, reloads chan error) error {
	t.Helper()
	select {
	case err := <-reloads:
		return err
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload")
		return nil
	}
}

func TestWatcher_ReloadsOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.yaml")
	require.NoError(t, os.WriteFile(path, []byte("top_reactions: 2\n"), 0o600))

	store := NewStore(nil)
	_, reloads := startWatcher(t, path, store)

	writeAtomic(t, path, "top_reactions: 4\n")
	require.NoError(t, waitReload(t, reloads))

	assert.Equal(t, 4, store.Current().TopReactions)
}

func TestWatcher_KeepsPreviousOnInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.yaml")
	require.NoError(t, os.WriteFile(path, []byte("top_reactions: 2\n"), 0o600))

	store := NewStore(nil)
	before := store.Current()
	_, reloads := startWatcher(t, path, store)

	writeAtomic(t, path, "reactions: []\n")
	assert.ErrorIs(t, waitReload(t, reloads), ErrInvalidCatalog)

	assert.Same(t, before, store.Current())
}

func TestWatcher_StopWithoutStart(t *testing.T) {
	w, err := NewWatcher(NewStore(nil), filepath.Join(t.TempDir(), "content.yaml"))
	require.NoError(t, err)
	w.Stop()
}

func TestStore_Replace(t *testing.T) {
	store := NewStore(nil)
	next := Default()
	next.TopReactions = 5
	store.Replace(next)
	assert.Equal(t, 5, store.Current().TopReactions)
}
