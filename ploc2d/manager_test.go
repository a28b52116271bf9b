package ploc2d

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestManager(t *testing.T) {
	require := require.New(t)

	newCfg := func(host string) *SessionConfig {
		cfg, err := NewSessionConfig(host)
		require.NoError(err)
		return cfg
	}

	t.Run("Add And Get", func(t *testing.T) {
		m := NewManager()
		session, err := m.Add("cell-1", newCfg("192.168.1.10"))
		require.NoError(err)
		require.NotNil(session)

		got, ok := m.Get("cell-1")
		require.True(ok)
		require.Same(session, got)
		require.Equal(1, m.Len())
	})

	t.Run("Duplicate Name", func(t *testing.T) {
		m := NewManager()
		_, err := m.Add("cell-1", newCfg("192.168.1.10"))
		require.NoError(err)

		_, err = m.Add("cell-1", newCfg("192.168.1.11"))
		require.ErrorIs(err, ErrDuplicateSession)
		require.Equal(1, m.Len())
	})

	t.Run("Nil Config", func(t *testing.T) {
		m := NewManager()
		_, err := m.Add("cell-1", nil)
		require.ErrorIs(err, ErrConfigNil)
	})

	t.Run("Remove", func(t *testing.T) {
		m := NewManager()
		_, err := m.Add("cell-1", newCfg("192.168.1.10"))
		require.NoError(err)

		m.Remove("cell-1")
		_, ok := m.Get("cell-1")
		require.False(ok)

		m.Remove("unknown") // no-op
		require.Equal(0, m.Len())
	})

	t.Run("Range And Shutdown", func(t *testing.T) {
		m := NewManager()
		_, err := m.Add("cell-1", newCfg("192.168.1.10"))
		require.NoError(err)
		_, err = m.Add("cell-2", newCfg("192.168.1.11"))
		require.NoError(err)

		names := make(map[string]bool)
		m.Range(func(name string, session *Session) bool {
			names[name] = true
			return true
		})
		require.Len(names, 2)
		require.True(names["cell-1"])
		require.True(names["cell-2"])

		m.Shutdown()
		require.Equal(0, m.Len())
	})
}
