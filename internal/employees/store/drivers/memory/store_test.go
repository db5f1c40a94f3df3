package memory_test

import (
	"errors"
	"testing"

	"github.com/aussiebroadwan/employees/internal/employees/store"
	"github.com/aussiebroadwan/employees/internal/employees/store/drivers/memory"
	"github.com/aussiebroadwan/employees/internal/employees/store/storetest"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	storetest.Run(t, func(t *testing.T) store.Store {
		return memory.NewStore()
	})
}

func TestPingErr(t *testing.T) {
	s := memory.NewStore()
	s.PingErr = errors.New("down")

	require.EqualError(t, s.Ping(t.Context()), "down")
}
