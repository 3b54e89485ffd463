package session

import (
	"bytes"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/foxholm/coup/engine"
	"github.com/foxholm/coup/internal/hostlog"
)

func testConfig() engine.Config {
	return engine.Config{
		InitialCash: []uint32{2, 2},
		Influence:   [][2]engine.Role{{engine.RoleDuke, engine.RoleAssassin}, {engine.RoleCaptain, engine.RoleContessa}},
		WhoseTurn:   0,
		Seed:        engine.NewSeed(1),
		Def:         engine.DefaultGameDef(),
	}
}

func testLog() *logrus.Entry {
	return hostlog.Table(hostlog.New("fatal", &bytes.Buffer{}), "test-table")
}

func TestNewBuildsInitialState(t *testing.T) {
	tbl, err := New(uuid.New(), testConfig(), testLog())
	require.NoError(t, err)
	require.Equal(t, "StartOfTurn", engine.CurrentStateName(tbl.Snapshot()))
}

func TestApplyWithoutStoreAdvancesStateAndSeq(t *testing.T) {
	tbl, err := New(uuid.New(), testConfig(), testLog())
	require.NoError(t, err)

	next, err := tbl.Apply(context.Background(), nil, engine.Event{
		Type:   engine.EventAction,
		Player: 0,
		Action: engine.ActionIncome,
		Target: engine.NoTarget,
	})
	require.NoError(t, err)
	require.Equal(t, next, tbl.Snapshot())
	require.EqualValues(t, 1, tbl.seq)
}

func TestApplyRejectsIllegalEventWithoutAdvancingSeq(t *testing.T) {
	tbl, err := New(uuid.New(), testConfig(), testLog())
	require.NoError(t, err)

	_, err = tbl.Apply(context.Background(), nil, engine.Event{
		Type:   engine.EventAction,
		Player: 1, // it's player 0's turn
		Action: engine.ActionIncome,
		Target: engine.NoTarget,
	})
	require.Error(t, err)
	require.EqualValues(t, 0, tbl.seq)
}

func TestRegistryPutGetRemove(t *testing.T) {
	tbl, err := New(uuid.New(), testConfig(), testLog())
	require.NoError(t, err)

	reg := NewRegistry()
	reg.Put(tbl)

	got, ok := reg.Get(tbl.ID)
	require.True(t, ok)
	require.Same(t, tbl, got)

	reg.Remove(tbl.ID)
	_, ok = reg.Get(tbl.ID)
	require.False(t, ok)
}
