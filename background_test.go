package main

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andareed/astrodash/scheduler"
)

type chanSender chan tea.Msg

func (c chanSender) Send(msg tea.Msg) { c <- msg }

func receive(t *testing.T, c chanSender) tea.Msg {
	t.Helper()
	select {
	case msg := <-c:
		return msg
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for message")
		return nil
	}
}

func TestStartBackgroundDeliversRecordsAndTicks(t *testing.T) {
	start := time.Date(2025, 1, 21, 21, 0, 0, 0, time.Local)
	clock := clockwork.NewFakeClockAt(start)
	s := scheduler.New(context.Background(), clock)
	defer s.Close()

	opts := defaultOptions()
	opts.loadDelay = 3 * time.Second
	opts.tick = time.Second

	msgs := make(chanSender, 4)
	startBackground(s, msgs, opts)

	clock.Advance(time.Second)
	assert.Equal(t, clockTickMsg{now: start.Add(time.Second)}, receive(t, msgs))

	clock.Advance(time.Second)
	assert.Equal(t, clockTickMsg{now: start.Add(2 * time.Second)}, receive(t, msgs))

	// The third second fires both the load and a tick, in either order.
	clock.Advance(time.Second)
	var loaded recordsLoadedMsg
	for range 2 {
		if msg, ok := receive(t, msgs).(recordsLoadedMsg); ok {
			loaded = msg
		}
	}
	assert.Len(t, loaded.records, 15)

	require.NoError(t, s.Close())
	clock.Advance(time.Minute)
	assert.Empty(t, msgs)
}
