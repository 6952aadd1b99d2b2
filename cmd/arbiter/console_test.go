package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sauerbraten/arbiter/internal/config"
	"github.com/sauerbraten/arbiter/internal/host"
	"github.com/sauerbraten/arbiter/pkg/scheduler"
)

func runConsole(t *testing.T, input string) (out string, stopped bool) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	loop := scheduler.NewLoop(8)
	go loop.Run(ctx)

	var buf bytes.Buffer
	h := host.New(config.Default(), loop, loop.Post, &buf)

	console(ctx, strings.NewReader(input), loop, h, func() { stopped = true })
	return buf.String(), stopped
}

func TestConsoleEOFKeepsServerRunning(t *testing.T) {
	out, stopped := runConsole(t, "help\n\n")
	assert.Contains(t, out, "available commands")
	assert.False(t, stopped)
}

func TestConsoleQuit(t *testing.T) {
	out, stopped := runConsole(t, "status\nquit\nhelp\n")
	assert.Contains(t, out, "no match running")
	assert.NotContains(t, out, "available commands")
	assert.True(t, stopped)
}
