package main

import (
	"bufio"
	"context"
	"io"
	"log"
	"strings"

	"github.com/sauerbraten/arbiter/internal/host"
	"github.com/sauerbraten/arbiter/pkg/scheduler"
)

// console feeds operator commands read from r to the host. 'quit' shuts the
// server down; reaching the end of r only ends the console, so the server
// keeps running without a terminal attached.
func console(ctx context.Context, r io.Reader, loop *scheduler.Loop, h *host.Host, stop func()) {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			stop()
			return
		}
		if !loop.Do(func() { h.HandleCommand(line) }) {
			return
		}
		if ctx.Err() != nil {
			return
		}
	}
	if err := sc.Err(); err != nil {
		log.Println("reading console:", err)
		return
	}
	log.Println("console closed, send SIGINT or SIGTERM to stop")
}
