package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/sauerbraten/arbiter/internal/arenafile"
	"github.com/sauerbraten/arbiter/internal/config"
	"github.com/sauerbraten/arbiter/internal/history"
	"github.com/sauerbraten/arbiter/internal/host"
	"github.com/sauerbraten/arbiter/pkg/scheduler"
)

func main() {
	conf, err := config.Load("config.json")
	if err != nil {
		log.Fatalln(err)
	}

	loop := scheduler.NewLoop(64)
	h := host.New(conf, loop, loop.Post, os.Stdout)

	if err := h.LoadArenas(); err != nil {
		log.Fatalln(err)
	}

	if conf.HistoryDB != "" {
		store, err := history.Open(conf.HistoryDB)
		if err != nil {
			log.Println("match history disabled:", err)
		} else {
			h.SetHistory(store)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if conf.WatchArenas {
		w, err := arenafile.NewWatcher(conf.ArenaDir)
		if err != nil {
			log.Println("not watching arena files:", err)
		} else {
			go h.Watch(ctx, w)
		}
	}

	loop.Post(func() {
		if err := h.Start(); err != nil {
			log.Println(err)
			stop()
		}
	})

	go console(ctx, os.Stdin, loop, h, stop)

	log.Println("arbiter running, type 'help' for a list of commands")

	if err := loop.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Println(err)
	}
	h.Shutdown()
	log.Println("shut down")
}
