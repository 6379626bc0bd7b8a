// Command watch is a terminal dashboard for a running game server.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/AndersonAraujoX/rpg-eternal-sub000/internal/serverapp"
)

func main() {
	server := flag.String("server", "http://localhost:42069", "game server base URL")
	every := flag.Duration("every", time.Second, "poll interval")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, strings.TrimRight(*server, "/"), *every); err != nil {
		log.Fatal(err)
	}
}

func fetch(ctx context.Context, client *http.Client, base string) (serverapp.StateResponse, error) {
	var out serverapp.StateResponse
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, base+"/api/state", nil)
	if err != nil {
		return out, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return out, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return out, fmt.Errorf("GET /api/state: %s", resp.Status)
	}
	return out, json.NewDecoder(resp.Body).Decode(&out)
}

func run(ctx context.Context, base string, every time.Duration) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	quit := make(chan struct{})
	go func() {
		for {
			switch ev := screen.PollEvent().(type) {
			case nil:
				return
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
					close(quit)
					return
				}
			case *tcell.EventResize:
				screen.Sync()
			}
		}
	}()

	client := &http.Client{Timeout: 3 * time.Second}
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		r, err := fetch(ctx, client, base)
		draw(screen, lines(r, err))
		select {
		case <-ctx.Done():
			return nil
		case <-quit:
			return nil
		case <-ticker.C:
		}
	}
}
