package main

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/gdamore/tcell/v2"

	"github.com/AndersonAraujoX/rpg-eternal-sub000/internal/serverapp"
)

type line struct {
	text  string
	style tcell.Style
}

var (
	plain  = tcell.StyleDefault
	title  = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	gray   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	red    = tcell.StyleDefault.Foreground(tcell.ColorRed)
	green  = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	aqua   = tcell.StyleDefault.Foreground(tcell.ColorAqua)
	barLen = 30
)

func bar(cur, total float64) string {
	if total <= 0 {
		return "[" + strings.Repeat(" ", barLen) + "]"
	}
	n := int(cur / total * float64(barLen))
	n = min(max0(n), barLen)
	return "[" + strings.Repeat("#", n) + strings.Repeat(" ", barLen-n) + "]"
}

func max0(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

// lines lays out the dashboard for one state poll.
func lines(r serverapp.StateResponse, err error) []line {
	out := []line{{"RPG Eternal  (q to quit)", title}}
	if err != nil {
		return append(out, line{"server unreachable: " + err.Error(), red})
	}
	if r.State == nil {
		return append(out, line{"waiting for state...", gray})
	}
	s := r.State

	out = append(out,
		line{"", plain},
		line{fmt.Sprintf("Boss Lv %d  %s %s / %s", s.Boss.Level, bar(s.Boss.Stats.HP, s.Boss.Stats.MaxHP),
			humanize.Comma(int64(s.Boss.Stats.HP)), humanize.Comma(int64(s.Boss.Stats.MaxHP))), red},
		line{fmt.Sprintf("Tick %dms  speed x%g  multiplier x%.2f  ultimate %.0f%%",
			r.TickIntervalMs, s.GameSpeed, r.Multiplier, s.UltimateCharge), gray},
		line{"", plain},
		line{fmt.Sprintf("Gold %s  Souls %s  Glory %s  Copper %s",
			humanize.Comma(s.Wallet.Gold), humanize.Comma(s.Wallet.Souls),
			humanize.Comma(s.Wallet.Glory), humanize.CommafWithDigits(s.Wallet.Copper, 1)), title},
		line{fmt.Sprintf("Kills %s  Highest %d  Tower floor %d  Next summon %s gold",
			humanize.Comma(s.Stats.BossKills), s.Stats.HighestBoss, s.Tower.Floor, humanize.Comma(r.SummonCost)), plain},
		line{"", plain},
	)

	for _, h := range s.Heroes {
		if !h.Unlocked {
			out = append(out, line{fmt.Sprintf("  %-10s locked", h.Name), gray})
			continue
		}
		style := green
		status := string(h.Assignment)
		if h.IsDead {
			style, status = red, "dead"
		}
		out = append(out, line{fmt.Sprintf("  %-10s Lv %-3d %s %-8s", h.Name, h.Level, bar(h.Stats.HP, h.Stats.MaxHP), status), style})
	}

	if len(s.CombatLog) > 0 {
		out = append(out, line{"", plain})
		from := max0(len(s.CombatLog) - 5)
		for i := len(s.CombatLog) - 1; i >= from; i-- {
			out = append(out, line{s.CombatLog[i].Message, aqua})
		}
	}
	return out
}

func draw(screen tcell.Screen, ls []line) {
	screen.Clear()
	w, h := screen.Size()
	for y, l := range ls {
		if y >= h {
			break
		}
		x := 0
		for _, r := range l.text {
			if x >= w {
				break
			}
			screen.SetContent(x, y, r, nil, l.style)
			x++
		}
	}
	screen.Show()
}
