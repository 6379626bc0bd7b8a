package page

import (
	"context"
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/AndersonAraujoX/rpg-eternal-sub000/internal/game"
	"github.com/a-h/templ"
	"github.com/dustin/go-humanize"
)

type HeroRow struct {
	Name       string
	Emoji      string
	Class      string
	Level      int
	HP         string
	XP         string
	Assignment string
	Fatigue    string
	Dead       bool
}

// View is everything the status page renders, already formatted.
type View struct {
	BossLevel    int
	BossHP       string
	BossPct      int
	Gold         string
	Souls        string
	Copper       string
	Glory        string
	GameSpeed    string
	Tower        string
	Kills        string
	HighestBoss  int
	Heroes       []HeroRow
	Log          []string
	LastSave     string
	Achievements int
}

func FromState(s *game.State, now time.Time) View {
	v := View{
		BossLevel:    s.Boss.Level,
		BossHP:       fmt.Sprintf("%s / %s", humanize.Comma(int64(s.Boss.Stats.HP)), humanize.Comma(int64(s.Boss.Stats.MaxHP))),
		Gold:         humanize.Comma(s.Wallet.Gold),
		Souls:        humanize.Comma(s.Wallet.Souls),
		Copper:       humanize.CommafWithDigits(s.Wallet.Copper, 1),
		Glory:        humanize.Comma(s.Wallet.Glory),
		GameSpeed:    fmt.Sprintf("%gx", s.GameSpeed),
		Kills:        humanize.Comma(s.Stats.BossKills),
		HighestBoss:  s.Stats.HighestBoss,
		Achievements: len(s.Achievements),
		LastSave:     "never",
	}
	if s.Boss.Stats.MaxHP > 0 {
		v.BossPct = int(math.Round(s.Boss.Stats.HP / s.Boss.Stats.MaxHP * 100))
	}
	if s.Tower.Active {
		v.Tower = fmt.Sprintf("climbing, floor %d", s.Tower.Floor)
	} else {
		v.Tower = fmt.Sprintf("resting at floor %d", s.Tower.Floor)
	}
	if !s.LastSaveTime.IsZero() {
		v.LastSave = humanize.RelTime(s.LastSaveTime, now, "ago", "from now")
	}
	for _, h := range s.Heroes {
		if !h.Unlocked {
			continue
		}
		v.Heroes = append(v.Heroes, HeroRow{
			Name:       h.Name,
			Emoji:      h.Emoji,
			Class:      string(h.Class),
			Level:      h.Level,
			HP:         fmt.Sprintf("%.0f/%.0f", h.Stats.HP, h.Stats.MaxHP),
			XP:         fmt.Sprintf("%s/%s", humanize.Comma(int64(h.XP)), humanize.Comma(int64(h.MaxXP))),
			Assignment: string(h.Assignment),
			Fatigue:    fmt.Sprintf("%.1f", h.Fatigue),
			Dead:       h.IsDead,
		})
	}
	for i := len(s.CombatLog) - 1; i >= 0 && len(v.Log) < 10; i-- {
		v.Log = append(v.Log, s.CombatLog[i].Message)
	}
	return v
}

// StatusPage renders the read-only dashboard. It refreshes itself every
// few seconds.
func StatusPage(v View) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		e := templ.EscapeString

		b.WriteString(`<!doctype html><html lang="en"><head><meta charset="utf-8">`)
		b.WriteString(`<meta http-equiv="refresh" content="3"><title>Eternal</title>`)
		b.WriteString(`<style>body{font-family:system-ui,sans-serif;margin:2rem;background:#14121a;color:#e8e4f0}` +
			`table{border-collapse:collapse}td,th{padding:.25rem .75rem;text-align:left}` +
			`.bar{background:#3a3346;width:20rem;height:.75rem}.fill{background:#c0392b;height:100%}` +
			`.dead{opacity:.45}</style></head><body>`)

		fmt.Fprintf(&b, `<h1>Boss Lv %d</h1>`, v.BossLevel)
		fmt.Fprintf(&b, `<div class="bar"><div class="fill" style="width:%d%%"></div></div><p>%s HP</p>`, v.BossPct, e(v.BossHP))
		fmt.Fprintf(&b, `<p>Gold %s &middot; Souls %s &middot; Copper %s &middot; Glory %s</p>`, e(v.Gold), e(v.Souls), e(v.Copper), e(v.Glory))
		fmt.Fprintf(&b, `<p>Speed %s &middot; Tower %s &middot; Kills %s (best Lv %d) &middot; Achievements %d &middot; Saved %s</p>`,
			e(v.GameSpeed), e(v.Tower), e(v.Kills), v.HighestBoss, v.Achievements, e(v.LastSave))

		b.WriteString(`<h2>Party</h2><table><tr><th></th><th>Name</th><th>Class</th><th>Lv</th><th>HP</th><th>XP</th><th>Task</th><th>Fatigue</th></tr>`)
		for _, h := range v.Heroes {
			cls := ""
			if h.Dead {
				cls = ` class="dead"`
			}
			fmt.Fprintf(&b, `<tr%s><td>%s</td><td>%s</td><td>%s</td><td>%d</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td></tr>`,
				cls, e(h.Emoji), e(h.Name), e(h.Class), h.Level, e(h.HP), e(h.XP), e(h.Assignment), e(h.Fatigue))
		}
		b.WriteString(`</table><h2>Log</h2><ul>`)
		for _, line := range v.Log {
			fmt.Fprintf(&b, `<li>%s</li>`, e(line))
		}
		b.WriteString(`</ul></body></html>`)

		_, err := io.WriteString(w, b.String())
		return err
	})
}
