package ops

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/jung-kurt/gofpdf"

	"github.com/AndersonAraujoX/rpg-eternal-sub000/internal/game"
	"github.com/AndersonAraujoX/rpg-eternal-sub000/internal/telemetry"
)

// WriteReport renders a one-page PDF summary of a save and its session stats.
func WriteReport(w io.Writer, s *game.State, st telemetry.Stats, now time.Time) error {
	if s == nil {
		return fmt.Errorf("report: nil state")
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("RPG Eternal run report", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "RPG Eternal run report")
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, "Generated "+now.UTC().Format(time.RFC1123))
	pdf.Ln(6)
	if !s.LastSaveTime.IsZero() {
		pdf.Cell(0, 6, "Last saved "+humanize.RelTime(s.LastSaveTime, now, "ago", "from now"))
		pdf.Ln(6)
	}
	pdf.Ln(4)

	section(pdf, "Progress")
	row(pdf, "Boss level", humanize.Comma(int64(s.Boss.Level)))
	row(pdf, "Boss HP", fmt.Sprintf("%s / %s", humanize.Comma(int64(s.Boss.Stats.HP)), humanize.Comma(int64(s.Boss.Stats.MaxHP))))
	row(pdf, "Highest boss", humanize.Comma(int64(s.Stats.HighestBoss)))
	row(pdf, "Boss kills", humanize.Comma(s.Stats.BossKills))
	row(pdf, "Ticks", humanize.Comma(s.Stats.Ticks))
	row(pdf, "Tower floor", humanize.Comma(int64(s.Tower.Floor)))
	row(pdf, "Guild level", humanize.Comma(int64(s.Guild.Level)))
	row(pdf, "Achievements", humanize.Comma(int64(len(s.Achievements))))

	section(pdf, "Wallet")
	row(pdf, "Gold", humanize.Comma(s.Wallet.Gold))
	row(pdf, "Souls", humanize.Comma(s.Wallet.Souls))
	row(pdf, "Divinity", humanize.Comma(s.Wallet.Divinity))
	row(pdf, "Void matter", humanize.Comma(s.Wallet.VoidMatter))
	row(pdf, "Starlight", humanize.Comma(s.Wallet.Starlight))
	row(pdf, "Keys", humanize.Comma(s.Wallet.Keys))
	row(pdf, "Glory", humanize.Comma(s.Wallet.Glory))
	row(pdf, "Copper", humanize.CommafWithDigits(s.Wallet.Copper, 1))

	section(pdf, "Heroes")
	pdf.SetFont("Helvetica", "B", 10)
	for _, h := range []struct {
		label string
		width float64
	}{{"Name", 40}, {"Class", 30}, {"Level", 20}, {"HP", 40}, {"Task", 30}, {"Status", 25}} {
		pdf.CellFormat(h.width, 7, h.label, "B", 0, "L", false, 0, "")
	}
	pdf.Ln(7)
	pdf.SetFont("Helvetica", "", 10)
	for _, h := range s.Heroes {
		status := "locked"
		switch {
		case h.IsDead:
			status = "dead"
		case h.Unlocked:
			status = "ok"
		}
		pdf.CellFormat(40, 6, h.Name, "", 0, "L", false, 0, "")
		pdf.CellFormat(30, 6, string(h.Class), "", 0, "L", false, 0, "")
		pdf.CellFormat(20, 6, fmt.Sprint(h.Level), "", 0, "L", false, 0, "")
		pdf.CellFormat(40, 6, fmt.Sprintf("%.0f / %.0f", h.Stats.HP, h.Stats.MaxHP), "", 0, "L", false, 0, "")
		pdf.CellFormat(30, 6, string(h.Assignment), "", 0, "L", false, 0, "")
		pdf.CellFormat(25, 6, status, "", 0, "L", false, 0, "")
		pdf.Ln(6)
	}

	section(pdf, "Session ("+st.Period+")")
	row(pdf, "Ticks", humanize.Comma(int64(st.Ticks)))
	row(pdf, "Boss kills", humanize.Comma(int64(st.BossKills)))
	row(pdf, "Kills per minute", humanize.CommafWithDigits(st.KillsPerMinute, 2))
	row(pdf, "Level-ups", humanize.Comma(int64(st.LevelUps)))
	row(pdf, "Deaths", humanize.Comma(int64(st.Deaths)))
	row(pdf, "Summons", humanize.Comma(int64(st.Summons)))
	row(pdf, "Gold from kills", humanize.Comma(st.GoldFromKills))
	row(pdf, "Quests completed", humanize.Comma(int64(st.QuestsCompleted)))
	loot := make([]string, 0, len(st.LootByType))
	for k := range st.LootByType {
		loot = append(loot, k)
	}
	sort.Strings(loot)
	for _, k := range loot {
		row(pdf, "Loot: "+k, humanize.Comma(st.LootByType[k]))
	}

	if err := pdf.Error(); err != nil {
		return fmt.Errorf("report: %w", err)
	}
	return pdf.Output(w)
}

func section(pdf *gofpdf.Fpdf, title string) {
	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, title)
	pdf.Ln(9)
	pdf.SetFont("Helvetica", "", 10)
}

func row(pdf *gofpdf.Fpdf, label, value string) {
	pdf.CellFormat(60, 6, label, "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 6, value, "", 0, "L", false, 0, "")
	pdf.Ln(6)
}
