package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/AndersonAraujoX/rpg-eternal-sub000/internal/config"
	"github.com/AndersonAraujoX/rpg-eternal-sub000/internal/ops"
	"github.com/AndersonAraujoX/rpg-eternal-sub000/internal/save"
	"github.com/AndersonAraujoX/rpg-eternal-sub000/internal/telemetry"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(2)
	}

	cmds := map[string]func([]string) error{
		"backup":  cmdBackup,
		"restore": cmdRestore,
		"drill":   cmdDrill,
		"report":  cmdReport,
	}
	run, ok := cmds[os.Args[1]]
	if !ok {
		printUsage()
		os.Exit(2)
	}
	if err := run(os.Args[2:]); err != nil {
		fmt.Fprintf(os.Stderr, "%s failed: %v\n", os.Args[1], err)
		os.Exit(1)
	}
}

func cmdBackup(args []string) error {
	fs := flag.NewFlagSet("backup", flag.ContinueOnError)
	dataDir := fs.String("data-dir", "data", "path to save directory")
	out := fs.String("out", "", "output archive path (.tar.gz)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *out == "" {
		ts := time.Now().UTC().Format("20060102T150405Z")
		*out = filepath.Join("backups", "rpg-saves-"+ts+".tar.gz")
	}

	m, err := ops.Backup(*dataDir, *out)
	if err != nil {
		return err
	}
	fmt.Printf("%s (%d files)\n", *out, len(m.Files))
	return nil
}

func cmdRestore(args []string) error {
	fs := flag.NewFlagSet("restore", flag.ContinueOnError)
	archive := fs.String("archive", "", "input backup archive (.tar.gz)")
	target := fs.String("target-dir", "data-restored", "restore target directory")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *archive == "" {
		return fmt.Errorf("archive is required")
	}
	m, err := ops.Restore(*archive, *target)
	if err != nil {
		return err
	}
	fmt.Printf("restored %d files into %s\n", len(m.Files), *target)
	return nil
}

// cmdDrill backs up, restores into a scratch dir, then checks the restored
// saves hash the same and still decode.
func cmdDrill(args []string) error {
	fs := flag.NewFlagSet("drill", flag.ContinueOnError)
	dataDir := fs.String("data-dir", "data", "path to save directory")
	workDir := fs.String("work-dir", os.TempDir(), "temporary workspace for drill artifacts")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := os.MkdirAll(*workDir, 0o755); err != nil {
		return err
	}
	ts := time.Now().UTC().Format("20060102T150405Z")
	archive := filepath.Join(*workDir, "rpg-drill-"+ts+".tar.gz")
	restoreDir := filepath.Join(*workDir, "rpg-drill-restore-"+ts)

	if _, err := ops.Backup(*dataDir, archive); err != nil {
		return err
	}
	if _, err := ops.Restore(archive, restoreDir); err != nil {
		return err
	}

	srcDigest, err := ops.DirDigest(*dataDir)
	if err != nil {
		return err
	}
	restoreDigest, err := ops.DirDigest(restoreDir)
	if err != nil {
		return err
	}
	if srcDigest != restoreDigest {
		return fmt.Errorf("digest mismatch after restore: src=%s restored=%s", srcDigest, restoreDigest)
	}

	files, err := filepath.Glob(filepath.Join(restoreDir, "save-*.json"))
	if err != nil {
		return err
	}
	for _, f := range files {
		raw, err := os.ReadFile(f)
		if err != nil {
			return err
		}
		if _, err := save.Decode(raw, nil); err != nil {
			return fmt.Errorf("%s: %w", filepath.Base(f), err)
		}
	}

	fmt.Println("backup:", archive)
	fmt.Println("restored:", restoreDir)
	fmt.Println("digest:", srcDigest)
	fmt.Println("saves decoded:", len(files))
	return nil
}

func cmdReport(args []string) error {
	fs := flag.NewFlagSet("report", flag.ContinueOnError)
	cfgPath := fs.String("config", "rpg.yaml", "path to config file")
	out := fs.String("out", "rpg-report.pdf", "output PDF path")
	server := fs.String("server", "", "running server to pull session stats from, e.g. http://localhost:42069")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.LoadOrDefault(*cfgPath)
	if err != nil {
		return err
	}
	cfg.ApplyEnv()

	repo, err := save.Open(cfg.Save)
	if err != nil {
		return err
	}
	defer repo.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	st, found, err := save.NewStore(repo).Load(ctx)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("no save in slot %q", cfg.Save.Slot)
	}

	stats := telemetry.Stats{Period: "offline"}
	if *server != "" {
		if stats, err = fetchStats(ctx, *server); err != nil {
			return err
		}
	}

	f, err := os.Create(*out)
	if err != nil {
		return err
	}
	if err := ops.WriteReport(f, st, stats, time.Now()); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	fmt.Println(*out)
	return nil
}

func fetchStats(ctx context.Context, base string) (telemetry.Stats, error) {
	var stats telemetry.Stats
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, strings.TrimRight(base, "/")+"/api/stats", nil)
	if err != nil {
		return stats, err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return stats, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return stats, fmt.Errorf("stats: %s", resp.Status)
	}
	return stats, json.NewDecoder(resp.Body).Decode(&stats)
}

func printUsage() {
	fmt.Println("usage:")
	fmt.Println("  rpg-ops backup  --data-dir data --out backups/saves.tar.gz")
	fmt.Println("  rpg-ops restore --archive backups/saves.tar.gz --target-dir data-restored")
	fmt.Println("  rpg-ops drill   --data-dir data --work-dir /tmp")
	fmt.Println("  rpg-ops report  --config rpg.yaml --out report.pdf [--server http://localhost:42069]")
}
