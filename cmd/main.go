package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"runtime/debug"

	"github.com/Akashdeep-Patra/dgv/internal/app"
	"github.com/Akashdeep-Patra/dgv/internal/common"
	"github.com/Akashdeep-Patra/dgv/internal/config"
	"github.com/Akashdeep-Patra/dgv/internal/logging"
	"github.com/Akashdeep-Patra/dgv/internal/source"
	"github.com/Akashdeep-Patra/dgv/internal/ui"
	"github.com/Akashdeep-Patra/dgv/internal/ui/views"
	"github.com/Akashdeep-Patra/dgv/internal/watcher"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// Build-time variables injected via -ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func init() {
	// A TUI spends nearly all of its time waiting on terminal input and file
	// events; two OS threads cover render and dispatch. An explicit
	// GOMAXPROCS wins.
	if os.Getenv("GOMAXPROCS") == "" {
		runtime.GOMAXPROCS(min(2, runtime.NumCPU()))
	}

	debug.SetMemoryLimit(64 * 1024 * 1024) // 64 MiB
}

func main() {
	rootCmd := buildRootCmd()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "dgv:", err)
		os.Exit(1)
	}
}

func buildRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "dgv [files...]",
		Short: "A selectable data grid for the terminal",
		Long: `dgv shows dataset files (JSON, YAML, TOML or CSV) as interactive tables.

Rows can be selected one at a time or all at once. "Download Selected"
gathers the selected rows into a payload, and is enabled only when every
selected row has status "available".

Each file becomes a tab. With no files, the sources listed in
~/.config/dgv/config.yaml are opened.`,
		Args:          cobra.ArbitraryArgs,
		RunE:          runApp,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"dgv %s\n  commit:  %s\n  built:   %s\n  go:      %s\n  os/arch: %s/%s\n",
		version, commit, date, runtime.Version(), runtime.GOOS, runtime.GOARCH,
	))

	rootCmd.AddCommand(buildVersionCmd())
	rootCmd.AddCommand(buildCompletionCmd())
	rootCmd.AddCommand(buildRenderCmd())
	rootCmd.AddCommand(buildDownloadCmd())

	rootCmd.PersistentFlags().String("items-path", "", "JSONPath selecting the item objects (e.g. $.rows[*])")
	rootCmd.Flags().Bool("no-watch", false, "Do not reload datasets when their files change")
	rootCmd.Flags().Bool("debug", false, "Write debug records to the log file")

	return rootCmd
}

func runApp(cmd *cobra.Command, args []string) error {
	itemsPath, _ := cmd.Flags().GetString("items-path")
	noWatch, _ := cmd.Flags().GetBool("no-watch")
	debugLog, _ := cmd.Flags().GetBool("debug")

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if noWatch {
		cfg.Watch = false
	}
	if debugLog {
		cfg.Log.Level = "debug"
	}

	closeLog, err := logging.SetupFile(cfg.Log.File, cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return fmt.Errorf("opening log: %w", err)
	}
	defer closeLog()

	svcs, err := buildServices(cfg, args, itemsPath)
	if err != nil {
		return err
	}
	slog.Info("starting", "version", version, "datasets", len(svcs), "watch", cfg.Watch)

	styles := ui.NewStyles(ui.ThemeByName(cfg.Theme))
	keys := views.NewGridKeyMap(cfg.Keys)

	tabs := make([]common.View, len(svcs))
	paths := make([]string, 0, len(svcs))
	for i, svc := range svcs {
		tabs[i] = views.NewGridView(i, svc, styles, keys)
		if svc.Path() != "" {
			paths = append(paths, svc.Path())
		}
	}

	model := app.New(cfg, tabs)

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())

	// Reload a dataset when its file changes on disk.
	if cfg.Watch && len(paths) > 0 {
		watchCh, stop, watchErr := watcher.Watch(paths, cfg.WatchDebounce)
		if watchErr != nil {
			slog.Warn("file watcher unavailable", "err", watchErr)
		} else {
			defer stop()
			go func() {
				for ev := range watchCh {
					slog.Debug("dataset changed", "paths", ev.Paths)
					p.Send(common.RefreshMsg{Paths: ev.Paths})
				}
			}()
		}
	}

	_, err = p.Run()
	return err
}

// buildServices opens one cached file source per command-line file, falling
// back to the configured sources.
func buildServices(cfg *config.Config, files []string, itemsPath string) ([]source.Service, error) {
	specs := cfg.Sources
	if len(files) > 0 {
		specs = make([]config.Source, len(files))
		for i, f := range files {
			specs[i] = config.Source{Path: f, ItemsPath: itemsPath}
		}
	}

	svcs := make([]source.Service, 0, len(specs))
	for _, s := range specs {
		fs, err := source.NewFileService(s.Name, s.Path, s.ItemsPath)
		if err != nil {
			return nil, fmt.Errorf("opening %s: %w", s.Path, err)
		}
		svcs = append(svcs, source.NewCachedService(fs, cfg.CacheTTL))
	}
	return svcs, nil
}
