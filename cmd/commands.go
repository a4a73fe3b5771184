package main

import (
	"encoding/json"
	"fmt"
	"runtime"
	"strconv"
	"strings"

	"github.com/Akashdeep-Patra/dgv/internal/grid"
	"github.com/Akashdeep-Patra/dgv/internal/source"
	"github.com/Akashdeep-Patra/dgv/internal/table"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

// buildVersionCmd creates the `dgv version` subcommand supporting --json.
func buildVersionCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, _ []string) error {
			info := map[string]string{
				"version": version,
				"commit":  commit,
				"date":    date,
				"go":      runtime.Version(),
				"os":      runtime.GOOS,
				"arch":    runtime.GOARCH,
			}
			out := cmd.OutOrStdout()
			if jsonOutput {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(info)
			}
			fmt.Fprintf(out, "dgv %s\n", version)
			fmt.Fprintf(out, "  commit:  %s\n", commit)
			fmt.Fprintf(out, "  built:   %s\n", date)
			fmt.Fprintf(out, "  go:      %s\n", runtime.Version())
			fmt.Fprintf(out, "  os/arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output version info as JSON")

	return cmd
}

// buildCompletionCmd creates the `dgv completion` subcommand for shell completions.
func buildCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for dgv.

Examples:
  # Bash (add to ~/.bashrc)
  dgv completion bash > /etc/bash_completion.d/dgv

  # Zsh (add to ~/.zshrc before compinit)
  dgv completion zsh > "${fpath[1]}/_dgv"

  # Fish
  dgv completion fish > ~/.config/fish/completions/dgv.fish

  # PowerShell
  dgv completion powershell > dgv.ps1`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			default:
				return fmt.Errorf("unsupported shell: %s", args[0])
			}
		},
	}
}

// buildRenderCmd creates `dgv render <file>`, which prints the grid once.
func buildRenderCmd() *cobra.Command {
	var (
		width    int
		selected string
	)

	cmd := &cobra.Command{
		Use:   "render <file>",
		Short: "Print a dataset as a table",
		Long: `Print a dataset as a table without starting the interactive grid.

Examples:
  dgv render items.json
  dgv render inventory.yaml --select 0,2
  dgv render export.json --items-path '$.data.rows[*]'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl, err := loadController(cmd, args[0], selected)
			if err != nil {
				return err
			}
			out := ctrl.Table().Render(table.RenderOptions{
				Width:       width,
				BorderStyle: lipgloss.NewStyle().Faint(true),
			})
			fmt.Fprintln(cmd.OutOrStdout(), out)
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s  %s\n",
				ctrl.SelectAllState(), ctrl.SelectionLabel(), downloadState(ctrl))
			return nil
		},
	}

	cmd.Flags().IntVarP(&width, "width", "w", 0, "Table width (0 sizes to content)")
	cmd.Flags().StringVarP(&selected, "select", "s", "", "Rows to mark selected, e.g. 0,2,5-7")

	return cmd
}

// buildDownloadCmd creates `dgv download <file>`, the headless bulk action.
func buildDownloadCmd() *cobra.Command {
	var (
		selected string
		copyOut  bool
	)

	cmd := &cobra.Command{
		Use:   "download <file>",
		Short: "Print the download payload for selected rows",
		Long: `Select rows of a dataset and print the "Downloaded Items" payload.

Fails when nothing is selected or a selected row is not available.

Examples:
  dgv download items.json --select 1,2
  dgv download items.csv --select all --copy`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl, err := loadController(cmd, args[0], selected)
			if err != nil {
				return err
			}
			payload, err := ctrl.Download()
			if err != nil {
				return fmt.Errorf("%w (%s)", err, downloadState(ctrl))
			}
			fmt.Fprintln(cmd.OutOrStdout(), payload)
			if copyOut {
				if err := clipboard.WriteAll(payload); err != nil {
					return fmt.Errorf("copy to clipboard: %w", err)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&selected, "select", "s", "", `Rows to select, e.g. 0,2,5-7 or "all"`)
	cmd.Flags().BoolVar(&copyOut, "copy", false, "Also copy the payload to the clipboard")
	_ = cmd.MarkFlagRequired("select")

	return cmd
}

// loadController reads file and applies the row selection expression.
func loadController(cmd *cobra.Command, file, selected string) (*grid.Controller, error) {
	itemsPath, _ := cmd.Flags().GetString("items-path")
	svc, err := source.NewFileService("", file, itemsPath)
	if err != nil {
		return nil, err
	}
	items, err := svc.Items()
	if err != nil {
		return nil, err
	}

	ctrl := grid.New(items)
	if strings.EqualFold(strings.TrimSpace(selected), "all") {
		ctrl.ToggleAll()
		return ctrl, nil
	}
	rows, err := parseRows(selected, ctrl.Len())
	if err != nil {
		return nil, err
	}
	for _, r := range rows {
		if !ctrl.IsSelected(r) {
			ctrl.ToggleRow(r)
		}
	}
	return ctrl, nil
}

// parseRows parses "0,2,5-7" into row indices in the order given. Every
// index must be below n.
func parseRows(expr string, n int) ([]int, error) {
	var rows []int
	for _, part := range strings.Split(expr, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		lo, hi, isRange := strings.Cut(part, "-")
		first, err := strconv.Atoi(strings.TrimSpace(lo))
		if err != nil {
			return nil, fmt.Errorf("invalid row %q", part)
		}
		last := first
		if isRange {
			if last, err = strconv.Atoi(strings.TrimSpace(hi)); err != nil || last < first {
				return nil, fmt.Errorf("invalid row range %q", part)
			}
		}
		if first < 0 || last >= n {
			return nil, fmt.Errorf("row %q out of range [0, %d)", part, n)
		}
		for r := first; r <= last; r++ {
			rows = append(rows, r)
		}
	}
	return rows, nil
}

func downloadState(ctrl *grid.Controller) string {
	switch {
	case ctrl.DownloadEnabled():
		return "download enabled"
	case ctrl.Count() == 0:
		return "nothing selected"
	default:
		return "selection includes unavailable items"
	}
}
