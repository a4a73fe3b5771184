package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Akashdeep-Patra/dgv/internal/config"
	"github.com/Akashdeep-Patra/dgv/internal/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const dataset = `{"rows": [
  {"name": "smss.exe", "device": "Stark", "path": "/dev/smss.exe", "status": "scheduled"},
  {"name": "netsh.exe", "device": "Targaryen", "path": "/dev/netsh.exe", "status": "available"},
  {"name": "uxtheme.dll", "device": "Lannister", "path": "/dev/uxtheme.dll", "status": "Available"}
]}`

func writeDataset(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "items.json")
	require.NoError(t, os.WriteFile(path, []byte(dataset), 0o644))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := buildRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestParseRows(t *testing.T) {
	tests := []struct {
		expr    string
		want    []int
		wantErr bool
	}{
		{"", nil, false},
		{"2,0", []int{2, 0}, false},
		{" 1 , 3-4 ", []int{1, 3, 4}, false},
		{"5", nil, true},
		{"-1", nil, true},
		{"3-1", nil, true},
		{"x", nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			got, err := parseRows(tt.expr, 5)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuildServices(t *testing.T) {
	path := writeDataset(t)
	cfg := &config.Config{
		CacheTTL: time.Second,
		Sources:  []config.Source{{Name: "lab", Path: path, ItemsPath: "$.rows[*]"}},
	}

	svcs, err := buildServices(cfg, nil, "")
	require.NoError(t, err)
	require.Len(t, svcs, 1)
	assert.Equal(t, "lab", svcs[0].Name())
	items, err := svcs[0].Items()
	require.NoError(t, err)
	assert.Len(t, items, 3)

	svcs, err = buildServices(cfg, []string{path}, "$.rows[*]")
	require.NoError(t, err)
	require.Len(t, svcs, 1)
	assert.Equal(t, "items", svcs[0].Name())

	_, err = buildServices(cfg, []string{path}, "$[")
	assert.Error(t, err)
}

func TestDownloadCmd(t *testing.T) {
	path := writeDataset(t)

	out, err := execute(t, "download", path, "--items-path", "$.rows[*]", "--select", "2,1")
	require.NoError(t, err)
	assert.Equal(t, grid.DownloadHeader+"\n\n"+
		"Name: uxtheme.dll Device: Lannister Path: /dev/uxtheme.dll\n"+
		"Name: netsh.exe Device: Targaryen Path: /dev/netsh.exe\n", out)

	_, err = execute(t, "download", path, "--items-path", "$.rows[*]", "--select", "all")
	assert.ErrorIs(t, err, grid.ErrDownloadDisabled)

	_, err = execute(t, "download", path, "--items-path", "$.rows[*]")
	assert.Error(t, err, "--select is required")
}

func TestRenderCmd(t *testing.T) {
	path := writeDataset(t)

	out, err := execute(t, "render", path, "--items-path", "$.rows[*]", "--select", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "netsh.exe")
	assert.Contains(t, out, "● Available")
	assert.Contains(t, out, "Scheduled")
	assert.Contains(t, out, "[-] 1 Selected  download enabled")
}

func TestVersionCmd(t *testing.T) {
	out, err := execute(t, "version", "--json")
	require.NoError(t, err)
	assert.Contains(t, out, `"version": "dev"`)
}
