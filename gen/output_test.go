package gen

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
)

func TestWriteFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "library")
	if err := PrepareOutputDir(dir, false); err != nil {
		t.Fatalf("PrepareOutputDir: %v", err)
	}

	files := []*OutputFile{
		{Path: "lovr.audio.lua", Module: "lovr.audio", Content: []byte("---@meta lovr.audio\n")},
		{Path: "globals.lua", Content: []byte("---@meta\n")},
	}
	stats, err := WriteFiles(dir, files, false)
	if err != nil {
		t.Fatalf("WriteFiles: %v", err)
	}
	if stats.Files != 2 {
		t.Errorf("expected 2 files written, got %d", stats.Files)
	}
	if stats.Bytes != int64(len(files[0].Content)+len(files[1].Content)) {
		t.Errorf("unexpected byte count %d", stats.Bytes)
	}

	got, err := os.ReadFile(filepath.Join(dir, "lovr.audio.lua"))
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if string(got) != "---@meta lovr.audio\n" {
		t.Errorf("unexpected content %q", got)
	}
}

func TestWriteFiles_DryRun(t *testing.T) {
	dir := t.TempDir()
	stats, err := WriteFiles(dir, []*OutputFile{{Path: "lovr.lua", Content: []byte("x")}}, true)
	if err != nil {
		t.Fatalf("WriteFiles: %v", err)
	}
	if stats.Files != 0 {
		t.Errorf("dry run wrote %d files", stats.Files)
	}
	if _, err := os.Stat(filepath.Join(dir, "lovr.lua")); !os.IsNotExist(err) {
		t.Error("dry run created a file")
	}
}

func TestWriteFiles_FailureNamesModule(t *testing.T) {
	dir := t.TempDir()
	files := []*OutputFile{
		{Path: "lovr.audio.lua", Module: "lovr.audio", Content: []byte("audio\n")},
		{Path: filepath.Join("missing", "lovr.math.lua"), Module: "lovr.math", Content: []byte("math\n")},
	}
	stats, err := WriteFiles(dir, files, false)
	if err == nil {
		t.Fatal("expected error writing into a missing directory")
	}
	if !errors.Is(err, ErrOutputUnwritable) {
		t.Errorf("expected ErrOutputUnwritable, got %v", err)
	}
	if want := "module lovr.math"; !strings.Contains(err.Error(), want) {
		t.Errorf("error %q does not name %q", err, want)
	}
	if stats.Files != 1 {
		t.Errorf("expected the first file to be written, got %d", stats.Files)
	}
	got, readErr := os.ReadFile(filepath.Join(dir, "lovr.audio.lua"))
	if readErr != nil || string(got) != "audio\n" {
		t.Errorf("earlier file damaged: %q, %v", got, readErr)
	}
}

func TestPrepareOutputDir_Clean(t *testing.T) {
	dir := t.TempDir()
	stale := filepath.Join(dir, "stale.lua")
	if err := os.WriteFile(stale, []byte("old"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := PrepareOutputDir(dir, true); err != nil {
		t.Fatalf("PrepareOutputDir: %v", err)
	}
	if _, err := os.Stat(stale); !os.IsNotExist(err) {
		t.Error("clean did not remove stale file")
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		t.Error("output directory not recreated")
	}
}

func TestPrepareOutputDir_RefusesToCleanWorkingDir(t *testing.T) {
	for _, dir := range []string{".", "./", "..", string(filepath.Separator)} {
		err := PrepareOutputDir(dir, true)
		if !errors.Is(err, ErrOutputUnwritable) {
			t.Errorf("PrepareOutputDir(%q, true) = %v, want ErrOutputUnwritable", dir, err)
		}
	}
}

func TestPrepareOutputDir_Unwritable(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("file-as-parent check is POSIX specific")
	}
	parent := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(parent, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	err := PrepareOutputDir(filepath.Join(parent, "library"), false)
	if !errors.Is(err, ErrOutputUnwritable) {
		t.Errorf("expected ErrOutputUnwritable, got %v", err)
	}
}
