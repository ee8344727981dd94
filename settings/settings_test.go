// Copyright (c) 2026 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package settings_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/devblok/trisync/settings"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "settings.ini")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadMissingFile(t *testing.T) {
	s := settings.New()
	if s.Load(filepath.Join(t.TempDir(), "nope.ini")) {
		t.Error("Load should fail for a missing file")
	}
	if s.Path() == "" {
		t.Error("path should be recorded even when the load fails")
	}
}

func TestSaveWithoutPath(t *testing.T) {
	s := settings.New()
	s.SetInt("Render", "HotReloadIntervalMs", 250)
	if s.Save() {
		t.Error("Save should fail when no path is set")
	}
}

func TestEndToEndScenario(t *testing.T) {
	path := writeFile(t, strings.Join([]string{
		"[Render]",
		"VSync=0",
		"HotReloadIntervalMs=250",
		"[Triangle]",
		"Scale=2.5",
	}, "\n"))

	s := settings.New()
	if !s.Load(path) {
		t.Fatal("load failed")
	}
	if s.GetBool("Render", "VSync", true) {
		t.Error("VSync should parse as false")
	}
	if got := s.GetInt("Render", "HotReloadIntervalMs", 500); got != 250 {
		t.Errorf("HotReloadIntervalMs = %d, want 250", got)
	}
	if got := s.GetDouble("Triangle", "Scale", 1.0); got != 2.5 {
		t.Errorf("Scale = %v, want 2.5", got)
	}
	if got := s.GetDouble("Triangle", "RotationSpeed", 1.0); got != 1.0 {
		t.Errorf("absent RotationSpeed = %v, want the default 1.0", got)
	}
}

func TestCommentStripping(t *testing.T) {
	path := writeFile(t, strings.Join([]string{
		"[Render]",
		"VSync=1 ; inline comment",
		"# full line comment",
		"  # indented comment with key=value inside",
		"Ghost=1 # hash comment",
	}, "\n"))

	s := settings.New()
	if !s.Load(path) {
		t.Fatal("load failed")
	}
	if v, ok := s.GetString("Render", "VSync"); !ok || v != "1" {
		t.Errorf("VSync = %q, %v; want \"1\", true", v, ok)
	}
	if v, ok := s.GetString("Render", "Ghost"); !ok || v != "1" {
		t.Errorf("Ghost = %q, %v; want \"1\", true", v, ok)
	}
}

func TestDefaultCategory(t *testing.T) {
	path := writeFile(t, strings.Join([]string{
		"orphan=42",
		"[Foo]",
		"scoped=1",
		"[ Bar ]",
		"other=2",
	}, "\n"))

	s := settings.New()
	if !s.Load(path) {
		t.Fatal("load failed")
	}
	if got := s.GetInt(settings.DefaultCategory, "orphan", 0); got != 42 {
		t.Errorf("orphan = %d, want 42 in %q", got, settings.DefaultCategory)
	}
	if got := s.GetInt("Foo", "scoped", 0); got != 1 {
		t.Errorf("scoped = %d, want 1", got)
	}
	if got := s.GetInt("Bar", "other", 0); got != 2 {
		t.Error("section names should be trimmed")
	}
}

func TestMalformedLinesIgnored(t *testing.T) {
	path := writeFile(t, strings.Join([]string{
		"[Render]",
		"this line has no equals sign",
		"VSync=1",
	}, "\n"))

	s := settings.New()
	if !s.Load(path) {
		t.Fatal("load should still succeed with malformed lines")
	}
	if !s.GetBool("Render", "VSync", false) {
		t.Error("valid line after a malformed one should still parse")
	}
	if _, ok := s.GetString("Render", "this line has no equals sign"); ok {
		t.Error("line without '=' should not produce a key")
	}
}

func TestGetBoolVariants(t *testing.T) {
	s := settings.New()
	for i, v := range []string{"TRUE", "On", "YES", "1"} {
		s.SetString("B", "k", v)
		if !s.GetBool("B", "k", false) {
			t.Errorf("case %d: %q should read as true", i, v)
		}
	}
	for i, v := range []string{"0", "off", "False", "NO"} {
		s.SetString("B", "k", v)
		if s.GetBool("B", "k", true) {
			t.Errorf("case %d: %q should read as false", i, v)
		}
	}
	s.SetString("B", "k", "maybe")
	if !s.GetBool("B", "k", true) {
		t.Error("unrecognized text should yield the default")
	}
}

func TestTypedRoundTrip(t *testing.T) {
	s := settings.New()

	s.SetDouble("T", "d", 2.5)
	if got := s.GetDouble("T", "d", 0); got != 2.5 {
		t.Errorf("double round-trip = %v, want 2.5", got)
	}
	s.SetDouble("T", "tiny", 0.1)
	if got := s.GetDouble("T", "tiny", 0); got != 0.1 {
		t.Errorf("double round-trip = %v, want 0.1", got)
	}
	s.SetInt("T", "i", -42)
	if got := s.GetInt("T", "i", 0); got != -42 {
		t.Errorf("int round-trip = %d, want -42", got)
	}
	s.SetBool("T", "b", true)
	if v, _ := s.GetString("T", "b"); v != "1" {
		t.Errorf("bool stored as %q, want \"1\"", v)
	}
	if !s.GetBool("T", "b", false) {
		t.Error("bool round-trip failed")
	}
	s.SetString("T", "s", "hello world")
	if v, ok := s.GetString("T", "s"); !ok || v != "hello world" {
		t.Errorf("string round-trip = %q, %v", v, ok)
	}
}

func TestTypedDefaults(t *testing.T) {
	s := settings.New()
	if got := s.GetDouble("X", "missing", 7.5); got != 7.5 {
		t.Errorf("GetDouble default = %v", got)
	}
	if got := s.GetInt("X", "missing", 9); got != 9 {
		t.Errorf("GetInt default = %d", got)
	}
	if !s.GetBool("X", "missing", true) {
		t.Error("GetBool default not returned")
	}
	s.SetString("X", "bad", "2.5x")
	if got := s.GetDouble("X", "bad", 1.5); got != 1.5 {
		t.Errorf("malformed double should yield default, got %v", got)
	}
	if got := s.GetInt("X", "bad", 3); got != 3 {
		t.Errorf("malformed int should yield default, got %d", got)
	}
}

func TestLastWriteWins(t *testing.T) {
	path := writeFile(t, strings.Join([]string{
		"[Foo]",
		"k=1",
		"k=2",
	}, "\n"))

	s := settings.New()
	if !s.Load(path) {
		t.Fatal("load failed")
	}
	if v, _ := s.GetString("Foo", "k"); v != "2" {
		t.Errorf("duplicate key should keep the last value, got %q", v)
	}
}

func TestLoadReplacesState(t *testing.T) {
	path := writeFile(t, "[Foo]\na=1\n")

	s := settings.New()
	s.SetInt("Stale", "gone", 1)
	if !s.Load(path) {
		t.Fatal("load failed")
	}
	if _, ok := s.GetString("Stale", "gone"); ok {
		t.Error("Load should discard prior state, not merge")
	}
}

func TestSaveAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.ini")

	s := settings.New()
	s.Load(path) // binds the path, file does not exist yet
	s.SetBool("Render", "VSync", false)
	s.SetDouble("Triangle", "Scale", 2.5)
	s.SetString("Triangle", "Name", "demo")
	if !s.Save() {
		t.Fatal("save failed")
	}

	fresh := settings.New()
	if !fresh.Load(path) {
		t.Fatal("reload of saved file failed")
	}
	if fresh.GetBool("Render", "VSync", true) {
		t.Error("VSync lost in save/load cycle")
	}
	if got := fresh.GetDouble("Triangle", "Scale", 0); got != 2.5 {
		t.Errorf("Scale lost in save/load cycle, got %v", got)
	}
	if v, _ := fresh.GetString("Triangle", "Name"); v != "demo" {
		t.Errorf("Name lost in save/load cycle, got %q", v)
	}
}

func TestSaveIsDeterministic(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.ini")

	s := settings.New()
	s.Load(path)
	s.SetInt("B", "z", 1)
	s.SetInt("B", "a", 2)
	s.SetInt("A", "m", 3)
	if !s.Save() {
		t.Fatal("save failed")
	}
	first, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !s.Save() {
		t.Fatal("second save failed")
	}
	second, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(first) != string(second) {
		t.Error("repeated saves should produce identical files")
	}
	if !strings.HasPrefix(string(first), "[A]") {
		t.Errorf("categories should be written sorted, got:\n%s", first)
	}
}

func TestReloadIfChanged(t *testing.T) {
	path := writeFile(t, "[Foo]\nk=1\n")

	s := settings.New()
	if !s.Load(path) {
		t.Fatal("load failed")
	}
	if s.ReloadIfChanged() {
		t.Error("reload without a file change should report false")
	}

	if err := os.WriteFile(path, []byte("[Foo]\nk=2\n"), 0644); err != nil {
		t.Fatal(err)
	}
	// Force a distinct mtime; some filesystems are coarse enough that
	// the rewrite above lands on the same timestamp.
	future := time.Now().Add(2 * time.Second)
	if err := os.Chtimes(path, future, future); err != nil {
		t.Fatal(err)
	}

	if !s.ReloadIfChanged() {
		t.Fatal("reload after a file change should report true")
	}
	if v, _ := s.GetString("Foo", "k"); v != "2" {
		t.Errorf("reload should pick up new content, got %q", v)
	}
	if s.ReloadIfChanged() {
		t.Error("second reload without another change should report false")
	}
}

func TestReloadIfChangedUnbound(t *testing.T) {
	s := settings.New()
	if s.ReloadIfChanged() {
		t.Error("reload without a loaded path should report false")
	}
}

func TestReloadIfChangedFileGone(t *testing.T) {
	path := writeFile(t, "[Foo]\nk=1\n")

	s := settings.New()
	if !s.Load(path) {
		t.Fatal("load failed")
	}
	if err := os.Remove(path); err != nil {
		t.Fatal(err)
	}
	if s.ReloadIfChanged() {
		t.Error("reload should report false when the file disappeared")
	}
	if v, _ := s.GetString("Foo", "k"); v != "1" {
		t.Error("state should be untouched when the file disappeared")
	}
}

func TestSaveRefreshesTimestamp(t *testing.T) {
	path := writeFile(t, "[Foo]\nk=1\n")

	s := settings.New()
	if !s.Load(path) {
		t.Fatal("load failed")
	}
	s.SetInt("Foo", "k", 2)
	if !s.Save() {
		t.Fatal("save failed")
	}
	if s.ReloadIfChanged() {
		t.Error("our own save should not count as an external change")
	}
}
