package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/cfgx/session"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/pterm/pterm"
)

func newTestShell(t *testing.T) *Shell {
	pterm.DisableOutput()
	t.Cleanup(pterm.EnableOutput)
	return NewShell(session.NewStore())
}

func execute(t *testing.T, sh *Shell, lines ...string) {
	t.Helper()
	for _, line := range lines {
		if _, err := sh.Execute(line); err != nil {
			t.Fatalf("%q: %v", line, err)
		}
	}
}

func TestDefineInline(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cfgx.gshell")
	defer teardown()
	//
	sh := newTestShell(t)
	execute(t, sh, "def G = S -> S a | b; A -> a")
	name, g, err := sh.current()
	if err != nil {
		t.Fatal(err)
	}
	if name != "G" || g.Size() != 3 || g.Start() != "S" {
		t.Errorf("unexpected grammar %s:\n%s", name, g)
	}
}

func TestDefineMultiLine(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cfgx.gshell")
	defer teardown()
	//
	sh := newTestShell(t)
	execute(t, sh, "def H", "S -> a S | B", "B -> b | &")
	if sh.defining != "H" {
		t.Fatalf("expected to be in definition mode")
	}
	execute(t, sh, "")
	if sh.defining != "" {
		t.Errorf("expected definition mode to end with an empty line")
	}
	g, err := sh.store.Get("H")
	if err != nil {
		t.Fatal(err)
	}
	if g.Size() != 4 {
		t.Errorf("expected 4 productions, have\n%s", g)
	}
}

func TestTransformationsAreSaved(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cfgx.gshell")
	defer teardown()
	//
	sh := newTestShell(t)
	execute(t, sh,
		"def G = S -> S a | A b | c; A -> a A | &; B -> b",
		"productive", "reachable", "reachable A", "empty", "ne", "na",
		"first", "firstnt", "follow", "finite", "recursion", "factored",
		"direct", "direct S", "indirect", "indirect A S",
		"useless", "epsilon", "simple", "factor 5", "proper",
		"list", "show", "help",
	)
	for _, name := range []string{
		"G_direct", "G_indirect", "G_useless_free", "G_epsilon_free", "G_simple_free",
		"G_unproductive_free", "G_unreachable_free",
	} {
		if _, err := sh.store.Get(name); err != nil {
			t.Errorf("expected grammar %s to be saved: %v", name, err)
		}
	}
	g, _ := sh.store.Get("G_indirect")
	if g.HasLeftRecursion() {
		t.Errorf("expected G_indirect to be free of left recursion")
	}
	if name, _, _ := sh.store.Selected(); name != "G" {
		t.Errorf("expected transformations not to change the selection, have %s", name)
	}
}

func TestCommandErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cfgx.gshell")
	defer teardown()
	//
	sh := newTestShell(t)
	if _, err := sh.Execute("first"); !errors.Is(err, ErrNoSelection) {
		t.Errorf("expected missing selection to be reported, have %v", err)
	}
	if _, err := sh.Execute("frist"); err == nil {
		t.Errorf("expected unknown command to be reported")
	}
	if _, err := sh.Execute("def G = S -> a |"); err == nil {
		t.Errorf("expected syntax error to be reported")
	}
	execute(t, sh, "def G = S -> a S | b")
	for _, line := range []string{"factor x", "direct X", "indirect S X", "select X", "reachable X", "dot"} {
		if _, err := sh.Execute(line); err == nil {
			t.Errorf("expected %q to fail", line)
		}
	}
	if quit, _ := sh.Execute("quit"); !quit {
		t.Errorf("expected quit to quit")
	}
}

func TestLoadAndDot(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cfgx.gshell")
	defer teardown()
	//
	sh := newTestShell(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "etf.txt")
	text := "E -> E + T | T\nT -> T * F | F\nF -> ( E ) | id\n"
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		t.Fatal(err)
	}
	execute(t, sh, "load "+path)
	if name, g, _ := sh.store.Selected(); name != "etf" || g.Size() != 6 {
		t.Fatalf("expected grammar etf to be loaded and selected, have %s", name)
	}
	dotfile := filepath.Join(dir, "etf.dot")
	execute(t, sh, "dot "+dotfile)
	dot, err := os.ReadFile(dotfile)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(dot), "E -> T") {
		t.Errorf("expected dependency E -> T in\n%s", dot)
	}
}

func TestInitFile(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cfgx.gshell")
	defer teardown()
	//
	sh := newTestShell(t)
	path := filepath.Join(t.TempDir(), "init.gsh")
	script := "// session setup\ndef G\nS -> a S | b\n\ndef H = S -> a\nselect G\nepsilon\n"
	if err := os.WriteFile(path, []byte(script), 0644); err != nil {
		t.Fatal(err)
	}
	sh.loadInitFile(path)
	names := sh.store.Names()
	if len(names) != 3 || names[0] != "G" || names[1] != "H" || names[2] != "G_epsilon_free" {
		t.Errorf("unexpected session after init file: %v", names)
	}
}
