package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/cfgx/grammar"
	"github.com/npillmayer/cfgx/grammar/iteratable"
	"github.com/npillmayer/cfgx/session"
	"github.com/npillmayer/cfgx/textform"
	"github.com/pterm/pterm"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

const (
	prompt       = "gshell> "
	continuation = "   ...> "
)

// ErrNoSelection is returned by commands which need a selected grammar.
var ErrNoSelection = errors.New("no grammar selected")

// Shell is our interpreter object. It holds a session of grammars, one of
// which is the current grammar for analyses and transformations.
type Shell struct {
	store    *session.Store
	repl     *readline.Instance
	defining string   // name of grammar currently being defined
	buffer   []string // lines of grammar currently being defined
}

// NewShell creates a shell operating on a session store.
func NewShell(store *session.Store) *Shell {
	return &Shell{store: store}
}

type command struct {
	args string
	help string
	run  func(sh *Shell, args []string) error
}

var commands map[string]command

func init() {
	commands = map[string]command{
		"def":        {"NAME [= TEXT]", "define a grammar; rules separated by ';' or on following lines", nil},
		"load":       {"FILE [NAME]", "load a grammar from a file", (*Shell).load},
		"list":       {"", "list all grammars of the session", (*Shell).list},
		"select":     {"NAME", "select the current grammar", (*Shell).selectGrammar},
		"show":       {"", "show the current grammar", (*Shell).show},
		"productive": {"", "productive non-terminals", (*Shell).productive},
		"reachable":  {"[SYMBOL]", "symbols reachable from SYMBOL or the start symbol", (*Shell).reachable},
		"empty":      {"", "is the language empty?", (*Shell).empty},
		"ne":         {"", "non-terminals deriving the empty word", (*Shell).nullable},
		"na":         {"", "non-terminals derivable by simple productions", (*Shell).simpleTable},
		"first":      {"", "FIRST sets", (*Shell).first},
		"firstnt":    {"", "FIRST-NT sets", (*Shell).firstNT},
		"follow":     {"", "FOLLOW sets", (*Shell).follow},
		"finite":     {"", "is the language finite?", (*Shell).finite},
		"recursion":  {"", "left recursive non-terminals", (*Shell).recursion},
		"factored":   {"", "is the grammar left-factored?", (*Shell).factored},
		"factor":     {"[N]", "left-factor in at most N steps", (*Shell).factor},
		"direct":     {"[A]", "remove direct left recursion of A or all non-terminals", (*Shell).direct},
		"indirect":   {"[A …]", "remove left recursion, in the given order of non-terminals", (*Shell).indirect},
		"useless":    {"", "remove useless symbols", (*Shell).useless},
		"epsilon":    {"", "remove epsilon-productions", (*Shell).epsilon},
		"simple":     {"", "remove simple productions", (*Shell).simple},
		"proper":     {"", "transform into a proper grammar, step by step", (*Shell).proper},
		"dot":        {"FILE", "write the dependency graph in Graphviz format", (*Shell).dot},
		"help":       {"", "list commands", (*Shell).help},
		"quit":       {"", "leave the shell", nil},
	}
}

// Execute interprets a single input line. It returns true if the user
// requested to quit.
func (sh *Shell) Execute(line string) (bool, error) {
	if sh.defining != "" {
		if strings.TrimSpace(line) == "" {
			return false, sh.finishDefinition()
		}
		sh.buffer = append(sh.buffer, line)
		return false, nil
	}
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "//") {
		return false, nil
	}
	fields := strings.Fields(line)
	cmd, args := fields[0], fields[1:]
	tracer().Debugf("command %q, args = %v", cmd, args)
	switch cmd {
	case "quit", "exit":
		return true, nil
	case "def":
		return false, sh.define(strings.TrimSpace(strings.TrimPrefix(line, "def")))
	}
	c, ok := commands[cmd]
	if !ok {
		return false, fmt.Errorf("unknown command %q, try \"help\"", cmd)
	}
	return false, c.run(sh, args)
}

// --- Defining grammars -----------------------------------------------------

func (sh *Shell) define(rest string) error {
	name, text, inline := strings.Cut(rest, "=")
	name = strings.TrimSpace(name)
	if name == "" || strings.ContainsAny(name, " \t") {
		return fmt.Errorf("usage: def NAME [= TEXT]")
	}
	if inline {
		return sh.addGrammar(name, strings.ReplaceAll(text, ";", "\n"))
	}
	sh.defining, sh.buffer = name, nil
	return nil
}

// finishDefinition parses the lines collected for a grammar definition.
func (sh *Shell) finishDefinition() error {
	if sh.defining == "" {
		return nil
	}
	name, text := sh.defining, strings.Join(sh.buffer, "\n")
	sh.defining, sh.buffer = "", nil
	return sh.addGrammar(name, text)
}

func (sh *Shell) addGrammar(name, text string) error {
	g, err := textform.Parse(name, text)
	if err != nil {
		return err
	}
	return sh.storeGrammar(name, g)
}

func (sh *Shell) storeGrammar(name string, g *grammar.Grammar) error {
	if _, err := sh.store.Add(name, g); err != nil {
		return err
	}
	pterm.Info.Printfln("grammar %s with %d productions", name, g.Size())
	return sh.store.Select(name)
}

func (sh *Shell) load(args []string) error {
	if len(args) == 0 || len(args) > 2 {
		return fmt.Errorf("usage: load FILE [NAME]")
	}
	name := strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))
	if len(args) == 2 {
		name = args[1]
	}
	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()
	g, err := textform.ParseReader(name, args[0], f)
	if err != nil {
		return err
	}
	return sh.storeGrammar(name, g)
}

// --- Session ---------------------------------------------------------------

func (sh *Shell) current() (string, *grammar.Grammar, error) {
	name, g, ok := sh.store.Selected()
	if !ok {
		return "", nil, ErrNoSelection
	}
	return name, g, nil
}

// save stores a transformed grammar under a derived name.
func (sh *Shell) save(base, suffix string, g *grammar.Grammar) (string, error) {
	dup, isDup := sh.store.FindDuplicate(g)
	name, err := sh.store.Derive(base, suffix, g)
	if err != nil {
		return "", err
	}
	if isDup && dup != name {
		pterm.Info.Printfln("saved as %s (equal to %s)", name, dup)
	} else {
		pterm.Info.Printfln("saved as %s", name)
	}
	return name, nil
}

func (sh *Shell) list([]string) error {
	selected, _, _ := sh.store.Selected()
	data := pterm.TableData{{"", "Name", "Start", "Productions"}}
	for i := 0; i < sh.store.Len(); i++ {
		e, _ := sh.store.At(i)
		mark := ""
		if e.Name == selected {
			mark = "*"
		}
		data = append(data, []string{mark, e.Name, e.Grammar.Start(), strconv.Itoa(e.Grammar.Size())})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func (sh *Shell) selectGrammar(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: select NAME")
	}
	return sh.store.Select(args[0])
}

func (sh *Shell) show([]string) error {
	name, g, err := sh.current()
	if err != nil {
		return err
	}
	pterm.DefaultSection.Println(name)
	pterm.Print(textform.Render(g))
	return nil
}

// --- Analysis --------------------------------------------------------------

func (sh *Shell) productive([]string) error {
	_, g, err := sh.current()
	if err != nil {
		return err
	}
	pterm.Info.Printfln("productive = %v", g.Productive())
	return nil
}

func (sh *Shell) reachable(args []string) error {
	_, g, err := sh.current()
	if err != nil {
		return err
	}
	from := g.Start()
	if len(args) > 0 {
		from = args[0]
	}
	if !g.IsSymbol(from) {
		return fmt.Errorf("%w: %s", grammar.ErrUnknownSymbol, from)
	}
	pterm.Info.Printfln("reachable from %s = %v", from, g.Reachable(from))
	return nil
}

func (sh *Shell) empty([]string) error {
	_, g, err := sh.current()
	if err != nil {
		return err
	}
	pterm.Info.Printfln("empty = %v", g.IsEmpty())
	return nil
}

func (sh *Shell) nullable([]string) error {
	_, g, err := sh.current()
	if err != nil {
		return err
	}
	pterm.Info.Printfln("NE = %v", g.EpsilonClosure())
	return nil
}

func (sh *Shell) finite([]string) error {
	_, g, err := sh.current()
	if err != nil {
		return err
	}
	pterm.Info.Printfln("finite = %v", g.IsFinite())
	return nil
}

func (sh *Shell) factored([]string) error {
	_, g, err := sh.current()
	if err != nil {
		return err
	}
	pterm.Info.Printfln("factored = %v", g.IsFactored())
	return nil
}

func (sh *Shell) recursion([]string) error {
	_, g, err := sh.current()
	if err != nil {
		return err
	}
	pterm.Info.Printfln("direct left recursion   = %v", g.DirectLeftRecursion())
	pterm.Info.Printfln("indirect left recursion = %v", g.IndirectLeftRecursion())
	return nil
}

func (sh *Shell) simpleTable([]string) error {
	_, g, err := sh.current()
	if err != nil {
		return err
	}
	return printSets(g, "NA", g.SimpleTable())
}

func (sh *Shell) first([]string) error {
	_, g, err := sh.current()
	if err != nil {
		return err
	}
	return printSets(g, "FIRST", g.FirstSets())
}

func (sh *Shell) firstNT([]string) error {
	_, g, err := sh.current()
	if err != nil {
		return err
	}
	return printSets(g, "FIRST-NT", g.FirstNT())
}

func (sh *Shell) follow([]string) error {
	_, g, err := sh.current()
	if err != nil {
		return err
	}
	return printSets(g, "FOLLOW", g.FollowSets())
}

// printSets prints a table of sets, one row per non-terminal.
func printSets(g *grammar.Grammar, title string, sets map[string]*iteratable.Set) error {
	data := pterm.TableData{{"", title}}
	for _, A := range g.Heads() {
		if set, ok := sets[A]; ok {
			data = append(data, []string{A, set.String()})
		}
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

// --- Transformations -------------------------------------------------------

func (sh *Shell) factor(args []string) error {
	name, g, err := sh.current()
	if err != nil {
		return err
	}
	steps := 0
	if len(args) > 0 {
		if steps, err = strconv.Atoi(args[0]); err != nil || steps <= 0 {
			return fmt.Errorf("usage: factor [N], N > 0")
		}
	}
	result := g.Factor(steps)
	pterm.Info.Println(result.String())
	if !result.Factored {
		return nil
	}
	_, err = sh.save(name, "factored", result.Grammar)
	return err
}

func (sh *Shell) direct(args []string) error {
	name, g, err := sh.current()
	if err != nil {
		return err
	}
	if len(args) > 1 {
		return fmt.Errorf("usage: direct [A]")
	}
	if len(args) == 1 {
		if _, err := g.RemoveDirectLeftRecursion(args[0]); err != nil {
			return err
		}
	} else {
		g.RemoveAllDirectLeftRecursion()
	}
	_, err = sh.save(name, "direct", g)
	return err
}

func (sh *Shell) indirect(args []string) error {
	name, g, err := sh.current()
	if err != nil {
		return err
	}
	var order []string
	if len(args) > 0 {
		order = args
	}
	if _, err := g.RemoveLeftRecursion(order); err != nil {
		return err
	}
	_, err = sh.save(name, "indirect", g)
	return err
}

func (sh *Shell) useless([]string) error {
	return sh.transform("useless_free", (*grammar.Grammar).RemoveUseless)
}

func (sh *Shell) epsilon([]string) error {
	return sh.transform("epsilon_free", (*grammar.Grammar).RemoveEpsilon)
}

func (sh *Shell) simple([]string) error {
	return sh.transform("simple_free", (*grammar.Grammar).RemoveSimple)
}

func (sh *Shell) transform(suffix string, f func(*grammar.Grammar) *grammar.Grammar) error {
	name, g, err := sh.current()
	if err != nil {
		return err
	}
	_, err = sh.save(name, suffix, f(g))
	return err
}

func (sh *Shell) proper([]string) error {
	name, g, err := sh.current()
	if err != nil {
		return err
	}
	root := pterm.TreeNode{Text: name}
	for _, v := range g.ToProper() {
		derived, err := sh.store.Derive(name, v.Suffix, v.Grammar)
		if err != nil {
			return err
		}
		root.Children = append(root.Children, pterm.TreeNode{
			Text: fmt.Sprintf("%s (%d productions)", derived, v.Grammar.Size()),
		})
	}
	return pterm.DefaultTree.WithRoot(root).Render()
}

func (sh *Shell) dot(args []string) error {
	_, g, err := sh.current()
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("usage: dot FILE")
	}
	f, err := os.Create(args[0])
	if err != nil {
		return err
	}
	defer f.Close()
	if err := g.DependencyGraphViz(f); err != nil {
		return err
	}
	pterm.Info.Printfln("dependency graph written to %s", args[0])
	return nil
}

func (sh *Shell) help([]string) error {
	names := maps.Keys(commands)
	slices.Sort(names)
	data := pterm.TableData{{"Command", "Arguments", ""}}
	for _, name := range names {
		c := commands[name]
		data = append(data, []string{name, c.args, c.help})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

// completer creates a readline completer for all commands. Grammar names
// are completed for "select".
func (sh *Shell) completer() *readline.PrefixCompleter {
	names := maps.Keys(commands)
	slices.Sort(names)
	var items []readline.PrefixCompleterInterface
	for _, name := range names {
		if name == "select" {
			items = append(items, readline.PcItem(name, readline.PcItemDynamic(
				func(string) []string { return sh.store.Names() },
			)))
			continue
		}
		items = append(items, readline.PcItem(name))
	}
	return readline.NewPrefixCompleter(items...)
}
