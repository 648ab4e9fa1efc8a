package main

import (
	"bufio"
	"flag"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/cfgx/session"
	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/schukonf/koanfadapter"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
)

// tracers of the packages of this module
var traceKeys = []string{"cfgx.grammar", "cfgx.textform", "cfgx.session", "cfgx.gshell"}

// main() starts an interactive CLI ("G.Shell"), where users may enter
// grammars and apply analyses and transformations to them.
func main() {
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	initf := flag.String("init", "", "Initial load")
	steps := flag.Int("steps", 0, "Bound for factoring steps")
	flag.Parse()
	initDisplay()
	if err := initConfig(*tlevel, *steps); err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(1)
	}
	pterm.Info.Println("Welcome to G.Shell") // colored welcome message
	tracer().Infof("Trace level is %s", *tlevel)
	//
	sh := NewShell(session.NewStore())
	repl, err := readline.NewEx(&readline.Config{
		Prompt:       prompt,
		HistoryFile:  filepath.Join(os.TempDir(), "gshell.history"),
		AutoComplete: sh.completer(),
	})
	if err != nil {
		tracer().Errorf("%v", err)
		os.Exit(3)
	}
	defer repl.Close()
	sh.repl = repl
	//
	// load an init file and start receiving commands
	tracer().Infof("Quit with <ctrl>D") // inform user how to stop the CLI
	sh.loadInitFile(*initf)             // init file name provided by flag
	sh.REPL()                           // go into interactive mode
}

// initConfig sets up configuration and tracing. Trace levels given in a
// configuration file take precedence over the command line level.
func initConfig(level string, steps int) error {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := koanfadapter.New(nil, "gshell", []string{"nt"})
	gconf.Initialize(conf)
	if !conf.IsSet("trace.root") {
		conf.Set("trace.root", level)
	}
	for _, key := range traceKeys {
		if !conf.IsSet("trace." + key) {
			conf.Set("trace."+key, level)
		}
	}
	if steps > 0 {
		conf.Set("factor-steps", steps)
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		return err
	}
	tracing.SetTraceSelector(trace2go.Selector())
	return nil
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func (sh *Shell) loadInitFile(filename string) {
	if filename == "" {
		return
	}
	f, err := os.Open(filename)
	if err != nil {
		tracer().Errorf("Unable to open init file: %s", filename)
		return
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	lineno := 0
	for scanner.Scan() {
		lineno++
		if _, err := sh.Execute(scanner.Text()); err != nil {
			tracer().Errorf("Error line %d: %v", lineno, err)
		}
	}
	if err := scanner.Err(); err != nil {
		tracer().Errorf("Error while reading init file: %v", err)
	}
	sh.finishDefinition()
}

// REPL starts interactive mode.
func (sh *Shell) REPL() {
	for {
		line, err := sh.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if sh.defining == "" && strings.TrimSpace(line) == "" {
			continue
		}
		quit, err := sh.Execute(line)
		if err != nil {
			pterm.Error.Println(err.Error())
		}
		if quit {
			break
		}
		if sh.defining != "" {
			sh.repl.SetPrompt(continuation)
		} else {
			sh.repl.SetPrompt(prompt)
		}
	}
	println("Good bye!")
}
