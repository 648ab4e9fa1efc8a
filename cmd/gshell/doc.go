/*
Command gshell provides an interactive command line tool (G.Shell) for
experiments with context-free grammars. Grammars are entered in text form,
analysed and transformed; every transformation result is kept as a named
grammar in the current session.

    gshell> def G = S -> a S | S b | c
    gshell> select G
    gshell> recursion
    gshell> direct
      >> saved as G_direct

Type "help" for a list of commands. Flags:

    -trace LEVEL   trace level [Debug|Info|Error]
    -init FILE     file with commands to execute at startup
    -steps N       default bound for factoring

Configuration is read from "gshell" configuration files in NestedText format
(see package koanfadapter), e.g. to set trace levels per package:

    trace:
      cfgx.grammar: Debug


License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cfgx.gshell'
func tracer() tracing.Trace {
	return tracing.Select("cfgx.gshell")
}
