/*
Package cfgx is a toolbox for transforming context-free grammars.

cfgx computes derived properties of a grammar (productive and reachable
symbols, FIRST and FOLLOW sets, finiteness, left recursion) and rewrites
grammars into the forms top-down parsers need: free of epsilon-productions,
free of simple productions, left-factored and free of left recursion.
Package structure is as follows:

■ grammar: Package grammar holds the grammar data model together with all
analyses and rewrites.

■ textform: Package textform reads and writes grammars in a small line-oriented
text format ("S -> a S | &").

■ session: Package session keeps named grammar snapshots for later retrieval.

■ cmd/gshell: An interactive shell to experiment with grammar transformations.

The base package contains the symbol alphabet conventions which are used
throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package cfgx
