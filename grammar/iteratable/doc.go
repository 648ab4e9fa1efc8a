/*
Package iteratable implements iteratable container data structures.

Set is a special purpose set type for grammar symbols, suitable mainly for
implementing the fixed-point algorithms around grammars. These kinds of
algorithms are often more straightforward to describe as set constructions
and operations. Sets keep their members in lexicographic order, which makes
every traversal deterministic.

Unusually, all set operations are destructive!

    s := NewSet("a", "b")
    s.Union(NewSet("c"))  // s is now {a, b, c}
    t := s.Copy().Difference(NewSet("a"))  // s is unchanged, t is {b, c}

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package iteratable
