package main

import (
	"fmt"

	"oss.terrastruct.com/textgraph/lib/xmain"
)

func help(ms *xmain.State) {
	fmt.Fprintf(ms.Stdout, `Usage:
  %s [--style=unicode] [--diamond=box] [--watch] graph.json [out.txt]

%[1]s lays out and draws the graph in graph.json as text.
Use - to read from stdin or write to stdout. Output defaults to stdout.

The input is a JSON graph:
  {"direction": "TD", "nodes": [{"id": "a", "label": "Start", "shape": "rounded"}],
   "edges": [{"from": "a", "to": "b", "kind": "-->", "label": "yes"}],
   "containers": [{"title": "group", "members": ["a", "b"]}]}

Flags:
%s

See more docs at https://oss.terrastruct.com/textgraph
`, ms.Name, ms.Opts.Help())
}
