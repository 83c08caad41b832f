package main

import (
	"context"
	"errors"
	"fmt"

	"cdr.dev/slog"
	"github.com/spf13/pflag"

	"oss.terrastruct.com/xdefer"
	"oss.terrastruct.com/xjson"

	"oss.terrastruct.com/textgraph"
	"oss.terrastruct.com/textgraph/asciiroute"
	"oss.terrastruct.com/textgraph/asciishapes"
	"oss.terrastruct.com/textgraph/charset"
	"oss.terrastruct.com/textgraph/graph"
	"oss.terrastruct.com/textgraph/layouts/layered"
	"oss.terrastruct.com/textgraph/lib/log"
	"oss.terrastruct.com/textgraph/lib/version"
	"oss.terrastruct.com/textgraph/lib/xmain"
)

func main() {
	xmain.Main(run)
}

type renderFlags struct {
	renderOpts *textgraph.RenderOpts
	layoutJSON bool
}

func run(ctx context.Context, ms *xmain.State) (err error) {
	styleFlag := ms.Opts.Choice("TEXTGRAPH_STYLE", "style", "s", charset.Unicode.String(), []string{"unicode", "ascii", "unicode-math", "compact"}, "the character set.")
	diamondFlag := ms.Opts.Choice("TEXTGRAPH_DIAMOND", "diamond", "", asciishapes.Box.String(), []string{"box", "inline", "tall"}, "how decision nodes are drawn.")
	colorFlag, err := ms.Opts.Bool("TEXTGRAPH_COLOR", "color", "c", false, "colorize the output with ANSI escapes.")
	if err != nil {
		return xmain.UsageErrorf("%v", err)
	}
	watchFlag, err := ms.Opts.Bool("TEXTGRAPH_WATCH", "watch", "w", false, "watch the input for changes and render again.")
	if err != nil {
		return xmain.UsageErrorf("%v", err)
	}
	maxLabelWidthFlag, err := ms.Opts.Int("TEXTGRAPH_MAX_LABEL_WIDTH", "max-label-width", "", layered.DefaultOpts.MaxLabelWidth, "wrap labels wider than this many cells.")
	if err != nil {
		return xmain.UsageErrorf("%v", err)
	}
	debugFlag, err := ms.Opts.Bool("DEBUG", "debug", "d", false, "print debug logs.")
	if err != nil {
		return xmain.UsageErrorf("%v", err)
	}
	// Flags that don't make sense to set in env
	layoutJSONFlag := ms.Opts.Flags.Bool("layout-json", false, "print the positioned nodes and edge routes as JSON instead of drawing.")
	versionFlag := ms.Opts.Flags.BoolP("version", "v", false, "print the version.")

	err = ms.Opts.Flags.Parse(ms.Opts.Args)
	if errors.Is(err, pflag.ErrHelp) {
		help(ms)
		return nil
	}
	if err != nil {
		return xmain.UsageErrorf("failed to parse flags: %v", err)
	}

	if *debugFlag {
		ctx = log.Leveled(ctx, slog.LevelDebug)
	}
	if *versionFlag {
		fmt.Fprintln(ms.Stdout, version.Version)
		return nil
	}

	args := ms.Opts.Flags.Args()
	if len(args) == 0 {
		help(ms)
		return nil
	} else if len(args) > 2 {
		return xmain.UsageErrorf("too many arguments passed")
	}
	inputPath := args[0]
	outputPath := "-"
	if len(args) == 2 {
		outputPath = args[1]
	}

	style, err := charset.ParseType(*styleFlag)
	if err != nil {
		return xmain.UsageErrorf("-s[tyle]: %v", err)
	}
	diamond, err := asciishapes.ParseDiamondStyle(*diamondFlag)
	if err != nil {
		return xmain.UsageErrorf("--diamond: %v", err)
	}
	if *maxLabelWidthFlag <= 0 {
		return xmain.UsageErrorf("--max-label-width must be positive, got %d", *maxLabelWidthFlag)
	}
	lo := layered.DefaultOpts
	lo.MaxLabelWidth = *maxLabelWidthFlag

	rf := renderFlags{
		renderOpts: &textgraph.RenderOpts{
			Charset: style,
			Diamond: diamond,
			Layout:  &lo,
			Color:   *colorFlag,
		},
		layoutJSON: *layoutJSONFlag,
	}
	log.Debug(ctx, "parsed flags",
		slog.F("style", style.String()),
		slog.F("diamond", diamond.String()),
		slog.F("input", inputPath),
		slog.F("output", outputPath),
	)

	if *watchFlag {
		if inputPath == "-" {
			return xmain.UsageErrorf("-w[atch] cannot be combined with reading input from stdin")
		}
		w, err := newWatcher(ctx, ms, rf, inputPath, outputPath)
		if err != nil {
			return err
		}
		return w.run()
	}

	ctx, cancel := log.WithTimeout(ctx, 0)
	defer cancel()

	_, err = render(ctx, ms, rf, inputPath, outputPath)
	if err != nil {
		return err
	}
	if outputPath != "-" {
		ms.Log.Success.Printf("successfully rendered %v to %v", ms.HumanPath(inputPath), ms.HumanPath(outputPath))
	}
	return nil
}

type layoutDump struct {
	Diagram *layered.Diagram      `json:"diagram"`
	Routes  []*asciiroute.Route   `json:"routes"`
	Opts    *textgraph.RenderOpts `json:"opts"`
}

func render(ctx context.Context, ms *xmain.State, rf renderFlags, inputPath, outputPath string) (_ []byte, err error) {
	defer xdefer.Errorf(&err, "failed to render %v", ms.HumanPath(inputPath))

	input, err := ms.ReadPath(inputPath)
	if err != nil {
		return nil, err
	}
	g, err := graph.Decode(input)
	if err != nil {
		return nil, xmain.ExitErrorf(2, "%v", err)
	}

	var out []byte
	if rf.layoutJSON {
		d, routes := textgraph.Layout(ctx, g, rf.renderOpts)
		out = []byte(xjson.MarshalIndent(layoutDump{Diagram: d, Routes: routes, Opts: rf.renderOpts}))
	} else {
		out = textgraph.RenderBytes(ctx, g, rf.renderOpts)
	}
	if len(out) > 0 {
		out = append(out, '\n')
	}

	err = ms.WritePath(outputPath, out)
	if err != nil {
		return nil, err
	}
	return out, nil
}
