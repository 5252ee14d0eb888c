package main

import (
	"context"
	stderrors "errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/edgebundle/chunk"
	"github.com/wippyai/edgebundle/config"
	"github.com/wippyai/edgebundle/source"
	"github.com/wippyai/edgebundle/transition"
)

var (
	pathStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#87CEEB"))
	fileStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#98FB98"))
	errStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))
)

func main() {
	var (
		configFile  = flag.String("config", "", "Path to edge transition config (YAML)")
		root        = flag.String("root", "", "Project root (overrides config)")
		output      = flag.String("output", "", "Output root (overrides config)")
		bootstrap   = flag.String("bootstrap", "", "Bootstrap template file (overrides config)")
		nodeEnv     = flag.String("node-env", "", "process.env.NODE_ENV for edge code")
		pages       = flag.String("pages", "", "Page files to transition (comma-separated)")
		write       = flag.Bool("write", false, "Write bootstrap modules and manifests under the output root")
		verbose     = flag.Bool("v", false, "Verbose logging")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if *pages == "" && flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Usage: edgebootstrap [-config edge.yaml] [-root dir] [-bootstrap file] -pages a.ts,b.tsx")
		fmt.Fprintln(os.Stderr, "       edgebootstrap [flags] page.ts ...")
		fmt.Fprintln(os.Stderr, "       edgebootstrap [flags] -i page.ts ...  (interactive mode)")
		os.Exit(1)
	}

	if err := godotenv.Load(); err != nil && !stderrors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Error: load .env: %v\n", err)
		os.Exit(1)
	}

	log := zap.NewNop()
	if *verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		log = l
	}
	defer func() { _ = log.Sync() }()
	transition.SetLogger(log.Named("transition"))
	chunk.SetLogger(log.Named("chunk"))
	source.SetLogger(log.Named("source"))

	var opts []config.Option
	for _, o := range []struct {
		val string
		fn  func(string) config.Option
	}{
		{*root, config.WithProjectRoot},
		{*output, config.WithOutputRoot},
		{*bootstrap, config.WithBootstrap},
	} {
		if o.val == "" {
			continue
		}
		abs, err := filepath.Abs(o.val)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		opts = append(opts, o.fn(abs))
	}
	if *nodeEnv != "" {
		opts = append(opts, config.WithNodeEnv(*nodeEnv))
	}

	cfg, err := config.Load(*configFile, opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	files := splitList(*pages)
	files = append(files, flag.Args()...)

	b, err := newBuilder(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *interactive {
		if err := runInteractive(b, files); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(b, files, *write); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func run(b *builder, files []string, write bool) error {
	ctx := context.Background()
	styled := term.IsTerminal(int(os.Stdout.Fd()))
	style := func(s lipgloss.Style, text string) string {
		if !styled {
			return text
		}
		return s.Render(text)
	}

	fmt.Printf("Project root: %s\n", b.cfg.ProjectRoot)
	fmt.Printf("Output root:  %s\n", b.cfg.OutputRoot)
	fmt.Printf("Bootstrap:    %s\n\n", b.cfg.Bootstrap)

	failed := 0
	for _, f := range files {
		res := b.build(ctx, f)
		if res.err != nil {
			failed++
			fmt.Println(style(errStyle, fmt.Sprintf("%s: %v", f, res.err)))
			continue
		}
		fmt.Println(style(pathStyle, res.bootstrap.Path().String()))
		fmt.Println(string(res.content))
		fmt.Printf("chunk group %s\n", res.output.Path())
		for _, file := range res.files {
			fmt.Println("  " + style(fileStyle, file))
		}
		fmt.Println()

		if write {
			if err := b.write(ctx, res); err != nil {
				failed++
				fmt.Println(style(errStyle, err.Error()))
			}
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d page(s) failed", failed, len(files))
	}
	return nil
}
