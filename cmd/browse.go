package cmd

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/tonhe/ifgraph/internal/logging"
	"github.com/tonhe/ifgraph/internal/pnp"
	"github.com/tonhe/ifgraph/tui"
)

func browseCmd(args []string) {
	fs := flag.NewFlagSet("browse", flag.ExitOnError)
	host := fs.String("host", "", "Host name used in graph titles (default: from the XML file)")

	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: ifgraph browse [-host NAME] FILE.xml")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: FILE argument is required")
		fs.Usage()
		os.Exit(1)
	}

	e := loadEnv()

	src, err := pnp.Load(fs.Arg(0))
	if err != nil {
		fatalf("%v", err)
	}
	title := src.Title()
	if *host != "" {
		title = *host
	}

	// Warnings would corrupt the alternate screen.
	e.builder.Grouper.Log = logging.Discard()

	set, err := e.builder.Build(src.Records(), title)
	if err != nil {
		fatalf("%v", err)
	}

	model := tui.NewAppModel(e.cfg, set, title, src.Service, Version)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fatalf("%v", err)
	}
}
