package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dustin/go-humanize"
	"github.com/tonhe/ifgraph/internal/graph"
	"github.com/tonhe/ifgraph/internal/identity"
	"github.com/tonhe/ifgraph/internal/inventory"
	"github.com/tonhe/ifgraph/internal/snmp"
)

func discoverCmd(args []string) {
	e := loadEnv()

	fs := flag.NewFlagSet("discover", flag.ExitOnError)
	identityName := fs.String("identity", e.cfg.DefaultIdentity, "Identity name to use for SNMP authentication")
	port := fs.Int("port", snmp.DefaultPort, "SNMP port")
	invPath := fs.String("inventory", "", "Inventory TOML file listing hosts to discover")
	service := fs.String("service", inventory.DefaultService, "Service description the check runs under")
	display := fs.String("display-name", "", "Host name used in graph titles (default: HOST)")
	rrdDir := fs.String("rrd-dir", e.cfg.RRDDir, "PNP4Nagios perfdata directory")
	format := fs.String("format", "text", "Output format: text, json or php")
	listOnly := fs.Bool("list", false, "Only list the discovered interface table")

	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: ifgraph discover [-identity NAME] [-port PORT] [-list] HOST")
		fmt.Fprintln(os.Stderr, "       ifgraph discover -inventory FILE")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	if !validFormat(*format) {
		fatalf("unknown format %q", *format)
	}

	var hosts []inventory.Host
	switch {
	case *invPath != "":
		inv, err := inventory.Load(*invPath)
		if err != nil {
			fatalf("loading inventory: %v", err)
		}
		if inv.RRDDir != "" {
			*rrdDir = inv.RRDDir
		}
		for _, h := range inv.Hosts {
			if h.Identity == "" {
				h.Identity = *identityName
			}
			hosts = append(hosts, h)
		}
	case fs.NArg() >= 1:
		hosts = []inventory.Host{{
			Host:        fs.Arg(0),
			DisplayName: *display,
			Service:     *service,
			Identity:    *identityName,
			Port:        *port,
		}}
	default:
		fmt.Fprintln(os.Stderr, "Error: HOST argument or -inventory is required")
		fs.Usage()
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store := openStore()
	failed := 0
	for _, h := range hosts {
		if err := discoverHost(ctx, e, store, h, *rrdDir, *format, *listOnly); err != nil {
			e.log.WithError(err).WithField("host", h.Host).Error("Discovery failed")
			failed++
		}
	}
	if failed > 0 {
		os.Exit(1)
	}
}

func discoverHost(ctx context.Context, e env, store identity.Provider, h inventory.Host, rrdDir, format string, listOnly bool) error {
	if h.Identity == "" {
		return fmt.Errorf("no identity configured (use -identity or default_identity)")
	}
	id, err := store.Get(h.Identity)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Discovering interfaces on %s...\n", h.Host)

	ifaces, err := snmp.DiscoverInterfaces(ctx, h.Host, h.Port, id, e.cfg.SNMPTimeout, e.log)
	if err != nil {
		return err
	}
	ifaces, err = snmp.Filter(ifaces, h.Interfaces)
	if err != nil {
		return err
	}

	if listOnly {
		printInterfaces(h.Host, ifaces)
		return nil
	}
	if len(ifaces) == 0 {
		fmt.Fprintf(os.Stderr, "No interfaces found on %s.\n", h.Host)
		return nil
	}

	records := snmp.Records(ifaces, e.builder.Grouper.Separator, rrdDir, h.Host, h.Service)
	set, err := e.builder.Build(records, h.Title())
	if err != nil {
		return err
	}
	return writeSet(os.Stdout, set, format)
}

func printInterfaces(host string, ifaces []snmp.Interface) {
	if len(ifaces) == 0 {
		fmt.Println("No interfaces found.")
		return
	}

	fmt.Printf("Found %d interfaces on %s:\n\n", len(ifaces), host)
	fmt.Printf("%-6s  %-7s  %-30s  %-40s  %10s  %s\n", "Index", "Status", "Name", "Description", "Speed", "Graph")
	fmt.Printf("%-6s  %-7s  %-30s  %-40s  %10s  %s\n", "-----", "------", "----", "-----------", "-----", "-----")

	for _, iface := range ifaces {
		speedStr := ""
		if iface.Speed > 0 {
			speedStr = formatSpeed(iface.Speed)
		}
		fmt.Printf("%-6d  %-7s  %-30s  %-40s  %10s  %s\n",
			iface.IfIndex,
			iface.Status,
			truncate(iface.Name, 30),
			truncate(iface.Description, 40),
			speedStr,
			graph.SpecKey(iface.Name),
		)
	}
}

// formatSpeed formats a speed in Mbps to a human-readable string.
func formatSpeed(mbps uint64) string {
	return humanize.SI(float64(mbps)*1e6, "bps")
}

// truncate shortens a string to the given max length, adding "..." if needed.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}
