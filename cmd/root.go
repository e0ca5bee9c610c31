package cmd

import (
	"fmt"
	"os"
)

// Version is the ifgraph release.
const Version = "0.1.0"

// knownSubcommands is the set of CLI subcommands.
var knownSubcommands = map[string]bool{
	"render":   true,
	"perfdata": true,
	"discover": true,
	"browse":   true,
	"identity": true,
	"config":   true,
	"themes":   true,
	"version":  true,
	"help":     true,
}

// IsSubcommand returns true if the argument is a known CLI subcommand.
func IsSubcommand(arg string) bool {
	return knownSubcommands[arg]
}

// Execute dispatches to the appropriate CLI subcommand handler.
func Execute(args []string) {
	if len(args) == 0 {
		printUsage()
		return
	}

	switch args[0] {
	case "render":
		renderCmd(args[1:])
	case "perfdata":
		perfdataCmd(args[1:])
	case "discover":
		discoverCmd(args[1:])
	case "browse":
		browseCmd(args[1:])
	case "identity":
		identityCmd(args[1:])
	case "config":
		configCmd(args[1:])
	case "themes":
		themesCmd()
	case "version":
		fmt.Println("ifgraph v" + Version)
	case "help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", args[0])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`ifgraph - RRDtool graph definitions for interface traffic

Usage:
  ifgraph FILE.xml                      Browse the graphs of a PNP4Nagios XML file
  ifgraph render [flags] FILE.xml       Print graph definitions for a PNP4Nagios XML file
  ifgraph perfdata [flags] [OUTPUT]     Print graph definitions for plugin output (stdin if omitted)
  ifgraph discover [flags] [HOST]       Discover interfaces over SNMP and print their graphs
  ifgraph browse FILE.xml               Browse graphs in the terminal
  ifgraph identity <cmd>                Manage SNMP identities
  ifgraph config <cmd>                  Manage configuration
  ifgraph themes                        List available themes
  ifgraph version                       Show version
  ifgraph help                          Show this help

Output formats (-format):
  text    key, options and definition per graph
  json    ds_name/opt/def mappings plus graph order
  php     PNP4Nagios template assignments

Identity Commands:
  ifgraph identity list                 List all identities
  ifgraph identity add                  Add a new identity (interactive)
  ifgraph identity remove NAME          Remove an identity
  ifgraph identity test NAME HOST       Test SNMP connectivity

Discovery:
  ifgraph discover -identity NAME HOST  Discover one device
  ifgraph discover -inventory FILE      Discover every host of an inventory
  ifgraph discover -list HOST           Only list the interface table

Config Commands:
  ifgraph config path                   Show config directory path
  ifgraph config show                   Print the effective configuration
  ifgraph config theme NAME             Set default theme
  ifgraph config identity NAME          Set default identity`)
}
