package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/tonhe/ifgraph/internal/config"
	"github.com/tonhe/ifgraph/internal/identity"
	"github.com/tonhe/ifgraph/internal/snmp"
	"golang.org/x/term"
)

func identityCmd(args []string) {
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "Usage: ifgraph identity <list|add|remove|test>")
		os.Exit(1)
	}

	switch args[0] {
	case "list":
		identityList()
	case "add":
		identityAdd()
	case "remove":
		if len(args) < 2 {
			fmt.Fprintln(os.Stderr, "Usage: ifgraph identity remove NAME")
			os.Exit(1)
		}
		identityRemove(args[1])
	case "test":
		if len(args) < 3 {
			fmt.Fprintln(os.Stderr, "Usage: ifgraph identity test NAME HOST")
			os.Exit(1)
		}
		identityTest(args[1], args[2])
	default:
		fmt.Fprintf(os.Stderr, "Unknown identity command: %s\n", args[0])
		fmt.Fprintln(os.Stderr, "Usage: ifgraph identity <list|add|remove|test>")
		os.Exit(1)
	}
}

// openStore opens the identity vault, prompting for the master password if
// needed. An empty password is tried first to support no-password vaults.
func openStore() *identity.Vault {
	storePath, err := config.GetIdentityStorePath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := config.EnsureDirs(); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating config directories: %v\n", err)
		os.Exit(1)
	}

	// Try empty password first (no-password vault)
	store, storeErr := identity.Open(storePath, []byte(""))
	if storeErr == nil {
		return store
	}

	// Empty password didn't work, try env var or prompt
	password := getMasterPassword()
	store, storeErr = identity.Open(storePath, password)
	if storeErr != nil {
		fmt.Fprintf(os.Stderr, "Error opening identity vault: %v\n", storeErr)
		os.Exit(1)
	}
	return store
}

// getMasterPassword reads the master password from IFGRAPH_MASTER_KEY or prompts.
func getMasterPassword() []byte {
	if key := os.Getenv("IFGRAPH_MASTER_KEY"); key != "" {
		return []byte(key)
	}
	return []byte(readSecret("Master password: "))
}

func identityList() {
	store := openStore()
	ids := store.List()
	if len(ids) == 0 {
		fmt.Println("No identities configured.")
		return
	}
	for _, id := range ids {
		fmt.Println(id.String())
	}
}

func identityAdd() {
	reader := bufio.NewReader(os.Stdin)
	ask := func(prompt string) string {
		fmt.Print(prompt)
		line, _ := reader.ReadString('\n')
		return strings.TrimSpace(line)
	}

	id := identity.Identity{
		Name:    ask("Identity name: "),
		Version: ask("SNMP version (1, 2c, 3): "),
	}

	switch id.Version {
	case "1", "2c":
		id.Community = ask("Community string: ")
	case "3":
		id.Username = ask("Username: ")
		if proto := ask("Auth protocol (none, MD5, SHA, SHA256, SHA512): "); proto != "" && proto != "none" {
			id.AuthProto = strings.ToUpper(proto)
			id.AuthPass = readSecret("Auth password: ")
			if proto := ask("Privacy protocol (none, DES, AES128, AES192, AES256): "); proto != "" && proto != "none" {
				id.PrivProto = strings.ToUpper(proto)
				id.PrivPass = readSecret("Privacy password: ")
			}
		}
	}

	if err := id.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store := openStore()
	if err := store.Add(id); err != nil {
		fmt.Fprintf(os.Stderr, "Error adding identity: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Identity %q added.\n", id.Name)
}

// readSecret prompts on stderr and reads a line without echo.
func readSecret(prompt string) string {
	fmt.Fprint(os.Stderr, prompt)
	secret, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading password: %v\n", err)
		os.Exit(1)
	}
	return string(secret)
}

func identityRemove(name string) {
	store := openStore()
	if err := store.Remove(name); err != nil {
		fmt.Fprintf(os.Stderr, "Error removing identity: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Identity %q removed.\n", name)
}

func identityTest(name, host string) {
	store := openStore()
	id, err := store.Get(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "Testing SNMP connectivity to %s using identity %q...\n", host, name)

	descr, err := snmp.SysDescr(context.Background(), host, snmp.DefaultPort, id, 10*time.Second)
	if err != nil {
		fmt.Fprintf(os.Stderr, "SNMP test failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("sysDescr: %s\n", descr)
	fmt.Println("Connection test successful.")
}
