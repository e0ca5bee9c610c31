package inventory

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// DefaultService is the PNP4Nagios service name the traffic check runs under.
const DefaultService = "Traffic"

// Inventory lists the devices whose interface graphs should be generated
// from SNMP discovery.
type Inventory struct {
	Name            string `toml:"name"`
	DefaultIdentity string `toml:"default_identity"`
	RRDDir          string `toml:"rrd_dir"`
	Hosts           []Host `toml:"hosts"`
}

// Host is one device to discover.
type Host struct {
	Host        string   `toml:"host"`
	DisplayName string   `toml:"display_name"`
	Service     string   `toml:"service"`
	Identity    string   `toml:"identity"`
	Port        int      `toml:"port"`
	Interfaces  []string `toml:"interfaces"`
}

// Title is the name shown in graph titles.
func (h Host) Title() string {
	if h.DisplayName != "" {
		return h.DisplayName
	}
	return h.Host
}

// Load reads an inventory TOML file and applies defaults: port 161, the
// Traffic service and the inventory's default identity.
func Load(path string) (*Inventory, error) {
	var inv Inventory
	if _, err := toml.DecodeFile(path, &inv); err != nil {
		return nil, err
	}
	for i := range inv.Hosts {
		h := &inv.Hosts[i]
		if h.Port == 0 {
			h.Port = 161
		}
		if h.Service == "" {
			h.Service = DefaultService
		}
		if h.Identity == "" {
			h.Identity = inv.DefaultIdentity
		}
	}
	return &inv, nil
}

// Save writes an inventory to path.
func Save(inv *Inventory, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(inv)
}

// List returns the base names (without .toml) of the inventories in dir.
func List(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".toml") {
			names = append(names, strings.TrimSuffix(e.Name(), filepath.Ext(e.Name())))
		}
	}
	return names, nil
}
