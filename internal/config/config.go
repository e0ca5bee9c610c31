package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/tonhe/ifgraph/internal/graph"
)

type Config struct {
	Theme           string        `toml:"theme"`
	DefaultIdentity string        `toml:"default_identity"`
	LogLevel        string        `toml:"log_level"`
	RRDDir          string        `toml:"rrd_dir"`
	SNMPTimeout     time.Duration `toml:"-"`
	SNMPTimeoutStr  string        `toml:"snmp_timeout"`

	Separator     string   `toml:"separator"`
	Duplicates    string   `toml:"duplicates"`
	VerticalLabel string   `toml:"vertical_label"`
	Consolidation string   `toml:"consolidation"`
	InColor       string   `toml:"in_color"`
	OutColor      string   `toml:"out_color"`
	InLabel       string   `toml:"in_label"`
	OutLabel      string   `toml:"out_label"`
	LabelFormat   string   `toml:"label_format"`
	Aggregates    []string `toml:"aggregates"`
}

func DefaultConfig() *Config {
	st := graph.DefaultStyle()
	return &Config{
		Theme:          "solarized-dark",
		LogLevel:       "info",
		RRDDir:         "/var/lib/pnp4nagios/perfdata",
		SNMPTimeout:    10 * time.Second,
		SNMPTimeoutStr: "10s",
		Separator:      graph.DefaultSeparator,
		Duplicates:     graph.KeepLast.String(),
		VerticalLabel:  st.VerticalLabel,
		Consolidation:  st.Consolidation,
		InColor:        st.InColor,
		OutColor:       st.OutColor,
		InLabel:        st.InLabel,
		OutLabel:       st.OutLabel,
		LabelFormat:    st.LabelFormat,
		Aggregates:     st.Aggregates,
	}
}

func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if cfg.SNMPTimeoutStr != "" {
		d, err := time.ParseDuration(cfg.SNMPTimeoutStr)
		if err != nil {
			return nil, fmt.Errorf("invalid snmp_timeout %q: %w", cfg.SNMPTimeoutStr, err)
		}
		cfg.SNMPTimeout = d
	}
	return cfg, nil
}

func SaveConfig(cfg *Config, path string) error {
	cfg.SNMPTimeoutStr = cfg.SNMPTimeout.String()
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(cfg)
}

// GraphStyle returns the emitter style described by the config. Empty
// fields fall back to the default style.
func (c *Config) GraphStyle() (graph.Style, error) {
	st := graph.DefaultStyle()
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	set(&st.VerticalLabel, c.VerticalLabel)
	set(&st.Consolidation, strings.ToUpper(c.Consolidation))
	set(&st.InColor, c.InColor)
	set(&st.OutColor, c.OutColor)
	set(&st.InLabel, c.InLabel)
	set(&st.OutLabel, c.OutLabel)
	set(&st.LabelFormat, c.LabelFormat)
	if len(c.Aggregates) > 0 {
		st.Aggregates = make([]string, len(c.Aggregates))
		for i, a := range c.Aggregates {
			st.Aggregates[i] = strings.ToUpper(a)
		}
	}

	for _, color := range []string{st.InColor, st.OutColor} {
		if !validColor(color) {
			return st, fmt.Errorf("invalid color %q: want #rrggbb or #rrggbbaa", color)
		}
	}
	return st, nil
}

// Builder returns a graph builder configured from the config.
func (c *Config) Builder() (graph.Builder, error) {
	st, err := c.GraphStyle()
	if err != nil {
		return graph.Builder{}, err
	}
	policy, err := graph.ParseDuplicatePolicy(c.Duplicates)
	if err != nil {
		return graph.Builder{}, err
	}
	return graph.Builder{
		Grouper: graph.Grouper{Separator: c.Separator, Duplicates: policy},
		Style:   st,
	}, nil
}

func validColor(s string) bool {
	if !strings.HasPrefix(s, "#") || (len(s) != 7 && len(s) != 9) {
		return false
	}
	for _, r := range s[1:] {
		if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
			return false
		}
	}
	return true
}
