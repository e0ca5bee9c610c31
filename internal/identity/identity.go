package identity

import "fmt"

// Identity is a named set of SNMP credentials used for interface discovery.
type Identity struct {
	Name      string `json:"name"`
	Version   string `json:"version"`    // "1", "2c", "3"
	Community string `json:"community"`  // v1/v2c
	Username  string `json:"username"`   // v3
	AuthProto string `json:"auth_proto"` // "MD5", "SHA", "SHA256", "SHA512"
	AuthPass  string `json:"auth_pass"`
	PrivProto string `json:"priv_proto"` // "DES", "AES128", "AES192", "AES256"
	PrivPass  string `json:"priv_pass"`
}

// Validate checks that the fields required by the SNMP version are set.
func (id Identity) Validate() error {
	if id.Name == "" {
		return fmt.Errorf("identity name is required")
	}
	switch id.Version {
	case "1", "2c":
		if id.Community == "" {
			return fmt.Errorf("identity %q: community is required for v%s", id.Name, id.Version)
		}
	case "3":
		if id.Username == "" {
			return fmt.Errorf("identity %q: username is required for v3", id.Name)
		}
		if id.PrivProto != "" && id.AuthProto == "" {
			return fmt.Errorf("identity %q: privacy requires authentication", id.Name)
		}
	default:
		return fmt.Errorf("identity %q: unsupported SNMP version %q", id.Name, id.Version)
	}
	return nil
}

// String describes the identity without secrets.
func (id Identity) String() string {
	s := fmt.Sprintf("%-20s  version=%s", id.Name, id.Version)
	if id.Username != "" {
		s += "  user=" + id.Username
	}
	if id.AuthProto != "" {
		s += "  auth=" + id.AuthProto
	}
	if id.PrivProto != "" {
		s += "  priv=" + id.PrivProto
	}
	return s
}

// Provider looks identities up by name.
type Provider interface {
	Get(name string) (*Identity, error)
}
