// Package snmp discovers the interfaces of a device so that traffic graphs
// can be generated for it before the monitoring plugin has produced data.
package snmp

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gosnmp/gosnmp"
	"github.com/tonhe/ifgraph/internal/identity"
)

// IF-MIB columns walked during discovery.
const (
	OIDifName       = "1.3.6.1.2.1.31.1.1.1.1"
	OIDifDescr      = "1.3.6.1.2.1.2.2.1.2"
	OIDifAlias      = "1.3.6.1.2.1.31.1.1.1.18"
	OIDifHighSpeed  = "1.3.6.1.2.1.31.1.1.1.15"
	OIDifOperStatus = "1.3.6.1.2.1.2.2.1.8"
	OIDsysDescr     = "1.3.6.1.2.1.1.1.0"
)

// DefaultPort is the standard SNMP agent port.
const DefaultPort = 161

// NewClient creates a gosnmp client for host using the credentials of id.
func NewClient(ctx context.Context, host string, port int, id *identity.Identity, timeout time.Duration) (*gosnmp.GoSNMP, error) {
	if port == 0 {
		port = DefaultPort
	}
	client := &gosnmp.GoSNMP{
		Context: ctx,
		Target:  host,
		Port:    uint16(port),
		Timeout: timeout,
		Retries: 2,
		MaxOids: gosnmp.MaxOids,
	}

	switch id.Version {
	case "1":
		client.Version = gosnmp.Version1
		client.Community = id.Community
	case "2c":
		client.Version = gosnmp.Version2c
		client.Community = id.Community
	case "3":
		client.Version = gosnmp.Version3
		client.SecurityModel = gosnmp.UserSecurityModel
		client.MsgFlags = msgFlags(id)
		client.SecurityParameters = &gosnmp.UsmSecurityParameters{
			UserName:                 id.Username,
			AuthenticationProtocol:   authProtocol(id.AuthProto),
			AuthenticationPassphrase: id.AuthPass,
			PrivacyProtocol:          privProtocol(id.PrivProto),
			PrivacyPassphrase:        id.PrivPass,
		}
	default:
		return nil, fmt.Errorf("unsupported SNMP version: %s", id.Version)
	}
	return client, nil
}

func msgFlags(id *identity.Identity) gosnmp.SnmpV3MsgFlags {
	if id.PrivProto != "" && id.PrivPass != "" {
		return gosnmp.AuthPriv
	}
	if id.AuthProto != "" && id.AuthPass != "" {
		return gosnmp.AuthNoPriv
	}
	return gosnmp.NoAuthNoPriv
}

func authProtocol(proto string) gosnmp.SnmpV3AuthProtocol {
	switch strings.ToUpper(proto) {
	case "MD5":
		return gosnmp.MD5
	case "SHA":
		return gosnmp.SHA
	case "SHA256":
		return gosnmp.SHA256
	case "SHA512":
		return gosnmp.SHA512
	default:
		return gosnmp.NoAuth
	}
}

func privProtocol(proto string) gosnmp.SnmpV3PrivProtocol {
	switch strings.ToUpper(proto) {
	case "DES":
		return gosnmp.DES
	case "AES", "AES128":
		return gosnmp.AES
	case "AES192":
		return gosnmp.AES192
	case "AES256":
		return gosnmp.AES256
	default:
		return gosnmp.NoPriv
	}
}

// SysDescr fetches sysDescr.0, which is enough to prove the credentials work.
func SysDescr(ctx context.Context, host string, port int, id *identity.Identity, timeout time.Duration) (string, error) {
	client, err := NewClient(ctx, host, port, id, timeout)
	if err != nil {
		return "", err
	}
	if err := client.Connect(); err != nil {
		return "", fmt.Errorf("connect to %s: %w", host, err)
	}
	defer client.Conn.Close()

	result, err := client.Get([]string{OIDsysDescr})
	if err != nil {
		return "", fmt.Errorf("get sysDescr from %s: %w", host, err)
	}
	if len(result.Variables) == 0 {
		return "", fmt.Errorf("empty response from %s", host)
	}
	return pduString(result.Variables[0]), nil
}

func pduString(pdu gosnmp.SnmpPDU) string {
	switch pdu.Type {
	case gosnmp.OctetString:
		if b, ok := pdu.Value.([]byte); ok {
			return string(b)
		}
	case gosnmp.NoSuchObject, gosnmp.NoSuchInstance, gosnmp.Null:
		return ""
	}
	return gosnmp.ToBigInt(pdu.Value).String()
}
