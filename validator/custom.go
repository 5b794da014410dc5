package validator

import "strings"

// DefaultStandardNamespaces lists the TR-181 top-level object namespaces
// considered part of the standard data model. A custom node whose path
// falls outside all of these is flagged as an unrooted vendor extension.
var DefaultStandardNamespaces = []string{
	"Device.DeviceInfo.",
	"Device.ManagementServer.",
	"Device.WiFi.",
	"Device.Ethernet.",
	"Device.IP.",
	"Device.PPP.",
	"Device.DHCPv4.",
	"Device.DHCPv6.",
	"Device.Firewall.",
	"Device.NAT.",
	"Device.Routing.",
	"Device.Hosts.",
	"Device.UserInterface.",
	"Device.Services.",
}

func isStandardPath(path string, namespaces []string) bool {
	for _, ns := range namespaces {
		if strings.HasPrefix(path, ns) {
			return true
		}
	}
	return false
}
