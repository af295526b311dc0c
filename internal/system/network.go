package system

import (
	"fmt"
	"net/netip"
)

// CollectNetworkInfo maps each interface to an IPv4 address bound to it.
// When an interface carries several, the last one listed is kept.
func (p *Probe) CollectNetworkInfo() (Fields, error) {
	ifaces, err := p.interfaces()
	if err != nil {
		return nil, fmt.Errorf("failed to list network interfaces: %w", err)
	}

	var fields Fields
	for _, iface := range ifaces {
		for _, addr := range iface.Addrs {
			if ip, ok := ipv4(addr.Addr); ok {
				fields.Set(iface.Name, ip)
			}
		}
	}
	return fields, nil
}

// ipv4 accepts "a.b.c.d" or "a.b.c.d/nn"
func ipv4(s string) (string, bool) {
	addr, err := netip.ParseAddr(s)
	if err != nil {
		prefix, perr := netip.ParsePrefix(s)
		if perr != nil {
			return "", false
		}
		addr = prefix.Addr()
	}
	if !addr.Is4() {
		return "", false
	}
	return addr.String(), true
}
