package system

import (
	"fmt"
	"strconv"
	"strings"
)

const gib = 1 << 30

// FormatGB renders a byte count as gigabytes with two decimals, no unit
func FormatGB(bytes uint64) string {
	return fmt.Sprintf("%.2f", float64(bytes)/gib)
}

// FormatMAC renders the low 48 bits of node as six colon-separated
// lower-case hex octets, most significant first.
func FormatMAC(node uint64) string {
	octets := make([]string, 6)
	for i := range octets {
		octets[len(octets)-1-i] = fmt.Sprintf("%02x", (node>>(8*i))&0xff)
	}
	return strings.Join(octets, ":")
}

// nodeToUint64 packs a node identifier, most significant byte first
func nodeToUint64(node []byte) uint64 {
	var n uint64
	for _, b := range node {
		n = n<<8 | uint64(b)
	}
	return n
}

var binaryUnits = []struct {
	shift uint
	name  string
}{
	{40, "TiB"},
	{30, "GiB"},
	{20, "MiB"},
	{10, "KiB"},
}

// binarySize renders n in the largest binary unit it reaches, rounded to
// one decimal half up.
func binarySize(n uint64) string {
	for _, u := range binaryUnits {
		if n < 1<<u.shift {
			continue
		}
		whole := n >> u.shift
		tenths := ((n&(1<<u.shift-1))*10 + 1<<(u.shift-1)) >> u.shift
		if tenths == 10 {
			whole, tenths = whole+1, 0
		}
		return fmt.Sprintf("%d.%d %s", whole, tenths, u.name)
	}
	return strconv.FormatUint(n, 10) + " B"
}

// formatFloat drops trailing zeros when precision is -1
func formatFloat(f float64, precision int) string {
	return strconv.FormatFloat(f, 'f', precision, 64)
}

// orNA substitutes NA for blank values
func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return NA
	}
	return s
}
