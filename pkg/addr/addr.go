// Copyright 2026 VollmondT
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package addr

import (
	"bytes"
	"errors"
	"fmt"
	"net"
	"net/netip"

	"github.com/VollmondT/libjuice/pkg/log"
	"github.com/VollmondT/libjuice/pkg/private/serrors"
)

// Family discriminates between the supported address families. The values
// match the Linux sa_family_t constants, so that the Sockaddr wire encoding
// is bit-exact with sockaddr_in and sockaddr_in6.
type Family uint16

const (
	Unspec Family = 0
	INET   Family = 2
	INET6  Family = 10
)

func (f Family) String() string {
	switch f {
	case Unspec:
		return "UNSPEC"
	case INET:
		return "IPv4"
	case INET6:
		return "IPv6"
	}
	return fmt.Sprintf("UNKNOWN (%d)", uint16(f))
}

// Byte lengths of the family-specific sockaddr structures.
const (
	SockaddrLen4 = 16 // sizeof(struct sockaddr_in)
	SockaddrLen6 = 28 // sizeof(struct sockaddr_in6)
)

// ErrUnsupportedFamily is returned by mutating operations on an address
// whose family is neither INET nor INET6.
var ErrUnsupportedFamily = errors.New("unsupported address family")

// Addr represents a transport endpoint address of either family.
//
// The zero value is a valid object with family Unspec. Addr is a value type:
// it is copied freely and holds no heap resources. The ip payload is stored
// in network byte order; the first 4 bytes are active for INET, all 16 for
// INET6. The port is held in host order and only materializes in network
// byte order in the sockaddr wire encoding.
type Addr struct {
	family Family
	port   uint16
	ip     [16]byte
}

// AddrFrom4 returns an INET address holding the given 4 address bytes and
// port.
func AddrFrom4(ip [4]byte, port uint16) Addr {
	a := Addr{family: INET, port: port}
	copy(a.ip[:4], ip[:])
	return a
}

// AddrFrom16 returns an INET6 address holding the given 16 address bytes and
// port.
func AddrFrom16(ip [16]byte, port uint16) Addr {
	return Addr{family: INET6, port: port, ip: ip}
}

// FromAddrPort converts a netip.AddrPort to an Addr. IPv4-mapped IPv6
// addresses keep the INET6 family; use UnmapIPv4 to normalize them.
// The zero netip.AddrPort converts to the zero Addr.
func FromAddrPort(ap netip.AddrPort) Addr {
	ip := ap.Addr()
	switch {
	case ip.Is4():
		return AddrFrom4(ip.As4(), ap.Port())
	case ip.Is6():
		return AddrFrom16(ip.As16(), ap.Port())
	}
	return Addr{}
}

// FromUDPAddr converts a *net.UDPAddr to an Addr. A nil or invalid input
// converts to the zero Addr. Zone information is dropped.
func FromUDPAddr(u *net.UDPAddr) Addr {
	if u == nil {
		return Addr{}
	}
	if ip4 := u.IP.To4(); ip4 != nil {
		return AddrFrom4([4]byte(ip4), uint16(u.Port))
	}
	if ip16 := u.IP.To16(); ip16 != nil {
		return AddrFrom16([16]byte(ip16), uint16(u.Port))
	}
	return Addr{}
}

// Parse parses an address in "host:port" or "[host]:port" representation.
func Parse(s string) (Addr, error) {
	ap, err := netip.ParseAddrPort(s)
	if err != nil {
		return Addr{}, serrors.Wrap("parsing address", err, "addr", s)
	}
	return FromAddrPort(ap), nil
}

// MustParse calls Parse(s) and panics on error. It is intended for use in
// tests with hard-coded strings.
func MustParse(s string) Addr {
	a, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return a
}

// Family returns the address family tag.
func (a Addr) Family() Family {
	return a.family
}

// Len returns the byte length of the family-specific sockaddr structure.
// For an unknown family it emits a warning diagnostic and returns 0; callers
// must treat 0 as "unsupported", it is not an error signal.
func (a Addr) Len() int {
	switch a.family {
	case INET:
		return SockaddrLen4
	case INET6:
		return SockaddrLen6
	default:
		log.Warn("Unknown address family", "family", a.family)
		return 0
	}
}

// Port returns the port in host byte order. For an unknown family it emits a
// warning diagnostic and returns 0.
func (a Addr) Port() uint16 {
	switch a.family {
	case INET, INET6:
		return a.port
	default:
		log.Warn("Unknown address family", "family", a.family)
		return 0
	}
}

// SetPort sets the port. It fails with ErrUnsupportedFamily when the family
// is neither INET nor INET6.
func (a *Addr) SetPort(port uint16) error {
	switch a.family {
	case INET, INET6:
		a.port = port
		return nil
	default:
		log.Warn("Unknown address family", "family", a.family)
		return serrors.Join(ErrUnsupportedFamily, nil, "family", a.family)
	}
}

// Equal reports whether a and b are structurally equal. Addresses of
// different families are never equal; in particular an IPv4 address never
// equals its IPv4-mapped IPv6 form, callers wanting that equivalence must
// convert first. For matching families the raw address bytes (4 for INET,
// 16 for INET6) are compared, and the ports as well iff comparePorts is set.
// An unknown family on either side compares unequal.
func (a Addr) Equal(b Addr, comparePorts bool) bool {
	if a.family != b.family {
		return false
	}
	var n int
	switch a.family {
	case INET:
		n = 4
	case INET6:
		n = 16
	default:
		return false
	}
	if !bytes.Equal(a.ip[:n], b.ip[:n]) {
		return false
	}
	if comparePorts && a.port != b.port {
		return false
	}
	return true
}

// AddrPort returns the netip representation of the address. An unknown
// family yields the zero netip.AddrPort.
func (a Addr) AddrPort() netip.AddrPort {
	switch a.family {
	case INET:
		return netip.AddrPortFrom(netip.AddrFrom4([4]byte(a.ip[:4])), a.port)
	case INET6:
		return netip.AddrPortFrom(netip.AddrFrom16(a.ip), a.port)
	}
	return netip.AddrPort{}
}

// UDPAddr returns the net.UDPAddr representation of the address, or nil for
// an unknown family.
func (a Addr) UDPAddr() *net.UDPAddr {
	switch a.family {
	case INET:
		return &net.UDPAddr{IP: a.ip[:4:4], Port: int(a.port)}
	case INET6:
		return &net.UDPAddr{IP: a.ip[:], Port: int(a.port)}
	}
	return nil
}

// String implements fmt.Stringer. The output is "a.b.c.d:port" for INET and
// "[v6]:port" for INET6.
func (a Addr) String() string {
	switch a.family {
	case INET, INET6:
		return a.AddrPort().String()
	}
	return fmt.Sprintf("<%v>", a.family)
}

// Record is an (address, length) pair as produced by resolution. Len records
// the sockaddr byte length actually occupied by the family-specific
// structure, not the storage capacity.
type Record struct {
	Addr Addr
	Len  int
}

func (r Record) String() string {
	return r.Addr.String()
}
