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

// v4InV6Prefix is the 12-byte prefix of an IPv4-mapped IPv6 address,
// ::ffff:0:0/96.
var v4InV6Prefix = [12]byte{10: 0xff, 11: 0xff}

// isV4Mapped reports whether the 16 address bytes are in IPv4-mapped form.
func isV4Mapped(ip [16]byte) bool {
	return [12]byte(ip[:12]) == v4InV6Prefix
}

// isLocalV4 classifies the first bytes of an IPv4 address.
func isLocalV4(b []byte) bool {
	if b[0] == 127 { // loopback
		return true
	}
	if b[0] == 169 && b[1] == 254 { // link-local
		return true
	}
	return false
}

// IsLocal reports whether the address is a loopback or link-local address:
// 127.0.0.0/8 or 169.254.0.0/16 for INET, ::1 or fe80::/10 for INET6. An
// INET6 address in IPv4-mapped form is classified by the rule for the
// embedded IPv4 address. Any other family or pattern is not local.
func (a Addr) IsLocal() bool {
	switch a.family {
	case INET:
		return isLocalV4(a.ip[:4])
	case INET6:
		if a.ip == ipv6Loopback { // ::1
			return true
		}
		if a.ip[0] == 0xfe && a.ip[1]&0xc0 == 0x80 { // fe80::/10
			return true
		}
		if isV4Mapped(a.ip) {
			return isLocalV4(a.ip[12:])
		}
		return false
	default:
		return false
	}
}

var ipv6Loopback = [16]byte{15: 1}

// IsTempIPv6 reports whether the address looks like a temporary (privacy)
// IPv6 address as generated per RFC 4941: an INET6 address that is not local
// and whose interface identifier has the universal/local bit of the modified
// EUI-64 field (bit 0x02 of address octet 9) clear. This is a best-effort
// heuristic, not a guarantee; manually configured addresses with that bit
// clear are misclassified. Non-INET6 families are never temporary.
func (a Addr) IsTempIPv6() bool {
	if a.family != INET6 {
		return false
	}
	if a.IsLocal() {
		return false
	}
	return a.ip[8]&0x02 == 0
}
