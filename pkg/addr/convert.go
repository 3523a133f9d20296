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

// UnmapIPv4 rewrites an IPv4-mapped INET6 address in place as the embedded
// INET address, preserving the port. It returns the new sockaddr byte length
// and whether a conversion was performed. If the address is not INET6 or not
// in mapped form, it is left untouched and (0, false) is returned.
//
// The replacement value is fully constructed before the receiver is
// overwritten, so the conversion is safe even though source and destination
// are the same storage.
func (a *Addr) UnmapIPv4() (int, bool) {
	if a.family != INET6 || !isV4Mapped(a.ip) {
		return 0, false
	}
	out := Addr{family: INET, port: a.port}
	copy(out.ip[:4], a.ip[12:16])
	*a = out
	return SockaddrLen4, true
}

// MapIPv6 rewrites an INET address in place as the equivalent IPv4-mapped
// INET6 address (::ffff:a.b.c.d), preserving the port. It returns the new
// sockaddr byte length and whether a conversion was performed. A non-INET
// address is left untouched and (0, false) is returned.
func (a *Addr) MapIPv6() (int, bool) {
	if a.family != INET {
		return 0, false
	}
	out := Addr{family: INET6, port: a.port}
	copy(out.ip[:12], v4InV6Prefix[:])
	copy(out.ip[12:], a.ip[:4])
	*a = out
	return SockaddrLen6, true
}
