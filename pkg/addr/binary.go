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
	"encoding/binary"
	"errors"

	"github.com/VollmondT/libjuice/pkg/private/serrors"
)

// ErrBufferTooShort indicates that a sockaddr buffer is too short to hold
// the structure announced by its family tag.
var ErrBufferTooShort = errors.New("buffer too short")

// Sockaddr wire layout (Linux, little-endian sa_family_t):
//
//	sockaddr_in:  family u16le | port u16be | addr [4]byte  | zero [8]byte
//	sockaddr_in6: family u16le | port u16be | flowinfo u32  | addr [16]byte | scope_id u32
//
// flowinfo and scope_id are always encoded as zero; scope information is not
// carried by Addr.

// AppendSockaddr appends the sockaddr wire encoding of the address to b and
// returns the extended buffer. It fails with ErrUnsupportedFamily for
// unknown families.
func (a Addr) AppendSockaddr(b []byte) ([]byte, error) {
	switch a.family {
	case INET:
		b = binary.LittleEndian.AppendUint16(b, uint16(a.family))
		b = binary.BigEndian.AppendUint16(b, a.port)
		b = append(b, a.ip[:4]...)
		b = append(b, make([]byte, 8)...) // sin_zero
		return b, nil
	case INET6:
		b = binary.LittleEndian.AppendUint16(b, uint16(a.family))
		b = binary.BigEndian.AppendUint16(b, a.port)
		b = binary.BigEndian.AppendUint32(b, 0) // sin6_flowinfo
		b = append(b, a.ip[:]...)
		b = binary.BigEndian.AppendUint32(b, 0) // sin6_scope_id
		return b, nil
	default:
		return b, serrors.Join(ErrUnsupportedFamily, nil, "family", a.family)
	}
}

// Sockaddr returns the sockaddr wire encoding of the address.
func (a Addr) Sockaddr() ([]byte, error) {
	return a.AppendSockaddr(make([]byte, 0, SockaddrLen6))
}

// ParseSockaddr decodes an Addr from its sockaddr wire encoding. The buffer
// may be longer than the encoded structure; excess bytes are ignored.
func ParseSockaddr(b []byte) (Addr, error) {
	if len(b) < 2 {
		return Addr{}, serrors.Join(ErrBufferTooShort, nil, "len", len(b))
	}
	family := Family(binary.LittleEndian.Uint16(b))
	switch family {
	case INET:
		if len(b) < SockaddrLen4 {
			return Addr{}, serrors.Join(ErrBufferTooShort, nil,
				"family", family, "len", len(b), "expected", SockaddrLen4)
		}
		return AddrFrom4([4]byte(b[4:8]), binary.BigEndian.Uint16(b[2:4])), nil
	case INET6:
		if len(b) < SockaddrLen6 {
			return Addr{}, serrors.Join(ErrBufferTooShort, nil,
				"family", family, "len", len(b), "expected", SockaddrLen6)
		}
		return AddrFrom16([16]byte(b[8:24]), binary.BigEndian.Uint16(b[2:4])), nil
	default:
		return Addr{}, serrors.Join(ErrUnsupportedFamily, nil, "family", family)
	}
}
