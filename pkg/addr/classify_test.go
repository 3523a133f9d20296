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

package addr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/VollmondT/libjuice/pkg/addr"
)

func TestIsLocal(t *testing.T) {
	tests := map[string]struct {
		input addr.Addr
		want  bool
	}{
		"ipv4 loopback":           {input: addr.MustParse("127.0.0.1:80"), want: true},
		"ipv4 loopback high":      {input: addr.MustParse("127.255.0.7:80"), want: true},
		"ipv4 link-local":         {input: addr.MustParse("169.254.1.1:80"), want: true},
		"ipv4 public":             {input: addr.MustParse("8.8.8.8:53"), want: false},
		"ipv4 almost link-local":  {input: addr.MustParse("169.253.1.1:80"), want: false},
		"ipv6 loopback":           {input: addr.MustParse("[::1]:80"), want: true},
		"ipv6 link-local":         {input: addr.MustParse("[fe80::1]:80"), want: true},
		"ipv6 link-local edge":    {input: addr.MustParse("[febf::1]:80"), want: true},
		"ipv6 outside link-local": {input: addr.MustParse("[fec0::1]:80"), want: false},
		"ipv6 public":             {input: addr.MustParse("[2001:4860:4860::8888]:53"), want: false},
		"mapped ipv4 loopback":    {input: addr.MustParse("[::ffff:127.0.0.1]:80"), want: true},
		"mapped ipv4 link-local":  {input: addr.MustParse("[::ffff:169.254.1.1]:80"), want: true},
		"mapped ipv4 public":      {input: addr.MustParse("[::ffff:8.8.8.8]:53"), want: false},
		"unspecified ipv6":        {input: addr.MustParse("[::]:80"), want: false},
		"unknown family":          {input: addr.Addr{}, want: false},
	}
	for n, tc := range tests {
		t.Run(n, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.input.IsLocal())
		})
	}
}

func TestIsTempIPv6(t *testing.T) {
	// Global address with the universal/local bit of the interface
	// identifier (bit 0x02 of octet 9) clear, i.e. a randomized identifier.
	randomized := addr.AddrFrom16([16]byte{
		0x20, 0x01, 0x0d, 0xb8, 0, 0, 0, 0,
		0x41, 0x23, 0x45, 0x67, 0x89, 0xab, 0xcd, 0xef,
	}, 80)
	// Same address with the bit set, i.e. derived from a stable EUI-64
	// interface identifier.
	eui64 := addr.AddrFrom16([16]byte{
		0x20, 0x01, 0x0d, 0xb8, 0, 0, 0, 0,
		0x43, 0x23, 0x45, 0x67, 0x89, 0xab, 0xcd, 0xef,
	}, 80)

	tests := map[string]struct {
		input addr.Addr
		want  bool
	}{
		"randomized identifier":     {input: randomized, want: true},
		"eui64 identifier":          {input: eui64, want: false},
		"link-local never temp":     {input: addr.MustParse("[fe80::1]:80"), want: false},
		"loopback never temp":       {input: addr.MustParse("[::1]:80"), want: false},
		"ipv4 never temp":           {input: addr.MustParse("127.0.0.1:80"), want: false},
		"mapped ipv4 follows octet": {input: addr.MustParse("[::ffff:8.8.8.8]:53"), want: true},
		"unknown family":            {input: addr.Addr{}, want: false},
	}
	for n, tc := range tests {
		t.Run(n, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.input.IsTempIPv6())
		})
	}
}
