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
	"context"
	"errors"
	"net/netip"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VollmondT/libjuice/pkg/addr"
	"github.com/VollmondT/libjuice/pkg/log"
	"github.com/VollmondT/libjuice/pkg/log/testlog"
	"github.com/VollmondT/libjuice/pkg/metrics"
)

var addrCmp = cmp.Comparer(func(x, y addr.Addr) bool {
	return x.Equal(y, true)
})

func staticLookup(addrs []netip.Addr, err error) func(
	context.Context, string, string) ([]netip.Addr, error) {

	return func(ctx context.Context, network, host string) ([]netip.Addr, error) {
		return addrs, err
	}
}

func TestResolveTruncation(t *testing.T) {
	resolved := []netip.Addr{
		netip.MustParseAddr("192.0.2.1"),
		netip.MustParseAddr("192.0.2.2"),
		netip.MustParseAddr("2001:db8::1"),
		netip.MustParseAddr("192.0.2.3"),
		netip.MustParseAddr("2001:db8::2"),
	}
	truncations := metrics.NewTestCounter()
	r := addr.Resolver{
		LookupNetIP: staticLookup(resolved, nil),
		Metrics:     addr.ResolverMetrics{Truncations: truncations},
	}
	ctx := log.CtxWith(context.Background(), testlog.NewLogger(t))

	records := make([]addr.Record, 3)
	n, err := r.Resolve(ctx, "example.org", "3478", records)
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	want := []addr.Record{
		{Addr: addr.MustParse("192.0.2.1:3478"), Len: addr.SockaddrLen4},
		{Addr: addr.MustParse("192.0.2.2:3478"), Len: addr.SockaddrLen4},
		{Addr: addr.MustParse("[2001:db8::1]:3478"), Len: addr.SockaddrLen6},
	}
	assert.Empty(t, cmp.Diff(want, records, addrCmp))
	assert.Equal(t, 1.0, metrics.CounterValue(truncations))
}

func TestResolveAllFit(t *testing.T) {
	resolved := []netip.Addr{
		netip.MustParseAddr("192.0.2.1"),
		netip.MustParseAddr("2001:db8::1"),
	}
	truncations := metrics.NewTestCounter()
	r := addr.Resolver{
		LookupNetIP: staticLookup(resolved, nil),
		Metrics:     addr.ResolverMetrics{Truncations: truncations},
	}
	ctx := log.CtxWith(context.Background(), testlog.NewLogger(t))

	records := make([]addr.Record, 4)
	n, err := r.Resolve(ctx, "example.org", "", records)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, addr.MustParse("192.0.2.1:0"), records[0].Addr)
	assert.Equal(t, addr.Record{}, records[2], "remaining records must stay zero")
	assert.Equal(t, 0.0, metrics.CounterValue(truncations))
}

func TestResolveUnmapsMappedResults(t *testing.T) {
	r := addr.Resolver{
		LookupNetIP: staticLookup([]netip.Addr{
			netip.MustParseAddr("::ffff:192.0.2.1"),
		}, nil),
	}
	ctx := log.CtxWith(context.Background(), testlog.NewLogger(t))

	records := make([]addr.Record, 1)
	n, err := r.Resolve(ctx, "example.org", "", records)
	require.NoError(t, err)
	require.Equal(t, 1, n)
	assert.Equal(t, addr.INET, records[0].Addr.Family())
	assert.Equal(t, addr.SockaddrLen4, records[0].Len)
}

func TestResolveServiceLookup(t *testing.T) {
	r := addr.Resolver{
		LookupNetIP: staticLookup([]netip.Addr{netip.MustParseAddr("192.0.2.1")}, nil),
		LookupPort: func(ctx context.Context, network, service string) (int, error) {
			assert.Equal(t, "udp", network)
			assert.Equal(t, "stun", service)
			return 3478, nil
		},
	}
	ctx := log.CtxWith(context.Background(), testlog.NewLogger(t))

	records := make([]addr.Record, 1)
	n, err := r.Resolve(ctx, "stun.example.org", "stun", records)
	require.NoError(t, err)
	require.Equal(t, 1, n)
	assert.Equal(t, uint16(3478), records[0].Addr.Port())
}

func TestResolveFailure(t *testing.T) {
	lookupErr := errors.New("no such host")
	errCounter := metrics.NewTestCounter()
	r := addr.Resolver{
		LookupNetIP: staticLookup(nil, lookupErr),
		Metrics:     addr.ResolverMetrics{Errors: errCounter},
	}
	ctx := log.CtxWith(context.Background(), testlog.NewLogger(t))

	records := make([]addr.Record, 2)
	n, err := r.Resolve(ctx, "nonexistent.invalid", "3478", records)
	assert.ErrorIs(t, err, addr.ErrResolve)
	assert.ErrorIs(t, err, lookupErr)
	assert.Equal(t, 0, n)
	assert.Equal(t, addr.Record{}, records[0])
	assert.Equal(t, 1.0, metrics.CounterValue(errCounter))
}

func TestResolveServiceFailure(t *testing.T) {
	r := addr.Resolver{
		LookupNetIP: staticLookup([]netip.Addr{netip.MustParseAddr("192.0.2.1")}, nil),
		LookupPort: func(ctx context.Context, network, service string) (int, error) {
			return 0, errors.New("unknown service")
		},
	}
	ctx := log.CtxWith(context.Background(), testlog.NewLogger(t))

	n, err := r.Resolve(ctx, "example.org", "bogus", make([]addr.Record, 1))
	assert.ErrorIs(t, err, addr.ErrResolve)
	assert.Equal(t, 0, n)
}
