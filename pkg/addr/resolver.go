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
	"context"
	"errors"
	"net"
	"net/netip"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/VollmondT/libjuice/pkg/log"
	"github.com/VollmondT/libjuice/pkg/metrics"
	"github.com/VollmondT/libjuice/pkg/private/serrors"
)

// ErrResolve indicates that the underlying host name-resolution call failed.
// Truncation of the output buffer is not a resolution failure; it is
// signaled by a returned count larger than the buffer capacity.
var ErrResolve = errors.New("address resolution failed")

// ResolverMetrics instruments a Resolver. Nil counters are ignored.
type ResolverMetrics struct {
	// Resolutions counts Resolve invocations.
	Resolutions metrics.Counter
	// Errors counts failed Resolve invocations.
	Errors metrics.Counter
	// Truncations counts resolutions that found more addresses than the
	// caller-supplied buffer could hold.
	Truncations metrics.Counter
}

// NewResolverMetrics returns prometheus-backed resolver metrics registered
// with the default registerer.
func NewResolverMetrics() ResolverMetrics {
	return ResolverMetrics{
		Resolutions: metrics.NewPromCounterFrom(prometheus.CounterOpts{
			Subsystem: "resolver",
			Name:      "resolutions_total",
			Help:      "Total number of address resolutions.",
		}, nil),
		Errors: metrics.NewPromCounterFrom(prometheus.CounterOpts{
			Subsystem: "resolver",
			Name:      "errors_total",
			Help:      "Total number of failed address resolutions.",
		}, nil),
		Truncations: metrics.NewPromCounterFrom(prometheus.CounterOpts{
			Subsystem: "resolver",
			Name:      "truncations_total",
			Help:      "Total number of resolutions with more results than buffer capacity.",
		}, nil),
	}
}

// Resolver turns a hostname/service pair into generic addresses suitable for
// datagram-oriented transport. The zero value is ready to use and delegates
// to the system resolver.
//
// Resolution is synchronous: Resolve blocks the calling goroutine for the
// duration of the underlying lookup. The Resolver performs no caching and no
// retries; cancellation and timeouts are the caller's responsibility via the
// context.
type Resolver struct {
	// LookupNetIP is the host lookup function. If nil, the system resolver
	// is used.
	LookupNetIP func(ctx context.Context, network, host string) ([]netip.Addr, error)
	// LookupPort is the service lookup function. If nil, the system resolver
	// is used.
	LookupPort func(ctx context.Context, network, service string) (int, error)
	// Metrics instruments the resolver. The zero value disables
	// instrumentation.
	Metrics ResolverMetrics
}

// Resolve resolves hostname and service (a UDP service name or decimal port
// number; empty means port 0) and fills records with the results whose
// family is IPv4 or IPv6, in resolver order, up to the capacity of records.
//
// The returned count is the TOTAL number of matching results found, which
// may exceed len(records): a caller comparing the count against the capacity
// detects that excess records were silently dropped and can retry with a
// larger buffer. A failure of the resolution call itself is reported as an
// error wrapping ErrResolve, with zero records produced.
func (r Resolver) Resolve(
	ctx context.Context,
	hostname string,
	service string,
	records []Record,
) (int, error) {

	logger := log.FromCtx(ctx)
	metrics.CounterInc(r.Metrics.Resolutions)

	port, err := r.lookupPort(ctx, service)
	if err != nil {
		metrics.CounterInc(r.Metrics.Errors)
		logger.Warn("Address resolution failed",
			"hostname", hostname, "service", service, "err", err)
		return 0, serrors.Join(ErrResolve, err, "hostname", hostname, "service", service)
	}

	lookup := r.LookupNetIP
	if lookup == nil {
		lookup = net.DefaultResolver.LookupNetIP
	}
	ips, err := lookup(ctx, "ip", hostname)
	if err != nil {
		metrics.CounterInc(r.Metrics.Errors)
		logger.Warn("Address resolution failed",
			"hostname", hostname, "service", service, "err", err)
		return 0, serrors.Join(ErrResolve, err, "hostname", hostname, "service", service)
	}

	total := 0
	written := 0
	for _, ip := range ips {
		if !ip.IsValid() {
			continue
		}
		total++
		if written < len(records) {
			// The system resolver may hand back IPv4 results in 4-in-6 form;
			// unmap them so the record family matches what getaddrinfo would
			// report for an IPv4 host.
			a := FromAddrPort(netip.AddrPortFrom(ip.Unmap(), port))
			records[written] = Record{Addr: a, Len: a.Len()}
			written++
		}
	}
	if total > len(records) {
		metrics.CounterInc(r.Metrics.Truncations)
		logger.Debug("Resolution results truncated",
			"hostname", hostname, "found", total, "capacity", len(records))
	}
	return total, nil
}

func (r Resolver) lookupPort(ctx context.Context, service string) (uint16, error) {
	if service == "" {
		return 0, nil
	}
	lookup := r.LookupPort
	if lookup == nil {
		lookup = net.DefaultResolver.LookupPort
	}
	port, err := lookup(ctx, "udp", service)
	if err != nil {
		return 0, err
	}
	return uint16(port), nil
}

// Resolve resolves hostname and service using the system resolver. See
// Resolver.Resolve.
func Resolve(ctx context.Context, hostname, service string, records []Record) (int, error) {
	return Resolver{}.Resolve(ctx, hostname, service, records)
}
