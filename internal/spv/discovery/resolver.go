// Package discovery turns DNS seed hostnames into dialable peer addresses.
package discovery

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"net"
	"time"

	"github.com/miekg/dns"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-spv/pkg/workerpool"
)

const (
	resolvConfPath  = "/etc/resolv.conf"
	fallbackServer  = "8.8.8.8:53"
	defaultTimeout  = 5 * time.Second
	defaultParallel = 4
)

// ErrNoAddresses is returned when no seed produced a single address.
var ErrNoAddresses = errors.New("dns seeds returned no addresses")

// Resolver queries A and AAAA records of DNS seeds.
type Resolver struct {
	server   string
	client   *dns.Client
	parallel int
	logger   *zap.Logger
}

// NewResolver uses the first nameserver from /etc/resolv.conf, or a public
// resolver when the file is missing.
func NewResolver(logger *zap.Logger) *Resolver {
	server := fallbackServer
	if conf, err := dns.ClientConfigFromFile(resolvConfPath); err == nil && len(conf.Servers) > 0 {
		server = net.JoinHostPort(conf.Servers[0], conf.Port)
	}
	return NewResolverWithServer(server, logger)
}

// NewResolverWithServer queries server ("host:port") directly.
func NewResolverWithServer(server string, logger *zap.Logger) *Resolver {
	return &Resolver{
		server:   server,
		client:   &dns.Client{Net: "udp", Timeout: defaultTimeout},
		parallel: defaultParallel,
		logger:   logger.With(zap.String("dns_server", server)),
	}
}

// ResolveSeeds resolves every seed concurrently and returns "ip:port" strings,
// deduplicated and shuffled. A failing seed is logged and skipped.
func (r *Resolver) ResolveSeeds(ctx context.Context, seeds []string, port string) ([]string, error) {
	resolved, err := workerpool.Map(ctx, r.parallel, seeds, func(ctx context.Context, seed string) ([]net.IP, error) {
		ips, err := r.Lookup(ctx, seed)
		if err != nil {
			r.logger.Warn("dns seed lookup failed", zap.String("seed", seed), zap.Error(err))
			return nil, nil
		}
		r.logger.Debug("dns seed resolved", zap.String("seed", seed), zap.Int("addresses", len(ips)))
		return ips, nil
	})
	if err != nil {
		return nil, fmt.Errorf("resolve seeds: %w", err)
	}

	seen := make(map[string]struct{})
	var out []string
	for _, ips := range resolved {
		for _, ip := range ips {
			addr := net.JoinHostPort(ip.String(), port)
			if _, ok := seen[addr]; ok {
				continue
			}
			seen[addr] = struct{}{}
			out = append(out, addr)
		}
	}
	if len(out) == 0 {
		return nil, ErrNoAddresses
	}
	rand.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out, nil
}

// Lookup returns the IPv4 and IPv6 addresses of host.
func (r *Resolver) Lookup(ctx context.Context, host string) ([]net.IP, error) {
	var ips []net.IP
	for _, qtype := range []uint16{dns.TypeA, dns.TypeAAAA} {
		msg := new(dns.Msg)
		msg.SetQuestion(dns.Fqdn(host), qtype)
		msg.RecursionDesired = true

		resp, _, err := r.client.ExchangeContext(ctx, msg, r.server)
		if err != nil {
			return nil, fmt.Errorf("query %s %s: %w", dns.TypeToString[qtype], host, err)
		}
		if resp.Rcode != dns.RcodeSuccess {
			return nil, fmt.Errorf("query %s %s: %s", dns.TypeToString[qtype], host, dns.RcodeToString[resp.Rcode])
		}
		for _, rr := range resp.Answer {
			switch rec := rr.(type) {
			case *dns.A:
				ips = append(ips, rec.A)
			case *dns.AAAA:
				ips = append(ips, rec.AAAA)
			}
		}
	}
	return ips, nil
}
