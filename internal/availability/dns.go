package availability

import (
	"context"
	"fmt"
	"time"

	"github.com/miekg/dns"
)

// DNSProvider approximates availability with an NS query: a name the resolver
// reports as NXDOMAIN is considered available, an existing name is taken.
// This is a heuristic; registered names without delegation look available.
type DNSProvider struct {
	client   *dns.Client
	resolver string
}

// NewDNSProvider queries resolver ("host:port") over UDP.
func NewDNSProvider(resolver string, timeout time.Duration) *DNSProvider {
	return &DNSProvider{
		client: &dns.Client{
			Net:     "udp",
			Timeout: timeout,
		},
		resolver: resolver,
	}
}

func (p *DNSProvider) Name() string { return "dns" }

func (p *DNSProvider) Available(ctx context.Context, domain string) (bool, error) {
	msg := new(dns.Msg)
	msg.SetQuestion(dns.Fqdn(domain), dns.TypeNS)
	msg.RecursionDesired = true

	in, _, err := p.client.ExchangeContext(ctx, msg, p.resolver)
	if err != nil {
		return false, fmt.Errorf("dns query to %s failed: %w", p.resolver, err)
	}

	switch in.Rcode {
	case dns.RcodeNameError:
		return true, nil
	case dns.RcodeSuccess:
		return false, nil
	default:
		return false, fmt.Errorf("dns query returned %s", dns.RcodeToString[in.Rcode])
	}
}
