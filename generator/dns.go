package generator

import (
	"math/rand"

	"github.com/miekg/dns"
)

// dnsQueryDomain is the fixed test domain encoded into generated queries.
const dnsQueryDomain = "test.example.com."

// DNSQuery builds a syntactically valid A query for the test domain: a
// 12-byte header with one question, then the length-prefixed labels and
// the type/class trailer. Field-level corruption is layered on by the
// mutation engine, not here.
func DNSQuery(r *rand.Rand) []byte {
	msg := new(dns.Msg)
	msg.SetQuestion(dnsQueryDomain, dns.TypeA)
	msg.Id = uint16(r.Intn(0x10000))
	msg.RecursionDesired = true

	packet, err := msg.Pack()
	if err != nil {
		// Pack cannot fail for a fixed well-formed question; keep the
		// never-fails contract anyway.
		buf := make([]byte, fallbackPacketSize)
		r.Read(buf)
		return buf
	}
	return packet
}
