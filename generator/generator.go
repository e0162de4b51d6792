// Package generator produces protocol-shaped packets for fuzz cases.
//
// Generators are registered per protocol variant; variants without a
// dedicated generator fall back to a fixed-length random buffer so the
// dispatch path never fails.
package generator

import (
	"math/rand"
)

// Protocol identifies a target wire protocol variant.
type Protocol string

const (
	ProtocolHTTP   Protocol = "http"
	ProtocolDNS    Protocol = "dns"
	ProtocolFTP    Protocol = "ftp"
	ProtocolSMTP   Protocol = "smtp"
	ProtocolModbus Protocol = "modbus"
	ProtocolCustom Protocol = "custom"
)

// fallbackPacketSize is the length of the random buffer emitted for
// protocols without a dedicated generator.
const fallbackPacketSize = 256

// defaultPorts maps each variant to its well-known port. This is metadata
// for reporting only, transport is out of scope.
var defaultPorts = map[Protocol]int{
	ProtocolHTTP:   80,
	ProtocolDNS:    53,
	ProtocolFTP:    21,
	ProtocolSMTP:   25,
	ProtocolModbus: 502,
	ProtocolCustom: 0,
}

// DefaultPort returns the well-known port for the protocol, 0 when the
// protocol is custom or unknown.
func (p Protocol) DefaultPort() int {
	return defaultPorts[p]
}

// Func builds one packet for a protocol using the supplied random source.
type Func func(r *rand.Rand) []byte

var generators = map[Protocol]Func{
	ProtocolHTTP: HTTPRequest,
	ProtocolDNS:  DNSQuery,
	ProtocolFTP:  FTPCommand,
	ProtocolSMTP: SMTPCommand,
}

// Register installs a generator for a protocol variant, replacing any
// existing one. New variants need no change to the dispatch below.
//
// The registry is not synchronized: register during program setup,
// before any session starts generating. Generate only reads the map, so
// concurrent sessions are safe once registration is done.
func Register(p Protocol, fn Func) {
	generators[p] = fn
}

// Generate builds one packet for the protocol. Variants without a
// registered generator (Modbus, Custom, anything unknown) yield a
// fixed-length buffer of uniform random bytes.
func Generate(p Protocol, r *rand.Rand) []byte {
	if fn, ok := generators[p]; ok {
		return fn(r)
	}
	buf := make([]byte, fallbackPacketSize)
	r.Read(buf)
	return buf
}
