package generator

import (
	"fmt"
	"math/rand"
	"strings"
)

var httpMethods = []string{"GET", "POST", "PUT", "DELETE", "PATCH", "HEAD", "OPTIONS"}

// httpPaths mixes benign paths with known troublemakers: traversal
// sequences and a long percent run that trips naive URL decoders.
var httpPaths = []string{
	"/",
	"/index.html",
	"/admin",
	"/api/v1/users",
	"/../../../../etc/passwd",
	"/" + strings.Repeat("%", 2048),
	"/%00",
	"/.git/config",
}

// HTTPRequest composes a minimal request line plus Host header, terminated
// by the blank line HTTP requires.
func HTTPRequest(r *rand.Rand) []byte {
	method := httpMethods[r.Intn(len(httpMethods))]
	path := httpPaths[r.Intn(len(httpPaths))]
	req := fmt.Sprintf("%s %s HTTP/1.1\r\nHost: localhost\r\n\r\n", method, path)
	return []byte(req)
}

var ftpCommands = []string{
	"USER anonymous",
	"PASS fuzz@localhost",
	"CWD " + strings.Repeat("../", 64),
	"RETR /etc/passwd",
	"LIST " + strings.Repeat("A", 512),
	"SITE EXEC id",
	"MKD " + strings.Repeat("%s", 128),
}

// FTPCommand emits one CRLF-terminated control command from a set of
// adversarial templates.
func FTPCommand(r *rand.Rand) []byte {
	return []byte(ftpCommands[r.Intn(len(ftpCommands))] + "\r\n")
}

var smtpCommands = []string{
	"HELO localhost",
	"EHLO " + strings.Repeat("A", 1024),
	"MAIL FROM:<fuzz@" + strings.Repeat("x", 256) + ".test>",
	"RCPT TO:<root@localhost>",
	"VRFY root",
	"DATA",
}

// SMTPCommand emits one CRLF-terminated SMTP command, some with
// oversized arguments.
func SMTPCommand(r *rand.Rand) []byte {
	return []byte(smtpCommands[r.Intn(len(smtpCommands))] + "\r\n")
}
