package utils

import (
	"context"
	"fmt"
	"net"
	"regexp"
	"time"

	"github.com/f1board/f1board/log"
)

var dbURLRegex = regexp.MustCompile(
	"^postgres(?:ql)?://(?:.*@)?(?P<addr>(?P<host>[^:/?]+)(:(?P<port>\\d+))?)(/.*)?$")

// WaitForTCP dials addr until it accepts connections, timeout elapses or ctx
// is done.
func WaitForTCP(ctx context.Context, addr string, timeout time.Duration) error {
	start := time.Now()
	log.Debug("wait for tcp connection",
		log.String("addr", addr),
		log.String("timeout", timeout.String()))
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var d net.Dialer
	ticker := time.NewTicker(200 * time.Millisecond)
	defer ticker.Stop()
	for {
		conn, err := d.DialContext(ctx, "tcp", addr)
		if err == nil {
			conn.Close()
			log.Debug("tcp connection successful",
				log.String("addr", addr),
				log.String("duration", time.Since(start).String()))
			return nil
		}
		select {
		case <-ctx.Done():
			return fmt.Errorf("%s could not be reached after %v", addr, timeout)
		case <-ticker.C:
		}
	}
}

// ExtractFromDBURL returns host:port of a postgres connection url.
// The port defaults to 5432.
func ExtractFromDBURL(url string) string {
	match := dbURLRegex.FindStringSubmatch(url)
	if match == nil {
		return ""
	}
	host := match[dbURLRegex.SubexpIndex("host")]
	port := match[dbURLRegex.SubexpIndex("port")]
	if port == "" {
		port = "5432"
	}
	return net.JoinHostPort(host, port)
}
