package server

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/f1board/f1board/log"
	"github.com/f1board/f1board/pkg/config"
	"github.com/f1board/f1board/pkg/utils/certs/traefik"
)

var errNoCertificate = errors.New("no certificate configured")

// certSource names where the server certificate comes from. A traefik
// store takes precedence over a plain key pair.
type certSource struct {
	certFile      string
	keyFile       string
	caFile        string
	traefikFile   string
	traefikDomain string
}

func certSourceFromConfig() certSource {
	return certSource{
		certFile:      config.TLSCertFile,
		keyFile:       config.TLSKeyFile,
		caFile:        config.TLSCAFile,
		traefikFile:   config.TraefikCerts,
		traefikDomain: config.TraefikCertDomain,
	}
}

func (s certSource) configured() bool {
	return (s.traefikFile != "" && s.traefikDomain != "") ||
		(s.certFile != "" && s.keyFile != "")
}

func (s certSource) load() (tls.Certificate, error) {
	switch {
	case s.traefikFile != "" && s.traefikDomain != "":
		return traefik.CertificateFromFile(s.traefikFile, s.traefikDomain)
	case s.certFile != "" && s.keyFile != "":
		return tls.LoadX509KeyPair(s.certFile, s.keyFile)
	}
	return tls.Certificate{}, errNoCertificate
}

func (s certSource) watchFiles() []string {
	ret := []string{}
	for _, f := range []string{s.certFile, s.keyFile, s.traefikFile} {
		if f != "" {
			ret = append(ret, f)
		}
	}
	return ret
}

// certStore serves the current certificate and reloads it when one of the
// source files changes. A failed reload keeps the previous certificate.
type certStore struct {
	src  certSource
	log  *log.Logger
	mu   sync.RWMutex
	cert *tls.Certificate
}

func newCertStore(src certSource, l *log.Logger) (*certStore, error) {
	c := &certStore{src: src, log: l}
	if err := c.reload(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *certStore) reload() error {
	c.log.Info("Loading certificate",
		log.String("cert", c.src.certFile),
		log.String("traefik", c.src.traefikFile),
		log.String("domain", c.src.traefikDomain))
	cert, err := c.src.load()
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cert = &cert
	return nil
}

func (c *certStore) getCertificate(*tls.ClientHelloInfo) (*tls.Certificate, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.cert, nil
}

// tlsConfig creates the server config. Client certificates are verified
// against the CA file if one is given.
func (c *certStore) tlsConfig() (*tls.Config, error) {
	ret := &tls.Config{
		GetCertificate: c.getCertificate,
		MinVersion:     tls.VersionTLS13,
	}
	if c.src.caFile != "" {
		caCert, err := os.ReadFile(c.src.caFile)
		if err != nil {
			return nil, fmt.Errorf("read TLS root CA: %w", err)
		}
		pool := x509.NewCertPool()
		if ok := pool.AppendCertsFromPEM(caCert); !ok {
			return nil, fmt.Errorf("no certificates in %s", c.src.caFile)
		}
		ret.ClientCAs = pool
		ret.ClientAuth = tls.VerifyClientCertIfGiven
	}
	return ret, nil
}

// watch reloads the certificate on file changes until ctx is done.
// reloaded receives a value after each reload attempt if not nil.
func (c *certStore) watch(ctx context.Context, reloaded chan<- error) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create file watcher: %w", err)
	}
	for _, f := range c.src.watchFiles() {
		if err := watcher.Add(f); err != nil {
			watcher.Close()
			return fmt.Errorf("watch %s: %w", f, err)
		}
	}
	go func() {
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				c.log.Debug("context done, stopping cert reload")
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
					!event.Has(fsnotify.Chmod) {
					continue
				}
				c.log.Info("cert file changed, reloading cert",
					log.String("file", event.Name))
				err := c.reload()
				if err != nil {
					c.log.Error("could not reload certificate", log.ErrorField(err))
				}
				if reloaded != nil {
					reloaded <- err
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				c.log.Error("watcher error", log.ErrorField(err))
			}
		}
	}()
	return nil
}
