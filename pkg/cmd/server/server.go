package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	_ "net/http/pprof" //nolint:gosec // by design
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pgx-contrib/pgxtrace"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
	otlpruntime "go.opentelemetry.io/contrib/instrumentation/runtime"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/f1board/f1board/log"
	"github.com/f1board/f1board/pkg/calendar"
	"github.com/f1board/f1board/pkg/cmd/cmdutil"
	"github.com/f1board/f1board/pkg/config"
	"github.com/f1board/f1board/pkg/db/postgres"
	"github.com/f1board/f1board/pkg/repository/tzmiss"
	"github.com/f1board/f1board/pkg/schedule"
)

const shutdownTimeout = 10 * time.Second

var appConfig config.Config // holds processed config values

func NewServerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "starts the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return startServer(cmd.Context())
		},
	}
	cmd.Flags().StringVarP(&config.ServerAddr,
		"addr",
		"a",
		"localhost:8080",
		"HTTP server listen address")
	cmd.Flags().StringVar(&config.TLSServerAddr,
		"tls-addr",
		"",
		"HTTPS listen address, requires a certificate")
	cmd.Flags().StringVar(&config.TLSCertFile,
		"tls-cert",
		"",
		"path to TLS certificate")
	cmd.Flags().StringVar(&config.TLSKeyFile,
		"tls-key",
		"",
		"path to TLS key")
	cmd.Flags().StringVar(&config.TLSCAFile,
		"tls-ca",
		"",
		"path to CA certificate used to verify client certificates")
	cmd.Flags().StringVar(&config.TraefikCerts,
		"traefik-certs",
		"",
		"path to a traefik acme.json containing the certificate")
	cmd.Flags().StringVar(&config.TraefikCertDomain,
		"traefik-domain",
		"",
		"domain of the certificate within the traefik certs")
	cmd.Flags().BoolVar(&config.EnableTelemetry,
		"enable-telemetry",
		false,
		"enables telemetry")
	cmd.Flags().StringVar(&config.TelemetryEndpoint,
		"telemetry-endpoint",
		"",
		"OTLP gRPC endpoint that receives telemetry data (stdout if empty)")
	cmd.Flags().IntVar(&config.ProfilingPort,
		"profiling-port",
		0,
		"port to use for providing profiling data")
	cmd.Flags().BoolVar(&appConfig.RecordUnresolved,
		"record-unresolved",
		false,
		"store unresolved timezone diagnostics in the database")
	return cmd
}

//nolint:funlen,cyclop // by design
func startServer(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	logger, sqlLogger, err := cmdutil.SetupLogger(os.Stderr)
	if err != nil {
		return err
	}

	log.Debug("Config:",
		log.String("addr", config.ServerAddr),
		log.Bool("db", config.DB != ""),
		log.String("lookupFile", config.LookupFile),
		log.Bool("recordUnresolved", appConfig.RecordUnresolved),
	)

	if config.ProfilingPort > 0 {
		log.Info("Starting profiling server on port", log.Int("port", config.ProfilingPort))
		go func() {
			//nolint:gosec // by design
			err := http.ListenAndServe(
				fmt.Sprintf("localhost:%d", config.ProfilingPort),
				nil)
			if err != nil {
				log.Error("Profiling server stopped", log.ErrorField(err))
			}
		}()
	}

	var telemetry *config.Telemetry
	reporters := []schedule.Reporter{}
	pgTracer := pgxtrace.CompositeQueryTracer{
		postgres.NewMyTracer(sqlLogger, log.DebugLevel),
	}
	if config.EnableTelemetry {
		logger.Info("Enabling telemetry")
		if telemetry, err = config.SetupTelemetry(ctx); err == nil {
			pgTracer = append(pgTracer, postgres.NewOtlpTracer())
		} else {
			logger.Warn("Could not setup telemetry", log.ErrorField(err))
		}
		err = otlpruntime.Start(otlpruntime.WithMinimumReadMemStatsInterval(time.Second))
		if err != nil {
			logger.Warn("Could not start runtime metrics", log.ErrorField(err))
		}
		if rep, err := schedule.NewMetricReporter(); err == nil {
			reporters = append(reporters, rep)
		} else {
			logger.Warn("Could not create metric reporter", log.ErrorField(err))
		}
	}

	var pool *pgxpool.Pool
	if config.DB != "" {
		if err := cmdutil.WaitForDB(ctx); err != nil {
			log.Error("required services not ready", log.ErrorField(err))
			return err
		}
		pool, err = postgres.InitWithURL(ctx, config.DB, postgres.WithTracer(pgTracer))
		if err != nil {
			log.Error("server could not be started", log.ErrorField(err))
			return err
		}
		defer pool.Close()

		if appConfig.RecordUnresolved {
			recorder := tzmiss.NewRecorder(pool)
			recorder.Start()
			defer recorder.Stop()
			reporters = append(reporters, recorder)
		}
	} else if appConfig.RecordUnresolved {
		log.Warn("No database configured, unresolved timezones are not recorded")
	}

	builder, err := cmdutil.NewBuilder(reporters...)
	if err != nil {
		log.Error("server could not be started", log.ErrorField(err))
		return err
	}
	opts := []apiOption{
		withLogger(logger.Named("api")),
		withExporter(calendar.NewExporter(
			calendar.WithTables(builder.Tables()),
			calendar.WithLogger(logger.Named("calendar")))),
	}
	if pool != nil {
		opts = append(opts, withPool(pool))
	}
	mux := newAPI(builder, opts...).routes()

	handler := newCORS().Handler(mux)
	watchCtx, stopWatch := context.WithCancel(ctx)
	defer stopWatch()
	tlsServer, err := newTLSServer(watchCtx, handler, logger)
	if err != nil {
		log.Error("TLS server could not be started", log.ErrorField(err))
		return err
	}

	errChan := make(chan error, 2)
	//nolint:gosec // by design
	server := &http.Server{
		Addr:    config.ServerAddr,
		Handler: h2c.NewHandler(handler, &http2.Server{}),
	}
	servers := []*http.Server{server}
	go func() {
		log.Info("Starting HTTP server", log.String("addr", config.ServerAddr))
		errChan <- server.ListenAndServe()
	}()
	if tlsServer != nil {
		servers = append(servers, tlsServer)
		go func() {
			log.Info("Starting HTTPS server", log.String("addr", tlsServer.Addr))
			errChan <- tlsServer.ListenAndServeTLS("", "")
		}()
	}
	setupGoRoutinesDump()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	var serveErr error
	select {
	case v := <-sigChan:
		log.Debug("Got signal ", log.Any("signal", v))
	case err := <-errChan:
		if !errors.Is(err, http.ErrServerClosed) {
			log.Error("server stopped", log.ErrorField(err))
			serveErr = err
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	for _, srv := range servers {
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Warn("Server shutdown incomplete",
				log.String("addr", srv.Addr), log.ErrorField(err))
		}
	}
	if telemetry != nil {
		telemetry.Shutdown()
	}
	log.Info("Server terminated")
	return serveErr
}

// newTLSServer returns nil if no TLS listen address is configured.
func newTLSServer(ctx context.Context, handler http.Handler, logger *log.Logger) (
	*http.Server, error,
) {
	if config.TLSServerAddr == "" {
		return nil, nil
	}
	src := certSourceFromConfig()
	if !src.configured() {
		return nil, errNoCertificate
	}
	store, err := newCertStore(src, logger.Named("certs"))
	if err != nil {
		return nil, err
	}
	if err := store.watch(ctx, nil); err != nil {
		logger.Warn("certificate changes are not watched", log.ErrorField(err))
	}
	tlsConfig, err := store.tlsConfig()
	if err != nil {
		return nil, err
	}
	//nolint:gosec // by design
	return &http.Server{
		Addr:      config.TLSServerAddr,
		Handler:   handler,
		TLSConfig: tlsConfig,
	}, nil
}

func setupGoRoutinesDump() {
	go func() {
		sigs := make(chan os.Signal, 1)
		signal.Notify(sigs, syscall.SIGQUIT)
		buf := make([]byte, 1<<20)
		for {
			<-sigs
			stacklen := runtime.Stack(buf, true)
			fmt.Printf("=== received SIGQUIT ===\n*** goroutine dump...\n%s\n*** end\n",
				buf[:stacklen])
		}
	}()
}

func newCORS() *cors.Cors {
	// browser based dashboards call the API from any origin
	return cors.New(cors.Options{
		AllowedMethods: []string{
			http.MethodHead,
			http.MethodGet,
			http.MethodPost,
			http.MethodDelete,
		},
		AllowOriginFunc: func(origin string) bool {
			return true
		},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{
			"Accept",
			"Accept-Encoding",
			"Content-Disposition",
			"Content-Encoding",
		},
		MaxAge: int(2 * time.Hour / time.Second),
	})
}
