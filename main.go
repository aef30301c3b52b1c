package main

import (
	"bufio"
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/tls"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"errors"
	"log"
	"math/big"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"posestudio/internal/auth"
	"posestudio/internal/config"
	"posestudio/internal/contextKey"
	"posestudio/internal/i18n"
	"posestudio/internal/metrics"
	"posestudio/internal/session"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

/*
   ---------------------------
   Request logging
   ---------------------------
*/

const requestIDHeader = "X-Request-Id"

type responseRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (r *responseRecorder) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	h, ok := r.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, errors.New("responsewriter does not support hijacking")
	}
	return h.Hijack()
}

func (r *responseRecorder) Flush() {
	if f, ok := r.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func (r *responseRecorder) Push(target string, opts *http.PushOptions) error {
	if p, ok := r.ResponseWriter.(http.Pusher); ok {
		return p.Push(target, opts)
	}
	return http.ErrNotSupported
}

func (r *responseRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (r *responseRecorder) Write(b []byte) (int, error) {
	if r.status == 0 {
		r.status = http.StatusOK
	}
	n, err := r.ResponseWriter.Write(b)
	r.bytes += n
	return n, err
}

// logRequests tags every request with an id and logs one line per request.
// Form bodies are never logged.
func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &responseRecorder{ResponseWriter: w}

		id := strings.TrimSpace(r.Header.Get(requestIDHeader))
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, id)

		next.ServeHTTP(rec, r.WithContext(contextKey.WithRequestID(r.Context(), id)))

		xff := strings.TrimSpace(r.Header.Get("X-Forwarded-For"))
		log.Printf(
			"request: status=%d bytes=%d dur=%s method=%s path=%s remote=%s xff=%q ua=%q request_id=%s",
			rec.status,
			rec.bytes,
			time.Since(start).Truncate(time.Millisecond),
			r.Method,
			r.URL.Path,
			r.RemoteAddr,
			xff,
			r.UserAgent(),
			id,
		)
	})
}

func ensureTLSCert(certPath, keyPath string) error {
	certInfo, certErr := os.Stat(certPath)
	keyInfo, keyErr := os.Stat(keyPath)
	if certErr == nil && keyErr == nil && certInfo.Mode().IsRegular() && keyInfo.Mode().IsRegular() {
		return nil
	}

	if (certErr == nil) != (keyErr == nil) {
		log.Printf("TLS cert/key mismatch, regenerating: cert=%v key=%v", certErr, keyErr)
	}

	for _, p := range []string{certPath, keyPath} {
		if dir := filepath.Dir(p); dir != "." {
			if err := os.MkdirAll(dir, 0700); err != nil {
				return err
			}
		}
	}

	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		return err
	}

	serial, err := rand.Int(rand.Reader, new(big.Int).Lsh(big.NewInt(1), 128))
	if err != nil {
		return err
	}

	now := time.Now()
	template := x509.Certificate{
		SerialNumber: serial,
		Subject: pkix.Name{
			CommonName: "posestudio",
		},
		NotBefore:             now.Add(-time.Hour),
		NotAfter:              now.Add(365 * 24 * time.Hour),
		KeyUsage:              x509.KeyUsageKeyEncipherment | x509.KeyUsageDigitalSignature,
		ExtKeyUsage:           []x509.ExtKeyUsage{x509.ExtKeyUsageServerAuth},
		BasicConstraintsValid: true,
		DNSNames:              []string{"localhost"},
		IPAddresses:           []net.IP{net.ParseIP("127.0.0.1"), net.ParseIP("::1")},
	}

	derBytes, err := x509.CreateCertificate(rand.Reader, &template, &template, &priv.PublicKey, priv)
	if err != nil {
		return err
	}

	certFile, err := os.OpenFile(certPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	defer certFile.Close()

	if err := pem.Encode(certFile, &pem.Block{Type: "CERTIFICATE", Bytes: derBytes}); err != nil {
		return err
	}

	keyFile, err := os.OpenFile(keyPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	defer keyFile.Close()

	return pem.Encode(keyFile, &pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(priv)})
}

/*
   ---------------------------
   Router
   ---------------------------
*/

func getStudioRouter(sessions *session.Manager, settings *config.SettingsType) http.Handler {
	h := &loginHandlers{
		sessions:    sessions,
		table:       auth.NewTable(settings),
		defaultLang: i18n.ParseLocale(settings.Get(config.DEFAULT_LOCALE)),
	}
	metrics.TrackSessions(sessions.ActiveSessions)

	router := chi.NewRouter()
	router.Use(sessions.LoadAndSave)

	router.Get("/login", h.handleLoginGet)
	router.Post("/login", h.handleLoginPost)
	router.Post("/theme", h.handleTheme)
	router.HandleFunc("/logout", h.handleLogout)
	router.With(sessions.RequireUser).Get("/studio", h.handleStudio)

	router.HandleFunc("/api/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("ok\n")); err != nil {
			log.Printf("failed to write health response: %v", err)
		}
	})
	router.Handle("/metrics", promhttp.Handler())

	apiCfg := huma.DefaultConfig("PoseArchitect Studio", "1.0.0")
	apiCfg.OpenAPIPath = ""
	apiCfg.DocsPath = ""
	apiCfg.SchemasPath = ""
	api := humachi.New(router, apiCfg)
	registerAPI(api, h)

	router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
	})

	return logRequests(router)
}

/*
   ---------------------------
   Main
   ---------------------------
*/

func main() {
	if err := config.LoadEnv(); err != nil {
		log.Fatalf("failed to load .env: %v", err)
	}
	settings := config.NewSettingType(config.PrintEnabled())
	useTLS := settings.IsTrue(config.TLS_ENABLED)

	sessions := session.NewManager(useTLS)
	handler := getStudioRouter(sessions, settings)

	srv := &http.Server{
		Addr:      settings.Get(config.LISTEN_ADDR),
		Handler:   handler,
		TLSConfig: &tls.Config{MinVersion: tls.VersionTLS12},

		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       2 * time.Minute,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		if useTLS {
			certPath := settings.Get(config.TLS_CERT)
			keyPath := settings.Get(config.TLS_KEY)
			if err := ensureTLSCert(certPath, keyPath); err != nil {
				errCh <- err
				return
			}
			log.Printf("Starting PoseArchitect studio on https://%s", srv.Addr)
			errCh <- srv.ListenAndServeTLS(certPath, keyPath)
			return
		}
		log.Printf("Starting PoseArchitect studio on http://%s", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	case <-ctx.Done():
		log.Println("Shutting down web server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("HTTP server shutdown error: %v", err)
		} else {
			log.Println("Web server stopped cleanly")
		}
	}
}
