package options

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

// ServeOptions configures how the MCP server is exposed.
type ServeOptions struct {
	Transport string
	Listen    string
	Path      string
	TLSCert   string
	TLSKey    string
	Width     float64
}

func AddServeArgs(cmd *cobra.Command, o *ServeOptions) {
	cmd.Flags().StringVar(&o.Transport, "transport", "http",
		"Transport to use: http or stdio.")
	cmd.Flags().StringVar(&o.Listen, "listen", "127.0.0.1:8080",
		"host:port for the http transport. Port 0 picks a free port.")
	cmd.Flags().StringVar(&o.Path, "path", "/mcp",
		"HTTP endpoint path.")
	cmd.Flags().StringVar(&o.TLSCert, "tls-cert", "",
		"TLS certificate file for HTTPS.")
	cmd.Flags().StringVar(&o.TLSKey, "tls-key", "",
		"TLS private key file for HTTPS.")
	cmd.Flags().Float64Var(&o.Width, "width", 0,
		Wrap80("Track width in pixels used by move_item when the caller sends none. Defaults to the width config key."))
}

// Validate normalizes the flags and rejects combinations the server can not
// start with.
func (o *ServeOptions) Validate() error {
	o.Transport = strings.ToLower(strings.TrimSpace(o.Transport))
	switch o.Transport {
	case "", "http":
		o.Transport = "http"
	case "stdio":
		return nil
	default:
		return fmt.Errorf("unsupported transport %q (expected http or stdio)", o.Transport)
	}

	_, port, err := net.SplitHostPort(strings.TrimSpace(o.Listen))
	if err != nil {
		return fmt.Errorf("--listen: %w", err)
	}
	if n, err := strconv.Atoi(port); err != nil || n < 0 || n > 65535 {
		return fmt.Errorf("--listen: invalid port %q", port)
	}
	if (o.TLSCert == "") != (o.TLSKey == "") {
		return errors.New("--tls-cert and --tls-key must be set together")
	}
	if o.Width < 0 {
		return fmt.Errorf("--width must not be negative, got %v", o.Width)
	}
	return nil
}

// EndpointPath is --path with a leading slash.
func (o *ServeOptions) EndpointPath() string {
	p := strings.TrimSpace(o.Path)
	if p == "" {
		return "/mcp"
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return p
}

// TrackWidth prefers --width over the configured width.
func (o *ServeOptions) TrackWidth(configured float64) float64 {
	if o.Width > 0 {
		return o.Width
	}
	return configured
}

// Scheme is https when TLS files are set.
func (o *ServeOptions) Scheme() string {
	if o.TLSCert != "" && o.TLSKey != "" {
		return "https"
	}
	return "http"
}
