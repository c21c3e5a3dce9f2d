package commands

import (
	"fmt"
	"io"
	"net"
	"net/url"

	"github.com/spf13/cobra"

	"tableflip.dev/timeline/pkg/commands/options"
	"tableflip.dev/timeline/pkg/runner/mcp"
)

func addMCP(topLevel *cobra.Command) {
	so := &options.ServeOptions{}

	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "start the Model Context Protocol server",
		Long: `Launch an MCP server that exposes lane assignment, view windows, filtering and
item moves through the Model Context Protocol. Moves and edits are held in
memory for the life of the server.`,
		Example: `
timeline mcp --listen 127.0.0.1:0
timeline mcp --transport stdio --width 1280
`,
		Args: cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			return so.Validate()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			cfg, svc, err := load()
			if err != nil {
				return err
			}

			runner := mcp.Runner{
				App:              svc,
				Name:             "timeline",
				Version:          version,
				TrackWidth:       so.TrackWidth(cfg.TrackWidth()),
				Transport:        mcp.Transport(so.Transport),
				HTTPListenAddr:   so.Listen,
				HTTPEndpointPath: so.EndpointPath(),
				HTTPServerCert:   so.TLSCert,
				HTTPServerKey:    so.TLSKey,
				OnHTTPListening: func(a net.Addr) {
					announce(cmd.OutOrStdout(), so.Scheme(), a, so.EndpointPath())
				},
			}
			return runner.Do(cmd.Context())
		},
	}

	options.AddServeArgs(cmd, so)

	topLevel.AddCommand(cmd)
}

// announce prints the endpoint clients should connect to. Unspecified listen
// addresses are shown as loopback.
func announce(w io.Writer, scheme string, a net.Addr, path string) {
	host := a.String()
	if tcp, ok := a.(*net.TCPAddr); ok && (tcp.IP == nil || tcp.IP.IsUnspecified()) {
		host = net.JoinHostPort("127.0.0.1", fmt.Sprint(tcp.Port))
	}
	u := url.URL{Scheme: scheme, Host: host, Path: path}
	_, _ = fmt.Fprintf(w, "MCP HTTP server listening on %s\n", u.String())
}
