package serve

import (
	"context"

	"github.com/hostinfo/hostwiki/internal/inventory"
	"github.com/hostinfo/hostwiki/internal/server"
	"github.com/hostinfo/hostwiki/options"
)

func Run(ctx context.Context, opts *options.Options) error {
	client := inventory.NewClient(opts.InventoryURL,
		inventory.WithTimeout(opts.Timeout),
		inventory.WithLogger(opts.Logger),
	)

	srv := server.NewServer(client,
		server.WithAddr(opts.ListenAddr),
		server.WithShutdownTimeout(opts.ShutdownTimeout),
		server.WithLogger(opts.Logger),
	)

	ln, err := srv.Listen()
	if err != nil {
		return err
	}

	opts.Logger.Infof("Rendering tags from %s", opts.InventoryURL)

	return srv.Run(ctx, ln)
}
