package compile

import (
	"context"
	"fmt"

	"github.com/hostinfo/hostwiki/internal/criteria"
	"github.com/hostinfo/hostwiki/internal/inventory"
)

func Run(_ context.Context, opts *Options, req criteria.Request) error {
	path, err := criteria.Compile(req)
	if err != nil {
		return err
	}

	if opts.Full {
		path = inventory.NewClient(opts.InventoryURL).URL(path)
	}

	_, err = fmt.Fprintln(opts.Writer, path)

	return err
}
