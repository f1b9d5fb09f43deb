package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/1broseidon/framewm/internal/ipc"
	"github.com/1broseidon/framewm/internal/runtimepath"
)

type queryOptions struct {
	display string
	socket  string
}

func (o *queryOptions) client() (*ipc.Client, error) {
	if o.socket != "" {
		return ipc.NewClient(o.socket), nil
	}
	path, err := runtimepath.SocketPath(o.display)
	if err != nil {
		return nil, err
	}
	return ipc.NewClient(path), nil
}

func (o *queryOptions) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.display, "display", "", "Display of the running manager (default: $DISPLAY)")
	cmd.Flags().StringVar(&o.socket, "socket", "", "Control socket path (overrides --display)")
}

func newStatusCmd() *cobra.Command {
	opts := &queryOptions{}
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the state of a running framewm",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := opts.client()
			if err != nil {
				return err
			}
			status, err := client.GetStatus()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "display: %s\n", status.Display)
			fmt.Fprintf(out, "clients: %d\n", status.ClientCount)
			fmt.Fprintf(out, "drag:    %s\n", status.Drag)
			fmt.Fprintf(out, "uptime:  %ds\n", status.UptimeSeconds)
			return nil
		},
	}
	opts.bind(cmd)
	return cmd
}

func newClientsCmd() *cobra.Command {
	opts := &queryOptions{}
	cmd := &cobra.Command{
		Use:   "clients",
		Short: "List the windows a running framewm manages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := opts.client()
			if err != nil {
				return err
			}
			data, err := client.ListClients()
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "WINDOW\tFRAME\tTITLE")
			for _, c := range data.Clients {
				fmt.Fprintf(w, "0x%x\t0x%x\t%d\n", c.Window, c.Frame, c.TitleHeight)
			}
			return w.Flush()
		},
	}
	opts.bind(cmd)
	return cmd
}
