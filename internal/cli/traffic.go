package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/cimnet/sim"
)

// Addresses of the demo host network.
const (
	routerAddr = "192.168.0.1"
	serverAddr = "118.26.6.6"
	hostPrefix = "192.168.0."
	firstHost  = 100
)

func newTrafficCmd() *cobra.Command {
	var hosts int

	cmd := &cobra.Command{
		Use:   "traffic",
		Short: "Replay the router/server packet scenario and diagnose the router",
		Long: `Build a star of hosts around a router uplinked to a server, send 10 TCP
packets server→router and 66 UDP packets router→host 2, let every host digest
its queue, and print the router diagnosis.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if hosts < 3 {
				return fmt.Errorf("--hosts must be ≥ 3, got %d", hosts)
			}
			in := sim.NewInternet(sim.WithLogger(loggerFromContext(cmd.Context())))
			return runTraffic(cmd, in, hosts)
		},
	}
	cmd.Flags().IntVar(&hosts, "hosts", 7, "number of hosts behind the router")

	return cmd
}

func runTraffic(cmd *cobra.Command, in *sim.Internet, hosts int) error {
	router := in.AddHost(routerAddr, "ROUTER")
	server := in.AddHost(serverAddr, "SERVER")
	addrs := make([]sim.IP, hosts)
	for i := range addrs {
		addrs[i] = in.AddHost(fmt.Sprintf("%s%d", hostPrefix, firstHost+i), fmt.Sprintf("HOST %d", i))
	}

	in.AddHyperlink(server, router)
	for _, h := range addrs {
		in.AddHyperlink(router, h)
	}

	if err := in.SendTCP(server, router, 10); err != nil {
		return err
	}
	if err := in.SendUDP(router, addrs[2], 66); err != nil {
		return err
	}

	for _, h := range append([]sim.IP{router, server}, addrs...) {
		amount := uint64(5)
		if h == router || h == server {
			amount = 999
		}
		if err := in.Digest(h, amount); err != nil {
			return err
		}
	}

	return in.Diagnose(cmd.OutOrStdout(), router)
}
