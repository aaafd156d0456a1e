// SPDX-License-Identifier: MIT
// Package: cimnet/sim
//
// traffic.go - packet accounting over a host network.

package sim

import (
	"fmt"
	"io"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/cimnet/core"
)

// IP is a host address used as node key.
type IP = string

// HostData is the per-host payload.
type HostData struct {
	Hostname string
	Sent     uint64
	Received uint64
	InQueue  uint64
}

// HostNetwork is the engine instantiation behind Internet: edge payloads
// count packets that crossed the link.
type HostNetwork = core.Undirected[IP, HostData, uint64]

// Internet tracks hosts, hyperlinks and traffic. Not safe for concurrent use.
type Internet struct {
	net    *HostNetwork
	logger *log.Logger
}

// NewInternet returns an empty host network.
func NewInternet(opts ...Option) *Internet {
	o := newOptions(opts...)

	return &Internet{
		net:    core.NewUndirected[IP, HostData, uint64](),
		logger: o.logger,
	}
}

// Network exposes the underlying engine, e.g. for export.
func (in *Internet) Network() *HostNetwork { return in.net }

// AddHost registers addr with zeroed counters, resetting an existing host.
func (in *Internet) AddHost(addr IP, hostname string) IP {
	in.net.AddNode(addr, HostData{Hostname: hostname})

	return addr
}

// AddHyperlink links two hosts, adding unknown ones without a hostname.
// Re-linking resets the traffic counter of that link.
func (in *Internet) AddHyperlink(a, b IP) {
	in.net.Link(a, b)
}

// SendTCP delivers amount packets from → to and counts them on that link.
//
// Errors: core.ErrNodeNotFound or core.ErrEdgeNotFound when the hosts are
// unknown or not linked; nothing is counted in that case.
func (in *Internet) SendTCP(from, to IP, amount uint64) error {
	link, err := in.link("SendTCP", from, to)
	if err != nil {
		return err
	}
	in.logger.Info("tcp", "from", from, "to", to, "packets", amount)
	in.deliver(from, to, amount)
	*link += amount

	return nil
}

// SendUDP delivers amount packets from → to and, being connectionless,
// charges amount to every link of from.
func (in *Internet) SendUDP(from, to IP, amount uint64) error {
	if _, err := in.link("SendUDP", from, to); err != nil {
		return err
	}
	in.logger.Info("udp", "from", from, "to", to, "packets", amount)
	in.deliver(from, to, amount)
	for nb := range in.net.NeighborView(from) {
		if t, err := in.net.Edge(from, nb); err == nil {
			*t += amount
		}
	}

	return nil
}

// Digest removes up to amount packets from the queue of host.
func (in *Internet) Digest(host IP, amount uint64) error {
	h, err := in.net.Node(host)
	if err != nil {
		return fmt.Errorf("sim: Digest: %w", err)
	}
	h.InQueue -= min(h.InQueue, amount)

	return nil
}

// Host returns a copy of the counters of addr.
func (in *Internet) Host(addr IP) (HostData, error) {
	h, err := in.net.Node(addr)
	if err != nil {
		return HostData{}, fmt.Errorf("sim: Host: %w", err)
	}

	return *h, nil
}

// Traffic returns the packet count on the link a-b.
func (in *Internet) Traffic(a, b IP) (uint64, error) {
	t, err := in.net.Edge(a, b)
	if err != nil {
		return 0, fmt.Errorf("sim: Traffic: %w", err)
	}

	return *t, nil
}

// Diagnose writes a human-readable report of host and its links, neighbors
// in ascending address order.
func (in *Internet) Diagnose(w io.Writer, host IP) error {
	h, err := in.net.Node(host)
	if err != nil {
		return fmt.Errorf("sim: Diagnose: %w", err)
	}

	fmt.Fprintf(w, "Host %q [ip=%s]:\n", h.Hostname, host)
	fmt.Fprintf(w, "  Send: %d packets.\n", h.Sent)
	fmt.Fprintf(w, "  Receive: %d packets.\n", h.Received)
	fmt.Fprintf(w, "  In queue: %d packets.\n", h.InQueue)
	fmt.Fprintln(w, "  Linked host:")

	nbrs := in.net.Neighbors(host)
	slices.Sort(nbrs)
	for _, nb := range nbrs {
		peer, _ := in.net.Node(nb)
		t, _ := in.net.Edge(host, nb)
		if _, err := fmt.Fprintf(w, "    To %q [ip=%s] traffic: %d packets.\n", peer.Hostname, nb, *t); err != nil {
			return fmt.Errorf("sim: Diagnose: %w", err)
		}
	}

	return nil
}

// link resolves the link payload or logs and returns why the send failed.
func (in *Internet) link(method string, from, to IP) (*uint64, error) {
	t, err := in.net.Edge(from, to)
	if err != nil {
		in.logger.Warn("hosts not linked", "from", from, "to", to)
		return nil, fmt.Errorf("sim: %s: %w", method, err)
	}

	return t, nil
}

func (in *Internet) deliver(from, to IP, amount uint64) {
	src, _ := in.net.Node(from)
	dst, _ := in.net.Node(to)
	src.Sent += amount
	dst.Received += amount
	dst.InQueue += amount
}
