// Package sim contains two small applications of the cimnet engine.
//
// SIR runs an asynchronous Susceptible-Infected-Recovered epidemic on any
// undirected network whose nodes carry an SIRNode payload. Each Step performs
// N random single-node updates; Observe exports compartment fractions as
// Prometheus gauges.
//
// Internet models hosts keyed by IP address with per-host packet counters
// as node payloads and per-link traffic totals as edge payloads. Sends
// between unlinked hosts are logged and rejected with core.ErrEdgeNotFound.
package sim
