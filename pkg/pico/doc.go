// Package pico forwards instruction messages to an agent host that speaks the
// Pico Protocol over WebSocket.
//
// The Client is stateless: each Send opens a connection, writes one
// message.send envelope, and closes. It does not wait for the agent's turn.
// The Forwarder drains a bus.MessageBus and sends each message in order.
package pico
