package network

import "fmt"

// ErrConnectionClosedByServer is returned when the server closes the websocket
type ErrConnectionClosedByServer struct {
	Reason string
}

func (e *ErrConnectionClosedByServer) Error() string {
	if e.Reason == "" {
		return "connection closed by server"
	}
	return fmt.Sprintf("connection closed by server: %s", e.Reason)
}

// ErrConnectionClosedByClient is returned when the websocket is closed locally
type ErrConnectionClosedByClient struct{}

func (e *ErrConnectionClosedByClient) Error() string {
	return "connection closed by client"
}
