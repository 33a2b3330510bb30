package entity

// ConnectivityStatus is the process-wide backend connectivity flag,
// re-derived on every liveness probe cycle.
type ConnectivityStatus string

const (
	StatusChecking     ConnectivityStatus = "checking"
	StatusConnected    ConnectivityStatus = "connected"
	StatusDisconnected ConnectivityStatus = "disconnected"
)
