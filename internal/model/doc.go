package model

// Package model defines the domain data used across the app: quality
// constraints, download requests, the single download state and the typed
// messages a worker sends back to the UI goroutine.
