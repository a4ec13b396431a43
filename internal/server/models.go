package server

import "pdbctl/internal/invocation"

// ResolveRequest asks for project root and venv details around a path
type ResolveRequest struct {
	Path string `json:"path"`
}

// ResolveResponse carries the resolved project environment
type ResolveResponse struct {
	Path        string `json:"path"`
	ProjectRoot string `json:"project_root"`
	Python      string `json:"python,omitempty"`
	BinDir      string `json:"bin_dir,omitempty"`
}

// ArgumentsRequest asks for a raw argument string to be sanitized
type ArgumentsRequest struct {
	Arguments string `json:"arguments"`
}

// ArgumentsResponse carries the sanitized tokens
type ArgumentsResponse struct {
	Tokens []string `json:"tokens"`
}

// InvocationRequest asks for a full debugger invocation to be constructed
type InvocationRequest struct {
	Path      string `json:"path"`
	Script    string `json:"script"`
	Arguments string `json:"arguments"`
}

// InvocationResponse carries the constructed invocation
type InvocationResponse struct {
	Invocation *invocation.Invocation `json:"invocation"`
}

// HealthResponse reports server liveness
type HealthResponse struct {
	Status string `json:"status"`
	Uptime string `json:"uptime"`
}
