//go:build !amd64 && !386

package render

// resetFPEnv is a no-op on architectures without x87 state. Only the x87
// status word carries the sticky flag that survives across threads.
func resetFPEnv() {}
