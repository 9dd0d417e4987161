//go:build amd64 || 386

package render

// resetFPEnv reinitializes the x87 floating-point unit, clearing sticky
// exception flags the rasterizer leaves behind. Implemented in fpenv_x86.s.
func resetFPEnv()
