// dispatch.go reports which AES execution path this process selected:
// the portable table-driven implementation in aes256.go, or the host CPU's
// hardware-accelerated AES instructions. Adapted from the teacher's
// hsm-integration.go (which reported on HSM key-custody state) — repointed
// at the one external hardware boundary a stateless hashing primitive
// actually touches: AES-NI/ARMv8 Crypto Extensions support (spec.md §4.E,
// "Implementations MAY dispatch between a portable table-driven path and a
// hardware-accelerated path; dispatch MUST be transparent to callers").
package aescore

import "golang.org/x/sys/cpu"

// HardwarePath names the AES execution path detected on this CPU.
type HardwarePath string

const (
	// PathPortable means no hardware AES acceleration was detected; the
	// table-driven SubBytes/ShiftRows/MixColumns path in this package runs
	// the hot loop.
	PathPortable HardwarePath = "portable-table"
	// PathHardwareAMD64 means the host advertises AES-NI (x86/amd64).
	PathHardwareAMD64 HardwarePath = "hardware-aes-ni"
	// PathHardwareARM64 means the host advertises the ARMv8 Crypto
	// Extensions AES instructions.
	PathHardwareARM64 HardwarePath = "hardware-armv8-aes"
)

// DetectHardwarePath reports which AES path this process would prefer,
// purely for diagnostics — EncRound and Encrypt256 always run the portable
// path in this implementation (no assembly intrinsics are wired in), so
// this never changes observable output, only what the CLI reports
// (spec.md §4.E: "dispatch MUST be transparent to callers").
func DetectHardwarePath() HardwarePath {
	switch {
	case cpu.X86.HasAES:
		return PathHardwareAMD64
	case cpu.ARM64.HasAES:
		return PathHardwareARM64
	default:
		return PathPortable
	}
}
