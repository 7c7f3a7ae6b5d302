// Copyright 2025 algosharp Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package algo

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"

	"golang.org/x/sys/cpu"
)

// VectorLevel is the widest vector extension the CPU reports. The algorithms
// do not depend on it; it is recorded in benchmark reports so that numbers
// from different machines can be told apart.
type VectorLevel int

const (
	// VectorNone indicates no known vector extension.
	VectorNone VectorLevel = iota

	// VectorSSE2 indicates SSE2 (x86-64 baseline).
	VectorSSE2

	// VectorAVX2 indicates AVX2 (256-bit).
	VectorAVX2

	// VectorAVX512 indicates AVX-512 foundation (512-bit).
	VectorAVX512

	// VectorNEON indicates ARM Advanced SIMD (128-bit).
	VectorNEON

	// VectorSVE indicates ARM SVE (scalable).
	VectorSVE
)

// String returns a human-readable name for the vector level.
func (v VectorLevel) String() string {
	switch v {
	case VectorNone:
		return "none"
	case VectorSSE2:
		return "sse2"
	case VectorAVX2:
		return "avx2"
	case VectorAVX512:
		return "avx512"
	case VectorNEON:
		return "neon"
	case VectorSVE:
		return "sve"
	default:
		return "unknown"
	}
}

// PlatformInfo describes the machine an algorithm runs on.
type PlatformInfo struct {
	OS         string
	Arch       string
	NumCPU     int
	GOMAXPROCS int
	Vector     VectorLevel
	// Features lists notable CPU features, e.g. "fma" or "popcnt".
	Features []string
	// Sequential is true when parallel algorithms are forced to run
	// sequentially, see SequentialOnly.
	Sequential bool
}

// String returns a single-line description, e.g.
// "linux/amd64 cpus=8 procs=8 vector=avx2 features=[fma popcnt]".
func (p PlatformInfo) String() string {
	s := fmt.Sprintf("%s/%s cpus=%d procs=%d vector=%s", p.OS, p.Arch, p.NumCPU, p.GOMAXPROCS, p.Vector)
	if len(p.Features) > 0 {
		s += " features=[" + strings.Join(p.Features, " ") + "]"
	}
	if p.Sequential {
		s += " sequential"
	}
	return s
}

// Platform detects the current platform.
func Platform() PlatformInfo {
	info := PlatformInfo{
		OS:         runtime.GOOS,
		Arch:       runtime.GOARCH,
		NumCPU:     runtime.NumCPU(),
		GOMAXPROCS: runtime.GOMAXPROCS(0),
		Sequential: SequentialOnly(),
	}

	switch runtime.GOARCH {
	case "amd64", "386":
		info.Vector = VectorSSE2
		if cpu.X86.HasAVX2 {
			info.Vector = VectorAVX2
		}
		if cpu.X86.HasAVX512 {
			info.Vector = VectorAVX512
		}
		for _, f := range []struct {
			name string
			has  bool
		}{
			{"fma", cpu.X86.HasFMA},
			{"bmi2", cpu.X86.HasBMI2},
			{"popcnt", cpu.X86.HasPOPCNT},
			{"sse4.2", cpu.X86.HasSSE42},
		} {
			if f.has {
				info.Features = append(info.Features, f.name)
			}
		}
	case "arm64":
		if cpu.ARM64.HasASIMD {
			info.Vector = VectorNEON
		}
		if cpu.ARM64.HasSVE {
			info.Vector = VectorSVE
		}
		if cpu.ARM64.HasATOMICS {
			info.Features = append(info.Features, "atomics")
		}
		if cpu.ARM64.HasCRC32 {
			info.Features = append(info.Features, "crc32")
		}
	}
	return info
}

// SequentialOnly checks if the ALGO_NO_PARALLEL environment variable is set.
// When set, parallel algorithms run on the calling goroutine only.
// This is useful for testing and for benchmarking against the sequential
// variants on the same code path.
func SequentialOnly() bool {
	val := os.Getenv("ALGO_NO_PARALLEL")
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}
