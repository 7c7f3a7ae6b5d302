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

// Command algobench times the sorts and the binary heap and prints a
// comparison table ordered by median time per call.
//
// Usage:
//
//	algobench sorts --size 10000 --times 20 --order random
//	algobench sorts --algorithms quick,merge,merge-parallel --duration 2s
//	algobench heap --size 100000
//	algobench platform
//
// Every flag can also be set from a config file (--config bench.yaml) or from
// an ALGOBENCH_* environment variable, e.g. ALGOBENCH_SIZE=5000 or
// ALGOBENCH_LOG_LEVEL=debug.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
