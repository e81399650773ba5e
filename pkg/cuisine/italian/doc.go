// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
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

// Package italian provides the Italian kitchen: Pasta, Pizza and Tiramisu.
//
// The package registers itself with the kitchen registry on import:
//
//	import _ "github.com/NVIDIA/bistro/pkg/cuisine/italian"
//
// Dishes can also be used directly. The zero value of every dish writes
// its preparation line to standard output:
//
//	italian.Pasta{}.Prepare()
//
// Set Out to capture the line instead:
//
//	rec := ticket.NewRecorder()
//	italian.Pizza{Out: rec}.Prepare()
package italian
