// Copyright 2025 Poiesic Systems
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


// Package vecstore implements the persisted artifacts of the corpus index:
// a flat vector index and its parallel metadata table.
//
// The flat index stores fixed-dimension float32 vectors in insertion order
// and answers exact squared-L2 nearest-neighbor queries by scanning every
// stored vector. No approximation is applied.
//
// The metadata table maps the stringified index position to the chunk it
// describes. Positional correspondence is the only linkage between the two
// artifacts: the vector at position i belongs to metadata entry i. The two
// artifacts are written as separate files with no transactional guarantee
// across them; a crash between the two writes leaves them inconsistent,
// which CheckCorrespondence detects at load time.
package vecstore
