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


package ingestion

import "errors"

var (
	ErrInvalidChunking   = errors.New("chunk size must be greater than overlap")
	ErrNoDocuments       = errors.New("no documents found under corpus root")
	ErrEmbedFailed       = errors.New("embedding batch failed")
	ErrEmbedderRequired  = errors.New("embedder is required")
	ErrExtractorRequired = errors.New("extractor is required")
	ErrWalkerRequired    = errors.New("walker is required")
)
