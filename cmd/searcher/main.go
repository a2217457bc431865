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


package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/poiesic/lexindex"
	"github.com/poiesic/lexindex/core"
)

func init() {
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(handler))
}

func main() {
	lib, err := lexindex.NewLibrary("./lexindex_db")
	if err != nil {
		panic(err)
	}
	defer lib.Close()

	retriever, err := lib.NewRetriever("corpus.index", "metadata.json")
	if err != nil {
		panic(err)
	}

	ctx := context.Background()
	var neighbors []core.Neighbor
	if len(os.Args) > 1 {
		neighbors, err = retriever.Search(ctx, strings.Join(os.Args[1:], " "), 5)
	} else {
		neighbors, err = retriever.Search(ctx, "breach of contract", 5)
	}
	if err != nil {
		panic(err)
	}

	fmt.Printf("Found %d hits\n", len(neighbors))
	for i, hit := range neighbors {
		fmt.Printf("%d: %s (%d)[%0.3f]\n", i, hit.Source, hit.Id, hit.Distance)
	}
}
