// mkfixture renders .out JSON fixtures from a YAML scenario file, for local
// pipeline runs and manual testing against a real bucket.
// Usage: go run ./cmd/mkfixture --scenarios testdata/scenarios.yaml --out testdata/out
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// scenario is one named inference output. The body is arbitrary YAML that
// becomes the .out JSON verbatim, so fixtures can carry the same malformed
// shapes the processor tolerates in production.
type scenario struct {
	Name string         `yaml:"name"`
	Body map[string]any `yaml:"body"`
}

func main() {
	scenarioPath := flag.String("scenarios", "testdata/scenarios.yaml", "scenario YAML file")
	outDir := flag.String("out", "testdata/out", "output directory for .out files")
	list := flag.Bool("list", false, "only list scenario names, don't write")
	flag.Parse()

	data, err := os.ReadFile(*scenarioPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read scenarios: %v\n", err)
		os.Exit(1)
	}

	var scenarios []scenario
	if err := yaml.Unmarshal(data, &scenarios); err != nil {
		fmt.Fprintf(os.Stderr, "parse scenarios: %v\n", err)
		os.Exit(1)
	}

	if *list {
		for _, sc := range scenarios {
			fmt.Println(sc.Name)
		}
		return
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "create output dir: %v\n", err)
		os.Exit(1)
	}

	written := 0
	for _, sc := range scenarios {
		if sc.Name == "" {
			fmt.Fprintln(os.Stderr, "skipping scenario without a name")
			continue
		}
		body, err := json.MarshalIndent(sc.Body, "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "marshal %s: %v\n", sc.Name, err)
			os.Exit(1)
		}
		path := filepath.Join(*outDir, sc.Name+".out")
		if err := os.WriteFile(path, body, 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "write %s: %v\n", path, err)
			os.Exit(1)
		}
		written++
	}

	fmt.Printf("Wrote %d fixture(s) to %s\n", written, *outDir)
}
