// Command stressgen generates the component fleet of cmd/table-stress.
// Regenerate with:
//
//	go run ./cmd/stressgen -count 12 -out cmd/table-stress/components_generated.go
package main

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"os"
	"text/template"

	"golang.org/x/tools/imports"
)

// shape describes one of the field layouts the generated components cycle
// through, so the fleet covers small, padded and bulky payloads.
type shape struct {
	Fields string
	Fill   string
}

var shapes = []shape{
	{
		Fields: "X, Y float32",
		Fill:   "return %s{X: rng.Float32(), Y: rng.Float32()}",
	},
	{
		Fields: "X, Y, Z float32\n\tFlags   uint32",
		Fill:   "return %s{X: rng.Float32(), Y: rng.Float32(), Z: rng.Float32(), Flags: rng.Uint32()}",
	},
	{
		Fields: "M [16]float32",
		Fill:   "var c %s\n\tfor i := range c.M {\n\t\tc.M[i] = rng.Float32()\n\t}\n\treturn c",
	},
	{
		Fields: "ID     uint32\n\tWeight float64",
		Fill:   "return %s{ID: rng.Uint32(), Weight: rng.Float64()}",
	},
}

type component struct {
	Name   string
	Fields string
	Fill   string
}

const fileTemplate = `// Code generated by stressgen. DO NOT EDIT.

package main

import (
	"math/rand"
)

const componentCount = {{len .}}

{{range . -}}
type {{.Name}} struct {
	{{.Fields}}
}

func fill{{.Name}}(rng *rand.Rand) {{.Name}} {
	{{.Fill}}
}

{{end -}}
// NewGeneratedTables builds one dense and one stable table per generated
// component type.
func NewGeneratedTables() []StressTable {
	return []StressTable{
		{{- range .}}
		newDenseStress[{{.Name}}]("dense/{{.Name}}", fill{{.Name}}),
		newStableStress[{{.Name}}]("stable/{{.Name}}", fill{{.Name}}),
		{{- end}}
	}
}
`

func main() {
	count := flag.Int("count", 12, "Number of component types to generate.")
	out := flag.String("out", "cmd/table-stress/components_generated.go", "Output file path.")
	flag.Parse()

	components := make([]component, 0, *count)
	for i := 0; i < *count; i++ {
		name := fmt.Sprintf("StressComponent%02d", i)
		s := shapes[i%len(shapes)]
		components = append(components, component{
			Name:   name,
			Fields: s.Fields,
			Fill:   fmt.Sprintf(s.Fill, name),
		})
	}

	var buf bytes.Buffer
	tmpl := template.Must(template.New("components").Parse(fileTemplate))
	if err := tmpl.Execute(&buf, components); err != nil {
		log.Fatalf("failed to render template: %v", err)
	}

	// imports.Process both formats the output and prunes the import
	// block when a shape set does not need math/rand
	formatted, err := imports.Process(*out, buf.Bytes(), nil)
	if err != nil {
		log.Fatalf("generated code does not parse: %v", err)
	}

	if err := os.WriteFile(*out, formatted, 0o644); err != nil {
		log.Fatalf("failed to write %s: %v", *out, err)
	}
	log.Printf("wrote %d component types to %s", *count, *out)
}
