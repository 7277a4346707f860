package yaml

import (
	"fmt"
	"testing"

	yamlv3 "gopkg.in/yaml.v3"
)

// Comparison benchmarks against gopkg.in/yaml.v3 (industry standard)
// NOTE: yaml.v3 is a test-only dependency, NOT included in releases

var benchDoc = `name: BenchmarkTest
version: "1.0.0"
enabled: true
count: 42
tags:
  - alpha
  - beta
limits: {cpu: 4, memory: 2048}
`

func BenchmarkParse(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Parse(benchDoc); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkParseToInterface(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		node, err := Parse(benchDoc)
		if err != nil {
			b.Fatal(err)
		}
		_ = NodeToInterface(node)
	}
}

func BenchmarkYAMLv3_Unmarshal(b *testing.B) {
	data := []byte(benchDoc)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var out map[string]interface{}
		if err := yamlv3.Unmarshal(data, &out); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkParse_DeepNesting(b *testing.B) {
	doc := "a:\n  b:\n    c:\n      d:\n        - 1\n        - 2\n        - [3, {e: 4}]\n"
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Parse(doc); err != nil {
			b.Fatal(err)
		}
	}
}

// TestComparisonWithYAMLv3 cross-checks a handful of documents against
// yaml.v3's reading of the same input.
func TestComparisonWithYAMLv3(t *testing.T) {
	docs := []string{
		"a: 1\nb: 2\n",
		"list:\n  - x\n  - y\n",
		"{a: 1, b: [2, 3]}",
		"nested:\n  inner:\n    leaf: true\n",
	}
	for _, doc := range docs {
		node, err := Parse(doc)
		if err != nil {
			t.Fatalf("Parse(%q): %v", doc, err)
		}
		ours := NodeToInterface(node)

		var theirs map[string]interface{}
		if err := yamlv3.Unmarshal([]byte(doc), &theirs); err != nil {
			t.Fatalf("yaml.v3 Unmarshal(%q): %v", doc, err)
		}
		assertSameShape(t, doc, ours, theirs)
	}
}

// assertSameShape compares structures loosely: yaml.v3 decodes integers as
// int while we produce int64, so numbers are compared through their string
// form.
func assertSameShape(t *testing.T, doc string, ours, theirs interface{}) {
	t.Helper()
	switch o := ours.(type) {
	case map[string]interface{}:
		th, ok := theirs.(map[string]interface{})
		if !ok {
			t.Errorf("doc %q: mapping vs %T", doc, theirs)
			return
		}
		if len(o) != len(th) {
			t.Errorf("doc %q: %d keys vs %d", doc, len(o), len(th))
			return
		}
		for k, v := range o {
			assertSameShape(t, doc, v, th[k])
		}
	case []interface{}:
		th, ok := theirs.([]interface{})
		if !ok || len(o) != len(th) {
			t.Errorf("doc %q: sequence mismatch", doc)
			return
		}
		for i := range o {
			assertSameShape(t, doc, o[i], th[i])
		}
	default:
		if asString(ours) != asString(theirs) {
			t.Errorf("doc %q: scalar %v vs %v", doc, ours, theirs)
		}
	}
}

func asString(v interface{}) string {
	return fmt.Sprintf("%v", v)
}
