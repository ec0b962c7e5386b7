package treestruct

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strconv"
	"testing"
)

func TestToDictChain(t *testing.T) {
	nodes := chain(1, 2, 3)

	// toDict works from any node in the structure: it starts at the roots.
	for _, start := range nodes {
		dicts := ToDict(start, Identity[int])
		if len(dicts) != 1 {
			t.Fatalf("got %d records, want 1", len(dicts))
		}

		data, err := json.Marshal(dicts)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		want := `[{"data":1,"children":[{"data":2,"children":[{"data":3,"children":[]}]}]}]`
		if string(data) != want {
			t.Errorf("json = %s, want %s", data, want)
		}
	}
}

func TestToDictConverter(t *testing.T) {
	nodes := chain(1, 2)
	dicts := ToDict(nodes[0], func(v int) string { return strconv.Itoa(v * 10) })

	if dicts[0].Data != "10" || dicts[0].Children[0].Data != "20" {
		t.Errorf("converted dicts = %+v", dicts)
	}
}

func TestToDictLoneNode(t *testing.T) {
	n := New(42, nil, nil)
	dicts := ToDict(n, Identity[int])
	if len(dicts) != 1 || dicts[0].Data != 42 || len(dicts[0].Children) != 0 {
		t.Errorf("dicts = %+v, want single empty record", dicts)
	}
}

func TestDictMarshalEmptyChildren(t *testing.T) {
	data, err := json.Marshal(Dict[int]{Data: 1})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if want := `{"data":1,"children":[]}`; string(data) != want {
		t.Errorf("json = %s, want %s", data, want)
	}
}

func TestFromDict(t *testing.T) {
	var d Dict[int]
	input := `{"data":1,"children":[{"data":2,"children":[{"data":3,"children":[]}]}]}`
	if err := json.Unmarshal([]byte(input), &d); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	root := FromDict(d, Identity[int])
	var got []int
	root.DepthFirst(Forward, func(n *Node[int]) bool {
		got = append(got, n.Data)
		return true
	})
	if !equalInts(got, []int{1, 2, 3}) {
		t.Errorf("structure = %v, want [1 2 3]", got)
	}
}

func TestRoundTrip(t *testing.T) {
	nodes := chain(1, 2, 3)

	dicts := ToDict(nodes[0], Identity[int])
	rebuilt := FromDict(dicts[0], Identity[int])

	var got []int
	rebuilt.DepthFirst(Forward, func(n *Node[int]) bool {
		got = append(got, n.Data)
		// Round-tripping creates new identities.
		for _, orig := range nodes {
			if n == orig {
				t.Error("round trip should not share nodes with the original")
			}
		}
		return true
	})
	if !equalInts(got, []int{1, 2, 3}) {
		t.Errorf("round trip = %v, want [1 2 3]", got)
	}
}

func TestMarshalUnmarshal(t *testing.T) {
	nodes := chain(1, 2)

	data, err := Marshal(nodes[0])
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	roots, err := Unmarshal[int](data)
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if len(roots) != 1 || roots[0].Data != 1 {
		t.Fatalf("roots = %v", roots)
	}
	child, err := roots[0].Children().One(true)
	if err != nil || child.Data != 2 {
		t.Errorf("child = %v, %v", child, err)
	}
}

func TestWriteRead(t *testing.T) {
	nodes := chain(1, 2, 3)

	var buf bytes.Buffer
	if err := Write(nodes[0], &buf); err != nil {
		t.Fatalf("Write: %v", err)
	}
	roots, err := Read[int](&buf)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(roots) != 1 {
		t.Fatalf("got %d roots, want 1", len(roots))
	}
	if leaves := roots[0].Leaves(); len(leaves) != 1 || leaves[0].Data != 3 {
		t.Errorf("leaves = %v", payloads(leaves))
	}
}

func TestWriteReadFile(t *testing.T) {
	nodes := chain(1, 2)
	path := filepath.Join(t.TempDir(), "forest.json")

	if err := WriteFile(nodes[0], path); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	roots, err := ReadFile[int](path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if len(roots) != 1 || roots[0].Data != 1 {
		t.Errorf("roots = %v", roots)
	}
}

func TestReadFileMissing(t *testing.T) {
	if _, err := ReadFile[int](filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Error("expected error for missing file")
	}
}
