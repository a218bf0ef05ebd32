package svgflat

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestConvert(t *testing.T) {
	in := writeFile(t, "in.svg", colorDoc)
	out := filepath.Join(t.TempDir(), "out.json")

	regions, err := Convert(in, out, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if len(regions) != 5 {
		t.Fatalf("got %d regions, want 5", len(regions))
	}
	for i, r := range regions {
		if len(r.Contour) != 21 {
			t.Errorf("region %d: got %d points, want 21", i, len(r.Contour))
		}
	}

	first, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	decoded, err := ReadRegions(bytes.NewReader(first))
	if err != nil {
		t.Fatal(err)
	}
	diff(t, regions, decoded)

	// Converting again overwrites the file with identical contents.
	if err := os.WriteFile(out, []byte("stale"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Convert(in, out, Options{}); err != nil {
		t.Fatal(err)
	}
	second, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(first, second) {
		t.Error("repeated conversion produced different output")
	}
}

func TestConvertFailures(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.json")

	if _, err := Convert(filepath.Join(t.TempDir(), "missing.svg"), out, Options{}); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("got error %v, want fs.ErrNotExist", err)
	}

	bad := writeFile(t, "bad.svg", `<svg><path d="M0 0 Q1"/></svg>`)
	_, err := Convert(bad, out, Options{})
	asParseError(t, err)
	if _, err := os.Stat(out); !errors.Is(err, fs.ErrNotExist) {
		t.Error("failed conversion created the output file")
	}

	good := writeFile(t, "good.svg", colorDoc)
	if _, err := Convert(good, filepath.Join(t.TempDir(), "no", "such", "dir.json"), Options{}); err == nil {
		t.Error("expected error writing to a missing directory")
	}
}

func TestConvertEntities(t *testing.T) {
	in := writeFile(t, "in.svg", entityDoc)
	regions, err := Convert(in, filepath.Join(t.TempDir(), "out.json"), Options{})
	if err != nil {
		t.Fatal(err)
	}
	if len(regions) != 2 {
		t.Fatalf("got %d regions, want 2", len(regions))
	}
	diff(t, HexToRGB("#ff00aa"), regions[0].Color)
	diff(t, [2]float64{2, 2}, regions[1].Contour[20])
}

func TestConvertHugeArc(t *testing.T) {
	const doc = `<svg xmlns="http://www.w3.org/2000/svg">
<path d="M0 0 A1e200 1e200 0 0 1 10 0"/>
<path d="M0 0 A1e200 1e200 0 1 1 10 0"/>
</svg>`
	in := writeFile(t, "in.svg", doc)
	regions, err := Convert(in, filepath.Join(t.TempDir(), "out.json"), Options{})
	if err != nil {
		t.Fatal(err)
	}
	diff(t, [2]float64{5, 0}, regions[0].Contour[10])
}
