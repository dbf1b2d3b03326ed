// SPDX-License-Identifier: AGPL-3.0-only
// Copyright (c) 2026 MoonPulse
// Source: github.com/moonpulse/wavedoc

package wavedoc

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// fixtureTree builds the virtual tree for one top-level source segment with
// the given published files below it. Keys are slash paths relative to the
// top-level folder; values are class names.
func fixtureTree(t *testing.T, topSegment string, files map[string]string) *FolderNode {
	t.Helper()

	root := newFolderNode("")
	top := newFolderNode(topSegment)
	root.Children[topSegment] = top

	for relPath, className := range files {
		segments := strings.Split(relPath, "/")
		folder := top
		for _, segment := range segments[:len(segments)-1] {
			child, err := getOrCreateFolder(folder, segment)
			if err != nil {
				t.Fatalf("build fixture tree: %v", err)
			}

			folder = child
		}

		name := segments[len(segments)-1]
		folder.Children[name] = &FileNode{
			Name:      name,
			ClassName: className,
			FullPath:  topSegment + "/" + relPath,
			Document:  "# " + className + "\n",
		}
	}

	return root
}

func readOutputFile(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}

	return string(data)
}

func TestMaterializeHoistsIndexDocuments(t *testing.T) {
	t.Parallel()

	outputRoot := t.TempDir()
	root := fixtureTree(t, "root", map[string]string{
		"Foo/init.luau": "Foo",
		"Foo/Bar.luau":  "Bar",
	})

	m := &Materializer{OutputRoot: outputRoot, Logger: discardLogger()}
	manifests, err := m.Materialize(root)
	if err != nil {
		t.Fatalf("Materialize: %v", err)
	}

	// The index document is published one level up, under the folder's name.
	hoisted := filepath.Join(outputRoot, "Packages", "Foo.mdx")
	if got := readOutputFile(t, hoisted); got != "# Foo\n" {
		t.Fatalf("hoisted document = %q", got)
	}

	// Plain documents stay inside their folder.
	nested := filepath.Join(outputRoot, "Packages", "Foo", "Bar.mdx")
	if got := readOutputFile(t, nested); got != "# Bar\n" {
		t.Fatalf("nested document = %q", got)
	}

	packagesDir := filepath.Join(outputRoot, "Packages")
	if got := manifests[packagesDir]["Foo"]; got != "Foo" {
		t.Fatalf("packages manifest entry = %q, want Foo", got)
	}

	fooDir := filepath.Join(packagesDir, "Foo")
	if got := manifests[fooDir]["Bar"]; got != "Bar" {
		t.Fatalf("folder manifest entry = %q, want Bar", got)
	}
}

func TestMaterializeMapsTopLevelSegmentToPackagesDir(t *testing.T) {
	t.Parallel()

	outputRoot := t.TempDir()
	root := fixtureTree(t, "ServerScriptService", map[string]string{
		"Queue/init.luau": "Queue",
	})

	m := &Materializer{OutputRoot: outputRoot, Logger: discardLogger()}
	if _, err := m.Materialize(root); err != nil {
		t.Fatalf("Materialize: %v", err)
	}

	// The source's top-level segment never appears in output paths.
	if _, err := os.Stat(filepath.Join(outputRoot, "ServerScriptService")); !os.IsNotExist(err) {
		t.Fatalf("source top-level segment leaked into output: %v", err)
	}

	readOutputFile(t, filepath.Join(outputRoot, "Packages", "Queue.mdx"))
}

func TestMaterializeHonorsPackagesDirOverride(t *testing.T) {
	t.Parallel()

	outputRoot := t.TempDir()
	root := fixtureTree(t, "root", map[string]string{
		"Foo/init.luau": "Foo",
	})

	m := &Materializer{OutputRoot: outputRoot, PackagesDirName: "modules", Logger: discardLogger()}
	if _, err := m.Materialize(root); err != nil {
		t.Fatalf("Materialize: %v", err)
	}

	readOutputFile(t, filepath.Join(outputRoot, "modules", "Foo.mdx"))
}

func TestMaterializeEncodesUnsafeFileStems(t *testing.T) {
	t.Parallel()

	outputRoot := t.TempDir()
	root := fixtureTree(t, "root", map[string]string{
		"Foo/My Class.luau": "MyClass",
	})

	m := &Materializer{OutputRoot: outputRoot, Logger: discardLogger()}
	manifests, err := m.Materialize(root)
	if err != nil {
		t.Fatalf("Materialize: %v", err)
	}

	encoded := filepath.Join(outputRoot, "Packages", "Foo", "My%20Class.mdx")
	readOutputFile(t, encoded)

	fooDir := filepath.Join(outputRoot, "Packages", "Foo")
	if got := manifests[fooDir]["My%20Class"]; got != "MyClass" {
		t.Fatalf("manifest keyed by %v, want encoded stem", manifests[fooDir])
	}
}

func TestMaterializeCreatesAllFoldersBeforeAnyFile(t *testing.T) {
	t.Parallel()

	root := fixtureTree(t, "root", map[string]string{
		"Foo/init.luau":     "Foo",
		"Foo/Bar.luau":      "Bar",
		"Zoo/Deep/Leaf.lua": "Leaf",
	})

	var ops []string
	m := &Materializer{
		OutputRoot: "out",
		Logger:     discardLogger(),
		MkdirAll: func(path string, mode os.FileMode) error {
			ops = append(ops, "mkdir")
			return nil
		},
		WriteFile: func(path string, data []byte, mode os.FileMode) error {
			ops = append(ops, "write")
			return nil
		},
	}

	if _, err := m.Materialize(root); err != nil {
		t.Fatalf("Materialize: %v", err)
	}

	sawWrite := false
	for _, op := range ops {
		if op == "write" {
			sawWrite = true
			continue
		}

		if sawWrite {
			t.Fatalf("directory created after a file write, ops: %v", ops)
		}
	}

	if !sawWrite {
		t.Fatal("no file writes recorded")
	}
}

func TestMaterializeIsDeterministicAndRepeatable(t *testing.T) {
	t.Parallel()

	root := fixtureTree(t, "root", map[string]string{
		"A/init.luau": "A",
		"B/init.luau": "B",
		"C/Deep.luau": "Deep",
	})

	runOnce := func() []string {
		var paths []string
		m := &Materializer{
			OutputRoot: "out",
			Logger:     discardLogger(),
			MkdirAll:   func(path string, mode os.FileMode) error { return nil },
			WriteFile: func(path string, data []byte, mode os.FileMode) error {
				paths = append(paths, path)
				return nil
			},
		}

		if _, err := m.Materialize(root); err != nil {
			t.Fatalf("Materialize: %v", err)
		}

		return paths
	}

	first := strings.Join(runOnce(), "\n")
	for i := 0; i < 8; i++ {
		if again := strings.Join(runOnce(), "\n"); again != first {
			t.Fatalf("write order changed between runs:\n%s\nvs\n%s", first, again)
		}
	}
}

func TestMaterializeSecondRunOverwritesCleanly(t *testing.T) {
	t.Parallel()

	outputRoot := t.TempDir()
	root := fixtureTree(t, "root", map[string]string{
		"Foo/init.luau": "Foo",
	})

	m := &Materializer{OutputRoot: outputRoot, Logger: discardLogger()}
	for i := 0; i < 2; i++ {
		manifests, err := m.Materialize(root)
		if err != nil {
			t.Fatalf("Materialize: %v", err)
		}

		if err := m.WriteManifests(manifests); err != nil {
			t.Fatalf("WriteManifests: %v", err)
		}
	}

	readOutputFile(t, filepath.Join(outputRoot, "Packages", "Foo.mdx"))
	readOutputFile(t, filepath.Join(outputRoot, "Packages", manifestFileName))
}

func TestWriteManifestsFlushesMetaFiles(t *testing.T) {
	t.Parallel()

	outputRoot := t.TempDir()
	root := fixtureTree(t, "root", map[string]string{
		"Foo/init.luau": "Foo",
		"Foo/Bar.luau":  "Bar",
	})

	m := &Materializer{OutputRoot: outputRoot, Logger: discardLogger()}
	manifests, err := m.Materialize(root)
	if err != nil {
		t.Fatalf("Materialize: %v", err)
	}

	if err := m.WriteManifests(manifests); err != nil {
		t.Fatalf("WriteManifests: %v", err)
	}

	packagesMeta := readOutputFile(t, filepath.Join(outputRoot, "Packages", manifestFileName))
	if want := "{\n  \"Foo\": \"Foo\"\n}\n"; packagesMeta != want {
		t.Fatalf("packages manifest = %q, want %q", packagesMeta, want)
	}

	fooMeta := readOutputFile(t, filepath.Join(outputRoot, "Packages", "Foo", manifestFileName))
	if want := "{\n  \"Bar\": \"Bar\"\n}\n"; fooMeta != want {
		t.Fatalf("folder manifest = %q, want %q", fooMeta, want)
	}
}
