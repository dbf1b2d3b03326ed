// SPDX-License-Identifier: MIT
// Copyright (c) 2026 MoonPulse
// Source: github.com/moonpulse/wavedoc

/*
Package wavedoc converts extractor class descriptors into a tree of mdx
documentation pages plus per-folder navigation manifests.

The package consumes the JSON array produced by the doc-comment extractor,
renders one document per class, arranges documents into a virtual folder/file
tree keyed by source path, and materializes the tree onto the filesystem
together with one _meta.json manifest per folder and a generated landing page.

Decode descriptors and build the virtual tree:

	classes, err := wavedoc.DecodeClasses(extractorOutput)
	if err != nil {
		return err
	}

	root, count, err := wavedoc.BuildTree(classes, wavedoc.BuildOptions{})
	if err != nil {
		return err
	}

	fmt.Printf("rendered %d documents\n", count)

Materialize the tree and flush navigation manifests:

	materializer := &wavedoc.Materializer{OutputRoot: "pages"}
	manifests, err := materializer.Materialize(root)
	if err != nil {
		return err
	}

	if err := materializer.WriteManifests(manifests); err != nil {
		return err
	}

Generate the landing page:

	page, err := wavedoc.BuildIndexPage(root, wavedoc.IndexOptions{
		PackageIndexDir: "package-index",
	})
	if err != nil {
		return err
	}

	if err := wavedoc.WriteIndexPage("pages", page); err != nil {
		return err
	}

Render one class in isolation:

	document, err := wavedoc.RenderClass(classes[0], wavedoc.RenderOptions{
		WrapWidth: 100,
	})
	if err != nil {
		return err
	}

	fmt.Println(document)
*/
package wavedoc
