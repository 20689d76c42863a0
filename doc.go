// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/schemaview

/*
Package schemaview renders a JSON Schema document side by side with a JSON
data document.

The schema is walked depth-first into a tree of Block values: object nodes
with properties nest their children one level deeper, array nodes show their
item type, every other typed node is a scalar leaf. Each block is indented by
20 units per level. Object members keep the order they have in the source
document.

The data document is held by a ResultContainer and is only ever replaced as
a whole.

Render from bytes:

	page, err := schemaview.Render(schemaBytes, dataBytes, schemaview.Options{
		Format:     schemaview.FormatMarkdown,
		DataFormat: schemaview.DataFormatYAML,
	})
	if err != nil {
		return err
	}

	fmt.Print(page)

Render one schema node:

	doc, err := schemaview.ParseSchema(schemaBytes, schemaview.ParseOptions{})
	if err != nil {
		return err
	}

	for _, property := range doc.Properties {
		block := schemaview.RenderProperty(property.Key, property.Node, 0)
		fmt.Println(block.Heading())
	}

Replace displayed data:

	viewer, err := schemaview.NewViewer(doc, result, schemaview.Options{Format: schemaview.FormatHTML})
	if err != nil {
		return err
	}

	unsubscribe := viewer.Results().Subscribe(func(next schemaview.AnalysisResult) {
		_ = viewer.Render(os.Stdout)
	})
	defer unsubscribe()

	viewer.Results().OnResultChange()(updated)

Generate example data from schema:

	data, err := schemaview.GenerateExampleYAML(doc, schemaview.ExampleModeRequired)
	if err != nil {
		return err
	}

	fmt.Print(string(data))
*/
package schemaview
