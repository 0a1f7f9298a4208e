package hclmanifest

import "github.com/hashicorp/hcl/v2"

// fileRoot decodes every top-level block of a manifest file.
type fileRoot struct {
	Components []*Component `hcl:"component,block"`
	Remain     hcl.Body     `hcl:",remain"`
}

// Component is the HCL schema of a `component` block.
type Component struct {
	Name       string         `hcl:"name,label"`
	DependsOn  []string       `hcl:"depends_on,optional"`
	Attributes hcl.Expression `hcl:"attributes,optional"`
}
