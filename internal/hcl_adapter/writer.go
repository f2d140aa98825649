package hcl_adapter

import (
	"slices"

	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/specialistvlad/gamebook/internal/storage"
	"github.com/zclconf/go-cty/cty"
)

// Encode writes one node block per record, sorted by identifier.
func (Codec) Encode(records map[string]storage.Record) ([]byte, error) {
	ids := make([]string, 0, len(records))
	for id := range records {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	f := hclwrite.NewEmptyFile()
	body := f.Body()
	for i, id := range ids {
		b, err := translateRecord(id, records[id])
		if err != nil {
			return nil, err
		}
		if i > 0 {
			body.AppendNewline()
		}
		writeNode(body, b)
	}
	return hclwrite.Format(f.Bytes()), nil
}

func writeNode(body *hclwrite.Body, b *NodeBlock) {
	nb := body.AppendNewBlock("node", []string{b.ID}).Body()
	nb.SetAttributeValue("prompt", cty.StringVal(b.Prompt))
	for _, c := range b.Choices {
		cb := nb.AppendNewBlock("choice", nil).Body()
		cb.SetAttributeValue("message", cty.StringVal(c.Message))
		cb.SetAttributeValue("target", cty.StringVal(c.Target))
	}
}
