package catalog

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/shopspring/decimal"
	"github.com/zclconf/go-cty/cty"

	"prepstock/core/types"
	"prepstock/internal/errors"
)

// Overlay files declare catalog entries as HCL item blocks:
//
//	item "iodine-tablets" {
//	  name              = "Iodine tablets"
//	  category          = "medical"
//	  base_quantity     = 1
//	  unit              = "packs"
//	  scale_with_people = true
//	}
//
// An overlay entry whose id exists in the base catalog replaces it; new ids
// append in file order.

var overlaySchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "item", LabelNames: []string{"id"}},
	},
}

var itemSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "name", Required: true},
		{Name: "category", Required: true},
		{Name: "base_quantity", Required: true},
		{Name: "unit", Required: true},
		{Name: "scale_with_people"},
		{Name: "scale_with_days"},
		{Name: "scale_with_pets"},
		{Name: "requires_freezer"},
		{Name: "calories_per_unit"},
		{Name: "water_liters_per_unit"},
	},
}

// LoadOverlay parses one overlay file into catalog entries
func LoadOverlay(path string) (types.Catalog, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, errors.Parsing(fmt.Sprintf("parsing catalog overlay %s", path), diags)
	}

	content, diags := file.Body.Content(overlaySchema)
	if diags.HasErrors() {
		return nil, errors.Parsing(fmt.Sprintf("reading catalog overlay %s", path), diags)
	}

	var entries types.Catalog
	for _, block := range content.Blocks {
		entry, err := decodeItem(block)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// Merge applies overlay entries over a base catalog: matching ids replace in
// place, new ids append. The base order is preserved because it is the
// shortage tie-break.
func Merge(base, overlay types.Catalog) types.Catalog {
	merged := make(types.Catalog, len(base))
	copy(merged, base)

	index := make(map[string]int, len(merged))
	for i, entry := range merged {
		index[entry.ID] = i
	}

	for _, entry := range overlay {
		if i, ok := index[entry.ID]; ok {
			merged[i] = entry
		} else {
			index[entry.ID] = len(merged)
			merged = append(merged, entry)
		}
	}
	return merged
}

// Effective builds the validated catalog the engine runs against: the
// built-in table with any overlay files merged over it. A broken overlay
// fails the whole load; it never half-applies.
func Effective(overlayPaths []string) (types.Catalog, error) {
	merged := Standard()
	for _, path := range overlayPaths {
		overlay, err := LoadOverlay(path)
		if err != nil {
			return nil, err
		}
		merged = Merge(merged, overlay)
	}
	if err := Validate(merged); err != nil {
		return nil, err
	}
	return merged, nil
}

func decodeItem(block *hcl.Block) (types.RecommendedItem, error) {
	entry := types.RecommendedItem{ID: block.Labels[0]}

	content, diags := block.Body.Content(itemSchema)
	if diags.HasErrors() {
		return entry, errors.Parsing(fmt.Sprintf("item %q", entry.ID), diags)
	}

	for name, attr := range content.Attributes {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return entry, errors.Parsing(fmt.Sprintf("item %q attribute %q", entry.ID, name), diags)
		}

		var err error
		switch name {
		case "name":
			err = asString(val, &entry.Name)
		case "category":
			var s string
			if err = asString(val, &s); err == nil {
				entry.Category = types.CategoryID(s)
			}
		case "unit":
			var s string
			if err = asString(val, &s); err == nil {
				entry.Unit = types.Unit(s)
			}
		case "base_quantity":
			err = asDecimal(val, &entry.BaseQuantity)
		case "calories_per_unit":
			err = asDecimal(val, &entry.CaloriesPerUnit)
		case "water_liters_per_unit":
			err = asDecimal(val, &entry.WaterLitersPerUnit)
		case "scale_with_people":
			err = asBool(val, &entry.ScaleWithPeople)
		case "scale_with_days":
			err = asBool(val, &entry.ScaleWithDays)
		case "scale_with_pets":
			err = asBool(val, &entry.ScaleWithPets)
		case "requires_freezer":
			err = asBool(val, &entry.RequiresFreezer)
		}
		if err != nil {
			return entry, errors.Newf(errors.TypeParsing, "item %q attribute %q: %v", entry.ID, name, err)
		}
	}
	return entry, nil
}

func asString(val cty.Value, dst *string) error {
	if val.Type() != cty.String {
		return fmt.Errorf("expected string, got %s", val.Type().FriendlyName())
	}
	*dst = val.AsString()
	return nil
}

func asBool(val cty.Value, dst *bool) error {
	if val.Type() != cty.Bool {
		return fmt.Errorf("expected bool, got %s", val.Type().FriendlyName())
	}
	*dst = val.True()
	return nil
}

func asDecimal(val cty.Value, dst *decimal.Decimal) error {
	if val.Type() != cty.Number {
		return fmt.Errorf("expected number, got %s", val.Type().FriendlyName())
	}
	d, err := decimal.NewFromString(val.AsBigFloat().Text('f', -1))
	if err != nil {
		return err
	}
	*dst = d
	return nil
}
