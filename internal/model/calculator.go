package model

import "sort"

// CubeTypeKey identifies reinforcement cubes on part lists.
const CubeTypeKey = "cube"

// BOMLine is one row of a bill of materials.
type BOMLine struct {
	TypeKey   string  `json:"type"`
	Name      string  `json:"name"`
	Count     int     `json:"count"`
	UnitPrice float64 `json:"unit_price"`
	Subtotal  float64 `json:"subtotal"`
}

// BOM is the printable part list of a crate design.
type BOM struct {
	Lines []BOMLine `json:"lines"`
	Total float64   `json:"total"`
}

// BillOfMaterials groups a design's boards by type in catalog order and
// appends the reinforcement cubes. Keys the catalog does not know are listed
// after the catalog entries at zero price.
func BillOfMaterials(design CrateDesign, catalog Catalog) BOM {
	var bom BOM
	listed := make(map[string]bool)

	for _, bt := range catalog.Boards {
		count := design.BoardTypeCounts[bt.Key]
		if count == 0 {
			continue
		}
		listed[bt.Key] = true
		bom.add(BOMLine{TypeKey: bt.Key, Name: bt.Name(), Count: count, UnitPrice: bt.Price})
	}

	for _, key := range sortedKeys(design.BoardTypeCounts) {
		if listed[key] || design.BoardTypeCounts[key] == 0 {
			continue
		}
		bom.add(BOMLine{TypeKey: key, Name: BoardType{Key: key}.Name(), Count: design.BoardTypeCounts[key]})
	}

	if design.CubeCount > 0 {
		bom.add(BOMLine{TypeKey: CubeTypeKey, Name: "Cube", Count: design.CubeCount, UnitPrice: catalog.CubePrice})
	}
	return bom
}

func (b *BOM) add(line BOMLine) {
	line.Subtotal = line.UnitPrice * float64(line.Count)
	b.Lines = append(b.Lines, line)
	b.Total += line.Subtotal
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
