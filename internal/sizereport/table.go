package sizereport

// Tree glyphs prefixing file rows.
const (
	BranchGlyph = "├─"
	LastGlyph   = "└─"
)

// TotalLabel names the combined row.
const TotalLabel = "Total"

// TableHeader is the header row of the size table.
var TableHeader = []string{"Bundle", "Original size", "Brotli size"}

// RowKind tells the console layer how to style a row.
type RowKind int

const (
	RowSeparator RowKind = iota
	RowBundle
	RowFile
	RowTotal
)

// TableRow is one display row: a label and the raw and compressed sizes.
type TableRow struct {
	Kind       RowKind
	Label      string
	Original   string
	Compressed string
}

// Cells returns the row as grid cells.
func (r TableRow) Cells() []string {
	return []string{r.Label, r.Original, r.Compressed}
}

// Table is the display grid of a report, header excluded.
type Table struct {
	Header []string
	Rows   []TableRow
}

// BuildTable lays out a report. Bundle rows are labelled with the package
// name ("pkg" for main, "pkg/name" otherwise), or the bare bundle name when
// pkgName is empty.
func BuildTable(report Report, pkgName string) Table {
	t := Table{Header: TableHeader}
	for _, b := range report {
		t.Rows = append(t.Rows, TableRow{Kind: RowSeparator})
		t.Rows = append(t.Rows, sizeRow(RowBundle, bundleLabel(b.Name, pkgName), b.Sizes))
		for i, f := range b.Files {
			glyph := BranchGlyph
			if i == len(b.Files)-1 {
				glyph = LastGlyph
			}
			t.Rows = append(t.Rows, sizeRow(RowFile, glyph+" "+f.Path, f.Sizes))
		}
	}
	if report.HasTotal() {
		t.Rows = append(t.Rows, TableRow{Kind: RowSeparator})
		t.Rows = append(t.Rows, sizeRow(RowTotal, TotalLabel, report.Total()))
	}
	return t
}

// Grid returns the header followed by every row as cells.
func (t Table) Grid() [][]string {
	grid := make([][]string, 0, len(t.Rows)+1)
	grid = append(grid, t.Header)
	for _, r := range t.Rows {
		grid = append(grid, r.Cells())
	}
	return grid
}

func sizeRow(kind RowKind, label string, s Sizes) TableRow {
	return TableRow{
		Kind:       kind,
		Label:      label,
		Original:   HumanSize(s[Raw]),
		Compressed: HumanSize(s[Compressed]),
	}
}

func bundleLabel(name, pkgName string) string {
	switch {
	case pkgName == "":
		return name
	case name == MainBundleName:
		return pkgName
	default:
		return pkgName + "/" + name
	}
}
