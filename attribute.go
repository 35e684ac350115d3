package md2html

// Attribute decorates a node with styling information. Each attribute used
// anywhere in a tree produces exactly one CSS class in the stylesheet, and
// the attribute names double as the HTML class names.
type Attribute uint8

const (
	AttrBold Attribute = iota
	AttrItalic
	AttrFontSize1
	AttrFontSize2
	AttrFontSize3
	AttrFontSize4
	AttrFontSize5
	AttrFontSize6
	AttrInline
	AttrBlock
	AttrBlockQuote
	AttrTableStyle
	AttrTableHeader
	AttrTableRow
	AttrTableCell
	AttrImage
)

var attrNames = [...]string{
	"Bold", "Italic",
	"FontSize1", "FontSize2", "FontSize3", "FontSize4", "FontSize5", "FontSize6",
	"Inline", "Block", "BlockQuote",
	"TableStyle", "TableHeader", "TableRow", "TableCell",
	"ImageAttr",
}

// Name returns the CSS class name of the attribute.
func (a Attribute) Name() string {
	if int(a) < len(attrNames) {
		return attrNames[a]
	}
	return "unknown"
}

// fontSizeForLevel returns the font-size attribute matching header level n.
func fontSizeForLevel(n int) Attribute {
	return AttrFontSize1 + Attribute(n-1)
}
