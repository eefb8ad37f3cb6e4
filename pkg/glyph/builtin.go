package glyph

// presetSets maps each Preset to its character set.
var presetSets = map[Preset]Set{
	Classic: {
		TopLeft: "+", TopRight: "+",
		BottomLeft: "+", BottomRight: "+",
		Horizontal: "-", Vertical: "|",
	},
	Invisible: {
		TopLeft: "+", TopRight: "+",
		BottomLeft: "+", BottomRight: "+",
		Horizontal: " ", Vertical: " ",
	},
	Bold: {
		TopLeft: "┏", TopRight: "┓",
		BottomLeft: "┗", BottomRight: "┛",
		Horizontal: "━", Vertical: "┃",
	},
	Round: {
		TopLeft: "╭", TopRight: "╮",
		BottomLeft: "╰", BottomRight: "╯",
		Horizontal: "─", Vertical: "│",
	},
	Single: {
		TopLeft: "┌", TopRight: "┐",
		BottomLeft: "└", BottomRight: "┘",
		Horizontal: "─", Vertical: "│",
	},
	Double: {
		TopLeft: "╔", TopRight: "╗",
		BottomLeft: "╚", BottomRight: "╝",
		Horizontal: "═", Vertical: "║",
	},
	SingleDouble: {
		TopLeft: "╓", TopRight: "╖",
		BottomLeft: "╙", BottomRight: "╜",
		Horizontal: "─", Vertical: "║",
	},
	DoubleSingle: {
		TopLeft: "╒", TopRight: "╕",
		BottomLeft: "╘", BottomRight: "╛",
		Horizontal: "═", Vertical: "│",
	},
}
