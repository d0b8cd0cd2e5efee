package u8scan

// emojiRanges lists the codepoints IsEmoji accepts, as inclusive [lo, hi]
// pairs sorted by lo. It is a heuristic selection of emoji blocks and the
// symbols commonly rendered as emoji, not the Unicode Emoji property.
// ©, ® and ™ are left out: they are emoji only with U+FE0F.
var emojiRanges = [][2]rune{
	{0x203C, 0x203C}, // ‼
	{0x2049, 0x2049}, // ⁉
	{0x2139, 0x2139}, // ℹ
	{0x2190, 0x2199}, // arrows
	{0x21A9, 0x21AA},
	{0x231A, 0x231B}, // watch, hourglass
	{0x2328, 0x2328}, // keyboard
	{0x23CF, 0x23CF},
	{0x23E9, 0x23F3}, // media controls, clocks
	{0x23F8, 0x23FA},
	{0x24C2, 0x24C2}, // Ⓜ
	{0x25AA, 0x25AB},
	{0x25B6, 0x25B6}, // ▶
	{0x25C0, 0x25C0}, // ◀
	{0x25FB, 0x25FE},
	{0x2600, 0x26FF}, // Miscellaneous Symbols, whole block
	{0x2702, 0x2705}, // Dingbats subset
	{0x2708, 0x270F},
	{0x2712, 0x2714},
	{0x2716, 0x2716},
	{0x271D, 0x271D},
	{0x2721, 0x2721},
	{0x2728, 0x2728},
	{0x2733, 0x2734},
	{0x2744, 0x2744},
	{0x2747, 0x2747},
	{0x274C, 0x274C},
	{0x274E, 0x274E},
	{0x2753, 0x2755},
	{0x2757, 0x2757},
	{0x2763, 0x2764},
	{0x2795, 0x2797},
	{0x27A1, 0x27A1},
	{0x27B0, 0x27B0},
	{0x27BF, 0x27BF},
	{0x2934, 0x2935},
	{0x2B05, 0x2B07},
	{0x2B1B, 0x2B1C},
	{0x2B50, 0x2B50}, // ⭐
	{0x2B55, 0x2B55}, // ⭕
	{0x3030, 0x3030},
	{0x303D, 0x303D},
	{0x3297, 0x3297},
	{0x3299, 0x3299},
	{0x1F004, 0x1F004}, // mahjong red dragon
	{0x1F0CF, 0x1F0CF}, // joker
	{0x1F1E6, 0x1F1FF}, // regional indicators
	{0x1F300, 0x1F5FF}, // Miscellaneous Symbols and Pictographs
	{0x1F600, 0x1F64F}, // Emoticons
	{0x1F680, 0x1F6FF}, // Transport and Map Symbols
	{0x1F900, 0x1F9FF}, // Supplemental Symbols and Pictographs
	{0x1FA70, 0x1FAFF}, // Symbols and Pictographs Extended-A
}

// IsEmoji reports whether c is a valid character whose codepoint is in the
// emoji table. The selection is best effort.
func IsEmoji(c Char) bool {
	if !c.Valid || c.ASCII || c.Codepoint < emojiRanges[0][0] {
		return false
	}
	return inTable(emojiRanges, c.Codepoint)
}

// inTable runs a binary search over sorted, non-overlapping ranges.
func inTable(table [][2]rune, r rune) bool {
	from := 0
	to := len(table)
	for to > from {
		middle := (from + to) / 2
		cpRange := table[middle]
		if r < cpRange[0] {
			to = middle
			continue
		}
		if r > cpRange[1] {
			from = middle + 1
			continue
		}
		return true
	}
	return false
}
