package styles

// Status glyphs. They render in any UTF-8 terminal, no patched font needed.
const (
	IconSuccess = "✓"
	IconError   = "✗"
	IconWarning = "!"
	IconInfo    = "i"
	IconBullet  = "▸"
	IconDot     = "●"
)
