package models

// Decoration is the per-date cosmetic configuration a user applies to a
// calendar cell. It carries no invariant beyond being quietly overwritten on
// each save; it is persisted here only because it shares the per-user JSON
// document pattern with memories.
type Decoration struct {
	// BG is the cell background color (e.g. "#ffe4ec").
	BG string `json:"bg"`

	// Radius is the cell corner radius in pixels.
	Radius int `json:"radius"`

	// Stickers lists the sticker identifiers placed on the cell.
	Stickers []string `json:"stickers,omitempty"`

	// BGImageB64 is an optional base64-encoded background image.
	BGImageB64 string `json:"bg_img_b64,omitempty"`
}

// IsZero reports whether no decoration has been configured.
func (d Decoration) IsZero() bool {
	return d.BG == "" && d.Radius == 0 && len(d.Stickers) == 0 && d.BGImageB64 == ""
}
