package models

// ClipKind distinguishes the two clip collections
type ClipKind int

const (
	KindText ClipKind = iota
	KindImage
)

func (k ClipKind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindImage:
		return "image"
	default:
		return "unknown"
	}
}

// TextClip is a named text snippet
type TextClip struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Text string `json:"text"`
}

// RecordID implements Record
func (c TextClip) RecordID() int { return c.ID }

// ImageClip is a named reference to an image file on disk
type ImageClip struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Path string `json:"path"` // stored verbatim, separators included
}

// RecordID implements Record
func (c ImageClip) RecordID() int { return c.ID }

// Clipboard is the persisted aggregate. Text and image clips have
// independent id spaces and keep insertion order.
type Clipboard struct {
	TextClips  []TextClip  `json:"text_clips"`
	ImageClips []ImageClip `json:"image_clips"`
}

// NewClipboard creates an empty clipboard
func NewClipboard() *Clipboard {
	return &Clipboard{
		TextClips:  []TextClip{},
		ImageClips: []ImageClip{},
	}
}

// Clone returns a deep copy
func (c *Clipboard) Clone() *Clipboard {
	out := NewClipboard()
	out.TextClips = append(out.TextClips, c.TextClips...)
	out.ImageClips = append(out.ImageClips, c.ImageClips...)
	return out
}

// AddText appends a new text clip and returns it
func (c *Clipboard) AddText(name, text string) TextClip {
	clip := TextClip{ID: NextID(c.TextClips), Name: name, Text: text}
	c.TextClips = append(c.TextClips, clip)
	return clip
}

// AddImage appends a new image clip and returns it
func (c *Clipboard) AddImage(name, path string) ImageClip {
	clip := ImageClip{ID: NextID(c.ImageClips), Name: name, Path: path}
	c.ImageClips = append(c.ImageClips, clip)
	return clip
}

// EditText overwrites name and text of the clip with the given id.
// A missing id is a no-op and reports false.
func (c *Clipboard) EditText(id int, name, text string) bool {
	return Update(c.TextClips, id, func(clip *TextClip) {
		clip.Name = name
		clip.Text = text
	})
}

// EditImage overwrites name and path of the clip with the given id.
// A missing id is a no-op and reports false.
func (c *Clipboard) EditImage(id int, name, path string) bool {
	return Update(c.ImageClips, id, func(clip *ImageClip) {
		clip.Name = name
		clip.Path = path
	})
}

// DeleteText removes the text clip with the given id, if present
func (c *Clipboard) DeleteText(id int) bool {
	var removed bool
	c.TextClips, removed = Remove(c.TextClips, id)
	return removed
}

// DeleteImage removes the image clip with the given id, if present
func (c *Clipboard) DeleteImage(id int) bool {
	var removed bool
	c.ImageClips, removed = Remove(c.ImageClips, id)
	return removed
}

// FindText looks up a text clip by id
func (c *Clipboard) FindText(id int) (TextClip, bool) {
	return Find(c.TextClips, id)
}

// FindImage looks up an image clip by id
func (c *Clipboard) FindImage(id int) (ImageClip, bool) {
	return Find(c.ImageClips, id)
}

// Len returns the total number of clips across both collections
func (c *Clipboard) Len() int {
	return len(c.TextClips) + len(c.ImageClips)
}
