package editor

// CopyResult reports how block content was copied
type CopyResult int

const (
	CopyNotFound CopyResult = iota
	// CopyClipboard means the system clipboard accepted the text
	CopyClipboard
	// CopyManual means the text was handed to the manual copier
	CopyManual
	// CopyUnavailable means neither path was available
	CopyUnavailable
)

func (r CopyResult) String() string {
	switch r {
	case CopyClipboard:
		return "copied"
	case CopyManual:
		return "selected for manual copy"
	case CopyUnavailable:
		return "copy unavailable"
	}
	return "block not found"
}

// Copy puts a block's committed content on the clipboard, falling back to
// the manual copier when the clipboard write fails
func (e *Engine) Copy(id string) CopyResult {
	b, ok := e.Block(id)
	if !ok {
		return CopyNotFound
	}
	if e.clipboard != nil {
		err := e.clipboard.WriteAll(b.Content)
		if err == nil {
			return CopyClipboard
		}
		e.log.Debug().Err(err).Str("block", id).Msg("clipboard write failed")
	}
	if e.manual != nil {
		e.manual.SelectForCopy(b.Content)
		return CopyManual
	}
	return CopyUnavailable
}
